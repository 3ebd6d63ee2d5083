package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/config"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/pipeline"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        8000,
			RateLimit:   10,
			RateBurst:   20,
			CORSOrigins: []string{"*"},
		},
		Log:      config.LogConfig{Level: "info", Format: "json"},
		Currency: config.CurrencyConfig{Primary: "₹", Secondary: "$", Default: "₹"},
	}
}

func newTestPipeline(t *testing.T, c *config.Config) *pipeline.Pipeline {
	t.Helper()
	p, err := initPipeline(c, func() time.Time { return testNow })
	require.NoError(t, err)
	return p
}
