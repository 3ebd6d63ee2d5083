package main

import (
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/config"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/eventlog"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/ledger"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/pipeline"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/registry"
)

// initPipeline loads the category registry and builds a pipeline over a
// fresh session ledger. now defaults to time.Now.
func initPipeline(c *config.Config, now func() time.Time) (*pipeline.Pipeline, error) {
	if now == nil {
		now = time.Now
	}

	reg, err := registry.Load(c.Categories.File)
	if err != nil {
		return nil, eris.Wrap(err, "load categories")
	}

	created := now()
	l := ledger.New(ledger.NewSessionID(created), created, ledger.WithMaxRecords(c.Ledger.MaxRecords))

	ex := pipeline.NewExtractor(pipeline.CurrencySymbols{
		Primary:   c.Currency.Primary,
		Secondary: c.Currency.Secondary,
		Default:   c.Currency.Default,
	}, now)

	p := pipeline.New(ex, pipeline.NewClassifier(reg), l, eventlog.New(eventlog.WithClock(now)))

	zap.L().Info("session started",
		zap.String("session_id", l.SessionID()),
		zap.Strings("categories", reg.Names()),
		zap.Int("max_records", c.Ledger.MaxRecords),
	)

	return p, nil
}
