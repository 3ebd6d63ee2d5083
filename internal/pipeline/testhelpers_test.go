package pipeline

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/eventlog"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/ledger"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/registry"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func defaultSymbols() CurrencySymbols {
	return CurrencySymbols{Primary: "₹", Secondary: "$", Default: "₹"}
}

func newTestPipeline(t *testing.T, opts ...ledger.Option) *Pipeline {
	t.Helper()
	ex := NewExtractor(defaultSymbols(), fixedClock)
	cl := NewClassifier(registry.Default())
	l := ledger.New(ledger.NewSessionID(fixedNow), fixedNow, opts...)
	log := eventlog.New(eventlog.WithLogger(zap.NewNop()), eventlog.WithClock(fixedClock))
	return New(ex, cl, l, log)
}
