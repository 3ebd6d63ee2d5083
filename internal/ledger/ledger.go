// Package ledger holds the append-only, session-scoped collection of
// finalized expense records and its aggregate queries.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// Ledger is the state of one session. It is not safe for concurrent use;
// callers that share a ledger across goroutines must serialize access.
type Ledger struct {
	sessionID  string
	createdAt  time.Time
	maxRecords int
	records    []model.ExpenseRecord
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithMaxRecords bounds the number of records the ledger will accept.
// Zero or a negative value means unbounded.
func WithMaxRecords(n int) Option {
	return func(l *Ledger) {
		l.maxRecords = n
	}
}

// New creates an empty ledger for the given session.
func New(sessionID string, createdAt time.Time, opts ...Option) *Ledger {
	l := &Ledger{
		sessionID: sessionID,
		createdAt: createdAt,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewSessionID derives a session identifier from t.
func NewSessionID(t time.Time) string {
	return "session_" + t.Format("20060102_150405")
}

// SessionID returns the ledger's session identifier.
func (l *Ledger) SessionID() string { return l.sessionID }

// CreatedAt returns when the session was created.
func (l *Ledger) CreatedAt() time.Time { return l.createdAt }

// Append finalizes c into a new record with the next sequential ID.
func (l *Ledger) Append(c model.ClassifiedCandidate) (model.ExpenseRecord, error) {
	if l.maxRecords > 0 && len(l.records) >= l.maxRecords {
		return model.ExpenseRecord{}, &model.ResourceExhaustedError{Limit: l.maxRecords}
	}

	rec := model.ExpenseRecord{
		ID:          fmt.Sprintf("exp_%d", len(l.records)+1),
		Amount:      c.Amount,
		Currency:    c.Currency,
		Description: c.Description,
		Category:    c.Category,
		Timestamp:   c.ParsedAt,
		RawInput:    c.RawInput,
	}
	l.records = append(l.records, rec)
	return rec, nil
}

// Total returns the sum of all record amounts.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.records {
		total = total.Add(r.Amount)
	}
	return total
}

// CategoryTotals returns per-category sums in the order each category was
// first appended. Only categories present in the ledger are included.
func (l *Ledger) CategoryTotals() []model.CategoryAmount {
	index := make(map[string]int)
	var out []model.CategoryAmount
	for _, r := range l.records {
		i, ok := index[r.Category]
		if !ok {
			i = len(out)
			index[r.Category] = i
			out = append(out, model.CategoryAmount{Name: r.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(r.Amount)
	}
	return out
}

// Count returns the number of records.
func (l *Ledger) Count() int { return len(l.records) }

// Records returns a copy of all records in insertion order.
func (l *Ledger) Records() []model.ExpenseRecord {
	out := make([]model.ExpenseRecord, len(l.records))
	copy(out, l.records)
	return out
}
