package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryOther is the catch-all category returned when no keyword matches.
const CategoryOther = "other"

// CategoryNone names the top category of an empty breakdown.
const CategoryNone = "none"

// ExpenseCandidate is the structured result of extracting one raw input.
// It only lives for the duration of a single pipeline run.
type ExpenseCandidate struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	RawInput    string          `json:"raw_input"`
	ParsedAt    time.Time       `json:"parsed_at"`
}

// ClassifiedCandidate is an ExpenseCandidate with its category attached.
type ClassifiedCandidate struct {
	ExpenseCandidate
	Category string `json:"category"`
}

// ExpenseRecord is a finalized expense owned by a ledger.
type ExpenseRecord struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Timestamp   time.Time       `json:"timestamp"`
	RawInput    string          `json:"raw_input"`
}

// CategoryAmount is an amount aggregated under a category name.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// InsightSnapshot summarizes a ledger as of its most recent append.
type InsightSnapshot struct {
	TotalSpending     decimal.Decimal            `json:"total_spending"`
	ExpenseCount      int                        `json:"expense_count"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown"`
	TopCategory       CategoryAmount             `json:"top_category"`
}

// Result is the output of processing one expense.
type Result struct {
	Expense  ExpenseRecord   `json:"expense"`
	Insights InsightSnapshot `json:"insights"`
}

// SessionInfo identifies a ledger session.
type SessionInfo struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Statistics holds ledger-wide aggregates for a summary.
type Statistics struct {
	TotalExpenses     int                        `json:"total_expenses"`
	TotalSpending     decimal.Decimal            `json:"total_spending"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown"`
}

// Summary is a read-only view of a session's ledger.
type Summary struct {
	SessionInfo SessionInfo     `json:"session_info"`
	Statistics  Statistics      `json:"statistics"`
	AllExpenses []ExpenseRecord `json:"all_expenses"`
}

// Breakdown converts ordered category totals into a lookup map.
func Breakdown(totals []CategoryAmount) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(totals))
	for _, ct := range totals {
		out[ct.Name] = ct.Amount
	}
	return out
}
