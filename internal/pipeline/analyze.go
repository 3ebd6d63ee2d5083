package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// Ledger is the session state the analyzer appends to and reads from.
type Ledger interface {
	Append(c model.ClassifiedCandidate) (model.ExpenseRecord, error)
	Total() decimal.Decimal
	CategoryTotals() []model.CategoryAmount
	Count() int
}

// Finalize validates c, appends it to l, and computes insights over the
// ledger as of that append. A validation failure leaves l untouched; errors
// from l are returned unchanged.
func Finalize(c model.ClassifiedCandidate, l Ledger) (model.Result, error) {
	if err := validateClassified(c); err != nil {
		return model.Result{}, err
	}

	rec, err := l.Append(c)
	if err != nil {
		return model.Result{}, err
	}

	return model.Result{
		Expense:  rec,
		Insights: Insights(l),
	}, nil
}

// Insights recomputes the snapshot from the ledger's current contents.
func Insights(l Ledger) model.InsightSnapshot {
	totals := l.CategoryTotals()
	return model.InsightSnapshot{
		TotalSpending:     l.Total(),
		ExpenseCount:      l.Count(),
		CategoryBreakdown: model.Breakdown(totals),
		TopCategory:       TopCategory(totals),
	}
}

// TopCategory returns the category with the largest total. Ties go to the
// category encountered first. An empty list yields {"none", 0}.
func TopCategory(totals []model.CategoryAmount) model.CategoryAmount {
	if len(totals) == 0 {
		return model.CategoryAmount{Name: model.CategoryNone, Amount: decimal.Zero}
	}
	top := totals[0]
	for _, ct := range totals[1:] {
		if ct.Amount.GreaterThan(top.Amount) {
			top = ct
		}
	}
	return top
}

func validateClassified(c model.ClassifiedCandidate) error {
	switch {
	case c.Category == "":
		return model.NewValidationError("category", "is missing")
	case c.Currency == "":
		return model.NewValidationError("currency", "is missing")
	case c.ParsedAt.IsZero():
		return model.NewValidationError("parsed_at", "is missing")
	case c.Amount.IsNegative():
		return model.NewValidationError("amount", "is negative")
	}
	return nil
}
