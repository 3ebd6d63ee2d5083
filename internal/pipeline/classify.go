package pipeline

import (
	"strings"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/registry"
)

// Classifier assigns a category to an expense description by keyword.
type Classifier struct {
	categories []registry.Category
}

// NewClassifier snapshots the registry's categories in declaration order.
func NewClassifier(reg *registry.CategoryRegistry) *Classifier {
	return &Classifier{categories: reg.Categories()}
}

// Classify returns the first category, in declaration order, with a keyword
// contained in the lower-cased description. It returns "other" when nothing
// matches.
func (c *Classifier) Classify(description string) string {
	lower := strings.ToLower(description)
	for _, cat := range c.categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Name
			}
		}
	}
	return model.CategoryOther
}

// Attach classifies the candidate's description and returns the candidate
// with its category set.
func (c *Classifier) Attach(cand model.ExpenseCandidate) model.ClassifiedCandidate {
	return model.ClassifiedCandidate{
		ExpenseCandidate: cand,
		Category:         c.Classify(cand.Description),
	}
}
