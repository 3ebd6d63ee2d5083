// Package pipeline turns free-text expense descriptions into ledger records
// by running extraction, classification and analysis in sequence.
package pipeline

import (
	"time"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/eventlog"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/ledger"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// Pipeline orchestrates the three stages for one session. It owns the
// session ledger and is not safe for concurrent use.
type Pipeline struct {
	log    *eventlog.Log
	ledger *ledger.Ledger

	extract  Stage[string, model.ExpenseCandidate]
	classify Stage[model.ExpenseCandidate, model.ClassifiedCandidate]
	analyze  Stage[model.ClassifiedCandidate, model.Result]
}

// New creates a Pipeline over the given ledger and event log.
func New(ex *Extractor, cl *Classifier, l *ledger.Ledger, log *eventlog.Log) *Pipeline {
	return &Pipeline{
		log:    log,
		ledger: l,
		extract: func(text string) (model.ExpenseCandidate, error) {
			return ex.Extract(text), nil
		},
		classify: func(c model.ExpenseCandidate) (model.ClassifiedCandidate, error) {
			return cl.Attach(c), nil
		},
		analyze: func(c model.ClassifiedCandidate) (model.Result, error) {
			return Finalize(c, l)
		},
	}
}

var (
	parseEvents = stageEvents[string, model.ExpenseCandidate]{
		agent:      model.AgentInputParser,
		start:      func(text string) string { return "Parsing input: " + text },
		failPrefix: "Failed to parse: ",
		success: func(c model.ExpenseCandidate) (string, map[string]any) {
			return "Successfully parsed expense", candidateFields(c)
		},
	}
	classifyEvents = stageEvents[model.ExpenseCandidate, model.ClassifiedCandidate]{
		agent:      model.AgentCategoryClassifier,
		start:      func(c model.ExpenseCandidate) string { return "Classifying: " + c.Description },
		failPrefix: "Classification failed: ",
		success: func(c model.ClassifiedCandidate) (string, map[string]any) {
			return "Classified as: " + c.Category, map[string]any{"category": c.Category}
		},
	}
	analyzeEvents = stageEvents[model.ClassifiedCandidate, model.Result]{
		agent:      model.AgentBudgetAnalyzer,
		start:      func(model.ClassifiedCandidate) string { return "Analyzing budget impact" },
		failPrefix: "Analysis failed: ",
		success: func(r model.Result) (string, map[string]any) {
			return "Analysis complete", insightFields(r.Insights)
		},
	}
)

// Process runs one raw expense text through the pipeline. Stage errors are
// recorded in the event log and returned unchanged.
func (p *Pipeline) Process(rawText string) (model.Result, error) {
	res, err := p.run(rawText)
	if err != nil {
		p.log.Record(model.AgentSystem, model.EventError, "Pipeline failed: "+err.Error(), nil)
		return model.Result{}, err
	}
	return res, nil
}

func (p *Pipeline) run(rawText string) (model.Result, error) {
	cand, err := runStage(p.log, parseEvents, p.extract, rawText)
	if err != nil {
		return model.Result{}, err
	}
	classified, err := runStage(p.log, classifyEvents, p.classify, cand)
	if err != nil {
		return model.Result{}, err
	}
	return runStage(p.log, analyzeEvents, p.analyze, classified)
}

// Summary returns a read-only view of the session ledger.
func (p *Pipeline) Summary() model.Summary {
	return model.Summary{
		SessionInfo: model.SessionInfo{
			SessionID: p.ledger.SessionID(),
			CreatedAt: p.ledger.CreatedAt(),
		},
		Statistics: model.Statistics{
			TotalExpenses:     p.ledger.Count(),
			TotalSpending:     p.ledger.Total(),
			CategoryBreakdown: model.Breakdown(p.ledger.CategoryTotals()),
		},
		AllExpenses: p.ledger.Records(),
	}
}

// CategoryTotals returns per-category totals in first-seen order.
func (p *Pipeline) CategoryTotals() []model.CategoryAmount {
	return p.ledger.CategoryTotals()
}

// Logs returns a snapshot of the session's event log.
func (p *Pipeline) Logs() []model.Event {
	return p.log.Events()
}

// SessionID returns the identifier of the session ledger.
func (p *Pipeline) SessionID() string {
	return p.ledger.SessionID()
}

func candidateFields(c model.ExpenseCandidate) map[string]any {
	return map[string]any{
		"amount":      c.Amount.String(),
		"currency":    c.Currency,
		"description": c.Description,
		"raw_input":   c.RawInput,
		"parsed_at":   c.ParsedAt.Format(time.RFC3339),
	}
}

func insightFields(s model.InsightSnapshot) map[string]any {
	breakdown := make(map[string]string, len(s.CategoryBreakdown))
	for k, v := range s.CategoryBreakdown {
		breakdown[k] = v.String()
	}
	return map[string]any{
		"total_spending":     s.TotalSpending.String(),
		"expense_count":      s.ExpenseCount,
		"category_breakdown": breakdown,
		"top_category": map[string]string{
			"name":   s.TopCategory.Name,
			"amount": s.TopCategory.Amount.String(),
		},
	}
}
