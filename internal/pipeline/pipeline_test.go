package pipeline

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/ledger"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

func TestProcess_TwoExpenses(t *testing.T) {
	p := newTestPipeline(t)

	first, err := p.Process("Spent ₹500 on groceries at DMart")
	require.NoError(t, err)
	assert.Equal(t, "exp_1", first.Expense.ID)
	assert.Equal(t, "food", first.Expense.Category)
	assert.Equal(t, "₹", first.Expense.Currency)
	assert.True(t, decimal.NewFromInt(500).Equal(first.Expense.Amount))
	assert.Equal(t, fixedNow, first.Expense.Timestamp)

	second, err := p.Process("Auto rickshaw ride ₹80")
	require.NoError(t, err)
	assert.Equal(t, "exp_2", second.Expense.ID)
	assert.Equal(t, "transportation", second.Expense.Category)

	ins := second.Insights
	assert.Equal(t, 2, ins.ExpenseCount)
	assert.True(t, decimal.NewFromInt(580).Equal(ins.TotalSpending))
	assert.True(t, decimal.NewFromInt(500).Equal(ins.CategoryBreakdown["food"]))
	assert.True(t, decimal.NewFromInt(80).Equal(ins.CategoryBreakdown["transportation"]))
	assert.Equal(t, "food", ins.TopCategory.Name)
	assert.True(t, decimal.NewFromInt(500).Equal(ins.TopCategory.Amount))
}

func TestProcess_SecondaryCurrency(t *testing.T) {
	p := newTestPipeline(t)

	res, err := p.Process("$45 for lunch at restaurant")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(45).Equal(res.Expense.Amount))
	assert.Equal(t, "$", res.Expense.Currency)
	assert.Equal(t, "food", res.Expense.Category)
}

func TestProcess_UnrecognizedInput(t *testing.T) {
	p := newTestPipeline(t)

	res, err := p.Process("xyz unspecified item")
	require.NoError(t, err)
	assert.True(t, res.Expense.Amount.IsZero())
	assert.Equal(t, "₹", res.Expense.Currency)
	assert.Equal(t, model.CategoryOther, res.Expense.Category)
	assert.Equal(t, 1, res.Insights.ExpenseCount)
}

func TestProcess_EventSequence(t *testing.T) {
	p := newTestPipeline(t)

	_, err := p.Process("Netflix subscription ₹649")
	require.NoError(t, err)

	events := p.Logs()
	require.Len(t, events, 6)

	want := []struct {
		agent string
		typ   model.EventType
		msg   string
	}{
		{model.AgentInputParser, model.EventStart, "Parsing input: Netflix subscription ₹649"},
		{model.AgentInputParser, model.EventSuccess, "Successfully parsed expense"},
		{model.AgentCategoryClassifier, model.EventStart, "Classifying: Netflix subscription ₹649"},
		{model.AgentCategoryClassifier, model.EventSuccess, "Classified as: entertainment"},
		{model.AgentBudgetAnalyzer, model.EventStart, "Analyzing budget impact"},
		{model.AgentBudgetAnalyzer, model.EventSuccess, "Analysis complete"},
	}
	for i, w := range want {
		assert.Equal(t, w.agent, events[i].Agent, "event %d", i)
		assert.Equal(t, w.typ, events[i].EventType, "event %d", i)
		assert.Equal(t, w.msg, events[i].Message, "event %d", i)
	}

	assert.Equal(t, "649", events[1].Data["amount"])
	assert.Equal(t, "entertainment", events[3].Data["category"])
	assert.Equal(t, 1, events[5].Data["expense_count"])
}

func TestProcess_FailurePropagates(t *testing.T) {
	p := newTestPipeline(t, ledger.WithMaxRecords(1))

	_, err := p.Process("coffee ₹90")
	require.NoError(t, err)

	_, err = p.Process("dinner ₹400")
	require.Error(t, err)
	assert.True(t, model.IsResourceExhausted(err))

	events := p.Logs()
	require.GreaterOrEqual(t, len(events), 2)

	analyzerErr := events[len(events)-2]
	assert.Equal(t, model.AgentBudgetAnalyzer, analyzerErr.Agent)
	assert.Equal(t, model.EventError, analyzerErr.EventType)
	assert.True(t, strings.HasPrefix(analyzerErr.Message, "Analysis failed: "))

	system := events[len(events)-1]
	assert.Equal(t, model.AgentSystem, system.Agent)
	assert.Equal(t, model.EventError, system.EventType)
	assert.Equal(t, "Pipeline failed: "+err.Error(), system.Message)

	s := p.Summary()
	assert.Equal(t, 1, s.Statistics.TotalExpenses)
	assert.True(t, decimal.NewFromInt(90).Equal(s.Statistics.TotalSpending))
}

func TestProcess_EveryStageEmitsStartThenOutcome(t *testing.T) {
	p := newTestPipeline(t, ledger.WithMaxRecords(2))
	for _, in := range []string{"bus ₹20", "movie ₹300", "shoes ₹1500"} {
		_, _ = p.Process(in)
	}

	open := map[string]bool{}
	for _, ev := range p.Logs() {
		if ev.Agent == model.AgentSystem {
			continue
		}
		switch ev.EventType {
		case model.EventStart:
			assert.False(t, open[ev.Agent], "%s started twice", ev.Agent)
			open[ev.Agent] = true
		case model.EventSuccess, model.EventError:
			assert.True(t, open[ev.Agent], "%s finished without start", ev.Agent)
			open[ev.Agent] = false
		}
	}
	for agent, o := range open {
		assert.False(t, o, "%s never finished", agent)
	}
}

func TestSummary(t *testing.T) {
	p := newTestPipeline(t)

	empty := p.Summary()
	assert.Equal(t, "session_20260314_093000", empty.SessionInfo.SessionID)
	assert.Equal(t, fixedNow, empty.SessionInfo.CreatedAt)
	assert.Equal(t, 0, empty.Statistics.TotalExpenses)
	assert.Empty(t, empty.AllExpenses)

	for _, in := range []string{"Spent ₹500 on groceries at DMart", "Auto rickshaw ride ₹80", "$45 for lunch at restaurant"} {
		_, err := p.Process(in)
		require.NoError(t, err)
	}

	s1 := p.Summary()
	s2 := p.Summary()
	assert.Equal(t, s1, s2)

	assert.Equal(t, 3, s1.Statistics.TotalExpenses)
	assert.True(t, decimal.NewFromInt(625).Equal(s1.Statistics.TotalSpending))
	require.Len(t, s1.AllExpenses, 3)
	assert.Equal(t, []string{"exp_1", "exp_2", "exp_3"}, []string{
		s1.AllExpenses[0].ID, s1.AllExpenses[1].ID, s1.AllExpenses[2].ID,
	})

	sum := decimal.Zero
	for _, v := range s1.Statistics.CategoryBreakdown {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(s1.Statistics.TotalSpending))

	s1.AllExpenses[0].Category = "mutated"
	assert.Equal(t, "food", p.Summary().AllExpenses[0].Category)
}

func TestLogs_Snapshot(t *testing.T) {
	p := newTestPipeline(t)
	_, err := p.Process("chai ₹20")
	require.NoError(t, err)

	logs := p.Logs()
	n := len(logs)
	logs[0].Message = "changed"

	assert.Len(t, p.Logs(), n)
	assert.NotEqual(t, "changed", p.Logs()[0].Message)
	assert.Equal(t, "session_20260314_093000", p.SessionID())
}

func TestCategoryTotals_FirstSeenOrder(t *testing.T) {
	p := newTestPipeline(t)
	for _, in := range []string{"Auto rickshaw ride ₹80", "Spent ₹500 on groceries at DMart", "metro card ₹100"} {
		_, err := p.Process(in)
		require.NoError(t, err)
	}

	totals := p.CategoryTotals()
	require.Len(t, totals, 2)
	assert.Equal(t, "transportation", totals[0].Name)
	assert.True(t, decimal.NewFromInt(180).Equal(totals[0].Amount))
	assert.Equal(t, "food", totals[1].Name)
}

func TestLogs_NestedDataIsolated(t *testing.T) {
	p := newTestPipeline(t)
	_, err := p.Process("Spent ₹500 on groceries at DMart")
	require.NoError(t, err)

	logs := p.Logs()
	last := logs[len(logs)-1]
	require.Equal(t, "Analysis complete", last.Message)
	last.Data["category_breakdown"].(map[string]string)["food"] = "999999"
	last.Data["top_category"].(map[string]string)["name"] = "hacked"

	again := p.Logs()
	fresh := again[len(again)-1]
	assert.Equal(t, "500", fresh.Data["category_breakdown"].(map[string]string)["food"])
	assert.Equal(t, "food", fresh.Data["top_category"].(map[string]string)["name"])
}
