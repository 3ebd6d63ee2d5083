package pipeline

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// --- Ledger Mock ---

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Append(c model.ClassifiedCandidate) (model.ExpenseRecord, error) {
	args := m.Called(c)
	return args.Get(0).(model.ExpenseRecord), args.Error(1)
}

func (m *mockLedger) Total() decimal.Decimal {
	args := m.Called()
	return args.Get(0).(decimal.Decimal)
}

func (m *mockLedger) CategoryTotals() []model.CategoryAmount {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.CategoryAmount)
}

func (m *mockLedger) Count() int {
	args := m.Called()
	return args.Int(0)
}
