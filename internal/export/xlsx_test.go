package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

func testSummary() model.Summary {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return model.Summary{
		SessionInfo: model.SessionInfo{SessionID: "session_20260314_093000", CreatedAt: ts},
		Statistics: model.Statistics{
			TotalExpenses: 3,
			TotalSpending: decimal.NewFromInt(625),
			CategoryBreakdown: map[string]decimal.Decimal{
				"food":           decimal.NewFromInt(545),
				"transportation": decimal.NewFromInt(80),
			},
		},
		AllExpenses: []model.ExpenseRecord{
			{ID: "exp_1", Amount: decimal.NewFromInt(500), Currency: "₹", Description: "groceries", Category: "food", Timestamp: ts, RawInput: "groceries"},
			{ID: "exp_2", Amount: decimal.NewFromInt(80), Currency: "₹", Description: "auto", Category: "transportation", Timestamp: ts, RawInput: "auto"},
			{ID: "exp_3", Amount: decimal.NewFromInt(45), Currency: "$", Description: "lunch", Category: "food", Timestamp: ts, RawInput: "lunch"},
		},
	}
}

func createTestXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Inbox")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "inbox.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestWriteXLSX_Expenses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, WriteXLSX(path, testSummary()))

	rows, err := ReadRows(path, ExpensesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, ExpenseHeader, rows[0])
	assert.Equal(t, "exp_1", rows[1][0])
	assert.Equal(t, "2026-03-14T09:30:00Z", rows[1][1])
	assert.Equal(t, "food", rows[1][3])
	assert.Equal(t, "500", rows[1][5])
	assert.Equal(t, "$", rows[3][4])
}

func TestWriteXLSX_Summary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, WriteXLSX(path, testSummary()))

	rows, err := ReadRows(path, SummarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.Equal(t, []string{"Session", "session_20260314_093000"}, rows[0])
	assert.Equal(t, []string{"Category", "Total"}, rows[2])
	assert.Equal(t, []string{"food", "545"}, rows[3])
	assert.Equal(t, []string{"transportation", "80"}, rows[4])
	assert.Equal(t, []string{"Total", "625"}, rows[5])
	assert.Equal(t, []string{"Expenses", "3"}, rows[6])
}

func TestWriteXLSX_EmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	s := model.Summary{SessionInfo: model.SessionInfo{SessionID: "session_x"}}
	require.NoError(t, WriteXLSX(path, s))

	rows, err := ReadRows(path, ExpensesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteXLSX_BadPath(t *testing.T) {
	err := WriteXLSX(filepath.Join(t.TempDir(), "missing", "dir", "x.xlsx"), testSummary())
	assert.Error(t, err)
}

func TestReadTexts(t *testing.T) {
	path := createTestXLSX(t, [][]string{
		{"Date", "Text"},
		{"2026-03-01", "Spent ₹500 on groceries at DMart"},
		{"2026-03-02", ""},
		{"2026-03-03", "Auto rickshaw ride ₹80"},
	})

	texts, err := ReadTexts(path, ReadOptions{Column: 1, SkipRows: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Spent ₹500 on groceries at DMart", "Auto rickshaw ride ₹80"}, texts)
}

func TestReadTexts_SheetNotFound(t *testing.T) {
	path := createTestXLSX(t, [][]string{{"a"}})

	_, err := ReadTexts(path, ReadOptions{SheetName: "Nope"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadTexts_ColumnOutOfRange(t *testing.T) {
	path := createTestXLSX(t, [][]string{{"only one"}})

	texts, err := ReadTexts(path, ReadOptions{Column: 3})
	require.NoError(t, err)
	assert.Empty(t, texts)
}

func TestReadTexts_MissingFile(t *testing.T) {
	_, err := ReadTexts(filepath.Join(t.TempDir(), "nope.xlsx"), ReadOptions{})
	assert.Error(t, err)
}
