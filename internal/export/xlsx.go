// Package export writes session ledgers to spreadsheet workbooks and reads
// expense text back out of them.
package export

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// Sheet names written by WriteXLSX.
const (
	ExpensesSheet = "Expenses"
	SummarySheet  = "Summary"
)

// ExpenseHeader is the header row of the Expenses sheet.
var ExpenseHeader = []string{"ID", "Timestamp", "Description", "Category", "Currency", "Amount", "Raw Input"}

// WriteXLSX saves the summary to path as a workbook with one row per expense
// and a per-category totals sheet.
func WriteXLSX(path string, s model.Summary) error {
	f := xlsx.NewFile()

	expenses, err := f.AddSheet(ExpensesSheet)
	if err != nil {
		return eris.Wrap(err, "xlsx: add expenses sheet")
	}
	addStringRow(expenses, ExpenseHeader...)
	for _, e := range s.AllExpenses {
		row := expenses.AddRow()
		row.AddCell().SetString(e.ID)
		row.AddCell().SetString(e.Timestamp.Format(time.RFC3339))
		row.AddCell().SetString(e.Description)
		row.AddCell().SetString(e.Category)
		row.AddCell().SetString(e.Currency)
		row.AddCell().SetFloat(e.Amount.InexactFloat64())
		row.AddCell().SetString(e.RawInput)
	}

	summary, err := f.AddSheet(SummarySheet)
	if err != nil {
		return eris.Wrap(err, "xlsx: add summary sheet")
	}
	addStringRow(summary, "Session", s.SessionInfo.SessionID)
	addStringRow(summary, "Created", s.SessionInfo.CreatedAt.Format(time.RFC3339))
	addStringRow(summary, "Category", "Total")
	for _, ct := range categoryOrder(s) {
		row := summary.AddRow()
		row.AddCell().SetString(ct.Name)
		row.AddCell().SetFloat(ct.Amount.InexactFloat64())
	}
	total := summary.AddRow()
	total.AddCell().SetString("Total")
	total.AddCell().SetFloat(s.Statistics.TotalSpending.InexactFloat64())
	count := summary.AddRow()
	count.AddCell().SetString("Expenses")
	count.AddCell().SetInt(s.Statistics.TotalExpenses)

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "xlsx: save %s", path)
	}
	return nil
}

// ReadOptions configures ReadTexts.
type ReadOptions struct {
	SheetName string // default: first sheet
	Column    int    // zero-based column holding the expense text
	SkipRows  int    // number of header rows to skip
}

// ReadTexts returns the non-empty cells of one column, in row order.
func ReadTexts(path string, opts ReadOptions) ([]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}

	sheet, err := getSheet(f, opts.SheetName)
	if err != nil {
		return nil, err
	}

	var texts []string
	for i, row := range sheet.Rows {
		if i < opts.SkipRows || row == nil || opts.Column >= len(row.Cells) {
			continue
		}
		if v := row.Cells[opts.Column].String(); v != "" {
			texts = append(texts, v)
		}
	}
	return texts, nil
}

// ReadRows returns every row of the named sheet as strings.
func ReadRows(path, sheetName string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}

	sheet, err := getSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		rows = append(rows, rowToStrings(row))
	}
	return rows, nil
}

func getSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", name)
		}
		return sheet, nil
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: workbook has no sheets")
	}
	return f.Sheets[0], nil
}

func addStringRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func rowToStrings(row *xlsx.Row) []string {
	if row == nil {
		return nil
	}
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

// categoryOrder lists breakdown entries in the order their categories first
// appear in the ledger.
func categoryOrder(s model.Summary) []model.CategoryAmount {
	seen := make(map[string]bool, len(s.Statistics.CategoryBreakdown))
	out := make([]model.CategoryAmount, 0, len(s.Statistics.CategoryBreakdown))
	for _, e := range s.AllExpenses {
		if seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		out = append(out, model.CategoryAmount{Name: e.Category, Amount: s.Statistics.CategoryBreakdown[e.Category]})
	}
	return out
}
