package pipeline

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/model"
)

// decimalNumeral matches ASCII digits optionally followed by exactly two
// decimals. Other Unicode decimal digits are not recognized.
const decimalNumeral = `(\d+(?:\.\d{2})?)`

var anyNumeralRe = regexp.MustCompile(decimalNumeral)

// CurrencySymbols configures the symbols the extractor recognizes.
type CurrencySymbols struct {
	Primary   string
	Secondary string
	Default   string
}

// Extractor turns raw expense text into a candidate record.
type Extractor struct {
	symbols     CurrencySymbols
	primaryRe   *regexp.Regexp
	secondaryRe *regexp.Regexp
	now         func() time.Time
}

// NewExtractor builds an extractor for the given symbols. A nil clock uses
// time.Now.
func NewExtractor(symbols CurrencySymbols, now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{
		symbols:     symbols,
		primaryRe:   symbolRegexp(symbols.Primary),
		secondaryRe: symbolRegexp(symbols.Secondary),
		now:         now,
	}
}

func symbolRegexp(symbol string) *regexp.Regexp {
	if symbol == "" {
		return nil
	}
	return regexp.MustCompile(regexp.QuoteMeta(symbol) + `\s*` + decimalNumeral)
}

// Extract parses text into a candidate. It never fails: ambiguous input
// falls back to a zero amount and the default currency.
//
// Amount sources, first match wins:
//  1. numeral after the primary symbol
//  2. numeral after the secondary symbol
//  3. any numeral (default currency)
func (e *Extractor) Extract(text string) model.ExpenseCandidate {
	c := model.ExpenseCandidate{
		Amount:      decimal.Zero,
		Currency:    e.symbols.Default,
		Description: text,
		RawInput:    text,
		ParsedAt:    e.now(),
	}

	if amt, ok := firstNumeral(e.primaryRe, text); ok {
		c.Amount, c.Currency = amt, e.symbols.Primary
	} else if amt, ok := firstNumeral(e.secondaryRe, text); ok {
		c.Amount, c.Currency = amt, e.symbols.Secondary
	} else if amt, ok := firstNumeral(anyNumeralRe, text); ok {
		c.Amount = amt
	}

	return c
}

func firstNumeral(re *regexp.Regexp, text string) (decimal.Decimal, bool) {
	if re == nil {
		return decimal.Zero, false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}
	amt, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero, false
	}
	return amt, true
}
