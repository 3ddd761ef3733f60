// Package money provides exact handling of statement amounts using
// shopspring/decimal, with ISO-4217 currency metadata from go-money for
// display formatting.
package money

import (
	"errors"
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrMalformedAmount reports an amount token that matched the transaction
// pattern structurally but whose digits do not parse as a number. It is
// fatal for the extraction run that hit it.
var ErrMalformedAmount = errors.New("malformed amount token")

// ParseStatementAmount normalizes a signed statement amount token such as
// "1,234.50+" or "45.67-". Thousands-separator commas are stripped, the
// trailing sign applied (minus negates, plus keeps the value), and the
// result truncated toward zero to exactly two decimal places regardless of
// the input precision.
func ParseStatementAmount(token string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(token, ",", "")

	negative := false
	switch {
	case strings.HasSuffix(cleaned, "-"):
		negative = true
		cleaned = strings.TrimSuffix(cleaned, "-")
	case strings.HasSuffix(cleaned, "+"):
		cleaned = strings.TrimSuffix(cleaned, "+")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformedAmount, token)
	}
	if negative {
		d = d.Neg()
	}
	return d.Truncate(2), nil
}

// Money pairs an exact decimal amount with its ISO-4217 currency code.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// Format renders the amount with the currency's display conventions
// (symbol, grouping), falling back to "<amount> <code>" for codes
// go-money does not know.
func (m Money) Format() string {
	cur := gomoney.GetCurrency(m.Currency)
	if cur == nil {
		return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
	}
	minor := m.Amount.Shift(int32(cur.Fraction)).IntPart()
	return gomoney.New(minor, m.Currency).Display()
}
