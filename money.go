package cryptotrack

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a fiat currency, kept as an exact
// decimal in major units.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from an exact decimal value and an ISO currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: strings.ToUpper(currency)}
}

// currency returns the money's currency, falling back to a bare code for
// currencies the formatter does not know (crypto tickers for instance).
func (m Money) currency() *money.Currency {
	// the Money constructor is the only way to get a never nil currency.
	return money.New(0, m.cur).Currency()
}

// String returns the value formatted with the currency's symbol and
// fraction digits.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// Currency returns the ISO code.
func (m Money) Currency() string { return m.cur }

// Amount returns the exact decimal value in major units.
func (m Money) Amount() decimal.Decimal { return m.value }

// IsZero reports whether the value is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// Equal reports whether two monetary values have the same amount and currency.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
