package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amounts are kept in whole cents. Anything finer is rounded half away from zero.
const scale = 2

var ErrInvalidAmount = errors.New("invalid money amount")

type Money struct {
	amount decimal.Decimal
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func New(d decimal.Decimal) Money {
	return Money{amount: d.Round(scale)}
}

func FromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -scale)}
}

func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return New(d), nil
}

// MustParse is for constants and test fixtures.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(o Money) Money { return Money{amount: m.amount.Add(o.amount)} }
func (m Money) Sub(o Money) Money { return Money{amount: m.amount.Sub(o.amount)} }

func (m Money) Times(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// MulRate multiplies by a fractional rate and rounds back to cents.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return New(m.amount.Mul(rate))
}

// ClampZero returns zero for negative amounts.
func (m Money) ClampZero() Money {
	if m.amount.IsNegative() {
		return Zero()
	}
	return m
}

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

func (m Money) Cmp(o Money) int                 { return m.amount.Cmp(o.amount) }
func (m Money) Equal(o Money) bool              { return m.amount.Equal(o.amount) }
func (m Money) LessThan(o Money) bool           { return m.amount.LessThan(o.amount) }
func (m Money) GreaterThanOrEqual(o Money) bool { return m.amount.GreaterThanOrEqual(o.amount) }

func (m Money) Cents() int64 {
	return m.amount.Shift(scale).IntPart()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats with exactly two decimals, e.g. "9.99".
func (m Money) String() string {
	return m.amount.StringFixed(scale)
}

// Max returns the larger of a and b.
func Max(a, b Money) Money {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
