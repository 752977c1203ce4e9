package discount

import (
	"github.com/shopspring/decimal"

	"storefront-cart/internal/domain/money"
)

type Kind string

const (
	KindPercentOfSubtotal Kind = "percent_of_subtotal"
	KindShipping          Kind = "shipping"
)

type Rule struct {
	code    Code
	kind    Kind
	percent decimal.Decimal
}

func NewPercentageRule(code Code, percent decimal.Decimal) Rule {
	return Rule{code: code, kind: KindPercentOfSubtotal, percent: percent}
}

func NewShippingRule(code Code) Rule {
	return Rule{code: code, kind: KindShipping}
}

func (r Rule) Code() Code { return r.code }
func (r Rule) Kind() Kind { return r.kind }

// Amount computes the discount against the given subtotal and shipping,
// rounded to cents.
func (r Rule) Amount(subtotal, shipping money.Money) money.Money {
	switch r.kind {
	case KindShipping:
		return shipping
	default:
		return subtotal.MulRate(r.percent.Shift(-2))
	}
}

type Resolver struct {
	rules map[Code]Rule
}

func NewResolver(rules ...Rule) *Resolver {
	r := &Resolver{rules: make(map[Code]Rule, len(rules))}
	for _, rule := range rules {
		r.rules[rule.code] = rule
	}
	return r
}

// NewDefaultResolver knows SAVE10, WELCOME20 and FREESHIP.
func NewDefaultResolver() *Resolver {
	return NewResolver(
		NewPercentageRule("SAVE10", decimal.NewFromInt(10)),
		NewPercentageRule("WELCOME20", decimal.NewFromInt(20)),
		NewShippingRule("FREESHIP"),
	)
}

// Resolve maps a raw code to its discount amount. Unknown or malformed codes
// are not accepted.
func (r *Resolver) Resolve(raw string, subtotal, shipping money.Money) (Code, money.Money, bool) {
	code, err := NewCode(raw)
	if err != nil {
		return "", money.Zero(), false
	}
	rule, ok := r.rules[code]
	if !ok {
		return "", money.Zero(), false
	}
	return code, rule.Amount(subtotal, shipping), true
}
