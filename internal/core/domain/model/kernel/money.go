package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fraction digits an amount may carry.
const moneyScale = 2

// ZeroMoney is the seed used when summing amounts.
var ZeroMoney = Money{amount: decimal.Zero}

// Money is an exact decimal amount. Arithmetic never rounds; only String does.
// Compare with IsEqual, never with ==.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromDecimal accepts amounts with at most two significant fraction
// digits, so "10.500" is fine and "10.005" is not.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if !amount.Equal(amount.Truncate(moneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s has more than %d fraction digits", amount, moneyScale))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses amounts such as "10", "10.5" or "10.50".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoneyFromDecimal(amount)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) IsGreaterThanZero() bool {
	return m.amount.IsPositive()
}

// IsEqual compares by value, so 20 and 20.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// String renders the amount with two fraction digits, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
