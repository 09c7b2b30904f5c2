package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse a decimal amount", func(t *testing.T) {
		m := money(t, "10.5")

		assert.Equal(t, "10.50", m.String())
	})

	t.Run("should accept trailing zeros beyond cents", func(t *testing.T) {
		m := money(t, "10.500")

		assert.True(t, m.IsEqual(money(t, "10.5")))
	})

	t.Run("should reject fractions of a cent", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("10.005")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "more than 2 fraction digits")
	})

	t.Run("should reject non numeric input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add exactly", func(t *testing.T) {
		sum := money(t, "0.10").Add(money(t, "0.20"))

		assert.True(t, sum.IsEqual(money(t, "0.30")))
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		assert.True(t, money(t, "10.00").Multiply(2).IsEqual(money(t, "20")))
		assert.True(t, money(t, "3.33").Multiply(3).IsEqual(money(t, "9.99")))
	})

	t.Run("should keep sub cent results exact", func(t *testing.T) {
		third := kernel.NewMoney(decimal.RequireFromString("0.333"))
		tiny := kernel.NewMoney(decimal.RequireFromString("0.004"))

		assert.True(t, third.Multiply(3).IsEqual(kernel.NewMoney(decimal.RequireFromString("0.999"))))
		assert.False(t, third.Multiply(3).IsEqual(money(t, "1.00")))
		assert.True(t, tiny.Add(tiny).IsEqual(kernel.NewMoney(decimal.RequireFromString("0.008"))))
		assert.False(t, tiny.Add(tiny).IsEqual(money(t, "0.01")))
	})

	t.Run("should sum from the zero seed", func(t *testing.T) {
		total := kernel.ZeroMoney
		for _, s := range []string{"20.00", "5.00"} {
			total = total.Add(money(t, s))
		}

		assert.True(t, total.IsEqual(money(t, "25")))
	})

	t.Run("should not mutate operands", func(t *testing.T) {
		a := money(t, "1.00")
		_ = a.Add(money(t, "2.00"))

		assert.Equal(t, "1.00", a.String())
	})
}

func TestMoney_IsGreaterThanZero(t *testing.T) {
	assert.True(t, money(t, "0.01").IsGreaterThanZero())
	assert.False(t, kernel.ZeroMoney.IsGreaterThanZero())
	assert.False(t, money(t, "-1").IsGreaterThanZero())
	assert.False(t, kernel.Money{}.IsGreaterThanZero())
}

func TestMoney_IsEqual(t *testing.T) {
	assert.True(t, kernel.NewMoney(decimal.NewFromInt(20)).IsEqual(money(t, "20.00")))
	assert.False(t, money(t, "20.00").IsEqual(money(t, "20.01")))
}
