package kernel_test

import (
	"testing"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept non-negative amounts", func(t *testing.T) {
		for _, amount := range []float64{0, 0.5, 12.50, 99999.99} {
			m, err := kernel.MoneyFromFloat(amount)
			require.NoError(t, err)
			assert.InDelta(t, amount, m.Float64(), 1e-9)
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-0.01)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewMoney(decimal.NewFromInt(-5))
		require.Error(t, err)
	})
}

func TestMoney_ZeroValue(t *testing.T) {
	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money
		assert.True(t, m.IsZero())
		assert.Equal(t, "0", m.String())
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should sum amounts", func(t *testing.T) {
		a, _ := kernel.MoneyFromFloat(10.25)
		b, _ := kernel.MoneyFromFloat(4.75)

		sum := a.Add(b)

		expected, _ := kernel.MoneyFromFloat(15)
		assert.True(t, sum.IsEqual(expected))
	})

	t.Run("should not mutate operands", func(t *testing.T) {
		a, _ := kernel.MoneyFromFloat(1)
		b, _ := kernel.MoneyFromFloat(2)

		_ = a.Add(b)

		assert.Equal(t, "1", a.String())
		assert.Equal(t, "2", b.String())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("equality ignores scale", func(t *testing.T) {
		a, _ := kernel.NewMoney(decimal.RequireFromString("5.0"))
		b, _ := kernel.NewMoney(decimal.RequireFromString("5.00"))
		assert.True(t, a.IsEqual(b))
	})
}

func TestUsername(t *testing.T) {
	t.Run("should accept non-empty values", func(t *testing.T) {
		u, err := kernel.NewUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.String())
		require.NoError(t, u.Validate())
	})

	t.Run("should trim whitespace", func(t *testing.T) {
		u, err := kernel.NewUsername("  printhub  ")
		require.NoError(t, err)
		assert.Equal(t, "printhub", u.String())
	})

	t.Run("should reject empty values", func(t *testing.T) {
		_, err := kernel.NewUsername("   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u kernel.Username
		require.Error(t, u.Validate())
	})
}

func TestPaymentID(t *testing.T) {
	t.Run("should accept non-empty values", func(t *testing.T) {
		p, err := kernel.NewPaymentID("pay_123")
		require.NoError(t, err)
		assert.Equal(t, "pay_123", p.String())
		require.NoError(t, p.Validate())
	})

	t.Run("should reject empty values", func(t *testing.T) {
		_, err := kernel.NewPaymentID("")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("IsEqual compares raw values", func(t *testing.T) {
		a, _ := kernel.NewPaymentID("pay_123")
		b, _ := kernel.NewPaymentID("pay_123")
		c, _ := kernel.NewPaymentID("pay_456")
		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
