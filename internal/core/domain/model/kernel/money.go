package kernel

import (
	"fmt"

	"printz/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object wrapping a non-negative decimal amount.
// The zero value is a valid zero amount; shops with price columns left NULL
// in storage read back as zero, which is the documented lossy fallback for
// unconfigured prices.
//
// Money is immutable. Arithmetic returns new values and cannot produce a
// negative amount because both operands are non-negative.
//
// Example:
//
//	price, err := kernel.MoneyFromFloat(12.50)
//	if err != nil {
//	    // amount was negative
//	}
//	total := price.Add(bindingCost)
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns a ValueIsInvalidError if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat creates a Money from a float64 amount.
// Returns a ValueIsInvalidError if the amount is negative.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Float64 returns the amount as a float64, losing precision beyond what
// float64 can represent. Intended for JSON responses only.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality regardless of scale.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
