package kernel

import (
	"strings"

	"printz/internal/pkg/errs"
)

// Username identifies a student or a shop. Students and shops live in
// separate tables but share the same username semantics: a non-empty,
// whitespace-trimmed string chosen at signup.
//
// The zero value is invalid; construct via NewUsername.
type Username struct {
	value string
}

// NewUsername creates a Username from a raw string.
// Returns a ValueIsRequiredError if the string is empty after trimming.
func NewUsername(value string) (Username, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Username{}, errs.NewValueIsRequiredError("username")
	}
	return Username{value: value}, nil
}

// Validate ensures the Username was constructed with a non-empty value.
func (u Username) Validate() error {
	if u.value == "" {
		return errs.NewValueIsRequiredError("username")
	}
	return nil
}

// String returns the raw username.
func (u Username) String() string {
	return u.value
}

// IsEqual compares two usernames for equality.
func (u Username) IsEqual(other Username) bool {
	return u.value == other.value
}

// PaymentID is the opaque reference issued by the external payment provider.
// It is accepted pre-validated and expected to be unique per order; the core
// only requires it to be non-empty.
type PaymentID struct {
	value string
}

// NewPaymentID creates a PaymentID from a raw string.
// Returns a ValueIsRequiredError if the string is empty after trimming.
func NewPaymentID(value string) (PaymentID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return PaymentID{}, errs.NewValueIsRequiredError("paymentId")
	}
	return PaymentID{value: value}, nil
}

// Validate ensures the PaymentID was constructed with a non-empty value.
func (p PaymentID) Validate() error {
	if p.value == "" {
		return errs.NewValueIsRequiredError("paymentId")
	}
	return nil
}

// String returns the raw payment id.
func (p PaymentID) String() string {
	return p.value
}

// IsEqual compares two payment ids for equality.
func (p PaymentID) IsEqual(other PaymentID) bool {
	return p.value == other.value
}
