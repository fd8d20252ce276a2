package order

import (
	"fmt"

	"printz/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Processing ──┬──> Completed
//	             │
//	             └──> Failed
//
// Completed and Failed are terminal: once an order reaches either, no
// further transition is allowed, including re-applying the same status.
// This guards against double notifications and status flapping.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status assigned at order creation.
	// Orders in this status are waiting for the shopkeeper to fulfill them.
	Processing

	// Completed indicates the shopkeeper fulfilled the order. Terminal.
	Completed

	// Failed indicates the shopkeeper could not fulfill the order. Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Processing: "Processing",
		Completed:  "Completed",
		Failed:     "Failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing: "Processing",
		Completed:  "Completed",
		Failed:     "Failed",
	}
}

// StatusFromString parses a status from its string representation.
// Returns a ValueIsInvalidError for unrecognized values; matching is
// case-sensitive because the wire format uses the canonical names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Processing, Completed, Failed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// TransitionTo validates and performs a transition to a terminal status.
//
// Rules:
//   - target must be Completed or Failed; anything else is a ValueIsInvalidError
//   - the current status must be Processing; a terminal current status yields
//     an InvalidStateError even when target equals the current status
//
// Returns the new status on success.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !target.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a terminal status", target.String()),
		)
	}

	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateError("order status", s.String())
	}

	if s != Processing {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to transition from", s.String()),
		)
	}

	return target, nil
}
