package ports

import "context"

// OrderCreatedNotification carries everything the confirmation message needs.
type OrderCreatedNotification struct {
	Email     string
	Username  string
	ShopName  string
	PaymentID string
	Total     float64
}

// StatusChangedNotification carries everything the status update message needs.
// Link points the student back at the order, constructed by the caller from
// the configured public base URL.
type StatusChangedNotification struct {
	Email     string
	Username  string
	ShopName  string
	PaymentID string
	Status    string
	Total     float64
	Link      string
}

// Notifier is the outbound contract for student-facing messages. Both calls
// are fire-and-forget from the core's perspective: the order state change is
// already committed when they run, so implementations must be quick to fail
// and callers only log the error, never roll back.
type Notifier interface {
	NotifyOrderCreated(ctx context.Context, n OrderCreatedNotification) error
	NotifyStatusChanged(ctx context.Context, n StatusChangedNotification) error
}
