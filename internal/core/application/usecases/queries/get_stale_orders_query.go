package queries

import (
	"time"

	"printz/internal/pkg/errs"
	"printz/internal/pkg/guard"
)

var ErrGetStaleOrdersQueryIsNotConstructed = errs.NewValueIsRequiredError(
	"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery")

// GetStaleOrdersQuery finds shops whose queues hold orders stuck in
// Processing for longer than the given age. Feeds the reminder job.
type GetStaleOrdersQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleOrdersQuery creates a query for orders stuck longer than olderThan.
func NewGetStaleOrdersQuery(olderThan time.Duration) (GetStaleOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStaleOrdersQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return GetStaleOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

// OlderThan returns the minimum age an order must have to count as stale.
func (q GetStaleOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

// StaleShopQueueResponse is one shop with work sitting in its queue.
type StaleShopQueueResponse struct {
	Shop       string
	OrderCount int
	OldestAge  time.Duration
}
