package queries

import (
	"context"

	"printz/internal/core/domain/model/student"

	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler retrieves a shop's order queue from the
// database.
type GetShopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopOrdersQueryHandler creates a handler for shop queue queries.
func NewGetShopOrdersQueryHandler(db *gorm.DB) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db}
}

// Handle returns the shop's queue with teacher-placed orders first and FIFO
// order inside each band. The students table is joined to read the
// requester's role; an order whose requester has no account sorts
// unprivileged.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) ([]ShopOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ShopOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`,
			COALESCE(s.role, '') = ? AS privileged
		FROM orders o
		LEFT JOIN students s ON s.username = o.student
		WHERE o.shop = ?
		ORDER BY
			privileged DESC,
			o.created_at ASC,
			o.id ASC
	`, student.RoleTeacher.String(), query.Shop().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var privileged bool
		resp, scanErr := scanOrderRow(rows, &privileged)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, ShopOrderResponse{OrderResponse: resp, Privileged: privileged})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
