package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShopsQueryHandler retrieves the active shop directory from the
// database.
type GetShopsQueryHandler struct {
	db *gorm.DB
}

// NewGetShopsQueryHandler creates a handler for shop directory queries.
func NewGetShopsQueryHandler(db *gorm.DB) GetShopsQueryHandler {
	return GetShopsQueryHandler{db: db}
}

// Handle returns all active shops sorted by username for stable output.
func (h GetShopsQueryHandler) Handle(
	ctx context.Context,
	query GetShopsQuery,
) ([]ShopResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shops := make([]ShopResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			username,
			phone,
			description,
			details
		FROM shops
		WHERE active
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ShopResponse
		if err = rows.Scan(&resp.Username, &resp.Phone, &resp.Description, &resp.Details); err != nil {
			return nil, err
		}
		shops = append(shops, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}
