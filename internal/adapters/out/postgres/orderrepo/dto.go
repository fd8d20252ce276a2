// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and their
// relational representation.
package orderrepo

import (
	"time"

	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is assigned by the database sequence; payment_id carries a unique
// index because it is the external correlation key for status transitions.
type OrderDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Student   string          `gorm:"type:varchar(64);index"`
	Shop      string          `gorm:"type:varchar(64);index"`
	PaymentID string          `gorm:"type:varchar(128);uniqueIndex"`
	Spec      PrintSpecDTO    `gorm:"embedded"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status    int             `gorm:"index"`
	CreatedAt time.Time       `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// PrintSpecDTO represents the embedded print specification columns within the
// orders table. Documents is stored as a JSON array via the GORM serializer.
type PrintSpecDTO struct {
	Copies           int    `gorm:"type:smallint"`
	PaperSize        int    `gorm:"type:smallint"`
	ColorMode        int    `gorm:"type:smallint"`
	Orientation      int    `gorm:"type:smallint"`
	PageCount        int    `gorm:"type:smallint"`
	SpecificPages    string `gorm:"type:varchar(255)"`
	Binding          bool
	FrontPageSpecial bool
	FrontAndBack     bool
	Documents        []string `gorm:"serializer:json;type:text"`
	Comments         string   `gorm:"type:text"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	spec := aggregate.Spec()
	return OrderDTO{
		ID:        aggregate.ID(),
		Student:   aggregate.Student().String(),
		Shop:      aggregate.Shop().String(),
		PaymentID: aggregate.PaymentID().String(),
		Spec: PrintSpecDTO{
			Copies:           spec.Copies,
			PaperSize:        int(spec.PaperSize),
			ColorMode:        int(spec.ColorMode),
			Orientation:      int(spec.Orientation),
			PageCount:        spec.PageCount,
			SpecificPages:    spec.SpecificPages,
			Binding:          spec.Binding,
			FrontPageSpecial: spec.FrontPageSpecial,
			FrontAndBack:     spec.FrontAndBack,
			Documents:        spec.Documents,
			Comments:         spec.Comments,
		},
		Total:     aggregate.Total().Amount(),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	student, err := kernel.NewUsername(dto.Student)
	if err != nil {
		return nil, err
	}

	shop, err := kernel.NewUsername(dto.Shop)
	if err != nil {
		return nil, err
	}

	paymentID, err := kernel.NewPaymentID(dto.PaymentID)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	spec := order.PrintSpec{
		Copies:           dto.Spec.Copies,
		PaperSize:        order.PaperSize(dto.Spec.PaperSize),
		ColorMode:        order.ColorMode(dto.Spec.ColorMode),
		Orientation:      order.Orientation(dto.Spec.Orientation),
		PageCount:        dto.Spec.PageCount,
		SpecificPages:    dto.Spec.SpecificPages,
		Binding:          dto.Spec.Binding,
		FrontPageSpecial: dto.Spec.FrontPageSpecial,
		FrontAndBack:     dto.Spec.FrontAndBack,
		Documents:        dto.Spec.Documents,
		Comments:         dto.Spec.Comments,
	}

	return order.RestoreOrder(
		dto.ID,
		student,
		shop,
		paymentID,
		spec,
		total,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
