package queries

import (
	"database/sql"
	"encoding/json"

	"printz/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// orderColumns is the shared SELECT list for order read models. Kept in one
// place so every order query scans identical rows.
const orderColumns = `
	o.id,
	o.student,
	o.shop,
	o.payment_id,
	o.copies,
	o.paper_size,
	o.color_mode,
	o.orientation,
	o.page_count,
	o.specific_pages,
	o.binding,
	o.front_page_special,
	o.front_and_back,
	o.documents,
	o.comments,
	o.total,
	o.status,
	o.created_at`

// scanOrderRow maps one row of orderColumns into an OrderResponse. Queries
// selecting computed columns after orderColumns pass their destinations as
// extra arguments.
func scanOrderRow(rows *sql.Rows, extra ...any) (OrderResponse, error) {
	var (
		resp        OrderResponse
		paperSize   int
		colorMode   int
		orientation int
		documents   []byte
		total       decimal.Decimal
		status      int
	)

	dest := []any{
		&resp.ID,
		&resp.Student,
		&resp.Shop,
		&resp.PaymentID,
		&resp.Spec.Copies,
		&paperSize,
		&colorMode,
		&orientation,
		&resp.Spec.PageCount,
		&resp.Spec.SpecificPages,
		&resp.Spec.Binding,
		&resp.Spec.FrontPageSpecial,
		&resp.Spec.FrontAndBack,
		&documents,
		&resp.Spec.Comments,
		&total,
		&status,
		&resp.CreatedAt,
	}
	dest = append(dest, extra...)

	if err := rows.Scan(dest...); err != nil {
		return OrderResponse{}, err
	}

	if len(documents) > 0 {
		if err := json.Unmarshal(documents, &resp.Spec.Documents); err != nil {
			return OrderResponse{}, err
		}
	}

	resp.Spec.PaperSize = order.PaperSize(paperSize).String()
	resp.Spec.ColorMode = order.ColorMode(colorMode).String()
	resp.Spec.Orientation = order.Orientation(orientation).String()
	resp.Total = total.InexactFloat64()
	resp.Status = order.Status(status).String()

	return resp, nil
}
