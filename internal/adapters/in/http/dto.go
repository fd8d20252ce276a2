package http

import (
	"time"

	"printz/internal/core/application/usecases/queries"
	"printz/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error payload for every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/orders. The total is computed
// by the client against the shop's published prices; the server only checks
// it is non-negative.
type CreateOrderRequest struct {
	Student   string           `json:"student"`
	Shop      string           `json:"shop"`
	PaymentID string           `json:"paymentId"`
	Spec      PrintSpecRequest `json:"spec"`
	Total     float64          `json:"total"`
}

// PrintSpecRequest carries the print specification with enum fields as
// strings ("A4", "color", "portrait").
type PrintSpecRequest struct {
	Copies           int      `json:"copies"`
	PaperSize        string   `json:"paperSize"`
	ColorMode        string   `json:"colorMode"`
	Orientation      string   `json:"orientation"`
	PageCount        int      `json:"pageCount"`
	SpecificPages    string   `json:"specificPages,omitempty"`
	Binding          bool     `json:"binding"`
	FrontPageSpecial bool     `json:"frontPageSpecial"`
	FrontAndBack     bool     `json:"frontAndBack"`
	Documents        []string `json:"documents"`
	Comments         string   `json:"comments,omitempty"`
}

// OrderCreatedResponse is the body of a successful POST /api/orders.
type OrderCreatedResponse struct {
	OrderID int64 `json:"orderId"`
}

// TransitionStatusRequest is the body of the status update endpoint.
type TransitionStatusRequest struct {
	Status string `json:"status"`
}

// OrderJSON is the wire form of a single order.
type OrderJSON struct {
	ID        int64         `json:"id"`
	Student   string        `json:"student"`
	Shop      string        `json:"shop"`
	PaymentID string        `json:"paymentId"`
	Spec      PrintSpecJSON `json:"spec"`
	Total     float64       `json:"total"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ShopOrderJSON is an order as seen from the shop's queue, with the
// requester's priority flag.
type ShopOrderJSON struct {
	OrderJSON
	Privileged bool `json:"privileged"`
}

// PrintSpecJSON mirrors PrintSpecRequest on the way out.
type PrintSpecJSON struct {
	Copies           int      `json:"copies"`
	PaperSize        string   `json:"paperSize"`
	ColorMode        string   `json:"colorMode"`
	Orientation      string   `json:"orientation"`
	PageCount        int      `json:"pageCount"`
	SpecificPages    string   `json:"specificPages,omitempty"`
	Binding          bool     `json:"binding"`
	FrontPageSpecial bool     `json:"frontPageSpecial"`
	FrontAndBack     bool     `json:"frontAndBack"`
	Documents        []string `json:"documents"`
	Comments         string   `json:"comments,omitempty"`
}

// ShopJSON is one entry of the shop directory.
type ShopJSON struct {
	Username    string `json:"username"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

// ShopPricesJSON is the full rate table of a shop. The same shape is the
// PUT body: a replacement must carry every cell plus the binding cost.
type ShopPricesJSON struct {
	UnitPrices  []UnitPriceJSON `json:"unitPrices"`
	BindingCost float64         `json:"bindingCost"`
}

// UnitPriceJSON is one (paper size, color mode) cell of the rate table.
type UnitPriceJSON struct {
	PaperSize string  `json:"paperSize"`
	ColorMode string  `json:"colorMode"`
	Price     float64 `json:"price"`
}

// ShopActivityJSON is the body of the activity endpoints, both directions.
type ShopActivityJSON struct {
	Active bool `json:"active"`
}

// ShopInsightsJSON is the body of the insights endpoint.
type ShopInsightsJSON struct {
	Window  string               `json:"window"`
	Totals  OrderStatsJSON       `json:"totals"`
	Buckets []InsightsBucketJSON `json:"buckets"`
}

// OrderStatsJSON holds aggregate figures for a set of orders.
type OrderStatsJSON struct {
	OrderCount int     `json:"orderCount"`
	Earnings   float64 `json:"earnings"`
	Completed  int     `json:"completed"`
	Processing int     `json:"processing"`
	Failed     int     `json:"failed"`
}

// InsightsBucketJSON is one occupied time slot of the series.
type InsightsBucketJSON struct {
	Start time.Time `json:"start"`
	OrderStatsJSON
}

func toOrderJSON(r queries.OrderResponse) OrderJSON {
	return OrderJSON{
		ID:        r.ID,
		Student:   r.Student,
		Shop:      r.Shop,
		PaymentID: r.PaymentID,
		Spec: PrintSpecJSON{
			Copies:           r.Spec.Copies,
			PaperSize:        r.Spec.PaperSize,
			ColorMode:        r.Spec.ColorMode,
			Orientation:      r.Spec.Orientation,
			PageCount:        r.Spec.PageCount,
			SpecificPages:    r.Spec.SpecificPages,
			Binding:          r.Spec.Binding,
			FrontPageSpecial: r.Spec.FrontPageSpecial,
			FrontAndBack:     r.Spec.FrontAndBack,
			Documents:        r.Spec.Documents,
			Comments:         r.Spec.Comments,
		},
		Total:     r.Total,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

func domainOrderJSON(o *order.Order) OrderJSON {
	spec := o.Spec()
	return OrderJSON{
		ID:        o.ID(),
		Student:   o.Student().String(),
		Shop:      o.Shop().String(),
		PaymentID: o.PaymentID().String(),
		Spec: PrintSpecJSON{
			Copies:           spec.Copies,
			PaperSize:        spec.PaperSize.String(),
			ColorMode:        spec.ColorMode.String(),
			Orientation:      spec.Orientation.String(),
			PageCount:        spec.PageCount,
			SpecificPages:    spec.SpecificPages,
			Binding:          spec.Binding,
			FrontPageSpecial: spec.FrontPageSpecial,
			FrontAndBack:     spec.FrontAndBack,
			Documents:        spec.Documents,
			Comments:         spec.Comments,
		},
		Total:     o.Total().Float64(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
	}
}
