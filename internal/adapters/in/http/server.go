// Package http exposes the application's use cases over an echo HTTP API.
// Handlers bind the wire DTOs, translate them into constructor-guarded
// commands and queries, and map the error taxonomy onto status codes in one
// place (respondError).
package http

import (
	"errors"
	"net/http"

	"printz/internal/core/application/usecases/commands"
	"printz/internal/core/application/usecases/queries"
	"printz/internal/core/domain/model/kernel"
	"printz/internal/core/domain/model/order"
	"printz/internal/core/domain/model/shop"
	"printz/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	transitionOrderStatusHandler commands.TransitionOrderStatusCommandHandler
	setShopPricesHandler         commands.SetShopPricesCommandHandler
	setShopActivityHandler       commands.SetShopActivityCommandHandler

	// Query handlers
	getStudentOrdersHandler queries.GetStudentOrdersQueryHandler
	getShopOrdersHandler    queries.GetShopOrdersQueryHandler
	getShopsHandler         queries.GetShopsQueryHandler
	getShopPricesHandler    queries.GetShopPricesQueryHandler
	getShopActivityHandler  queries.GetShopActivityQueryHandler
	getShopInsightsHandler  queries.GetShopInsightsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderStatusHandler commands.TransitionOrderStatusCommandHandler,
	setShopPricesHandler commands.SetShopPricesCommandHandler,
	setShopActivityHandler commands.SetShopActivityCommandHandler,
	getStudentOrdersHandler queries.GetStudentOrdersQueryHandler,
	getShopOrdersHandler queries.GetShopOrdersQueryHandler,
	getShopsHandler queries.GetShopsQueryHandler,
	getShopPricesHandler queries.GetShopPricesQueryHandler,
	getShopActivityHandler queries.GetShopActivityQueryHandler,
	getShopInsightsHandler queries.GetShopInsightsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		transitionOrderStatusHandler: transitionOrderStatusHandler,
		setShopPricesHandler:         setShopPricesHandler,
		setShopActivityHandler:       setShopActivityHandler,
		getStudentOrdersHandler:      getStudentOrdersHandler,
		getShopOrdersHandler:         getShopOrdersHandler,
		getShopsHandler:              getShopsHandler,
		getShopPricesHandler:         getShopPricesHandler,
		getShopActivityHandler:       getShopActivityHandler,
		getShopInsightsHandler:       getShopInsightsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders", s.GetStudentOrders)

	e.GET("/api/shops", s.GetShops)
	e.GET("/api/shops/:shop/orders", s.GetShopOrders)
	e.PUT("/api/shops/:shop/orders/:paymentId/status", s.TransitionOrderStatus)
	e.GET("/api/shops/:shop/prices", s.GetShopPrices)
	e.PUT("/api/shops/:shop/prices", s.SetShopPrices)
	e.GET("/api/shops/:shop/activity", s.GetShopActivity)
	e.PUT("/api/shops/:shop/activity", s.SetShopActivity)
	e.GET("/api/shops/:shop/insights", s.GetShopInsights)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/orders - places a new print order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	studentName, err := kernel.NewUsername(req.Student)
	if err != nil {
		return respondError(ctx, err)
	}
	shopName, err := kernel.NewUsername(req.Shop)
	if err != nil {
		return respondError(ctx, err)
	}
	paymentID, err := kernel.NewPaymentID(req.PaymentID)
	if err != nil {
		return respondError(ctx, err)
	}
	spec, err := toPrintSpec(req.Spec)
	if err != nil {
		return respondError(ctx, err)
	}
	total, err := kernel.NewMoney(decimal.NewFromFloat(req.Total))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(studentName, shopName, paymentID, spec, total)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{OrderID: orderID})
}

// GetStudentOrders handles GET /api/orders?student=<u> - the student's
// order history, newest first.
func (s *Server) GetStudentOrders(ctx echo.Context) error {
	studentName, err := kernel.NewUsername(ctx.QueryParam("student"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetStudentOrdersQuery(studentName)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getStudentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderJSON, len(orders))
	for i, o := range orders {
		response[i] = toOrderJSON(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetShops handles GET /api/shops - the active shop directory.
func (s *Server) GetShops(ctx echo.Context) error {
	shops, err := s.getShopsHandler.Handle(ctx.Request().Context(), queries.NewGetShopsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShopJSON, len(shops))
	for i, sh := range shops {
		response[i] = ShopJSON{
			Username:    sh.Username,
			Phone:       sh.Phone,
			Description: sh.Description,
			Details:     sh.Details,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetShopOrders handles GET /api/shops/:shop/orders - the shop's work
// queue, teacher orders first, then oldest first.
func (s *Server) GetShopOrders(ctx echo.Context) error {
	shopName, err := kernel.NewUsername(ctx.Param("shop"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShopOrdersQuery(shopName)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getShopOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShopOrderJSON, len(orders))
	for i, o := range orders {
		response[i] = ShopOrderJSON{
			OrderJSON:  toOrderJSON(o.OrderResponse),
			Privileged: o.Privileged,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrderStatus handles PUT /api/shops/:shop/orders/:paymentId/status -
// settles an order as Completed or Failed.
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	var req TransitionStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	paymentID, err := kernel.NewPaymentID(ctx.Param("paymentId"))
	if err != nil {
		return respondError(ctx, err)
	}
	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(paymentID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.transitionOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, domainOrderJSON(updated))
}

// GetShopPrices handles GET /api/shops/:shop/prices - the published rate
// table of an active shop.
func (s *Server) GetShopPrices(ctx echo.Context) error {
	shopName, err := kernel.NewUsername(ctx.Param("shop"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShopPricesQuery(shopName)
	if err != nil {
		return respondError(ctx, err)
	}

	prices, err := s.getShopPricesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := ShopPricesJSON{
		UnitPrices:  make([]UnitPriceJSON, len(prices.UnitPrices)),
		BindingCost: prices.BindingCost,
	}
	for i, p := range prices.UnitPrices {
		response.UnitPrices[i] = UnitPriceJSON{
			PaperSize: p.PaperSize,
			ColorMode: p.ColorMode,
			Price:     p.Price,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetShopPrices handles PUT /api/shops/:shop/prices - replaces the whole
// rate table. Partial updates are rejected by the catalog constructor.
func (s *Server) SetShopPrices(ctx echo.Context) error {
	var req ShopPricesJSON
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shopName, err := kernel.NewUsername(ctx.Param("shop"))
	if err != nil {
		return respondError(ctx, err)
	}
	catalog, err := toCatalog(req)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetShopPricesCommand(shopName, catalog)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setShopPricesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetShopActivity handles GET /api/shops/:shop/activity. Unlike the
// directory this answers for inactive shops too.
func (s *Server) GetShopActivity(ctx echo.Context) error {
	shopName, err := kernel.NewUsername(ctx.Param("shop"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShopActivityQuery(shopName)
	if err != nil {
		return respondError(ctx, err)
	}

	activity, err := s.getShopActivityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ShopActivityJSON{Active: activity.Active})
}

// SetShopActivity handles PUT /api/shops/:shop/activity.
func (s *Server) SetShopActivity(ctx echo.Context) error {
	var req ShopActivityJSON
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shopName, err := kernel.NewUsername(ctx.Param("shop"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetShopActivityCommand(shopName, req.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setShopActivityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetShopInsights handles GET /api/shops/:shop/insights?range=<token> -
// time-bucketed statistics over a trailing window.
func (s *Server) GetShopInsights(ctx echo.Context) error {
	shopName, err := kernel.NewUsername(ctx.Param("shop"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShopInsightsQuery(shopName, ctx.QueryParam("range"))
	if err != nil {
		return respondError(ctx, err)
	}

	insights, err := s.getShopInsightsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := ShopInsightsJSON{
		Window:  insights.Window,
		Totals:  toStatsJSON(insights.Totals),
		Buckets: make([]InsightsBucketJSON, len(insights.Buckets)),
	}
	for i, b := range insights.Buckets {
		response.Buckets[i] = InsightsBucketJSON{
			Start:          b.Start,
			OrderStatsJSON: toStatsJSON(b.OrderStatsResponse),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func toStatsJSON(s queries.OrderStatsResponse) OrderStatsJSON {
	return OrderStatsJSON{
		OrderCount: s.OrderCount,
		Earnings:   s.Earnings,
		Completed:  s.Completed,
		Processing: s.Processing,
		Failed:     s.Failed,
	}
}

func toPrintSpec(req PrintSpecRequest) (order.PrintSpec, error) {
	size, err := order.PaperSizeFromString(req.PaperSize)
	if err != nil {
		return order.PrintSpec{}, err
	}
	mode, err := order.ColorModeFromString(req.ColorMode)
	if err != nil {
		return order.PrintSpec{}, err
	}
	orientation, err := order.OrientationFromString(req.Orientation)
	if err != nil {
		return order.PrintSpec{}, err
	}

	return order.PrintSpec{
		Copies:           req.Copies,
		PaperSize:        size,
		ColorMode:        mode,
		Orientation:      orientation,
		PageCount:        req.PageCount,
		SpecificPages:    req.SpecificPages,
		Binding:          req.Binding,
		FrontPageSpecial: req.FrontPageSpecial,
		FrontAndBack:     req.FrontAndBack,
		Documents:        req.Documents,
		Comments:         req.Comments,
	}, nil
}

func toCatalog(req ShopPricesJSON) (shop.Catalog, error) {
	unitPrices := make(map[shop.PriceKey]kernel.Money, len(req.UnitPrices))
	for _, p := range req.UnitPrices {
		size, err := order.PaperSizeFromString(p.PaperSize)
		if err != nil {
			return shop.Catalog{}, err
		}
		mode, err := order.ColorModeFromString(p.ColorMode)
		if err != nil {
			return shop.Catalog{}, err
		}
		price, err := kernel.NewMoney(decimal.NewFromFloat(p.Price))
		if err != nil {
			return shop.Catalog{}, err
		}
		unitPrices[shop.PriceKey{Size: size, Mode: mode}] = price
	}

	bindingCost, err := kernel.NewMoney(decimal.NewFromFloat(req.BindingCost))
	if err != nil {
		return shop.Catalog{}, err
	}
	return shop.NewCatalog(unitPrices, bindingCost)
}

// respondError translates the application error taxonomy into HTTP status
// codes: validation failures are 400, missing objects 404, rejected
// transitions 409, everything else (integrity violations included) 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
