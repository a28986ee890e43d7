package http

import (
	"errors"
	"net/http"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order tracker.
// It coordinates between HTTP handlers and application use cases, translating
// core results and errors into wire responses:
//
//   - errs.InvalidArgument -> 400
//   - errs.Conflict        -> 409
//   - absent result        -> 404
//   - anything else        -> 500
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrdersByStatusHandler   queries.GetOrdersByStatusQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		getOrderHandler:            getOrderHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getOrdersByStatusHandler:   getOrdersByStatusHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
	}
}

// RegisterRoutes attaches all order tracking endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Index)

	api := e.Group("/api")
	api.POST("/create", s.CreateOrder)
	api.GET("/get/:order_id", s.GetOrder)
	api.PUT("/update/:order_id", s.UpdateOrderStatus)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/status/:status", s.GetOrdersByStatus)
}

// Index handles GET / - lists the available endpoints.
func (s *Server) Index(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"message": "Welcome to the Order Tracker API!",
		"endpoints": map[string]string{
			"create_order":           "POST /api/create",
			"get_order":              "GET /api/get/<order_id>",
			"update_order_status":    "PUT /api/update/<order_id>",
			"get_all_orders":         "GET /api/orders",
			"get_orders_by_customer": "GET /api/orders?customer_id=<customer_id>",
			"get_orders_by_status":   "GET /api/orders/status/<status>",
		},
	})
}

// CreateOrder handles POST /api/create - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.OrderID, req.ItemName, req.Quantity, req.CustomerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	data, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, data)
}

// GetOrder handles GET /api/get/:order_id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("order_id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	data, found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if !found {
		return s.writeNotFound(ctx)
	}

	return ctx.JSON(http.StatusOK, data)
}

// UpdateOrderStatus handles PUT /api/update/:order_id - changes an order's status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("order_id"), req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	data, found, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if !found {
		return s.writeNotFound(ctx)
	}

	return ctx.JSON(http.StatusOK, data)
}

// GetOrders handles GET /api/orders - retrieves all orders, optionally
// filtered by the customer_id query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	if customerID := ctx.QueryParam("customer_id"); customerID != "" {
		query, err := queries.NewGetOrdersByCustomerQuery(customerID)
		if err != nil {
			return s.writeError(ctx, err)
		}

		orders, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return s.writeError(ctx, err)
		}

		return ctx.JSON(http.StatusOK, OrdersResponse{
			Orders:     orders,
			Count:      len(orders),
			CustomerID: customerID,
		})
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrdersResponse{
		Orders: orders,
		Count:  len(orders),
	})
}

// GetOrdersByStatus handles GET /api/orders/status/:status - retrieves all
// orders in the given status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status := ctx.Param("status")

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrdersResponse{
		Orders: orders,
		Count:  len(orders),
		Status: status,
	})
}

// writeError maps core error kinds to wire responses. The validation reason
// is surfaced to the client verbatim.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var invalidArg *errs.InvalidArgumentError
	if errors.As(err, &invalidArg) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: invalidArg.Reason,
		})
	}

	var conflict *errs.ConflictError
	if errors.As(err, &conflict) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: conflict.Reason,
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func (s *Server) writeNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: "Not found",
	})
}
