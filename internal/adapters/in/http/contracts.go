package http

import (
	"net/http"

	"ordertracker/internal/core/domain/model/order"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the payload for POST /api/create.
// Presence of every field is checked at the boundary; semantic validation
// (non-empty strings, positive quantity) is owned by the core.
type CreateOrderRequest struct {
	OrderID    string `json:"order_id"    validate:"required"`
	ItemName   string `json:"item_name"   validate:"required"`
	Quantity   int    `json:"quantity"`
	CustomerID string `json:"customer_id" validate:"required"`
}

// UpdateOrderStatusRequest is the payload for PUT /api/update/:order_id.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrdersResponse is the JSON body for list endpoints. Count always equals
// len(Orders); the filter echo fields are set only on filtered listings.
type OrdersResponse struct {
	Orders     []order.Data `json:"orders"`
	Count      int          `json:"count"`
	CustomerID string       `json:"customer_id,omitempty"`
	Status     string       `json:"status,omitempty"`
}

// RequestValidator plugs go-playground/validator into echo's Validator hook
// so request DTOs are checked right after binding.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request payloads.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct-level validation and converts failures into 400
// responses.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
