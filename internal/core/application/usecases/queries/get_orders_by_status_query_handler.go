package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// GetOrdersByStatusQueryHandler resolves status-filtered listings against the
// repository.
type GetOrdersByStatusQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered listings.
func NewGetOrdersByStatusQueryHandler(orderRepository ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orderRepository: orderRepository}
}

// Handle executes the filter and maps each matching record to its flat
// representation. No match yields an empty slice, never an error.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]order.Data, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.orderRepository.GetByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	orders := make([]order.Data, 0, len(records))
	for _, record := range records {
		orders = append(orders, record.Data())
	}

	return orders, nil
}
