package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves the full set of tracked orders.
//
// The result order is whatever the repository yields; full scans make no
// ordering promise.
type GetAllOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for full-scan listings.
func NewGetAllOrdersQueryHandler(orderRepository ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle executes the full scan and maps every record to its flat
// representation. An empty store yields an empty slice.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]order.Data, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]order.Data, 0, len(records))
	for _, record := range records {
		orders = append(orders, record.Data())
	}

	return orders, nil
}
