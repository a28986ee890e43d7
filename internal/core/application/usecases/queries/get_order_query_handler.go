package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// GetOrderQueryHandler resolves single-order lookups against the repository.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle executes the lookup. When no order exists for the queried ID the
// handler returns found == false with a zero value and no error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Data, bool, error) {
	if err := query.Validate(); err != nil {
		return order.Data{}, false, err
	}

	record, found, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return order.Data{}, false, err
	}
	if !found {
		return order.Data{}, false, nil
	}

	return record.Data(), true, nil
}
