package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// GetOrdersByCustomerQueryHandler resolves customer-filtered listings against
// the repository. Customer and status filters are deliberately independent
// query capabilities.
type GetOrdersByCustomerQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer-filtered listings.
func NewGetOrdersByCustomerQueryHandler(orderRepository ports.OrderRepository) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{orderRepository: orderRepository}
}

// Handle executes the filter and maps each matching record to its flat
// representation. No match yields an empty slice, never an error.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]order.Data, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.orderRepository.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	orders := make([]order.Data, 0, len(records))
	for _, record := range records {
		orders = append(orders, record.Data())
	}

	return orders, nil
}
