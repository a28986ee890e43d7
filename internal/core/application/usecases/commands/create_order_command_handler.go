package commands

import (
	"context"
	"fmt"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
	"ordertracker/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Enforces order ID uniqueness and creates new orders in the "pending" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(repo)
//	cmd, _ := NewCreateOrderCommand("ORDER001", "Test Item", 5, "CUST001")
//
//	data, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// data.Status == "pending"
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(orderRepository ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the order creation command.
//
// The duplicate check runs before any mutation: when the repository already
// holds a record for the command's order ID, Handle fails with an
// errs.ConflictError and the stored record is left untouched. On success the
// new order is persisted and its flat representation is returned.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.Data, error) {
	if err := cmd.Validate(); err != nil {
		return order.Data{}, err
	}

	_, found, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Data{}, err
	}
	if found {
		return order.Data{}, errs.NewConflictError(
			fmt.Sprintf("order with ID '%s' already exists", cmd.OrderID()),
		)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.ItemName(), cmd.Quantity(), cmd.CustomerID())
	if err != nil {
		return order.Data{}, err
	}

	if err := h.orderRepository.Save(ctx, newOrder); err != nil {
		return order.Data{}, err
	}

	return newOrder.Data(), nil
}
