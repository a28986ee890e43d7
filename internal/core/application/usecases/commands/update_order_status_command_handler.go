package commands

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles status changes for existing orders.
// It re-fetches the order from the repository on every call, so the repository
// stays the single source of truth between operations.
type UpdateOrderStatusCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
func NewUpdateOrderStatusCommandHandler(orderRepository ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the status update command.
//
// When no order exists for the command's order ID, Handle returns a zero
// value with found == false and leaves the repository unchanged; absence is
// a normal outcome, not an error. Otherwise the order's status is changed,
// its update timestamp restamped, and the persisted result returned.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (order.Data, bool, error) {
	if err := cmd.Validate(); err != nil {
		return order.Data{}, false, err
	}

	existing, found, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Data{}, false, err
	}
	if !found {
		return order.Data{}, false, nil
	}

	if err := existing.ChangeStatus(cmd.NewStatus()); err != nil {
		return order.Data{}, false, err
	}

	if err := h.orderRepository.Save(ctx, existing); err != nil {
		return order.Data{}, false, err
	}

	return existing.Data(), true, nil
}
