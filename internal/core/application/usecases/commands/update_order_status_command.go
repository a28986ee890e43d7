package commands

import (
	"errors"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move an existing order to
// a new lifecycle status.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand("ORDER001", "shipped")
//	if err != nil {
//	    return err
//	}
//
//	data, found, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !found {
//	    // no order with that ID; nothing was changed
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	newStatus string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// The order ID is checked first, then the new status; the first failing field
// is reported as an errs.InvalidArgumentError.
func NewUpdateOrderStatusCommand(orderID, newStatus string) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := statusCommand.setOrderID(orderID); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if err := statusCommand.setNewStatus(newStatus); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// NewStatus returns the status the order should move to.
func (c UpdateOrderStatusCommand) NewStatus() string {
	return c.newStatus
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewInvalidArgumentError("order_id is mandatory")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus string) error {
	if newStatus == "" {
		return errs.NewInvalidArgumentError("new_status is mandatory")
	}

	c.newStatus = newStatus
	return nil
}
