package commands

import (
	"errors"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order.
// Encapsulates the order identity, the ordered item, the quantity, and the
// customer placing it.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORDER001", "Test Item", 5, "CUST001")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(repo)
//	data, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created in status %s", data.OrderID, data.Status)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	itemName   string
	quantity   int
	customerID string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Fields are validated in a fixed sequence (order ID, item name, quantity,
// customer ID) and the first failing field is reported as an
// errs.InvalidArgumentError, so the failure reason is deterministic even when
// several inputs are invalid at once.
func NewCreateOrderCommand(orderID, itemName string, quantity int, customerID string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := orderCommand.setItemName(itemName); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := orderCommand.setQuantity(quantity); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := orderCommand.setCustomerID(customerID); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// ItemName returns the name of the ordered item.
func (c CreateOrderCommand) ItemName() string {
	return c.itemName
}

// Quantity returns the ordered quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewInvalidArgumentError("order_id is mandatory")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewInvalidArgumentError("item_name is mandatory")
	}

	c.itemName = itemName
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewInvalidArgumentError("quantity is mandatory and must be bigger than 0")
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewInvalidArgumentError("customer_id is mandatory")
	}

	c.customerID = customerID
	return nil
}
