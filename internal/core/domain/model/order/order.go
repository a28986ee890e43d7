package order

import (
	"errors"
	"time"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

// StatusPending is the status every order starts its lifecycle in.
// The status vocabulary is deliberately open: any non-empty string is a
// valid status, so downstream systems can introduce stages without a
// coordinated release.
const StatusPending = "pending"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a tracked purchase record with a lifecycle status.
// It is the aggregate root of the order tracking core.
//
// Order follows these invariants:
//   - order ID, item name, and customer ID are non-empty and immutable
//   - quantity is strictly positive and immutable
//   - createdAt is set once and never changed; updatedAt is restamped on
//     every status change, so createdAt <= updatedAt at all times
//   - can only be created through the NewOrder constructor
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// orderID is the unique identifier for the order
	orderID string

	// itemName is the name of the item being ordered
	itemName string

	// quantity is the number of items ordered (must be positive)
	quantity int

	// customerID identifies the customer who placed the order
	customerID string

	// status is the current lifecycle stage (open vocabulary, never empty)
	status string

	// createdAt is the creation timestamp, immutable after construction
	createdAt time.Time

	// updatedAt is restamped on every status change
	updatedAt time.Time

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// Fields are checked in a fixed sequence and the first failing check is
// reported, so callers always see a deterministic reason when several inputs
// are invalid at once. Each failure is an errs.InvalidArgumentError.
//
// On success the order starts in StatusPending with createdAt and updatedAt
// both set to the construction time.
//
// Example:
//
//	o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(orderID, itemName string, quantity int, customerID string) (*Order, error) {
	if orderID == "" {
		return nil, errs.NewInvalidArgumentError("order_id is mandatory")
	}
	if itemName == "" {
		return nil, errs.NewInvalidArgumentError("item_name is mandatory")
	}
	if quantity <= 0 {
		return nil, errs.NewInvalidArgumentError("quantity is mandatory and must be bigger than 0")
	}
	if customerID == "" {
		return nil, errs.NewInvalidArgumentError("customer_id is mandatory")
	}

	now := time.Now()
	return &Order{
		orderID:    orderID,
		itemName:   itemName,
		quantity:   quantity,
		customerID: customerID,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
//
// This method should be called when an order crosses a trust boundary, such
// as being handed to a repository, to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same order ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.orderID == other.orderID
}

// OrderID returns the order's unique identifier.
func (o *Order) OrderID() string {
	return o.orderID
}

// ItemName returns the name of the ordered item.
func (o *Order) ItemName() string {
	return o.itemName
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() string {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to a new lifecycle status and restamps
// updatedAt. Every other field, including createdAt, is left untouched.
//
// The status vocabulary is open, so any non-empty string is accepted; an
// empty status fails with an errs.InvalidArgumentError.
//
// Example:
//
//	if err := o.ChangeStatus("shipped"); err != nil {
//	    // new status was empty
//	}
func (o *Order) ChangeStatus(newStatus string) error {
	if newStatus == "" {
		return errs.NewInvalidArgumentError("new_status is mandatory")
	}

	o.status = newStatus
	o.updatedAt = time.Now()
	return nil
}

// Clone returns an independent copy of the order. Repositories use it to keep
// their stored records isolated from aggregates still held by callers.
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}
