package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates. It is
// pure keyed storage: no validation and no business logic live behind it.
//
// Absence is reported through the boolean in lookup results, never through an
// error; "not found" is a normal outcome for this layer. The error slot exists
// for implementations backed by fallible stores; the in-memory implementation
// never uses it.
//
// Iteration order of the scan methods is unspecified. Callers must not depend
// on it.
type OrderRepository interface {
	// Save inserts or overwrites the record keyed by the aggregate's order ID.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// The boolean reports whether a record was found.
	Get(ctx context.Context, orderID string) (*order.Order, bool, error)

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByStatus retrieves all orders whose status equals the given string
	// exactly (case-sensitive).
	GetByStatus(ctx context.Context, status string) ([]*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer,
	// matched exactly.
	GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)

	// Delete removes the record if present and reports whether a removal
	// occurred. No use case invokes it today; it is an extension point.
	Delete(ctx context.Context, orderID string) (bool, error)
}
