// Package orderrepo provides the in-memory implementation of the order
// repository port. All state is process-local; a single mutex serializes
// access to the key space so concurrent callers cannot lose updates or race
// a duplicate-ID check.
package orderrepo

import (
	"context"
	"sync"

	"ordertracker/internal/core/domain/model/order"
)

// InMemoryOrderRepository implements ports.OrderRepository with a
// mutex-guarded map keyed by order ID.
//
// The repository owns the canonical records: it stores clones of what it is
// given and hands out clones of what it holds, so aggregates retained by
// callers can never mutate stored state behind its back.
//
// Iteration order of the scan methods follows Go map iteration and is
// intentionally unspecified.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]*order.Order),
	}
}

// Save inserts or overwrites the record keyed by the aggregate's order ID.
// It always succeeds for a properly constructed aggregate.
func (r *InMemoryOrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[aggregate.OrderID()] = aggregate.Clone()
	return nil
}

// Get retrieves an order by its unique identifier. The boolean reports
// whether a record was found; lookups never fail.
func (r *InMemoryOrderRepository) Get(_ context.Context, orderID string) (*order.Order, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.orders[orderID]
	if !ok {
		return nil, false, nil
	}

	return record.Clone(), true, nil
}

// GetAll retrieves every stored order in unspecified order.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*order.Order, 0, len(r.orders))
	for _, record := range r.orders {
		records = append(records, record.Clone())
	}

	return records, nil
}

// GetByStatus retrieves all orders whose status equals the given string
// exactly (case-sensitive).
func (r *InMemoryOrderRepository) GetByStatus(_ context.Context, status string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*order.Order, 0)
	for _, record := range r.orders {
		if record.Status() == status {
			records = append(records, record.Clone())
		}
	}

	return records, nil
}

// GetByCustomer retrieves all orders placed by the given customer, matched
// exactly.
func (r *InMemoryOrderRepository) GetByCustomer(_ context.Context, customerID string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*order.Order, 0)
	for _, record := range r.orders {
		if record.CustomerID() == customerID {
			records = append(records, record.Clone())
		}
	}

	return records, nil
}

// Delete removes the record if present and reports whether a removal occurred.
func (r *InMemoryOrderRepository) Delete(_ context.Context, orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[orderID]; !ok {
		return false, nil
	}

	delete(r.orders, orderID)
	return true, nil
}
