package queries

import (
	"errors"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
		"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
	)
)

// GetOrdersByCustomerQuery retrieves all orders placed by a given customer.
// The match is exact.
type GetOrdersByCustomerQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a customer-filter query. An empty
// customer ID fails with an errs.InvalidArgumentError.
func NewGetOrdersByCustomerQuery(customerID string) (GetOrdersByCustomerQuery, error) {
	if customerID == "" {
		return GetOrdersByCustomerQuery{}, errs.NewInvalidArgumentError("customer_id is mandatory")
	}

	return GetOrdersByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByCustomerQueryIsNotConstructed if validation fails.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer identifier being filtered on.
func (q GetOrdersByCustomerQuery) CustomerID() string {
	return q.customerID
}
