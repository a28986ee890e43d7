package queries

import (
	"errors"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves all orders currently in a given lifecycle
// status. The match is exact and case-sensitive.
type GetOrdersByStatusQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a status-filter query. An empty status
// fails with an errs.InvalidArgumentError.
func NewGetOrdersByStatusQuery(status string) (GetOrdersByStatusQuery, error) {
	if status == "" {
		return GetOrdersByStatusQuery{}, errs.NewInvalidArgumentError("status is mandatory")
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status being filtered on.
func (q GetOrdersByStatusQuery) Status() string {
	return q.status
}
