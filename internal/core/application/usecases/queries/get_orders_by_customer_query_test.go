package queries_test

import (
	"testing"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByCustomerQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetOrdersByCustomerQuery("CUST001")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "CUST001", query.CustomerID())
}

func TestNewGetOrdersByCustomerQuery_EmptyCustomerID(t *testing.T) {
	_, err := queries.NewGetOrdersByCustomerQuery("")
	require.Error(t, err)

	var invalidArg *errs.InvalidArgumentError
	require.ErrorAs(t, err, &invalidArg)
	assert.Equal(t, "customer_id is mandatory", invalidArg.Reason)
}

func TestGetOrdersByCustomerQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrdersByCustomerQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByCustomerQueryIsNotConstructed)
}
