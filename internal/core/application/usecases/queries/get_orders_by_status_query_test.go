package queries_test

import (
	"testing"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStatusQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery("shipped")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "shipped", query.Status())
}

func TestNewGetOrdersByStatusQuery_EmptyStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery("")
	require.Error(t, err)

	var invalidArg *errs.InvalidArgumentError
	require.ErrorAs(t, err, &invalidArg)
	assert.Equal(t, "status is mandatory", invalidArg.Reason)
}

func TestGetOrdersByStatusQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrdersByStatusQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
