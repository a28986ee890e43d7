package queries_test

import (
	"context"
	"testing"

	"ordertracker/internal/adapters/out/inmemory/orderrepo"
	"ordertracker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersByStatusQueryHandler_Handle_MatchingSubset(t *testing.T) {
	ctx := context.Background()
	repo := newRepoWithOrders(t, ctx,
		[4]string{"ORDER001", "Test Item", "CUST001", ""},
		[4]string{"ORDER002", "Another Item", "CUST002", "shipped"},
		[4]string{"ORDER003", "Test Item", "CUST001", "shipped"},
	)

	query, err := queries.NewGetOrdersByStatusQuery("shipped")
	require.NoError(t, err)

	h := queries.NewGetOrdersByStatusQueryHandler(repo)
	orders, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, data := range orders {
		assert.Equal(t, "shipped", data.Status)
	}
}

func TestGetOrdersByStatusQueryHandler_Handle_NoMatch(t *testing.T) {
	ctx := context.Background()
	repo := newRepoWithOrders(t, ctx,
		[4]string{"ORDER001", "Test Item", "CUST001", ""},
	)

	query, err := queries.NewGetOrdersByStatusQuery("delivered")
	require.NoError(t, err)

	h := queries.NewGetOrdersByStatusQueryHandler(repo)
	orders, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetOrdersByStatusQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewInMemoryOrderRepository()

	var query queries.GetOrdersByStatusQuery // not constructed properly

	h := queries.NewGetOrdersByStatusQueryHandler(repo)
	_, err := h.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
