package order_test

import (
	"testing"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ORDER001", o.OrderID())
		assert.Equal(t, "Test Item", o.ItemName())
		assert.Equal(t, 5, o.Quantity())
		assert.Equal(t, "CUST001", o.CustomerID())
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should stamp creation and update timestamps together", func(t *testing.T) {
		before := time.Now()
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		after := time.Now()

		require.NoError(t, err)
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
		assert.False(t, o.CreatedAt().Before(before))
		assert.False(t, o.CreatedAt().After(after))
	})

	t.Run("should fail with empty order ID", func(t *testing.T) {
		o, err := order.NewOrder("", "Test Item", 5, "CUST001")

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		var invalidArg *errs.InvalidArgumentError
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "order_id is mandatory", invalidArg.Reason)
	})

	t.Run("should fail with empty item name", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "", 5, "CUST001")

		require.Error(t, err)
		assert.Nil(t, o)
		var invalidArg *errs.InvalidArgumentError
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "item_name is mandatory", invalidArg.Reason)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 0, "CUST001")

		require.Error(t, err)
		assert.Nil(t, o)
		var invalidArg *errs.InvalidArgumentError
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "quantity is mandatory and must be bigger than 0", invalidArg.Reason)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", -1, "CUST001")

		require.Error(t, err)
		assert.Nil(t, o)
		var invalidArg *errs.InvalidArgumentError
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "quantity is mandatory and must be bigger than 0", invalidArg.Reason)
	})

	t.Run("should accept minimum valid quantity", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 1, "CUST001")

		require.NoError(t, err)
		assert.Equal(t, 1, o.Quantity())
	})

	t.Run("should fail with empty customer ID", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "")

		require.Error(t, err)
		assert.Nil(t, o)
		var invalidArg *errs.InvalidArgumentError
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "customer_id is mandatory", invalidArg.Reason)
	})

	t.Run("should report earliest failing field when several are invalid", func(t *testing.T) {
		o, err := order.NewOrder("", "", 0, "")

		require.Error(t, err)
		assert.Nil(t, o)
		var invalidArg *errs.InvalidArgumentError
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "order_id is mandatory", invalidArg.Reason)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order passes validation", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		err := o.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		err := o.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should change status and restamp updatedAt", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		require.NoError(t, err)

		createdAt := o.CreatedAt()
		previousUpdatedAt := o.UpdatedAt()

		require.NoError(t, o.ChangeStatus("shipped"))

		assert.Equal(t, "shipped", o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.False(t, o.UpdatedAt().Before(previousUpdatedAt))
		assert.False(t, o.CreatedAt().After(o.UpdatedAt()))
	})

	t.Run("should accept any non-empty status", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		require.NoError(t, err)

		for _, status := range []string{"shipped", "delivered", "on-hold", "weird custom stage"} {
			require.NoError(t, o.ChangeStatus(status))
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("should reject empty status", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		require.NoError(t, err)

		err = o.ChangeStatus("")

		require.Error(t, err)
		var invalidArg *errs.InvalidArgumentError
		require.ErrorAs(t, err, &invalidArg)
		assert.Equal(t, "new_status is mandatory", invalidArg.Reason)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should leave immutable fields untouched", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus("shipped"))

		assert.Equal(t, "ORDER001", o.OrderID())
		assert.Equal(t, "Test Item", o.ItemName())
		assert.Equal(t, 5, o.Quantity())
		assert.Equal(t, "CUST001", o.CustomerID())
	})
}

func TestOrder_Data(t *testing.T) {
	t.Run("maps every field", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		require.NoError(t, err)

		data := o.Data()

		assert.Equal(t, "ORDER001", data.OrderID)
		assert.Equal(t, "Test Item", data.ItemName)
		assert.Equal(t, 5, data.Quantity)
		assert.Equal(t, "CUST001", data.CustomerID)
		assert.Equal(t, order.StatusPending, data.Status)
		assert.Equal(t, o.CreatedAt(), data.CreatedAt)
		assert.Equal(t, o.UpdatedAt(), data.UpdatedAt)
	})

	t.Run("reflects status changes", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus("shipped"))

		data := o.Data()
		assert.Equal(t, "shipped", data.Status)
		assert.Equal(t, o.UpdatedAt(), data.UpdatedAt)
	})
}

func TestOrder_Clone(t *testing.T) {
	t.Run("clone is independent of the original", func(t *testing.T) {
		o, err := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		require.NoError(t, err)

		clone := o.Clone()
		require.NoError(t, clone.Validate())
		assert.True(t, o.IsEqual(clone))

		require.NoError(t, o.ChangeStatus("shipped"))

		assert.Equal(t, "shipped", o.Status())
		assert.Equal(t, order.StatusPending, clone.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("orders with the same ID are equal", func(t *testing.T) {
		a, _ := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		b, _ := order.NewOrder("ORDER001", "Another Item", 1, "CUST002")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("orders with different IDs are not equal", func(t *testing.T) {
		a, _ := order.NewOrder("ORDER001", "Test Item", 5, "CUST001")
		b, _ := order.NewOrder("ORDER002", "Test Item", 5, "CUST001")

		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
