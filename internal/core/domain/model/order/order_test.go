package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrderID(t *testing.T, s string) kernel.OrderID {
	t.Helper()
	id, err := kernel.OrderIDFromString(s)
	require.NoError(t, err)
	return id
}

func validClientDetails() order.ClientDetails {
	return order.ClientDetails{
		Name:    "Jane Roe",
		Email:   "jane@example.com",
		Address: "12 High Street",
		City:    "Manchester",
		Country: "UK",
	}
}

func validCartLine(t *testing.T, slug string) order.CartLine {
	t.Helper()
	line, err := order.NewCartLine(slug, "Walnut Desk Lamp", decimal.NewFromInt(10), nil, 2)
	require.NoError(t, err)
	return line
}

func validVendorGroup(t *testing.T) order.VendorGroup {
	t.Helper()
	group, err := order.NewVendorGroup("S1", "Acme Interiors", "Walnut Desk Lamp", "sales@acme.example")
	require.NoError(t, err)
	return group
}

func TestNewOrder_Success(t *testing.T) {
	id := mustOrderID(t, "AB1234")
	items := []order.CartLine{validCartLine(t, "walnut-desk-lamp")}
	groups := []order.VendorGroup{validVendorGroup(t)}

	before := time.Now().UTC()
	o, err := order.NewOrder(id, validClientDetails(), items, decimal.NewFromInt(20), groups)
	require.NoError(t, err)
	require.NoError(t, o.Validate())

	assert.True(t, o.ID().IsEqual(id))
	assert.Equal(t, validClientDetails(), o.ClientDetails())
	assert.Equal(t, items, o.CartItems())
	assert.True(t, o.TotalCost().Equal(decimal.NewFromInt(20)))
	assert.Equal(t, groups, o.VendorGroups())
	assert.False(t, o.OrderDate().Before(before))
	assert.False(t, o.OrderDate().After(time.Now().UTC()))
}

func TestNewOrder_OneVendorGroupPerCartLine(t *testing.T) {
	id := mustOrderID(t, "AB1234")
	items := []order.CartLine{
		validCartLine(t, "walnut-desk-lamp"),
		validCartLine(t, "oak-bookshelf"),
	}
	groups := []order.VendorGroup{validVendorGroup(t)}

	_, err := order.NewOrder(id, validClientDetails(), items, decimal.NewFromInt(30), groups)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewOrder_ValidationFailures(t *testing.T) {
	id := mustOrderID(t, "AB1234")
	items := []order.CartLine{validCartLine(t, "walnut-desk-lamp")}
	groups := []order.VendorGroup{validVendorGroup(t)}

	t.Run("zero value order id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.OrderID{}, validClientDetails(), items, decimal.NewFromInt(20), groups)
		require.Error(t, err)
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := order.NewOrder(id, validClientDetails(), nil, decimal.NewFromInt(20), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing client email", func(t *testing.T) {
		client := validClientDetails()
		client.Email = ""
		_, err := order.NewOrder(id, client, items, decimal.NewFromInt(20), groups)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := order.NewOrder(id, validClientDetails(), items, decimal.NewFromInt(-1), groups)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder_KeepsStoredDate(t *testing.T) {
	id := mustOrderID(t, "CD5678")
	items := []order.CartLine{validCartLine(t, "walnut-desk-lamp")}
	groups := []order.VendorGroup{validVendorGroup(t)}
	stored := time.Date(2025, 11, 3, 14, 30, 0, 0, time.UTC)

	o, err := order.RestoreOrder(id, validClientDetails(), items, decimal.NewFromInt(20), groups, stored)
	require.NoError(t, err)
	assert.Equal(t, stored, o.OrderDate())
}

func TestRestoreOrder_RejectsZeroDate(t *testing.T) {
	id := mustOrderID(t, "CD5678")
	items := []order.CartLine{validCartLine(t, "walnut-desk-lamp")}
	groups := []order.VendorGroup{validVendorGroup(t)}

	_, err := order.RestoreOrder(id, validClientDetails(), items, decimal.NewFromInt(20), groups, time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_IsEqual(t *testing.T) {
	items := []order.CartLine{validCartLine(t, "walnut-desk-lamp")}
	groups := []order.VendorGroup{validVendorGroup(t)}

	a, err := order.NewOrder(mustOrderID(t, "AB1234"), validClientDetails(), items, decimal.NewFromInt(20), groups)
	require.NoError(t, err)
	b, err := order.NewOrder(mustOrderID(t, "AB1234"), validClientDetails(), items, decimal.NewFromInt(20), groups)
	require.NoError(t, err)
	c, err := order.NewOrder(mustOrderID(t, "ZZ9999"), validClientDetails(), items, decimal.NewFromInt(20), groups)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestNewCartLine_Validation(t *testing.T) {
	discounted := decimal.NewFromInt(8)

	t.Run("valid line with discount", func(t *testing.T) {
		line, err := order.NewCartLine("walnut-desk-lamp", "Walnut Desk Lamp", decimal.NewFromInt(10), &discounted, 2)
		require.NoError(t, err)
		assert.Equal(t, "walnut-desk-lamp", line.Slug())
		assert.Equal(t, "Walnut Desk Lamp", line.ProductName())
		assert.True(t, line.UnitPrice().Equal(decimal.NewFromInt(10)))
		require.NotNil(t, line.DiscountedPrice())
		assert.True(t, line.DiscountedPrice().Equal(discounted))
		assert.Equal(t, 2, line.Quantity())
	})

	t.Run("valid line without discount", func(t *testing.T) {
		line, err := order.NewCartLine("oak-bookshelf", "Oak Bookshelf", decimal.NewFromInt(120), nil, 1)
		require.NoError(t, err)
		assert.Nil(t, line.DiscountedPrice())
	})

	t.Run("empty slug", func(t *testing.T) {
		_, err := order.NewCartLine("", "Walnut Desk Lamp", decimal.NewFromInt(10), nil, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := order.NewCartLine("walnut-desk-lamp", "Walnut Desk Lamp", decimal.NewFromInt(10), nil, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := order.NewCartLine("walnut-desk-lamp", "Walnut Desk Lamp", decimal.NewFromInt(-10), nil, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewVendorGroup_Validation(t *testing.T) {
	t.Run("valid group", func(t *testing.T) {
		group, err := order.NewVendorGroup("S1", "Acme Interiors", "Walnut Desk Lamp", "sales@acme.example")
		require.NoError(t, err)
		assert.Equal(t, "S1", group.StoreID())
		assert.Equal(t, "Acme Interiors", group.StoreName())
		assert.Equal(t, "Walnut Desk Lamp", group.ProductName())
		assert.Equal(t, "sales@acme.example", group.VendorEmail())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := order.NewVendorGroup("", "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
