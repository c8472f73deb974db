package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, title string, priceCents int64) menu.Product {
	t.Helper()
	price, err := kernel.NewPrice(priceCents)
	require.NoError(t, err)
	product, err := menu.NewProduct(kernel.NewUUID(), title, price)
	require.NoError(t, err)
	return product
}

func testItems(t *testing.T) []order.LineItem {
	t.Helper()
	burger, err := order.NewLineItem(testProduct(t, "Burger", 850), 2)
	require.NoError(t, err)
	fries, err := order.NewLineItem(testProduct(t, "Fries", 350), 1)
	require.NoError(t, err)
	return []order.LineItem{burger, fries}
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	items := testItems(t)

	cmd, err := commands.NewPlaceOrderCommand(id, items, "no onions")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, "no onions", cmd.Notes())
}

func TestNewPlaceOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewPlaceOrderCommand(invalidID, testItems(t), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_EmptyItems(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewPlaceOrderCommand(id, nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewPlaceOrderCommand_InvalidItem(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewPlaceOrderCommand(id, []order.LineItem{{}}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
}

func TestPlaceOrderCommand_ItemsReturnsCopy(t *testing.T) {
	id := kernel.NewUUID()
	items := testItems(t)

	cmd, err := commands.NewPlaceOrderCommand(id, items, "")
	require.NoError(t, err)

	got := cmd.Items()
	got[0] = order.LineItem{}
	assert.Equal(t, items, cmd.Items())
}
