package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id int, name string, cents int64) CartLine {
	return CartLine{ProductID: id, Name: name, UnitPriceCents: cents}
}

func TestCartAddItem(t *testing.T) {
	t.Run("SameProductMergesIntoOneLine", func(t *testing.T) {
		cart := NewCart("c1")
		cart.AddItem(line(1, "Rainbow Butter", 999), 1)
		cart.AddItem(line(1, "Rainbow Butter", 999), 1)

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
		assert.Equal(t, 2, cart.Count())
	})

	t.Run("DefaultQuantityIsOne", func(t *testing.T) {
		cart := NewCart("c1")
		cart.AddItem(line(1, "Galaxy Glitter", 1299), 0)
		cart.AddItem(line(2, "Cloud Fluff", 899), -3)

		require.Len(t, cart.Lines, 2)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
		assert.Equal(t, 1, cart.Lines[1].Quantity)
	})

	t.Run("PreservesInsertionOrder", func(t *testing.T) {
		cart := NewCart("c1")
		cart.AddItem(line(3, "C", 100), 1)
		cart.AddItem(line(1, "A", 100), 1)
		cart.AddItem(line(2, "B", 100), 1)
		cart.AddItem(line(3, "C", 100), 1)

		require.Len(t, cart.Lines, 3)
		assert.Equal(t, []int{3, 1, 2}, []int{
			cart.Lines[0].ProductID, cart.Lines[1].ProductID, cart.Lines[2].ProductID,
		})
	})
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(line(1, "A", 100), 1)
	cart.AddItem(line(2, "B", 200), 1)

	cart.RemoveItem(1)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].ProductID)

	// removing an absent id is a no-op
	cart.RemoveItem(42)
	assert.Len(t, cart.Lines, 1)
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Run("SetsQuantity", func(t *testing.T) {
		cart := NewCart("c1")
		cart.AddItem(line(1, "A", 100), 1)

		cart.UpdateQuantity(1, 5)
		assert.Equal(t, 5, cart.Lines[0].Quantity)
	})

	t.Run("BelowOneRemovesTheLine", func(t *testing.T) {
		cart := NewCart("c1")
		cart.AddItem(line(1, "A", 100), 2)

		cart.UpdateQuantity(1, 0)
		assert.Empty(t, cart.Lines)

		cart.AddItem(line(1, "A", 100), 2)
		cart.UpdateQuantity(1, -7)
		assert.Empty(t, cart.Lines)
	})

	t.Run("UnknownIDIsNoOp", func(t *testing.T) {
		cart := NewCart("c1")
		cart.AddItem(line(1, "A", 100), 1)

		cart.UpdateQuantity(99, 3)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})
}

func TestCartClear(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(line(1, "A", 1299), 3)
	cart.AddItem(line(2, "B", 999), 2)

	cart.Clear()

	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, int64(0), cart.TotalCents())
	assert.True(t, cart.IsEmpty())
}

func TestCartTotals(t *testing.T) {
	// add A ($12.99 x1) and B ($9.99 x2) -> 32.97; remove A -> 19.98;
	// update B to 3 -> 29.97; clear -> 0
	cart := NewCart("c1")
	cart.AddItem(line(1, "A", 1299), 1)
	cart.AddItem(line(2, "B", 999), 2)
	assert.Equal(t, int64(3297), cart.TotalCents())

	cart.RemoveItem(1)
	assert.Equal(t, int64(1998), cart.TotalCents())

	cart.UpdateQuantity(2, 3)
	assert.Equal(t, int64(2997), cart.TotalCents())

	cart.Clear()
	assert.Equal(t, int64(0), cart.TotalCents())
}

func TestCartCountSumsQuantities(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(line(1, "A", 100), 3)
	cart.AddItem(line(2, "B", 100), 2)

	assert.Equal(t, 5, cart.Count())
}

func TestCartJSONRoundTrip(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(line(1, "Rainbow Butter", 999), 2)

	data, err := json.Marshal(cart)
	require.NoError(t, err)

	// derived fields are serialized for clients
	assert.Contains(t, string(data), `"count":2`)
	assert.Contains(t, string(data), `"total":19.98`)

	// and the stored form restores exact prices
	var restored Cart
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, cart.ID, restored.ID)
	require.Len(t, restored.Lines, 1)
	assert.Equal(t, int64(999), restored.Lines[0].UnitPriceCents)
	assert.Equal(t, int64(1998), restored.TotalCents())
}

func TestProductInStockDerived(t *testing.T) {
	p := Product{Name: "Galaxy Glitter", PriceCents: 1299, StockQuantity: 0, Images: []string{}}
	assert.False(t, p.InStock())

	p.StockQuantity = 3
	assert.True(t, p.InStock())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"in_stock":true`)
	assert.Contains(t, string(data), `"price":12.99`)
}
