package services

import (
	"context"
	"testing"

	"slime-shop/models"
	"slime-shop/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductFinder struct {
	products map[int]*models.Product
}

func (f *fakeProductFinder) FindActiveByID(_ context.Context, id int) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrNotFound
}

func newTestCartService() *CartService {
	finder := &fakeProductFinder{products: map[int]*models.Product{
		1: {ID: 1, Name: "Rainbow Butter", PriceCents: 999, Images: []string{"/uploads/rainbow.jpg"}, StockQuantity: 10, IsActive: true},
		2: {ID: 2, Name: "Galaxy Glitter", PriceCents: 1299, Images: []string{}, StockQuantity: 5, IsActive: true},
	}}
	return NewCartService(finder, repositories.NewMemoryCartStore())
}

func TestCartServiceGet(t *testing.T) {
	s := newTestCartService()
	ctx := context.Background()

	t.Run("UnknownIDStartsEmpty", func(t *testing.T) {
		cart, err := s.Get(ctx, "fresh")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, "fresh", cart.ID)
	})
}

func TestCartServiceAdd(t *testing.T) {
	s := newTestCartService()
	ctx := context.Background()

	t.Run("CapturesProductPriceAndImage", func(t *testing.T) {
		cart, err := s.Add(ctx, "c1", 1, 2)
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, int64(999), cart.Lines[0].UnitPriceCents)
		assert.Equal(t, "/uploads/rainbow.jpg", cart.Lines[0].ImageURL)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
	})

	t.Run("PersistsAcrossLoads", func(t *testing.T) {
		_, err := s.Add(ctx, "c2", 1, 1)
		require.NoError(t, err)
		_, err = s.Add(ctx, "c2", 1, 1)
		require.NoError(t, err)

		cart, err := s.Get(ctx, "c2")
		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
	})

	t.Run("UnknownProductRejected", func(t *testing.T) {
		_, err := s.Add(ctx, "c3", 99, 1)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestCartServiceUpdateAndRemove(t *testing.T) {
	s := newTestCartService()
	ctx := context.Background()

	_, err := s.Add(ctx, "c1", 1, 1)
	require.NoError(t, err)
	_, err = s.Add(ctx, "c1", 2, 2)
	require.NoError(t, err)

	cart, err := s.UpdateQuantity(ctx, "c1", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(999+3*1299), cart.TotalCents())

	cart, err = s.UpdateQuantity(ctx, "c1", 1, 0)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].ProductID)

	cart, err = s.Remove(ctx, "c1", 2)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartServiceClear(t *testing.T) {
	s := newTestCartService()
	ctx := context.Background()

	_, err := s.Add(ctx, "c1", 1, 4)
	require.NoError(t, err)

	cart, err := s.Clear(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cart, err = s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
