package services

import (
	"context"
	"errors"

	"slime-shop/models"
	"slime-shop/repositories"
)

// ProductFinder is the slice of the catalog the cart needs: resolving an
// active product when a line is added.
type ProductFinder interface {
	FindActiveByID(ctx context.Context, id int) (*models.Product, error)
}

var ErrProductNotFound = errors.New("product not found or inactive")

type CartService struct {
	products ProductFinder
	store    repositories.CartStore
}

func NewCartService(products ProductFinder, store repositories.CartStore) *CartService {
	return &CartService{products: products, store: store}
}

// Get returns the cart for the session, or a fresh empty cart when the
// store has none (expired or never created).
func (s *CartService) Get(ctx context.Context, cartID string) (*models.Cart, error) {
	cart, err := s.store.Load(ctx, cartID)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.NewCart(cartID), nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// Add resolves the product from the catalog, captures its current price
// into the line, and merges it into the cart. Adding the same product twice
// increments the quantity instead of appending a second line.
func (s *CartService) Add(ctx context.Context, cartID string, productID, quantity int) (*models.Cart, error) {
	product, err := s.products.FindActiveByID(ctx, productID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	imageURL := ""
	if len(product.Images) > 0 {
		imageURL = product.Images[0]
	}

	cart.AddItem(models.CartLine{
		ProductID:      product.ID,
		Name:           product.Name,
		UnitPriceCents: product.PriceCents,
		ImageURL:       imageURL,
	}, quantity)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, cartID string, productID, quantity int) (*models.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.UpdateQuantity(productID, quantity)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Remove(ctx context.Context, cartID string, productID int) (*models.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, cartID string) (*models.Cart, error) {
	if err := s.store.Delete(ctx, cartID); err != nil {
		return nil, err
	}
	return models.NewCart(cartID), nil
}
