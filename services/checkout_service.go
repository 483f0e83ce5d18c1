package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"slime-shop/models"
	"slime-shop/repositories"
	"slime-shop/utils"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("checkout already in progress")
	ErrMailDispatch     = errors.New("order email could not be sent")
)

type OrderSaver interface {
	Create(ctx context.Context, order *models.Order) error
}

type CheckoutService struct {
	store   repositories.CartStore
	orders  OrderSaver
	mailer  Mailer
	lockTTL time.Duration
}

func NewCheckoutService(store repositories.CartStore, orders OrderSaver, mailer Mailer) *CheckoutService {
	return &CheckoutService{
		store:   store,
		orders:  orders,
		mailer:  mailer,
		lockTTL: 30 * time.Second,
	}
}

// Submit runs one checkout: freeze the cart, dispatch the order email,
// record the order, clear the cart. A failed dispatch leaves the cart and
// form data untouched so the exact same submission can be retried. Only one
// submission per cart is in flight at a time.
func (s *CheckoutService) Submit(ctx context.Context, cartID string, form models.CheckoutRequest) (*models.Order, error) {
	cart, err := s.store.Load(ctx, cartID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	ok, err := s.store.TryLock(ctx, cartID, s.lockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCheckoutInFlight
	}
	defer s.store.Unlock(ctx, cartID)

	order := orderFromCart(cart, form)

	if s.mailer == nil {
		return nil, ErrMailDispatch
	}
	if err := s.mailer.SendOrderEmail(ctx, OrderEmail{
		OrderNumber:     order.OrderNumber,
		FromName:        form.Name,
		CustomerEmail:   form.Email,
		CustomerPhone:   form.Phone,
		CustomerAddress: form.Address,
		OrderDetails:    FormatOrderDetails(cart),
		TotalAmount:     utils.FormatUSD(cart.TotalCents()),
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMailDispatch, err)
	}

	// The email is the authoritative channel; a failed order insert after a
	// successful dispatch is logged but does not fail the checkout.
	if s.orders != nil {
		if err := s.orders.Create(ctx, order); err != nil {
			log.Printf("Warning: order %s emailed but not recorded: %v", order.OrderNumber, err)
		}
	}

	if err := s.store.Delete(ctx, cartID); err != nil {
		log.Printf("Warning: failed to clear cart %s after checkout: %v", cartID, err)
	}

	return order, nil
}

func orderFromCart(cart *models.Cart, form models.CheckoutRequest) *models.Order {
	order := &models.Order{
		OrderNumber:     newOrderNumber(),
		CustomerName:    form.Name,
		CustomerEmail:   form.Email,
		CustomerPhone:   form.Phone,
		CustomerAddress: form.Address,
		TotalCents:      cart.TotalCents(),
		Status:          "pending",
	}
	for _, line := range cart.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:      line.ProductID,
			ProductName:    line.Name,
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
		})
	}
	return order
}

func newOrderNumber() string {
	return "SLM-" + strings.ToUpper(uuid.NewString()[:8])
}

// FormatOrderDetails renders the frozen cart line by line for the order
// email: quantity, name, unit price and subtotal per line.
func FormatOrderDetails(cart *models.Cart) string {
	var b strings.Builder
	for _, line := range cart.Lines {
		fmt.Fprintf(&b, "%d x %s @ %s = %s\n",
			line.Quantity, line.Name,
			utils.FormatUSD(line.UnitPriceCents),
			utils.FormatUSD(line.UnitPriceCents*int64(line.Quantity)))
	}
	return b.String()
}
