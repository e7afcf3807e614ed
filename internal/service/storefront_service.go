package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"aromashop/internal/cart"
	"aromashop/internal/checkout"
	"aromashop/internal/domain"
)

// CartView состояние корзины для клиента
type CartView struct {
	Items            []domain.CartItem          `json:"items"`
	TotalItems       int                        `json:"totalItems"`
	TotalPrice       decimal.Decimal            `json:"totalPrice"`
	Currency         string                     `json:"currency"`
	TotalsByCurrency map[string]decimal.Decimal `json:"totalsByCurrency"`
	MixedCurrency    bool                       `json:"mixedCurrency"`
	Open             bool                       `json:"open"`
	Step             checkout.Step              `json:"step"`
}

// CheckoutView состояние формы оформления
type CheckoutView struct {
	Step          checkout.Step       `json:"step"`
	Submitting    bool                `json:"submitting"`
	Data          domain.CheckoutData `json:"data"`
	InvalidFields []string            `json:"invalidFields"`
	CanSubmit     bool                `json:"canSubmit"`
}

// StorefrontService операции покупателя над корзиной и формой
type StorefrontService struct {
	sessions *Sessions
	products *ProductService
	variant  checkout.Variant
}

func NewStorefrontService(sessions *Sessions, products *ProductService, variant checkout.Variant) *StorefrontService {
	return &StorefrontService{sessions: sessions, products: products, variant: variant}
}

func cartView(s *Session) CartView {
	return CartView{
		Items:            s.cart.Items(),
		TotalItems:       s.cart.TotalItems(),
		TotalPrice:       s.cart.TotalPrice(),
		Currency:         s.cart.Currency(),
		TotalsByCurrency: s.cart.TotalsByCurrency(),
		MixedCurrency:    s.cart.MixedCurrency(),
		Open:             s.cart.IsOpen(),
		Step:             s.flow.Step(),
	}
}

func checkoutView(s *Session, v checkout.Variant) CheckoutView {
	view := CheckoutView{
		Step:          s.flow.Step(),
		Submitting:    s.flow.Submitting(),
		Data:          s.data,
		InvalidFields: []string{},
	}
	err := checkout.Validate(v, s.data)
	var ve *checkout.ValidationError
	if errors.As(err, &ve) {
		view.InvalidFields = ve.Fields
	}
	view.CanSubmit = err == nil && !view.Submitting && !s.cart.Empty() && view.Step == checkout.StepCheckout
	return view
}

// mutate runs fn on the locked session unless a submit is in flight, then keeps the
// flow consistent with the cart.
func (s *StorefrontService) mutate(ctx context.Context, sid string, fn func(c *cart.Cart) error) (CartView, error) {
	sess := s.sessions.Get(ctx, sid)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.flow.Submitting() {
		return cartView(sess), domain.ErrSubmitInProgress
	}
	if err := fn(sess.cart); err != nil {
		return cartView(sess), err
	}
	if sess.cart.Empty() {
		sess.flow.CartEmptied()
	}
	return cartView(sess), nil
}

func (s *StorefrontService) Cart(ctx context.Context, sid string) CartView {
	sess := s.sessions.Get(ctx, sid)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return cartView(sess)
}

// AddProduct adds quantity units of the catalog product in the given color value.
func (s *StorefrontService) AddProduct(ctx context.Context, sid, color string, quantity int) (CartView, error) {
	if quantity < 1 {
		return CartView{}, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}
	p := s.products.Product(ctx)
	label, ok := p.ColorLabel(color)
	if !ok {
		return CartView{}, fmt.Errorf("%w: unknown color %q", domain.ErrInvalidInput, color)
	}
	sess := s.sessions.Get(ctx, sid)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.flow.Submitting() {
		return cartView(sess), domain.ErrSubmitInProgress
	}
	sess.flow.Reset()
	_, err := sess.cart.AddItem(ctx, cart.NewItem{
		Name:     p.ProductName,
		Price:    p.Price,
		Quantity: quantity,
		Color:    label,
		ImageURL: p.ImageURL,
		Currency: p.Currency,
	})
	return cartView(sess), err
}

func (s *StorefrontService) SetQuantity(ctx context.Context, sid, itemID string, quantity int) (CartView, error) {
	return s.mutate(ctx, sid, func(c *cart.Cart) error {
		if _, ok := c.Find(itemID); !ok {
			return domain.ErrNotFound
		}
		return c.SetQuantity(ctx, itemID, quantity)
	})
}

func (s *StorefrontService) RemoveItem(ctx context.Context, sid, itemID string) (CartView, error) {
	return s.mutate(ctx, sid, func(c *cart.Cart) error { return c.RemoveItem(ctx, itemID) })
}

func (s *StorefrontService) ClearCart(ctx context.Context, sid string) (CartView, error) {
	return s.mutate(ctx, sid, func(c *cart.Cart) error { return c.Clear(ctx) })
}

func (s *StorefrontService) SetCartOpen(ctx context.Context, sid string, open bool) CartView {
	sess := s.sessions.Get(ctx, sid)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cart.SetOpen(open)
	return cartView(sess)
}

func (s *StorefrontService) Checkout(ctx context.Context, sid string) CheckoutView {
	sess := s.sessions.Get(ctx, sid)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return checkoutView(sess, s.variant)
}

// UpdateCheckout replaces the form fields. Edits are refused while a submit is in flight.
func (s *StorefrontService) UpdateCheckout(ctx context.Context, sid string, data domain.CheckoutData) (CheckoutView, error) {
	sess := s.sessions.Get(ctx, sid)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.flow.Submitting() {
		return checkoutView(sess, s.variant), domain.ErrSubmitInProgress
	}
	sess.data = data
	return checkoutView(sess, s.variant), nil
}

func (s *StorefrontService) Proceed(ctx context.Context, sid string) (CheckoutView, error) {
	sess := s.sessions.Get(ctx, sid)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	err := sess.flow.Proceed(sess.cart.Empty())
	return checkoutView(sess, s.variant), err
}

func (s *StorefrontService) Back(ctx context.Context, sid string) (CheckoutView, error) {
	sess := s.sessions.Get(ctx, sid)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	err := sess.flow.Back()
	return checkoutView(sess, s.variant), err
}
