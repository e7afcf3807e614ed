package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"aromashop/internal/checkout"
	"aromashop/internal/clock"
	"aromashop/internal/domain"
	"aromashop/internal/repository"
)

func TestAddProduct_MergesAndTotals(t *testing.T) {
	ctx := context.Background()
	e := setup(t)

	if _, err := e.storefront.AddProduct(ctx, "s1", "white", 1); err != nil {
		t.Fatal(err)
	}
	view, err := e.storefront.AddProduct(ctx, "s1", "white", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Items) != 1 || view.TotalItems != 3 || !view.TotalPrice.Equal(decimal.NewFromInt(2697)) {
		t.Fatalf("unexpected cart %+v", view)
	}
	if !view.Open {
		t.Fatalf("adding must open the cart panel")
	}

	if _, err := e.storefront.AddProduct(ctx, "s1", "purple", 1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("unknown color must fail, got %v", err)
	}
	if _, err := e.storefront.AddProduct(ctx, "s1", "white", 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("zero quantity must fail, got %v", err)
	}
}

func TestCartIsPerSessionAndPersisted(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	if _, err := e.storefront.AddProduct(ctx, "s1", "blue", 2); err != nil {
		t.Fatal(err)
	}
	if v := e.storefront.Cart(ctx, "s2"); v.TotalItems != 0 {
		t.Fatalf("sessions share a cart")
	}

	// a fresh registry over the same store restores the cart
	sessions := NewSessions(e.store, clock.NewSystem())
	sf := NewStorefrontService(sessions, e.products, checkout.VariantExtended)
	if v := sf.Cart(ctx, "s1"); v.TotalItems != 2 {
		t.Fatalf("cart not restored: %+v", v)
	}
	if items := repository.Get(ctx, repository.Scoped(e.store, repository.SessionScope("s1")), repository.KeyCart, []domain.CartItem{}); len(items) != 1 {
		t.Fatalf("cart not stored under the session scope")
	}
}

func TestSetQuantityAndRemove(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	view, _ := e.storefront.AddProduct(ctx, "s1", "beige", 2)
	id := view.Items[0].ID

	view, err := e.storefront.SetQuantity(ctx, "s1", id, 5)
	if err != nil || view.TotalItems != 5 {
		t.Fatalf("set quantity: %+v %v", view, err)
	}
	if _, err := e.storefront.SetQuantity(ctx, "s1", "nope", 5); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	view, err = e.storefront.SetQuantity(ctx, "s1", id, 0)
	if err != nil || len(view.Items) != 0 {
		t.Fatalf("zero must remove: %+v %v", view, err)
	}
	if _, err := e.storefront.RemoveItem(ctx, "s1", id); err != nil {
		t.Fatalf("removing an absent line is a no-op, got %v", err)
	}
}

func TestEmptyingCartDuringCheckoutReturnsToCart(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	if _, err := e.storefront.Proceed(ctx, "s1"); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("empty cart cannot proceed, got %v", err)
	}
	view, _ := e.storefront.AddProduct(ctx, "s1", "white", 1)
	if _, err := e.storefront.Proceed(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	view, err := e.storefront.RemoveItem(ctx, "s1", view.Items[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if view.Step != checkout.StepCart {
		t.Fatalf("expected cart step, got %s", view.Step)
	}
}

func TestCheckoutView(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	v := e.storefront.Checkout(ctx, "s1")
	if v.Data.Country != "ukraine" || v.Data.ContactMethod != domain.ContactTelegram || v.Data.PaymentMethod != domain.PaymentPrepayment {
		t.Fatalf("defaults not prefilled: %+v", v.Data)
	}
	if v.CanSubmit {
		t.Fatalf("fresh form cannot submit")
	}

	readyToSubmit(t, e, "s1")
	v = e.storefront.Checkout(ctx, "s1")
	if !v.CanSubmit || len(v.InvalidFields) != 0 {
		t.Fatalf("filled form must be submittable: %+v", v)
	}
	v, err := e.storefront.Back(ctx, "s1")
	if err != nil || v.Step != checkout.StepCart || v.CanSubmit {
		t.Fatalf("back: %+v %v", v, err)
	}
}

func TestAddAfterConfirmationStartsNewRound(t *testing.T) {
	ctx := context.Background()
	e := setup(t)
	readyToSubmit(t, e, "s1")
	if _, err := e.orders.Submit(ctx, "s1", SubmitInput{}); err != nil {
		t.Fatal(err)
	}
	view, err := e.storefront.AddProduct(ctx, "s1", "black", 1)
	if err != nil || view.Step != checkout.StepCart || view.TotalItems != 1 {
		t.Fatalf("new round: %+v %v", view, err)
	}
}

func TestSessionsEvict(t *testing.T) {
	clk := &clock.Stepping{T: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Step: time.Hour}
	sessions := NewSessions(repository.NewMemoryStore(), clk)
	ctx := context.Background()
	sessions.Get(ctx, "old")
	sessions.Get(ctx, "new")

	if n := sessions.Evict(90 * time.Minute); n != 1 {
		t.Fatalf("expected one eviction, got %d", n)
	}
	if sessions.Len() != 1 {
		t.Fatalf("expected one session left")
	}
}
