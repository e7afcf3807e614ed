package repository

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"

	"aromashop/internal/domain"
)

func TestMemoryStore_LoadSaveDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Load(ctx, "k"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.Save(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, "k")
	if err != nil || string(got) != `{"a":1}` {
		t.Fatalf("load: %q %v", got, err)
	}
	// mutating the returned slice must not touch the stored copy
	got[0] = 'x'
	again, _ := store.Load(ctx, "k")
	if string(again) != `{"a":1}` {
		t.Fatalf("stored value mutated: %q", again)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Load(ctx, "k"); err != ErrNotFound {
		t.Fatalf("expected not found after delete")
	}
}

func TestGet_FallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	def := domain.PaymentDetails{BankName: "default"}

	// missing key
	if got := Get(ctx, store, KeyPaymentDetails, def); got != def {
		t.Fatalf("missing key: got %+v", got)
	}

	// malformed value
	_ = store.Save(ctx, KeyPaymentDetails, []byte(`{not json`))
	if got := Get(ctx, store, KeyPaymentDetails, def); got != def {
		t.Fatalf("malformed value: got %+v", got)
	}
	if _, ok := Lookup[domain.PaymentDetails](ctx, store, KeyPaymentDetails); ok {
		t.Fatalf("lookup of malformed value must report !ok")
	}

	// round trip
	want := domain.PaymentDetails{IBAN: "UA21", BankName: "Bank"}
	if err := Set(ctx, store, KeyPaymentDetails, want); err != nil {
		t.Fatal(err)
	}
	if got := Get(ctx, store, KeyPaymentDetails, def); got != want {
		t.Fatalf("round trip: got %+v", got)
	}
}

func TestScoped_PrefixesKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := Scoped(store, SessionScope("a"))
	b := Scoped(store, SessionScope("b"))

	if err := Set(ctx, a, KeyCart, []string{"x"}); err != nil {
		t.Fatal(err)
	}
	if got := Get(ctx, b, KeyCart, []string{}); len(got) != 0 {
		t.Fatalf("scopes leak: %v", got)
	}
	keys := store.Keys()
	sort.Strings(keys)
	if len(keys) != 1 || keys[0] != "session:a:cart" {
		t.Fatalf("unexpected keys %v", keys)
	}
	if err := a.Delete(ctx, KeyCart); err != nil {
		t.Fatal(err)
	}
	if len(store.Keys()) != 0 {
		t.Fatalf("scoped delete failed")
	}
}

func TestDocumentOrders_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orders := NewDocumentOrders(store)

	o := domain.Order{
		ID:         "ORD-1",
		Customer:   domain.CheckoutData{FirstName: "Olena", LastName: "Koval", Phone: "+380991112233"},
		TotalPrice: decimal.NewFromInt(899),
		Currency:   "UAH",
		Status:     domain.OrderStatusPending,
	}
	if err := orders.Create(ctx, &o); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := orders.GetByID(ctx, "ORD-1")
	if err != nil || got.ID != "ORD-1" {
		t.Fatalf("get: %v", err)
	}
	got.Status = domain.OrderStatusProcessing
	if err := orders.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, _ := orders.GetByID(ctx, "ORD-1")
	if again.Status != domain.OrderStatusProcessing {
		t.Fatalf("status not updated: %v", again.Status)
	}
	if _, err := orders.GetByID(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := orders.Update(ctx, &domain.Order{ID: "missing"}); err != ErrNotFound {
		t.Fatalf("expected not found on update, got %v", err)
	}
}

func TestDocumentOrders_LegacyStatusDefaultsToPending(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Save(ctx, KeyOrders, []byte(`[{"id":"ORD-OLD","totalPrice":1590,"items":[]}]`))

	list, err := NewDocumentOrders(store).List(ctx, OrderFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Status != domain.OrderStatusPending {
		t.Fatalf("expected legacy order as pending, got %+v", list)
	}
}

func TestList_Filtering(t *testing.T) {
	ctx := context.Background()
	orders := NewDocumentOrders(NewMemoryStore())
	add := func(id, first string, status domain.OrderStatus) {
		o := domain.Order{ID: id, Customer: domain.CheckoutData{FirstName: first, LastName: "X"}, Status: status}
		if err := orders.Create(ctx, &o); err != nil {
			t.Fatal(err)
		}
	}
	add("1", "Iryna", domain.OrderStatusPending)
	add("2", "Taras", domain.OrderStatusShipped)
	add("3", "Ivan", domain.OrderStatusPending)

	list, _ := orders.List(ctx, OrderFilter{Status: domain.OrderStatusPending})
	if len(list) != 2 {
		t.Fatalf("status filter: %d", len(list))
	}
	list, _ = orders.List(ctx, OrderFilter{Customer: "tar"})
	if len(list) != 1 || list[0].ID != "2" {
		t.Fatalf("customer filter: %+v", list)
	}
	list, _ = orders.List(ctx, OrderFilter{})
	if len(list) != 3 {
		t.Fatalf("no filter: %d", len(list))
	}
}
