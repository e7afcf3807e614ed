package repository

import (
	"context"
	"fmt"
	"sync"

	"aromashop/internal/domain"
)

// DocumentOrders хранит все заказы одним JSON-списком под ключом "orders".
// Read-modify-write сериализован мьютексом в пределах процесса; между процессами
// действует last write wins.
type DocumentOrders struct {
	mu    sync.Mutex
	store Store
}

func NewDocumentOrders(store Store) *DocumentOrders { return &DocumentOrders{store: store} }

var _ OrderRepository = (*DocumentOrders)(nil)

func (r *DocumentOrders) load(ctx context.Context) []domain.Order {
	orders := Get(ctx, r.store, KeyOrders, []domain.Order{})
	for i := range orders {
		if orders[i].Status == "" {
			orders[i].Status = domain.OrderStatusPending
		}
	}
	return orders
}

func (r *DocumentOrders) Create(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := r.load(ctx)
	orders = append(orders, *o)
	if err := Set(ctx, r.store, KeyOrders, orders); err != nil {
		return fmt.Errorf("create order %s: %w", o.ID, err)
	}
	return nil
}

func (r *DocumentOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.load(ctx) {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *DocumentOrders) Update(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := r.load(ctx)
	for i := range orders {
		if orders[i].ID == o.ID {
			orders[i] = *o
			if err := Set(ctx, r.store, KeyOrders, orders); err != nil {
				return fmt.Errorf("update order %s: %w", o.ID, err)
			}
			return nil
		}
	}
	return ErrNotFound
}

func (r *DocumentOrders) List(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0)
	for _, o := range r.load(ctx) {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		name := o.Customer.FirstName + " " + o.Customer.LastName
		if !containsIgnoreCase(name, f.Customer) && !containsIgnoreCase(o.Customer.Phone, f.Customer) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
