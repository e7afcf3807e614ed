package service

import (
	"context"
	"sync"
	"time"

	"aromashop/internal/cart"
	"aromashop/internal/checkout"
	"aromashop/internal/clock"
	"aromashop/internal/domain"
	"aromashop/internal/repository"
)

// Session состояние одной вкладки покупателя: корзина, шаг оформления и поля формы.
// Корзина и последний заказ живут в store под ключами сессии, шаг и поля только в памяти.
type Session struct {
	mu       sync.Mutex
	id       string
	store    repository.Store
	cart     *cart.Cart
	flow     *checkout.Flow
	data     domain.CheckoutData
	lastSeen time.Time
}

func (s *Session) ID() string { return s.id }

// Sessions реестр сессий процесса
type Sessions struct {
	mu    sync.Mutex
	store repository.Store
	clock clock.Clock
	items map[string]*Session
}

func NewSessions(store repository.Store, clk clock.Clock) *Sessions {
	return &Sessions{store: store, clock: clk, items: make(map[string]*Session)}
}

// Get returns the session, restoring its cart from the store on first use.
func (r *Sessions) Get(ctx context.Context, id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock.Now()
	if s, ok := r.items[id]; ok {
		s.lastSeen = now
		return s
	}
	scoped := repository.Scoped(r.store, repository.SessionScope(id))
	s := &Session{
		id:       id,
		store:    scoped,
		cart:     cart.Load(ctx, scoped, r.clock),
		flow:     checkout.NewFlow(),
		data:     domain.DefaultCheckoutData(),
		lastSeen: now,
	}
	r.items[id] = s
	return s
}

// Evict drops sessions idle for longer than maxIdle. Their carts stay in the store; only
// the step and unsaved form fields are lost. Sessions with a submit in flight are kept.
func (r *Sessions) Evict(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.clock.Now().Add(-maxIdle)
	n := 0
	for id, s := range r.items {
		if !s.mu.TryLock() {
			continue
		}
		if s.lastSeen.Before(cutoff) && !s.flow.Submitting() {
			delete(r.items, id)
			n++
		}
		s.mu.Unlock()
	}
	return n
}

func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
