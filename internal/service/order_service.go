package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"aromashop/internal/checkout"
	"aromashop/internal/clock"
	"aromashop/internal/domain"
	"aromashop/internal/metrics"
	"aromashop/internal/notify"
	"aromashop/internal/repository"
)

// OrderService оформление заказа и управление статусами
type OrderService struct {
	sessions   *Sessions
	products   *ProductService
	orders     repository.OrderRepository
	blocking   notify.BlockingNotifier
	bestEffort notify.BestEffortNotifier
	ids        IDGenerator
	clock      clock.Clock
	metrics    *metrics.Metrics
	variant    checkout.Variant

	notifyTimeout time.Duration

	statusMu sync.Mutex
	wg       sync.WaitGroup
}

// OrderDeps зависимости OrderService
type OrderDeps struct {
	Sessions      *Sessions
	Products      *ProductService
	Orders        repository.OrderRepository
	Blocking      notify.BlockingNotifier
	BestEffort    notify.BestEffortNotifier
	IDs           IDGenerator
	Clock         clock.Clock
	Metrics       *metrics.Metrics
	Variant       checkout.Variant
	NotifyTimeout time.Duration
}

func NewOrderService(d OrderDeps) *OrderService {
	if d.Clock == nil {
		d.Clock = clock.NewSystem()
	}
	if d.IDs == nil {
		d.IDs = NewLegacyIDs(d.Clock)
	}
	if d.Variant == "" {
		d.Variant = checkout.VariantExtended
	}
	return &OrderService{
		sessions:      d.Sessions,
		products:      d.Products,
		orders:        d.Orders,
		blocking:      d.Blocking,
		bestEffort:    d.BestEffort,
		ids:           d.IDs,
		clock:         d.Clock,
		metrics:       d.Metrics,
		variant:       d.Variant,
		notifyTimeout: d.NotifyTimeout,
	}
}

// SubmitInput данные, которые приходят вместе с нажатием «оформить»
type SubmitInput struct {
	Referrer    string
	Attribution map[string]string
}

// Submit places the order of session sid. The blocking notification runs without the
// session lock; the submitting flag keeps the cart and form frozen meanwhile.
func (s *OrderService) Submit(ctx context.Context, sid string, in SubmitInput) (*domain.LastOrder, error) {
	log := zerolog.Ctx(ctx)
	sess := s.sessions.Get(ctx, sid)

	sess.mu.Lock()
	if err := sess.flow.BeginSubmit(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	if err := checkout.Validate(s.variant, sess.data); err != nil {
		sess.flow.EndSubmit(false)
		sess.mu.Unlock()
		s.metrics.ObserveOrder("invalid")
		return nil, err
	}
	if sess.cart.Empty() {
		sess.flow.EndSubmit(false)
		sess.flow.CartEmptied()
		sess.mu.Unlock()
		return nil, domain.ErrEmptyCart
	}
	if sess.cart.MixedCurrency() {
		log.Warn().Interface("totals", sess.cart.TotalsByCurrency()).Msg("cart mixes currencies, total uses the first line currency")
	}
	order := s.buildOrder(ctx, sess)
	sess.mu.Unlock()

	if err := s.notify(ctx, notify.Message{Order: order, Referrer: in.Referrer, Attribution: in.Attribution}); err != nil {
		sess.mu.Lock()
		sess.flow.EndSubmit(false)
		sess.mu.Unlock()
		s.metrics.ObserveOrder("notification_failed")
		log.Error().Err(err).Str("order_id", order.ID).Msg("order notification failed, order not placed")
		// upstream details stay in the log, the buyer only learns the order was not placed
		return nil, domain.ErrNotificationFailed
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := s.orders.Create(ctx, &order); err != nil {
		sess.flow.EndSubmit(false)
		s.metrics.ObserveOrder("store_failed")
		return nil, err
	}
	last := &domain.LastOrder{Order: order, CheckoutData: order.Customer}
	if err := repository.Set(ctx, sess.store, repository.KeyLastOrder, last); err != nil {
		// the order itself is stored; only the confirmation page loses its details
		log.Warn().Err(err).Str("order_id", order.ID).Msg("failed to save last order snapshot")
	}
	if err := sess.cart.Clear(ctx); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("failed to clear cart after order")
	}
	sess.cart.SetOpen(false)
	sess.flow.EndSubmit(true)
	s.metrics.ObserveOrder("placed")
	log.Info().Str("order_id", order.ID).Str("total", order.TotalPrice.String()).Str("currency", order.Currency).Msg("order placed")

	s.forward(ctx, order)
	return last, nil
}

// buildOrder snapshots the cart and form. Caller holds the session lock.
func (s *OrderService) buildOrder(ctx context.Context, sess *Session) domain.Order {
	lines := sess.cart.Items()
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ID:       l.ID,
			Name:     l.Name,
			Color:    l.Color,
			Price:    l.Price,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
			Currency: l.CurrencyOrDefault(),
			ImageURL: l.ImageURL,
		})
	}
	customer := checkout.Normalize(sess.data)
	o := domain.Order{
		ID:         s.ids.NewOrderID(),
		CreatedAt:  s.clock.Now(),
		Customer:   customer,
		Items:      items,
		TotalPrice: sess.cart.TotalPrice(),
		Currency:   sess.cart.Currency(),
		Status:     domain.OrderStatusPending,
	}
	if customer.PaymentMethod == domain.PaymentPrepayment {
		pd := s.products.PaymentDetails(ctx)
		o.PaymentDetails = &pd
	}
	return o
}

func (s *OrderService) notify(ctx context.Context, msg notify.Message) error {
	if s.notifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.notifyTimeout)
		defer cancel()
	}
	err := s.blocking.Notify(ctx, msg)
	s.metrics.ObserveNotification("blocking", err)
	return err
}

// forward hands the order to the best-effort channel on a tracked goroutine, detached
// from the request so a closed connection does not cancel it.
func (s *OrderService) forward(ctx context.Context, order domain.Order) {
	if s.bestEffort == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.bestEffort.Forward(detached, order)
	}()
}

// Wait blocks until every pending best-effort forward has finished.
func (s *OrderService) Wait() { s.wg.Wait() }

// LastOrder returns the confirmation snapshot of the session, ok=false when none exists.
func (s *OrderService) LastOrder(ctx context.Context, sid string) (*domain.LastOrder, bool) {
	sess := s.sessions.Get(ctx, sid)
	last, ok := repository.Lookup[domain.LastOrder](ctx, sess.store, repository.KeyLastOrder)
	if !ok {
		return nil, false
	}
	return &last, true
}

func (s *OrderService) List(ctx context.Context, f repository.OrderFilter) ([]domain.Order, error) {
	return s.orders.List(ctx, f)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.orders.GetByID(ctx, id)
}

// UpdateStatus applies one transition. Moving to shipped stores the tracking number with it.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, to domain.OrderStatus, trackingNumber string) (*domain.Order, error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckTransition(o.Status, to, trackingNumber); err != nil {
		return nil, fmt.Errorf("order %s %s -> %s: %w", o.ID, o.Status, to, err)
	}
	from := o.Status
	o.Status = to
	if to == domain.OrderStatusShipped {
		o.TrackingNumber = strings.TrimSpace(trackingNumber)
	}
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	s.metrics.ObserveStatusChange(string(to))
	zerolog.Ctx(ctx).Info().Str("order_id", o.ID).Str("from", string(from)).Str("to", string(to)).Msg("order status changed")
	return o, nil
}
