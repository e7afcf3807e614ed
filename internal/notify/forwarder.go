package notify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"aromashop/internal/domain"
	"aromashop/internal/metrics"
	"aromashop/internal/repository"
)

// DefaultIntegration is what the admin panel shows before anything was saved.
var DefaultIntegration = domain.IntegrationSettings{Type: domain.IntegrationSpreadsheetBridge}

// Integrations forwards an order to the admin-configured endpoint and any fixed sinks.
// Settings are read at forward time so edits apply to the next order.
type Integrations struct {
	store   repository.Store
	client  *http.Client
	sinks   []Sink
	timeout time.Duration
	metrics *metrics.Metrics
}

var _ BestEffortNotifier = (*Integrations)(nil)

func NewIntegrations(store repository.Store, client *http.Client, timeout time.Duration, m *metrics.Metrics, sinks ...Sink) *Integrations {
	if client == nil {
		client = http.DefaultClient
	}
	return &Integrations{store: store, client: client, sinks: sinks, timeout: timeout, metrics: m}
}

// configured returns the sink built from stored settings, nil when switched off.
func (n *Integrations) configured(ctx context.Context) Sink {
	s := repository.Get(ctx, n.store, repository.KeyIntegrationSettings, DefaultIntegration)
	url := strings.TrimSpace(s.URL)
	if !s.Enabled || url == "" {
		return nil
	}
	switch s.Type.Normalize() {
	case domain.IntegrationSpreadsheetBridge:
		return &spreadsheetSink{client: n.client, url: url}
	case domain.IntegrationGenericWebhook:
		return &webhookSink{client: n.client, url: url}
	}
	zerolog.Ctx(ctx).Warn().Str("type", string(s.Type)).Msg("unknown integration type, skipping")
	return nil
}

// Forward sends to every sink concurrently and returns when all are done. Failures are
// logged per sink and never returned.
func (n *Integrations) Forward(ctx context.Context, order domain.Order) {
	sinks := append([]Sink(nil), n.sinks...)
	if s := n.configured(ctx); s != nil {
		sinks = append(sinks, s)
	}
	if len(sinks) == 0 {
		return
	}
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	payload := NewOrderPayload(order)
	log := zerolog.Ctx(ctx)
	var g errgroup.Group
	for _, s := range sinks {
		g.Go(func() error {
			err := s.Send(ctx, payload)
			n.metrics.ObserveNotification(s.Name(), err)
			if err != nil {
				log.Warn().Err(err).Str("sink", s.Name()).Str("order_id", order.ID).Msg("integration forward failed")
				return err
			}
			log.Debug().Str("sink", s.Name()).Str("order_id", order.ID).Msg("order forwarded")
			return nil
		})
	}
	_ = g.Wait()
}
