package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"aromashop/internal/domain"
)

// ErrNotFound возвращается, когда ключ или сущность не найдены
var ErrNotFound = domain.ErrNotFound

// Ключи пространства документов
const (
	KeyCart                = "cart"
	KeyLastOrder           = "lastOrder"
	KeyOrders              = "orders"
	KeyProductData         = "productData"
	KeyPaymentDetails      = "paymentDetails"
	KeyIntegrationSettings = "integrationSettings"
	KeyContactsData        = "contactsData"
)

// ContentKey key of an admin-editable page section.
func ContentKey(section string) string {
	return "content:" + section
}

// Store key/value пространство JSON-документов
type Store interface {
	// Load returns ErrNotFound when the key is absent.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Get reads key into a T. A missing key, a backend error or an unparseable value all
// yield def; corruption is logged and never propagated.
func Get[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("store read failed, using default")
		}
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("malformed stored value, using default")
		return def
	}
	return v
}

// Lookup is Get without the default: ok is false when the key is missing or unreadable.
func Lookup[T any](ctx context.Context, s Store, key string) (T, bool) {
	var zero T
	raw, err := s.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("store read failed")
		}
		return zero, false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("malformed stored value")
		return zero, false
	}
	return v, true
}

// Set serializes v and writes it under key.
func Set[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// scoped prefixes every key, one namespace per browser session
type scoped struct {
	next   Store
	prefix string
}

// Scoped returns a view of s where every key lives under "<scope>:".
func Scoped(s Store, scope string) Store {
	return &scoped{next: s, prefix: scope + ":"}
}

// SessionScope key namespace of a storefront session.
func SessionScope(sessionID string) string {
	return "session:" + sessionID
}

func (s *scoped) Load(ctx context.Context, key string) ([]byte, error) {
	return s.next.Load(ctx, s.prefix+key)
}

func (s *scoped) Save(ctx context.Context, key string, value []byte) error {
	return s.next.Save(ctx, s.prefix+key, value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.next.Delete(ctx, s.prefix+key)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	List(ctx context.Context, f OrderFilter) ([]domain.Order, error)
}

// OrderFilter параметры фильтрации списка заказов
type OrderFilter struct {
	Status   domain.OrderStatus
	Customer string
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
