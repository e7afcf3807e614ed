// Package cart holds the shopping cart aggregate. Every mutation writes the full line
// list back to the store before it becomes visible.
package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"aromashop/internal/clock"
	"aromashop/internal/domain"
	"aromashop/internal/repository"
)

// NewItem is a line to add; the cart assigns the id.
type NewItem struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Color    string
	ImageURL string
	Currency string
}

// Cart is not safe for concurrent use; callers serialize access per session.
type Cart struct {
	store repository.Store
	clock clock.Clock
	items []domain.CartItem
	open  bool
}

// Load restores the persisted lines from store, an empty cart when none are readable.
func Load(ctx context.Context, store repository.Store, clk clock.Clock) *Cart {
	items := repository.Get(ctx, store, repository.KeyCart, []domain.CartItem{})
	// drop lines a too-old or hand-edited document could carry
	kept := items[:0]
	for _, it := range items {
		if it.Quantity >= 1 {
			kept = append(kept, it)
		}
	}
	return &Cart{store: store, clock: clk, items: kept}
}

// lineID derives an opaque id from (name, color) and the add time. Names and labels may
// hold any text, the id has to stay a single URL path segment.
func lineID(name, color string, millis int64) string {
	h := uuid.NewSHA1(uuid.NameSpaceOID, []byte(name+"\x00"+color))
	return fmt.Sprintf("%x-%d", h[:6], millis)
}

func (c *Cart) commit(ctx context.Context, next []domain.CartItem) error {
	if err := repository.Set(ctx, c.store, repository.KeyCart, next); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	c.items = next
	return nil
}

func (c *Cart) clone() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// AddItem merges into the line with the same (name, color) or appends a new one, and
// opens the cart panel. Quantity and price are taken as given.
func (c *Cart) AddItem(ctx context.Context, in NewItem) (domain.CartItem, error) {
	next := c.clone()
	idx := -1
	for i := range next {
		if next[i].Name == in.Name && next[i].Color == in.Color {
			idx = i
			break
		}
	}
	if idx >= 0 {
		next[idx].Quantity += in.Quantity
	} else {
		currency := in.Currency
		if currency == "" {
			currency = domain.DefaultCurrency
		}
		next = append(next, domain.CartItem{
			ID:       lineID(in.Name, in.Color, c.clock.Now().UnixMilli()),
			Name:     in.Name,
			Price:    in.Price,
			Quantity: in.Quantity,
			Color:    in.Color,
			ImageURL: in.ImageURL,
			Currency: currency,
		})
		idx = len(next) - 1
	}
	if err := c.commit(ctx, next); err != nil {
		return domain.CartItem{}, err
	}
	c.open = true
	return next[idx], nil
}

// RemoveItem deletes the line; absent ids are a no-op.
func (c *Cart) RemoveItem(ctx context.Context, id string) error {
	next := make([]domain.CartItem, 0, len(c.items))
	for _, it := range c.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	if len(next) == len(c.items) {
		return nil
	}
	return c.commit(ctx, next)
}

// SetQuantity replaces the line quantity; q <= 0 removes the line.
func (c *Cart) SetQuantity(ctx context.Context, id string, q int) error {
	if q <= 0 {
		return c.RemoveItem(ctx, id)
	}
	next := c.clone()
	found := false
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity = q
			found = true
		}
	}
	if !found {
		return nil
	}
	return c.commit(ctx, next)
}

func (c *Cart) Clear(ctx context.Context) error {
	return c.commit(ctx, []domain.CartItem{})
}

// Items snapshot of current lines.
func (c *Cart) Items() []domain.CartItem { return c.clone() }

func (c *Cart) Empty() bool { return len(c.items) == 0 }

func (c *Cart) Find(id string) (domain.CartItem, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.CartItem{}, false
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice sums every line regardless of currency; see TotalsByCurrency.
func (c *Cart) TotalPrice() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

// Currency of the first line, UAH for an empty cart.
func (c *Cart) Currency() string {
	if len(c.items) == 0 {
		return domain.DefaultCurrency
	}
	return c.items[0].CurrencyOrDefault()
}

// TotalsByCurrency keeps per-currency sums apart.
func (c *Cart) TotalsByCurrency() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, it := range c.items {
		cur := it.CurrencyOrDefault()
		out[cur] = out[cur].Add(it.Subtotal())
	}
	return out
}

// MixedCurrency reports lines priced in more than one currency.
func (c *Cart) MixedCurrency() bool {
	return len(c.TotalsByCurrency()) > 1
}

func (c *Cart) IsOpen() bool      { return c.open }
func (c *Cart) SetOpen(open bool) { c.open = open }
