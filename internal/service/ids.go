package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"aromashop/internal/clock"
)

// IDGenerator выдаёт номер заказа
type IDGenerator interface {
	NewOrderID() string
}

// LegacyIDs ORD-YYMMDD-<last 6 digits of unix millis>-<3 random digits>. Readable over
// the phone but unique only with high probability.
type LegacyIDs struct {
	clock clock.Clock
	rand  func(n int) int
}

func NewLegacyIDs(clk clock.Clock) *LegacyIDs {
	return &LegacyIDs{clock: clk, rand: rand.IntN}
}

func (g *LegacyIDs) NewOrderID() string {
	now := g.clock.Now()
	return fmt.Sprintf("ORD-%s-%06d-%03d", now.Format("060102"), now.UnixMilli()%1_000_000, g.rand(1000))
}

// UUIDIDs ORD-<uuid v4>.
type UUIDIDs struct{}

func (UUIDIDs) NewOrderID() string { return "ORD-" + uuid.NewString() }
