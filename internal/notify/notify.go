// Package notify delivers placed orders to the shop owner. The primary channel blocks
// the checkout and its failure aborts the order; integrations are best effort and
// cannot report failure to the caller.
package notify

import (
	"context"

	"aromashop/internal/domain"
)

// BlockingNotifier основной канал: ошибка отменяет оформление заказа
type BlockingNotifier interface {
	Notify(ctx context.Context, msg Message) error
}

// BestEffortNotifier вторичный канал: ошибки только логируются
type BestEffortNotifier interface {
	Forward(ctx context.Context, order domain.Order)
}

// AttributionKeys are the marketing query parameters copied into the message, in order.
var AttributionKeys = []string{"ref_id", "sub1", "sub2", "sub3", "sub4", "sub5", "sub6", "sub7", "sub8", "fbp"}

// Message everything the owner needs to call the buyer back.
type Message struct {
	Header      string
	Order       domain.Order
	Referrer    string
	Attribution map[string]string
}
