package domain

import "strings"

var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:    OrderStatusProcessing,
	OrderStatusProcessing: OrderStatusShipped,
	OrderStatusShipped:    OrderStatusDelivered,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusRejected:
		return true
	}
	return false
}

// Terminal delivered и rejected не имеют переходов
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusRejected
}

// CheckTransition validates a single status step. Shipping requires a tracking number.
func CheckTransition(from, to OrderStatus, trackingNumber string) error {
	if !to.Valid() {
		return ErrInvalidInput
	}
	if from.Terminal() {
		return ErrInvalidTransition
	}
	if to == OrderStatusRejected {
		return nil
	}
	if nextStatus[from] != to {
		return ErrInvalidTransition
	}
	if to == OrderStatusShipped && strings.TrimSpace(trackingNumber) == "" {
		return ErrTrackingNumberRequired
	}
	return nil
}
