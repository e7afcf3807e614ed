package domain

import (
	"errors"
	"testing"
)

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		tracking string
		want     error
	}{
		{OrderStatusPending, OrderStatusProcessing, "", nil},
		{OrderStatusProcessing, OrderStatusShipped, "", ErrTrackingNumberRequired},
		{OrderStatusProcessing, OrderStatusShipped, "   ", ErrTrackingNumberRequired},
		{OrderStatusProcessing, OrderStatusShipped, "20450000000000", nil},
		{OrderStatusShipped, OrderStatusDelivered, "", nil},
		{OrderStatusPending, OrderStatusShipped, "204500", ErrInvalidTransition},
		{OrderStatusPending, OrderStatusPending, "", ErrInvalidTransition},
		{OrderStatusProcessing, OrderStatusPending, "", ErrInvalidTransition},
		{OrderStatusPending, OrderStatusRejected, "", nil},
		{OrderStatusShipped, OrderStatusRejected, "", nil},
		{OrderStatusDelivered, OrderStatusRejected, "", ErrInvalidTransition},
		{OrderStatusRejected, OrderStatusProcessing, "", ErrInvalidTransition},
		{OrderStatusPending, OrderStatus("lost"), "", ErrInvalidInput},
	}
	for _, tc := range cases {
		err := CheckTransition(tc.from, tc.to, tc.tracking)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s -> %s (%q): expected %v, got %v", tc.from, tc.to, tc.tracking, tc.want, err)
		}
	}
}

func TestIntegrationTypeAliases(t *testing.T) {
	if IntegrationType("googleSheets").Normalize() != IntegrationSpreadsheetBridge {
		t.Fatalf("googleSheets alias not mapped")
	}
	if IntegrationType("webhook").Normalize() != IntegrationGenericWebhook {
		t.Fatalf("webhook alias not mapped")
	}
	if IntegrationType("ftp").Valid() {
		t.Fatalf("unknown type must be invalid")
	}
}
