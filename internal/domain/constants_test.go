package domain

import "testing"

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range ValidOrderStatuses {
		if !IsValidOrderStatus(s) {
			t.Errorf("IsValidOrderStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "pending", "SHIPPED", "UNKNOWN"} {
		if IsValidOrderStatus(s) {
			t.Errorf("IsValidOrderStatus(%q) = true, want false", s)
		}
	}
}

func TestStatusMessageFallback(t *testing.T) {
	if msg := StatusMessage(OrderStatusDelivered); msg != "Pedido entregue" {
		t.Errorf("StatusMessage(DELIVERED) = %q", msg)
	}
	if msg := StatusMessage("SOMETHING_ELSE"); msg != "Status atualizado" {
		t.Errorf("fallback message = %q, want %q", msg, "Status atualizado")
	}
}

func TestDeliveryZone(t *testing.T) {
	tests := []struct {
		distance float64
		want     string
	}{
		{0, ZoneInner},
		{2, ZoneInner},
		{2.1, ZoneNear},
		{5, ZoneNear},
		{7.5, ZoneOuter},
		{10, ZoneOuter},
		{10.01, ZoneExtreme},
		{50, ZoneExtreme},
	}
	for _, tt := range tests {
		if got := DeliveryZone(tt.distance); got != tt.want {
			t.Errorf("DeliveryZone(%f) = %q, want %q", tt.distance, got, tt.want)
		}
	}
}
