package repository

import (
	"regexp"
	"testing"

	"grillmanager/internal/domain"
	"grillmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^ORD-\d{8}-\d{3}$`)
	for i := 0; i < 20; i++ {
		id := GenerateOrderID()
		assert.True(t, re.MatchString(id), "unexpected order id %q", id)
	}
}

func TestOrderRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	o := &models.Order{
		OrderID: "ORD-20260830-042",
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Hambúrguer Clássico", Quantity: 2, UnitPrice: 25.90, TotalPrice: 51.80},
		},
		Customer:        &models.Customer{Name: "João Silva", Phone: "(11) 98888-7777"},
		DeliveryAddress: &models.Address{Street: "Rua Augusta", Number: "456", Coordinates: &models.Coordinates{Latitude: -23.55, Longitude: -46.64}},
		Payment:         &models.PaymentSummary{Method: "pix"},
		Delivery:        &models.DeliverySummary{Fee: 9.5, Distance: 2.3, DeliveryZone: "zone_002"},
		Totals:          &models.Totals{Subtotal: 51.80, DeliveryFee: 9.5, Total: 61.30},
		Status:          domain.OrderStatusPending,
		Timeline: []models.TimelineEntry{
			{Status: domain.OrderStatusPending, Message: "Pedido recebido"},
		},
	}
	require.NoError(t, repo.Create(o))

	got, err := repo.GetByOrderID("ORD-20260830-042")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "João Silva", got.Customer.Name)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, 51.80, got.Items[0].TotalPrice)
	assert.Equal(t, "zone_002", got.Delivery.DeliveryZone)
	assert.InDelta(t, -23.55, got.DeliveryAddress.Coordinates.Latitude, 1e-9)
	require.Len(t, got.Timeline, 1)
	assert.Equal(t, domain.OrderStatusPending, got.Timeline[0].Status)
}

func TestOrderGetByOrderIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	got, err := repo.GetByOrderID("ORD-19990101-000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderListNotCancelled(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	seed := []struct {
		id     string
		status string
	}{
		{"ORD-20260830-001", domain.OrderStatusPending},
		{"ORD-20260830-002", domain.OrderStatusCancelled},
		{"ORD-20260830-003", domain.OrderStatusDelivered},
	}
	for _, s := range seed {
		require.NoError(t, repo.Create(&models.Order{OrderID: s.id, Status: s.status}))
	}

	list, err := repo.ListNotCancelled()
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, o := range list {
		assert.NotEqual(t, domain.OrderStatusCancelled, o.Status)
	}
}

func TestOrderUpdateAppendsTimeline(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	o := &models.Order{
		OrderID:  "ORD-20260830-077",
		Status:   domain.OrderStatusPending,
		Timeline: []models.TimelineEntry{{Status: domain.OrderStatusPending, Message: "Pedido recebido"}},
	}
	require.NoError(t, repo.Create(o))

	o.Status = domain.OrderStatusConfirmed
	o.Timeline = append(o.Timeline, models.TimelineEntry{
		Status:  domain.OrderStatusConfirmed,
		Message: domain.StatusMessage(domain.OrderStatusConfirmed),
	})
	require.NoError(t, repo.Update(o))

	got, err := repo.GetByOrderID("ORD-20260830-077")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.OrderStatusConfirmed, got.Status)
	require.Len(t, got.Timeline, 2)
	assert.Equal(t, domain.OrderStatusConfirmed, got.Timeline[1].Status)
}
