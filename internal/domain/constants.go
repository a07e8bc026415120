package domain

const (
	OrderStatusPending        = "PENDING"
	OrderStatusConfirmed      = "CONFIRMED"
	OrderStatusPreparing      = "PREPARING"
	OrderStatusReady          = "READY"
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      = "DELIVERED"
	OrderStatusCancelled      = "CANCELLED"
)

// ValidOrderStatuses is the canonical status set accepted by the status
// transition endpoint. Transitions are unconditional: any accepted status
// overwrites the current one.
var ValidOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range ValidOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var statusMessages = map[string]string{
	OrderStatusPending:        "Pedido recebido",
	OrderStatusConfirmed:      "Pedido confirmado",
	OrderStatusPreparing:      "Pedido em preparação",
	OrderStatusReady:          "Pedido pronto para retirada",
	OrderStatusOutForDelivery: "Pedido saiu para entrega",
	OrderStatusDelivered:      "Pedido entregue",
	OrderStatusCancelled:      "Pedido cancelado",
}

// StatusMessage returns the timeline text for a status change.
func StatusMessage(status string) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return "Status atualizado"
}

const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
	PaymentStatusExpired = "EXPIRED"
)

const PaymentMethodPix = "pix"

const (
	ZoneInner   = "zone_001" // <= 2 km
	ZoneNear    = "zone_002" // <= 5 km
	ZoneOuter   = "zone_003" // <= 10 km
	ZoneExtreme = "zone_004"
)

// DeliveryZone buckets a distance in km into a coarse reporting zone.
func DeliveryZone(distanceKm float64) string {
	switch {
	case distanceKm <= 2:
		return ZoneInner
	case distanceKm <= 5:
		return ZoneNear
	case distanceKm <= 10:
		return ZoneOuter
	default:
		return ZoneExtreme
	}
}
