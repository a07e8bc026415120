package service

import (
	"fmt"

	"grillmanager/internal/domain"
	"grillmanager/internal/models"
	"grillmanager/pkg/location"
)

// NotAvailableError is returned when the destination lies beyond the
// configured maximum delivery distance.
type NotAvailableError struct {
	MaxDistance       float64
	RequestedDistance float64
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("delivery not available: %.1f km exceeds max %.1f km", e.RequestedDistance, e.MaxDistance)
}

// FeeQuote is the delivery estimate returned to the client. Distance and fee
// are rounded for presentation only.
type FeeQuote struct {
	Distance              float64 `json:"distance"`
	BaseFee               float64 `json:"baseFee"`
	PerKmFee              float64 `json:"perKmFee"`
	CalculatedFee         float64 `json:"calculatedFee"`
	FreeDelivery          bool    `json:"freeDelivery"`
	EstimatedDeliveryTime string  `json:"estimatedDeliveryTime"`
	DeliveryZone          string  `json:"deliveryZone"`
	IsDeliverable         bool    `json:"isDeliverable"`
}

// DeliveryService estimates fees from the restaurant's fixed origin.
type DeliveryService struct {
	originLat float64
	originLng float64
}

func NewDeliveryService(originLat, originLng float64) *DeliveryService {
	return &DeliveryService{originLat: originLat, originLng: originLng}
}

// Quote computes the fee for delivering an order of the given value to dest.
// settings falls back to the hardcoded defaults when nil.
func (s *DeliveryService) Quote(dest models.Coordinates, orderValue float64, settings *models.DeliverySettings) (*FeeQuote, error) {
	if settings == nil {
		settings = models.DefaultDeliverySettings()
	}

	distance := location.HaversineKm(s.originLat, s.originLng, dest.Latitude, dest.Longitude)

	if distance > settings.MaxDistance {
		return nil, &NotAvailableError{
			MaxDistance:       settings.MaxDistance,
			RequestedDistance: distance,
		}
	}

	fee := settings.BaseFee + distance*settings.PerKmFee
	freeDelivery := orderValue >= settings.FreeDeliveryMinOrder
	if freeDelivery {
		fee = 0
	}

	return &FeeQuote{
		Distance:              location.Round1(distance),
		BaseFee:               settings.BaseFee,
		PerKmFee:              settings.PerKmFee,
		CalculatedFee:         location.Round2(fee),
		FreeDelivery:          freeDelivery,
		EstimatedDeliveryTime: EstimatedWindow(distance),
		DeliveryZone:          domain.DeliveryZone(distance),
		IsDeliverable:         true,
	}, nil
}

// EstimatedWindow is the delivery time window, linear in distance.
func EstimatedWindow(distanceKm float64) string {
	low := int(distanceKm*2 + 15 + 0.5)
	high := int(distanceKm*2 + 25 + 0.5)
	return fmt.Sprintf("%d-%d min", low, high)
}
