package models

import "time"

type OrderItem struct {
	ProductID  uint    `json:"productId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	Notes      string  `json:"notes,omitempty"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type PaymentSummary struct {
	Method string `json:"method"`
}

type DeliverySummary struct {
	Fee           float64 `json:"fee"`
	Distance      float64 `json:"distance"`
	DeliveryZone  string  `json:"deliveryZone,omitempty"`
	EstimatedTime string  `json:"estimatedTime,omitempty"`
}

type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// TimelineEntry is one status-change event; the order's timeline is an
// append-only list of these.
type TimelineEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type Order struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	OrderID         string           `gorm:"uniqueIndex;size:30;not null" json:"orderId"` // ORD-YYYYMMDD-NNN
	Items           []OrderItem      `gorm:"serializer:json" json:"items"`
	Customer        *Customer        `gorm:"serializer:json" json:"customer"`
	DeliveryAddress *Address         `gorm:"serializer:json" json:"deliveryAddress"`
	Payment         *PaymentSummary  `gorm:"serializer:json" json:"payment"`
	Delivery        *DeliverySummary `gorm:"serializer:json" json:"delivery"`
	Totals          *Totals          `gorm:"serializer:json" json:"totals"`
	Notes           string           `gorm:"type:text" json:"notes"`
	Status          string           `gorm:"size:20;not null;index" json:"status"`
	Timeline        []TimelineEntry  `gorm:"serializer:json" json:"timeline"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }
