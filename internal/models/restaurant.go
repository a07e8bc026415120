package models

import "time"

// Coordinates is a plain lat/lng pair used across addresses and delivery.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Address struct {
	Street       string       `json:"street"`
	Number       string       `json:"number"`
	Neighborhood string       `json:"neighborhood"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	ZipCode      string       `json:"zipCode"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

type Contact struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

type DeliverySettings struct {
	BaseFee              float64 `json:"baseFee"`
	PerKmFee             float64 `json:"perKmFee"`
	MaxDistance          float64 `json:"maxDistance"`
	FreeDeliveryMinOrder float64 `json:"freeDeliveryMinOrder"`
}

type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type OperatingHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// Restaurant is a singleton profile row: handlers always operate on the
// first row found and create it with defaults when absent.
type Restaurant struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	Name              string            `gorm:"size:255;not null" json:"name"`
	Description       string            `gorm:"type:text" json:"description"`
	Address           *Address          `gorm:"serializer:json" json:"address"`
	Contact           *Contact          `gorm:"serializer:json" json:"contact"`
	DeliverySettings  *DeliverySettings `gorm:"serializer:json" json:"deliverySettings"`
	OperatingHours    *OperatingHours   `gorm:"serializer:json" json:"operatingHours"`
	IsOpen            bool              `gorm:"default:true" json:"isOpen"`
	EstimatedPrepTime string            `gorm:"size:50" json:"estimatedPrepTime"`
	Logo              string            `gorm:"size:500" json:"logo"`
	PrimaryColor      string            `gorm:"size:20" json:"primaryColor"`
	SecondaryColor    string            `gorm:"size:20" json:"secondaryColor"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

func (Restaurant) TableName() string { return "restaurants" }

// DefaultDeliverySettings are the fallbacks used whenever the restaurant row
// has no delivery settings stored.
func DefaultDeliverySettings() *DeliverySettings {
	return &DeliverySettings{
		BaseFee:              5.00,
		PerKmFee:             2.00,
		MaxDistance:          15.0,
		FreeDeliveryMinOrder: 50.00,
	}
}
