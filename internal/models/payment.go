package models

import "time"

type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrderID       string     `gorm:"size:30;not null;index" json:"orderId"` // business order id
	Method        string     `gorm:"size:20;not null" json:"method"`
	Amount        float64    `gorm:"not null" json:"amount"`
	PixCode       string     `gorm:"type:text" json:"pixCode"`
	QRCode        string     `gorm:"type:text" json:"qrCode"`
	TransactionID string     `gorm:"size:64;index" json:"transactionId"`
	Status        string     `gorm:"size:20;not null;index" json:"status"` // PENDING, PAID, EXPIRED
	ExpiresAt     *time.Time `json:"expiresAt"`
	PaidAt        *time.Time `json:"paidAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (Payment) TableName() string { return "payments" }
