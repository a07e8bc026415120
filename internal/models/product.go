package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"size:100;not null;index" json:"category"` // category name, not id
	Image       string    `gorm:"size:500" json:"image"`
	Popular     bool      `gorm:"default:false" json:"popular"`
	Available   bool      `gorm:"default:true" json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }
