package models

import "time"

// ProductRef points at a product by id with its position inside the section.
type ProductRef struct {
	ProductID    uint `json:"productId"`
	DisplayOrder int  `json:"displayOrder"`
}

type PromotionalSection struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	DisplayOrder int          `gorm:"default:0" json:"displayOrder"`
	Active       bool         `gorm:"default:true" json:"active"`
	Products     []ProductRef `gorm:"serializer:json" json:"products"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (PromotionalSection) TableName() string { return "promotional_sections" }
