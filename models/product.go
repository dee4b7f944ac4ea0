package models

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	BrandID     uint    `gorm:"index" json:"brand_id"`
	Brand       Brand   `gorm:"foreignKey:BrandID" json:"brand"`
	Image       string  `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
