package models

import (
	"math"
	"time"
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    uint       `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Lines     []CartLine `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartLine is a denormalized snapshot of a product at add time. Later product
// edits or deletes do not propagate to existing lines (historical pricing).
// The same product can appear on multiple lines; lines are addressed by ID.
type CartLine struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"cart_id"`
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductPrice float64   `json:"product_price"`
	ProductImage string    `json:"product_image"`
	BrandName    string    `json:"brand_name"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

func (l CartLine) Subtotal() float64 {
	return Round2(l.ProductPrice * float64(l.Quantity))
}

// CartTotal sums the per-line subtotals, each rounded to cents.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return Round2(total)
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
