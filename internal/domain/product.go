package domain

import "time"

const (
	// DefaultStock is assigned to new products; nothing in scope decrements it.
	DefaultStock = 100

	DefaultCategory = "general"

	DefaultImage = "https://via.placeholder.com/300x300.png?text=Product"
)

// Product represents a catalog item available in the storefront
type Product struct {
	ID          int64     `gorm:"primaryKey" json:"id,string"`
	Title       string    `gorm:"index" json:"title"`
	Description string    `gorm:"size:2048" json:"description"`
	Price       float64   `json:"price"` // price in main currency units, never negative
	Image       string    `gorm:"size:1024" json:"image"`
	Stock       int       `json:"stock"`
	Category    string    `gorm:"size:64;index" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
