package cart

import (
	"github.com/Kajalkumari31/ministore/internal/domain"
)

// LineItem is a snapshot of a product at the moment it was added, plus the
// quantity. At most one line item exists per product id.
type LineItem struct {
	ProductID   int64   `json:"id,string"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Qty         int     `json:"qty"` // always >= 1
}

// NewLineItem snapshots a product with quantity 1.
func NewLineItem(p domain.Product) LineItem {
	return LineItem{
		ProductID:   p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Stock:       p.Stock,
		Qty:         1,
	}
}

// State is the full cart state. Values returned by the store are snapshots,
// safe to hold across later dispatches.
type State struct {
	Items []LineItem `json:"items"`
}

// Total is the derived cart total; it is recomputed on every call and never
// stored.
func (s State) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// Count returns the total unit count across all line items.
func (s State) Count() int {
	var n int
	for _, item := range s.Items {
		n += item.Qty
	}
	return n
}

// Find returns the line item for a product id, if present.
func (s State) Find(productID int64) (LineItem, bool) {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return LineItem{}, false
}

func (s State) clone() State {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	return State{Items: items}
}
