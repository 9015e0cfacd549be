package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/Kajalkumari31/ministore/internal/catalog"
)

var defaultCatalog = []struct {
	title       string
	description string
	price       float64
	category    string
}{
	{"Smart Watch", "Water resistant smart watch with heart-rate monitor", 2999, "electronics"},
	{"Running Shoes", "Lightweight trainers for daily runs", 1999, "sports"},
	{"Backpack", "25L everyday backpack with laptop sleeve", 1299, "accessories"},
	{"Wireless Earbuds", "Bluetooth 5.3 earbuds with charging case", 1799, "electronics"},
	{"Coffee Mug", "Ceramic mug, 350ml", 299, "home"},
}

// checkCatalog seeds a default product set when the catalog is empty so a
// fresh install has something to browse.
func (a *Application) checkCatalog() {
	ctx := context.Background()
	total, err := a.store.Count(ctx)
	if err != nil {
		zap.L().Error("failed to inspect catalog", zap.Error(err))
		return
	}
	if total > 0 {
		return
	}

	for _, seed := range defaultCatalog {
		price := seed.price
		_, err := a.service.Create(ctx, catalog.CreateRequest{
			Title:       seed.title,
			Description: seed.description,
			Price:       &price,
			Category:    seed.category,
		})
		if err != nil {
			zap.L().Error("failed to seed product", zap.String("title", seed.title), zap.Error(err))
		}
	}
	zap.L().Info("seeded default catalog", zap.Int("products", len(defaultCatalog)))
}
