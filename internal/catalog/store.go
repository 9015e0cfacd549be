package catalog

import (
	"context"

	"github.com/Kajalkumari31/ministore/internal/domain"
)

// ProductStore abstracts the document collection backing the catalog.
// Implementations must return listings ordered newest-created-first and
// apply the filter as a case-insensitive title substring match.
type ProductStore interface {
	List(ctx context.Context, filter string) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Count(ctx context.Context) (int64, error)
	// Reset drops every product document and recreates an empty collection.
	Reset(ctx context.Context) error
	Close() error
}
