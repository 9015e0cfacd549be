package catalog

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Kajalkumari31/ministore/internal/domain"
	"github.com/Kajalkumari31/ministore/pkg/common"
)

// CreateRequest carries the client-supplied fields for a new product.
// Price and Stock are pointers so that a missing field can be told apart
// from a zero value.
type CreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Stock       *int     `json:"stock"`
	Category    string   `json:"category"`
}

// Service validates requests at the catalog boundary and assigns ids,
// defaults and timestamps before handing documents to the store.
type Service struct {
	store ProductStore
}

func NewService(store ProductStore) *Service {
	return &Service{store: store}
}

// List returns the catalog, optionally filtered by a case-insensitive title
// substring, ordered newest-created-first.
func (s *Service) List(ctx context.Context, filter string) ([]domain.Product, error) {
	return s.store.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Product, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, domain.NewValidationError("title", "Title is required")
	}
	if req.Price == nil {
		return nil, domain.NewValidationError("price", "Price is required")
	}
	if *req.Price < 0 {
		return nil, domain.NewValidationError("price", "Price must be >= 0")
	}

	now := time.Now()
	p := &domain.Product{
		ID:          common.UUIDint64(),
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		Image:       strings.TrimSpace(req.Image),
		Stock:       domain.DefaultStock,
		Category:    domain.DefaultCategory,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Image == "" {
		p.Image = domain.DefaultImage
	}
	if req.Stock != nil && *req.Stock >= 0 {
		p.Stock = *req.Stock
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		p.Category = category
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	zap.L().Info("product created",
		zap.Int64("id", p.ID),
		zap.String("title", p.Title),
		zap.Float64("price", p.Price))
	return p, nil
}

// Count reports the catalog size, used by the stats job.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
