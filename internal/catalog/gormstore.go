package catalog

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Kajalkumari31/ministore/internal/domain"
)

// GormProductStore persists products through gorm (postgres in production).
type GormProductStore struct {
	db *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

func (s *GormProductStore) List(ctx context.Context, filter string) ([]domain.Product, error) {
	query := s.db.WithContext(ctx).Model(&domain.Product{})
	if filter = strings.TrimSpace(filter); filter != "" {
		if strings.EqualFold(s.db.Name(), "postgres") {
			query = query.Where("title ILIKE ?", "%"+filter+"%")
		} else {
			query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter)+"%")
		}
	}

	var rows []domain.Product
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return rows, nil
}

func (s *GormProductStore) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrNotFound
	case err != nil:
		return nil, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return &p, nil
}

func (s *GormProductStore) Create(ctx context.Context, p *domain.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return nil
}

func (s *GormProductStore) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return total, nil
}

func (s *GormProductStore) Reset(ctx context.Context) error {
	migrator := s.db.WithContext(ctx).Migrator()
	if err := migrator.DropTable(domain.Tables...); err != nil {
		return errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	if err := migrator.AutoMigrate(domain.Tables...); err != nil {
		return errors.Wrap(domain.ErrUnavailable, err.Error())
	}
	return nil
}

func (s *GormProductStore) Close() error {
	sqldb, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}
