package shop

import (
	"context"
	"strings"
	"time"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/bogdan-mardyshev/Mini-Amazon/pkg/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Admin is the privileged catalog editor. Authorization is enforced by the
// web layer's single admin gate; the service assumes a vetted actor.
type Admin struct {
	db *gorm.DB
}

func NewAdmin(db *gorm.DB) *Admin {
	return &Admin{db: db}
}

// CreateProduct inserts a new product. Empty name or negative price/stock is
// ErrInvalidInput.
func (s *Admin) CreateProduct(ctx context.Context, name string, price float64, stock int) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price < 0 || stock < 0 {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	p := &domain.Product{
		ID:        common.UUIDint64(),
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	zap.L().Info("product created", zap.Int64("id", p.ID), zap.String("name", name))
	return p, nil
}

// UpdateProduct overwrites name, price and stock in place. Full replace, not
// a partial patch.
func (s *Admin) UpdateProduct(ctx context.Context, id int64, name string, price float64, stock int) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price < 0 || stock < 0 {
		return nil, ErrInvalidInput
	}

	var p domain.Product
	err := s.db.WithContext(ctx).First(&p, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, errors.Wrap(err, "query product")
	}

	p.Name = name
	p.Price = price
	p.Stock = stock
	p.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, errors.Wrap(err, "update product")
	}
	zap.L().Info("product updated", zap.Int64("id", p.ID), zap.String("name", name))
	return &p, nil
}
