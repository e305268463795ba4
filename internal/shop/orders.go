package shop

import (
	"context"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Orders reads order history.
type Orders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{db: db}
}

// ListByUser returns the user's orders newest first, items included.
func (s *Orders) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	var rows []domain.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	return rows, nil
}
