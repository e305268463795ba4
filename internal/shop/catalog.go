package shop

import (
	"context"
	"strings"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Catalog lists and resolves products.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// List returns products whose name contains search as a case-insensitive
// substring, or all products when search is blank. Ordered by id so repeated
// identical queries are stable.
func (s *Catalog) List(ctx context.Context, search string) ([]domain.Product, error) {
	db := s.db.WithContext(ctx).Model(&domain.Product{})
	search = strings.TrimSpace(search)
	if search != "" {
		if strings.EqualFold(s.db.Name(), "postgres") {
			db = db.Where("name ILIKE ?", "%"+search+"%")
		} else {
			db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
	}

	var rows []domain.Product
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	return rows, nil
}

// Get resolves one product by id.
func (s *Catalog) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := s.db.WithContext(ctx).First(&p, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, errors.Wrap(err, "query product")
	}
	return &p, nil
}
