package shop

import (
	"context"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Carts validates cart mutations against live stock and prices carts for
// display. The cart itself lives in the session; persistence is the caller's
// concern.
type Carts struct {
	db *gorm.DB
}

func NewCarts(db *gorm.DB) *Carts {
	return &Carts{db: db}
}

// CartLine is one priced cart row.
type CartLine struct {
	Product   domain.Product
	Qty       int
	LineTotal float64
}

// CartView is a fully priced cart.
type CartView struct {
	Lines      []CartLine
	GrandTotal float64
}

// Add increments the cart quantity for a product by delta (pass 1 for the
// storefront's add button). The cart is left untouched on any failure:
// ErrNotFound for an unknown product, ErrOutOfStock when stock is zero,
// ErrExceedsStock when the stored quantity plus delta would exceed stock.
func (s *Carts) Add(ctx context.Context, cart domain.Cart, productID int64, delta int) error {
	if delta < 1 {
		return ErrInvalidInput
	}

	var p domain.Product
	err := s.db.WithContext(ctx).First(&p, productID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case err != nil:
		return errors.Wrap(err, "query product")
	}

	if p.Stock <= 0 {
		return ErrOutOfStock
	}
	if cart.Quantity(productID)+delta > p.Stock {
		return ErrExceedsStock
	}

	cart.SetQuantity(productID, cart.Quantity(productID)+delta)
	return nil
}

// View re-fetches every cart line against the live catalog. Entries whose
// product no longer exists are silently dropped; stale references are
// tolerated, not errors.
func (s *Carts) View(ctx context.Context, cart domain.Cart) (*CartView, error) {
	view := &CartView{}
	for _, id := range cart.ProductIDs() {
		var p domain.Product
		err := s.db.WithContext(ctx).First(&p, id).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			continue
		case err != nil:
			return nil, errors.Wrap(err, "query product")
		}

		qty := cart.Quantity(id)
		line := CartLine{Product: p, Qty: qty, LineTotal: p.Price * float64(qty)}
		view.Lines = append(view.Lines, line)
		view.GrandTotal += line.LineTotal
	}
	return view, nil
}
