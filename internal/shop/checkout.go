package shop

import (
	"context"
	"time"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/bogdan-mardyshev/Mini-Amazon/pkg/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Checkout converts a cart into a durable order. The stock check and
// decrement run inside one transaction so concurrent checkouts on the same
// product cannot jointly oversell.
type Checkout struct {
	db *gorm.DB
}

func NewCheckout(db *gorm.DB) *Checkout {
	return &Checkout{db: db}
}

// Place validates every cart line against live stock and, if all pass,
// atomically creates the order, its item snapshots, and the stock decrements.
// On success the cart is cleared; on any failure the store and the cart are
// left unchanged and a *StockViolationError (or ErrEmptyCart) is returned.
func (s *Checkout) Place(ctx context.Context, userID int64, cart domain.Cart) (*domain.Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	// Validation pass outside the transaction gives a cheap early answer;
	// the conditional decrement below remains the authority.
	for _, id := range cart.ProductIDs() {
		var p domain.Product
		err := s.db.WithContext(ctx).First(&p, id).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, &StockViolationError{ProductID: id}
		case err != nil:
			return nil, errors.Wrap(err, "query product")
		}
		if p.Stock < cart.Quantity(id) {
			return nil, &StockViolationError{ProductID: p.ID, ProductName: p.Name}
		}
	}

	order := &domain.Order{
		ID:        common.UUIDint64(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range cart.ProductIDs() {
			qty := cart.Quantity(id)

			var p domain.Product
			err := tx.First(&p, id).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return &StockViolationError{ProductID: id}
			case err != nil:
				return errors.Wrap(err, "query product")
			}

			// Conditional decrement: zero rows affected means another
			// checkout won the stock, abort and roll everything back.
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND stock >= ?", id, qty).
				Update("stock", gorm.Expr("stock - ?", qty))
			if res.Error != nil {
				return errors.Wrap(res.Error, "decrement stock")
			}
			if res.RowsAffected == 0 {
				return &StockViolationError{ProductID: p.ID, ProductName: p.Name}
			}

			order.TotalPrice += p.Price * float64(qty)
			order.Items = append(order.Items, domain.OrderItem{
				ID:              common.UUIDint64(),
				OrderID:         order.ID,
				ProductID:       p.ID,
				ProductName:     p.Name,
				Quantity:        qty,
				PriceAtPurchase: p.Price,
			})
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}

	cart.Clear()
	zap.L().Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Float64("total", order.TotalPrice))
	return order, nil
}
