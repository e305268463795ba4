package webserver

import (
	"net/http"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/shop"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (s *WebServer) placeOrder(c echo.Context) error {
	cart := s.loadCart(c)

	var stockErr *shop.StockViolationError
	_, err := s.checkout.Place(c.Request().Context(), actor(c).ID, cart)
	switch {
	case errors.Is(err, shop.ErrEmptyCart):
		return c.Redirect(http.StatusFound, "/")
	case errors.As(err, &stockErr):
		s.flash(c, "danger", "Stock issue: "+stockErr.Error())
		return c.Redirect(http.StatusFound, "/cart")
	case err != nil:
		return err
	}

	s.saveCart(c, cart)
	s.flash(c, "success", "Order placed successfully!")
	return c.Redirect(http.StatusFound, "/orders")
}

func (s *WebServer) listOrders(c echo.Context) error {
	orders, err := s.orders.ListByUser(c.Request().Context(), actor(c).ID)
	if err != nil {
		return err
	}
	return s.render(c, "orders", map[string]interface{}{
		"Orders": orders,
		"User":   actor(c),
	})
}
