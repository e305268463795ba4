package webserver

import (
	"net/http"
	"strconv"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/shop"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (s *WebServer) index(c echo.Context) error {
	search := c.QueryParam("search")
	products, err := s.catalog.List(c.Request().Context(), search)
	if err != nil {
		return err
	}
	return s.render(c, "index", map[string]interface{}{
		"Products": products,
		"Search":   search,
	})
}

func (s *WebServer) addToCart(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cart := s.loadCart(c)
	err = s.carts.Add(c.Request().Context(), cart, id, 1)
	switch {
	case errors.Is(err, shop.ErrNotFound):
		s.flash(c, "danger", "Product not found")
	case errors.Is(err, shop.ErrOutOfStock):
		s.flash(c, "warning", "Out of stock")
	case errors.Is(err, shop.ErrExceedsStock):
		s.flash(c, "warning", "Cannot add more than stock")
	case err != nil:
		return err
	default:
		s.saveCart(c, cart)
	}
	return c.Redirect(http.StatusFound, "/")
}

func (s *WebServer) viewCart(c echo.Context) error {
	view, err := s.carts.View(c.Request().Context(), s.loadCart(c))
	if err != nil {
		return err
	}
	return s.render(c, "cart", map[string]interface{}{"View": view})
}

func (s *WebServer) removeItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cart := s.loadCart(c)
	if cart.Quantity(id) > 0 {
		cart.Remove(id)
		s.saveCart(c, cart)
		s.flash(c, "info", "Item removed")
	}
	return c.Redirect(http.StatusFound, "/cart")
}

func (s *WebServer) clearCart(c echo.Context) error {
	cart := s.loadCart(c)
	if !cart.IsEmpty() {
		cart.Clear()
		s.saveCart(c, cart)
	}
	return c.Redirect(http.StatusFound, "/cart")
}
