package webserver

import (
	"net/http"
	"strconv"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/shop"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// parseProductForm validates the admin form fields: non-empty name and
// non-negative numeric price and stock.
func parseProductForm(c echo.Context) (name string, price float64, stock int, err error) {
	name = c.FormValue("name")
	price, perr := cast.ToFloat64E(c.FormValue("price"))
	stock, serr := cast.ToIntE(c.FormValue("stock"))
	if perr != nil || serr != nil || price < 0 || stock < 0 {
		return "", 0, 0, shop.ErrInvalidInput
	}
	return name, price, stock, nil
}

func (s *WebServer) addProductForm(c echo.Context) error {
	return s.render(c, "admin", map[string]interface{}{"Product": nil})
}

func (s *WebServer) addProduct(c echo.Context) error {
	name, price, stock, err := parseProductForm(c)
	if err == nil {
		_, err = s.admin.CreateProduct(c.Request().Context(), name, price, stock)
	}
	switch {
	case errors.Is(err, shop.ErrInvalidInput):
		s.flash(c, "danger", "Price and stock must be non-negative numbers")
		return c.Redirect(http.StatusFound, "/admin/add")
	case err != nil:
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

func (s *WebServer) editProductForm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := s.catalog.Get(c.Request().Context(), id)
	switch {
	case errors.Is(err, shop.ErrNotFound):
		s.flash(c, "danger", "Product not found")
		return c.Redirect(http.StatusFound, "/")
	case err != nil:
		return err
	}
	return s.render(c, "admin", map[string]interface{}{"Product": product})
}

func (s *WebServer) editProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	name, price, stock, err := parseProductForm(c)
	if err == nil {
		_, err = s.admin.UpdateProduct(c.Request().Context(), id, name, price, stock)
	}
	switch {
	case errors.Is(err, shop.ErrInvalidInput):
		s.flash(c, "danger", "Price and stock must be non-negative numbers")
		return c.Redirect(http.StatusFound, "/admin/edit/"+c.Param("id"))
	case errors.Is(err, shop.ErrNotFound):
		s.flash(c, "danger", "Product not found")
		return c.Redirect(http.StatusFound, "/")
	case err != nil:
		return err
	}

	s.flash(c, "success", "Product updated!")
	return c.Redirect(http.StatusFound, "/")
}
