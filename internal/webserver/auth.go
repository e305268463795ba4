package webserver

import (
	"net/http"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/shop"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (s *WebServer) registerForm(c echo.Context) error {
	return s.render(c, "register", nil)
}

func (s *WebServer) register(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := s.identity.Register(c.Request().Context(), username, password)
	switch {
	case errors.Is(err, shop.ErrDuplicateUsername):
		s.flash(c, "danger", "Username already exists")
		return c.Redirect(http.StatusFound, "/register")
	case errors.Is(err, shop.ErrInvalidInput):
		s.flash(c, "danger", "Username and password are required")
		return c.Redirect(http.StatusFound, "/register")
	case err != nil:
		return err
	}

	// auto-login after registration
	s.establishSession(c, user)
	return c.Redirect(http.StatusFound, "/")
}

func (s *WebServer) loginForm(c echo.Context) error {
	return s.render(c, "login", nil)
}

func (s *WebServer) login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := s.identity.Authenticate(c.Request().Context(), username, password)
	switch {
	case errors.Is(err, shop.ErrInvalidCredentials):
		s.flash(c, "danger", "Invalid login")
		return c.Redirect(http.StatusFound, "/login")
	case err != nil:
		return err
	}

	s.establishSession(c, user)
	return c.Redirect(http.StatusFound, "/")
}

func (s *WebServer) logout(c echo.Context) error {
	s.endSession(c)
	return c.Redirect(http.StatusFound, "/")
}
