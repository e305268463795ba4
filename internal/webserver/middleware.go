package webserver

import (
	"net/http"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/labstack/echo/v4"
)

const ctxKeyUser = "shop_user"

// requireLogin rejects anonymous actors with a notice and a redirect to the
// login page.
func (s *WebServer) requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := s.currentUser(c)
		if user == nil {
			s.flash(c, "warning", "Please log in first")
			return c.Redirect(http.StatusFound, "/login")
		}
		c.Set(ctxKeyUser, user)
		return next(c)
	}
}

// requireAdmin is the single authorization gate for the catalog editor.
func (s *WebServer) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return s.requireLogin(func(c echo.Context) error {
		if !actor(c).IsAdmin {
			s.flash(c, "danger", "Admin access required")
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	})
}

// actor returns the user placed in context by requireLogin.
func actor(c echo.Context) *domain.User {
	user, _ := c.Get(ctxKeyUser).(*domain.User)
	return user
}
