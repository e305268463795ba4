package webserver

import (
	"encoding/gob"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	sessionName    = "miniamazon"
	sessionKeyUID  = "uid"
	sessionKeyCart = "cart"
)

// Flash is a one-shot notice surfaced on the next rendered page.
// Levels mirror the stylesheet: success, info, warning, danger.
type Flash struct {
	Level   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// currentUser resolves the session's authenticated user, nil for anonymous.
func (s *WebServer) currentUser(c echo.Context) *domain.User {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	uid, ok := sess.Values[sessionKeyUID].(int64)
	if !ok || uid == 0 {
		return nil
	}
	user, err := s.identity.Get(c.Request().Context(), uid)
	if err != nil {
		return nil
	}
	return user
}

// establishSession marks the session as authenticated for the given user.
func (s *WebServer) establishSession(c echo.Context, user *domain.User) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.Values[sessionKeyUID] = user.ID
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		zap.L().Error("failed to save session", zap.Error(err))
	}
}

// endSession clears the authenticated marker. Idempotent.
func (s *WebServer) endSession(c echo.Context) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	delete(sess.Values, sessionKeyUID)
	_ = sess.Save(c.Request(), c.Response())
}

// loadCart deserializes the session cart, returning a fresh one when absent
// or unreadable.
func (s *WebServer) loadCart(c echo.Context) domain.Cart {
	cart := domain.NewCart()
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return cart
	}
	raw, ok := sess.Values[sessionKeyCart].(string)
	if !ok || raw == "" {
		return cart
	}
	if err := json.UnmarshalFromString(raw, &cart); err != nil {
		zap.L().Warn("discarding unreadable session cart", zap.Error(err))
		return domain.NewCart()
	}
	return cart
}

// saveCart serializes the cart back into the session cookie.
func (s *WebServer) saveCart(c echo.Context, cart domain.Cart) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	raw, err := json.MarshalToString(cart)
	if err != nil {
		zap.L().Error("failed to serialize cart", zap.Error(err))
		return
	}
	sess.Values[sessionKeyCart] = raw
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		zap.L().Error("failed to save session", zap.Error(err))
	}
}

// flash queues a one-shot notice for the next rendered page.
func (s *WebServer) flash(c echo.Context, level, message string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(Flash{Level: level, Message: message})
	_ = sess.Save(c.Request(), c.Response())
}

// popFlashes drains queued notices for rendering.
func (s *WebServer) popFlashes(c echo.Context) []Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(c.Request(), c.Response())
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
