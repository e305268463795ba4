package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bogdan-mardyshev/Mini-Amazon/internal/app"
	"github.com/bogdan-mardyshev/Mini-Amazon/internal/shop"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// WebServer is the storefront HTTP surface: routing, cookie sessions, flash
// messages and template rendering over the shop services.
type WebServer struct {
	app      app.AppContext
	root     *echo.Echo
	identity *shop.Identity
	catalog  *shop.Catalog
	carts    *shop.Carts
	checkout *shop.Checkout
	orders   *shop.Orders
	admin    *shop.Admin
}

func NewWebServer(appCtx app.AppContext) *WebServer {
	db := appCtx.DB()
	s := &WebServer{
		app:      appCtx,
		root:     echo.New(),
		identity: shop.NewIdentity(db),
		catalog:  shop.NewCatalog(db),
		carts:    shop.NewCarts(db),
		checkout: shop.NewCheckout(db),
		orders:   shop.NewOrders(db),
		admin:    shop.NewAdmin(db),
	}

	s.root.HideBanner = true
	s.root.HidePort = true
	s.root.Renderer = NewTemplateRenderer()
	s.root.Use(middleware.Recover())
	s.root.Use(session.Middleware(sessions.NewCookieStore([]byte(appCtx.Config().Web.Secret))))
	s.root.Use(s.requestLogger)
	s.root.HTTPErrorHandler = s.errorHandler

	s.registerRoutes()
	return s
}

func (s *WebServer) registerRoutes() {
	s.root.GET("/", s.index)
	s.root.GET("/register", s.registerForm)
	s.root.POST("/register", s.register)
	s.root.GET("/login", s.loginForm)
	s.root.POST("/login", s.login)
	s.root.GET("/logout", s.logout, s.requireLogin)

	s.root.GET("/add_to_cart/:id", s.addToCart)
	s.root.GET("/cart", s.viewCart)
	s.root.GET("/remove_item/:id", s.removeItem)
	s.root.GET("/clear_cart", s.clearCart)

	s.root.POST("/checkout", s.placeOrder, s.requireLogin)
	s.root.GET("/orders", s.listOrders, s.requireLogin)

	admin := s.root.Group("/admin", s.requireAdmin)
	admin.GET("/add", s.addProductForm)
	admin.POST("/add", s.addProduct)
	admin.GET("/edit/:id", s.editProductForm)
	admin.POST("/edit/:id", s.editProduct)
}

// Start runs the HTTP listener until Shutdown or a fatal error.
func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.app.Config().Web.Host, s.app.Config().Web.Port)
	zap.L().Info("web server starting", zap.String("addr", addr))
	return s.root.Start(addr)
}

func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

func (s *WebServer) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		zap.L().Debug("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)))
		return err
	}
}

// errorHandler logs store failures and keeps the user-facing surface plain.
func (s *WebServer) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err))
	}
	if !c.Response().Committed {
		_ = c.String(code, http.StatusText(code))
	}
}
