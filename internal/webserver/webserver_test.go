package webserver

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bogdan-mardyshev/Mini-Amazon/config"
	"github.com/bogdan-mardyshev/Mini-Amazon/internal/app"
	"github.com/bogdan-mardyshev/Mini-Amazon/internal/domain"
	"github.com/bogdan-mardyshev/Mini-Amazon/pkg/common"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*WebServer, *gorm.DB) {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Tables...))

	cfg := &config.AppConfig{}
	cfg.Web.Secret = "test-secret"
	application := app.NewApplication(cfg)
	application.OverrideDB(db)
	return NewWebServer(application), db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *domain.Product {
	t.Helper()
	p := &domain.Product{ID: common.UUIDint64(), Name: name, Price: price, Stock: stock}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedUser(t *testing.T, db *gorm.DB, username, password string, isAdmin bool) *domain.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &domain.User{
		ID:        common.UUIDint64(),
		Username:  username,
		Password:  string(hashed),
		IsAdmin:   isAdmin,
		LastLogin: time.Now(),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

type jar map[string]*http.Cookie

func (j jar) update(resp *http.Response) {
	for _, ck := range resp.Cookies() {
		j[ck.Name] = ck
	}
}

func doGET(t *testing.T, s *WebServer, path string, cookies jar) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	s.root.ServeHTTP(rec, req)
	cookies.update(rec.Result())
	return rec
}

func doPOST(t *testing.T, s *WebServer, path string, form url.Values, cookies jar) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echoHeaderContentType, echoMIMEForm)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	s.root.ServeHTTP(rec, req)
	cookies.update(rec.Result())
	return rec
}

const (
	echoHeaderContentType = "Content-Type"
	echoMIMEForm          = "application/x-www-form-urlencoded"
)

func login(t *testing.T, s *WebServer, username, password string) jar {
	t.Helper()
	cookies := jar{}
	rec := doPOST(t, s, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, cookies)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"), "login should succeed")
	return cookies
}

func TestOrdersRequiresLogin(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doGET(t, s, "/orders", jar{})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestCheckoutRequiresLogin(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doPOST(t, s, "/checkout", url.Values{}, jar{})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAdminGateDeniesNonAdmin(t *testing.T) {
	s, db := newTestServer(t)
	seedUser(t, db, "plain", "pw", false)
	cookies := login(t, s, "plain", "pw")

	rec := doGET(t, s, "/admin/add", cookies)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAdminGateAllowsAdmin(t *testing.T) {
	s, db := newTestServer(t)
	seedUser(t, db, "root", "pw", true)
	cookies := login(t, s, "root", "pw")

	rec := doGET(t, s, "/admin/add", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Add Product")
}

func TestRegisterAutoLoginAndDuplicate(t *testing.T) {
	s, db := newTestServer(t)

	cookies := jar{}
	rec := doPOST(t, s, "/register", url.Values{
		"username": {"alice"},
		"password": {"pw1"},
	}, cookies)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	// auto-login: the session can reach /orders
	rec = doGET(t, s, "/orders", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doPOST(t, s, "/register", url.Values{
		"username": {"alice"},
		"password": {"pw2"},
	}, jar{})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddToCartAndViewCart(t *testing.T) {
	s, db := newTestServer(t)
	p := seedProduct(t, db, "Headphones", 199.99, 20)

	cookies := jar{}
	rec := doGET(t, s, "/add_to_cart/"+formatID(p.ID), cookies)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = doGET(t, s, "/cart", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Headphones")
	assert.Contains(t, rec.Body.String(), "199.99")
}

func TestAddToCartOutOfStockLeavesCartEmpty(t *testing.T) {
	s, db := newTestServer(t)
	p := seedProduct(t, db, "Ghost Item", 10, 0)

	cookies := jar{}
	rec := doGET(t, s, "/add_to_cart/"+formatID(p.ID), cookies)
	require.Equal(t, http.StatusFound, rec.Code)

	rec = doGET(t, s, "/cart", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your cart is empty")
}

func TestCheckoutFlow(t *testing.T) {
	s, db := newTestServer(t)
	p := seedProduct(t, db, "Keyboard", 149, 15)
	seedUser(t, db, "buyer", "pw", false)
	cookies := login(t, s, "buyer", "pw")

	rec := doGET(t, s, "/add_to_cart/"+formatID(p.ID), cookies)
	require.Equal(t, http.StatusFound, rec.Code)

	rec = doPOST(t, s, "/checkout", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/orders", rec.Header().Get("Location"))

	var orders int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 1, orders)

	var stored domain.Product
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, 14, stored.Stock)

	// cart cleared by the successful checkout
	rec = doGET(t, s, "/cart", cookies)
	assert.Contains(t, rec.Body.String(), "Your cart is empty")
}

func TestCheckoutEmptyCartRedirectsHome(t *testing.T) {
	s, db := newTestServer(t)
	seedUser(t, db, "idle", "pw", false)
	cookies := login(t, s, "idle", "pw")

	rec := doPOST(t, s, "/checkout", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestClearCartIdempotent(t *testing.T) {
	s, _ := newTestServer(t)

	cookies := jar{}
	for i := 0; i < 2; i++ {
		rec := doGET(t, s, "/clear_cart", cookies)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/cart", rec.Header().Get("Location"))
	}
}

func TestIndexSearch(t *testing.T) {
	s, db := newTestServer(t)
	seedProduct(t, db, "iPhone 15", 999, 10)
	seedProduct(t, db, "Gaming Mouse", 59.9, 50)

	rec := doGET(t, s, "/?search=iphone", jar{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "iPhone 15")
	assert.NotContains(t, rec.Body.String(), "Gaming Mouse")
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
