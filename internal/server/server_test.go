package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/session"
	"storefront/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

type staticID struct{}

func (staticID) NewID() string { return "fixed" }

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	mr := miniredis.RunT(t)

	return New(config.Config{LogLevel: "error"}, middleware.SessionConfig{
		Store:  session.NewRedisStore(session.NewClient(mr.Addr(), "", 0)),
		IDGen:  staticID{},
		Secret: "server-test",
		TTL:    time.Hour,
	}, nil, Handlers{
		Home:     handler.NewHomeHandler(),
		Products: handler.NewProductHandler(nil, nil, nil),
		Cart:     handler.NewCartHandler(nil),
		Checkout: handler.NewCheckoutHandler(nil),
		Orders:   handler.NewOrderHandler(nil),
		Account:  handler.NewAccountHandler(nil, nil, nil),
	})
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_TrailingSlashRedirect(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/products?search=tee")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/products/?search=tee", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_Healthz(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Home(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"page":"home","cart_count":0,"authenticated":false}`, rec.Body.String())
}

// ログイン必須ページは未ログインならログインへ
func TestServer_ProfileRequiresLogin(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/profile/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/?next=%2Fprofile%2F", rec.Header().Get(echo.HeaderLocation))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, ParseLogLevel("debug"))
	assert.Equal(t, log.WARN, ParseLogLevel("WARN"))
	assert.Equal(t, log.ERROR, ParseLogLevel("error"))
	assert.Equal(t, log.OFF, ParseLogLevel("off"))
	assert.Equal(t, log.INFO, ParseLogLevel(""))
	assert.Equal(t, log.INFO, ParseLogLevel("verbose"))
}
