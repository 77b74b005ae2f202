package server

import (
	"net/http"
	"strings"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const loginPath = "/login/"

// New はミドルウェアとルートを載せたechoを返す
func New(cfg config.Config, sessCfg middleware.SessionConfig, userRepo repository.UserRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(ParseLogLevel(cfg.LogLevel))

	//末尾スラッシュ無しは301で付け直す（/healthz は除く）
	e.Pre(echomw.AddTrailingSlashWithConfig(echomw.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/healthz"
		},
	}))

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Session(sessCfg))

	RegisterRoutes(e, h, middleware.RequireLogin(userRepo, loginPath))
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

// LOG_LEVEL の文字列をgommonのレベルへ
func ParseLogLevel(v string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
