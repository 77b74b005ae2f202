package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

type homeResponse struct {
	Page          string `json:"page"`
	CartCount     int    `json:"cart_count"`
	Authenticated bool   `json:"authenticated"`
}

func (h *HomeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.home)
	e.GET("/healthz", h.healthz)
}

func (h *HomeHandler) home(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, homeResponse{
		Page:          "home",
		CartCount:     sess.Cart.Len(),
		Authenticated: sess.IsAuthenticated(),
	})
}

func (h *HomeHandler) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
