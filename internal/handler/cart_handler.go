package handler

import (
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart のHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type updateQuantityRequest struct {
	Quantity string `form:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("/", h.view)
	g.POST("/remove/:index/", h.remove)
	g.POST("/update/:index/", h.update)
}

func (h *CartHandler) view(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.View(sess))
}

func (h *CartHandler) remove(c echo.Context) error {
	index, err := parseIndex(c)
	if err != nil {
		return writeError(c, err)
	}
	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}

	h.uc.RemoveLine(sess, index)
	return c.Redirect(http.StatusSeeOther, "/cart/")
}

// 数量が数字でなければ何もしない
func (h *CartHandler) update(c echo.Context) error {
	index, err := parseIndex(c)
	if err != nil {
		return writeError(c, err)
	}
	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if q, err := strconv.ParseInt(strings.TrimSpace(req.Quantity), 10, 64); err == nil {
		h.uc.UpdateQuantity(sess, index, q)
	}

	return c.Redirect(http.StatusSeeOther, "/cart/")
}

func parseIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, usecase.NewHTTPError(http.StatusNotFound, "not found")
	}
	return index, nil
}
