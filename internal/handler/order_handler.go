package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/order/:order_id/", h.confirmation)
}

func (h *OrderHandler) confirmation(c echo.Context) error {
	id, err := parseID(c, "order_id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetConfirmation(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
