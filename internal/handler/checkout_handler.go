package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type checkoutRequest struct {
	CouponCode string `form:"coupon_code"`
	Name       string `form:"name"`
	Email      string `form:"email"`
	Phone      string `form:"phone"`
	Address    string `form:"address"`
	City       string `form:"city"`
	PostalCode string `form:"postal_code"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/checkout/", h.view)
	e.POST("/checkout/", h.submit)
}

func (h *CheckoutHandler) view(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.View(c.Request().Context(), sess)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) submit(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//ボタンはキーがあるかどうかだけ見る
	form, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	_, remove := form["remove_coupon"]
	_, apply := form["apply_coupon"]

	res, err := h.uc.Submit(c.Request().Context(), sess, usecase.CheckoutInput{
		RemoveCoupon: remove,
		ApplyCoupon:  apply,
		CouponCode:   req.CouponCode,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		PostalCode:   req.PostalCode,
	})
	if err != nil {
		return writeError(c, err)
	}

	if res.OrderID > 0 {
		return c.Redirect(http.StatusSeeOther, "/order/"+strconv.FormatInt(res.OrderID, 10)+"/")
	}
	return c.JSON(http.StatusOK, res.View)
}
