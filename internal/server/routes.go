package server

import (
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

// 画面ごとのハンドラ
type Handlers struct {
	Home     *handler.HomeHandler
	Products *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Orders   *handler.OrderHandler
	Account  *handler.AccountHandler
}

// loginRequired はレビュー投稿とプロフィールに付ける
func RegisterRoutes(e *echo.Echo, h Handlers, loginRequired echo.MiddlewareFunc) {
	h.Home.RegisterRoutes(e)
	h.Products.RegisterRoutes(e, loginRequired)
	h.Cart.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Orders.RegisterRoutes(e)
	h.Account.RegisterRoutes(e, loginRequired)
}
