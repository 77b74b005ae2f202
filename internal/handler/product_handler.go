package handler

import (
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /products の公開ページ（一覧・詳細・カート追加・レビュー）
type ProductHandler struct {
	catalog *usecase.CatalogUsecase
	cart    *usecase.CartUsecase
	reviews *usecase.ReviewUsecase
}

// DI
func NewProductHandler(catalog *usecase.CatalogUsecase, cart *usecase.CartUsecase, reviews *usecase.ReviewUsecase) *ProductHandler {
	return &ProductHandler{catalog: catalog, cart: cart, reviews: reviews}
}

type addToCartRequest struct {
	VariantID string `form:"variant_id"`
	Quantity  string `form:"quantity"`
}

type reviewRequest struct {
	Rating  string `form:"rating"`
	Comment string `form:"comment"`
}

// 商品のルートを登録。レビューだけログイン必須。
func (h *ProductHandler) RegisterRoutes(e *echo.Echo, loginRequired echo.MiddlewareFunc) {
	e.GET("/products/", h.list)
	e.GET("/products/:id/", h.detail)
	e.POST("/products/:id/", h.addToCart)
	e.GET("/products/:id/review/", h.backToDetail, loginRequired)
	e.POST("/products/:id/review/", h.review, loginRequired)
}

func (h *ProductHandler) list(c echo.Context) error {
	in := usecase.ListProductsInput{
		Search: c.QueryParam("search"),
	}

	if v := strings.TrimSpace(c.QueryParam("category")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category"})
		}
		in.CategoryID = &id
	}

	if v := strings.TrimSpace(c.QueryParam("min_price")); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
		}
		in.MinPrice = &d
	}

	if v := strings.TrimSpace(c.QueryParam("max_price")); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price"})
		}
		in.MaxPrice = &d
	}

	out, err := h.catalog.ListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.catalog.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// variant_id が無ければ何もせず詳細を返す
func (h *ProductHandler) addToCart(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if strings.TrimSpace(req.VariantID) == "" {
		return h.detail(c)
	}

	variantID, err := strconv.ParseInt(strings.TrimSpace(req.VariantID), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "variant not found"})
	}

	qty := int64(1)
	if v := strings.TrimSpace(req.Quantity); v != "" {
		q, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
		}
		qty = q
	}

	sess, err := getSession(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.cart.AddToCart(c.Request().Context(), sess, id, usecase.AddCartInput{
		VariantID: variantID,
		Quantity:  qty,
	}); err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/cart/")
}

func (h *ProductHandler) review(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	user, ok := getUserFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	rating, err := strconv.Atoi(strings.TrimSpace(req.Rating))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rating"})
	}

	if _, err := h.reviews.Submit(c.Request().Context(), user.ID, id, usecase.ReviewInput{
		Rating:  rating,
		Comment: req.Comment,
	}); err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, productURL(id))
}

func (h *ProductHandler) backToDetail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusFound, productURL(id))
}

func productURL(id int64) string {
	return "/products/" + strconv.FormatInt(id, 10) + "/"
}

// 数字でないIDはルートに一致しない扱い（404）
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, usecase.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}
