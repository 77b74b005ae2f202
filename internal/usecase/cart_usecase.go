package usecase

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// CartUsecase はセッションカートの業務ロジックです。
// カートはDBに持たず、セッションの中だけにあります。
type CartUsecase struct {
	productRepo repo.ProductRepository
	variantRepo repo.VariantRepository
}

func NewCartUsecase(productRepo repo.ProductRepository, variantRepo repo.VariantRepository) *CartUsecase {
	return &CartUsecase{
		productRepo: productRepo,
		variantRepo: variantRepo,
	}
}

type CartItemResponse struct {
	Index       int    `json:"index"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	VariantID   int64  `json:"variant_id"`
	VariantText string `json:"variant_text"`
	Price       string `json:"price"`
	Quantity    int64  `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Total     string             `json:"total"`
	CartCount int                `json:"cart_count"`
}

// quantity が0以下なら1
type AddCartInput struct {
	VariantID int64
	Quantity  int64
}

func (u *CartUsecase) View(sess *model.Session) CartResponse {
	return buildCartResponse(sess.Cart)
}

// AddToCart は明細を末尾に足す（同じ variant でも行はまとめない）。
func (u *CartUsecase) AddToCart(ctx context.Context, sess *model.Session, productID int64, in AddCartInput) error {
	if productID <= 0 || in.VariantID <= 0 {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	v, err := u.variantRepo.FindByID(ctx, in.VariantID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "variant not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//別商品のvariantは受け付けない
	if v.ProductID != p.ID {
		return NewHTTPError(http.StatusNotFound, "variant not found")
	}

	sess.Cart.Add(model.CartLine{
		ProductID:   p.ID,
		ProductName: p.Name,
		VariantID:   v.ID,
		VariantText: v.Label(),
		Price:       money(p.Price),
		Quantity:    qty,
	})
	sess.MarkModified()
	return nil
}

// 範囲外は何もしない
func (u *CartUsecase) RemoveLine(sess *model.Session, index int) {
	if sess.Cart.Remove(index) {
		sess.MarkModified()
	}
}

// 範囲外・0以下は何もしない
func (u *CartUsecase) UpdateQuantity(sess *model.Session, index int, quantity int64) {
	if sess.Cart.UpdateQuantity(index, quantity) {
		sess.MarkModified()
	}
}

func buildCartResponse(cart model.Cart) CartResponse {
	items := make([]CartItemResponse, 0, cart.Len())
	for i, l := range cart.Lines {
		items = append(items, CartItemResponse{
			Index:       i,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			VariantID:   l.VariantID,
			VariantText: l.VariantText,
			Price:       l.Price,
			Quantity:    l.Quantity,
			Subtotal:    money(l.Subtotal()),
		})
	}
	return CartResponse{
		Items:     items,
		Total:     money(cart.Total()),
		CartCount: cart.Len(),
	}
}
