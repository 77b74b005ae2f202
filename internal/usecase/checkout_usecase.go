package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	MsgCouponRemoved = "Coupon removed successfully!"
	MsgCouponUnknown = "Invalid coupon code!"
	MsgCouponInvalid = "This coupon is no longer valid or has expired!"
)

type CheckoutUsecase struct {
	coupons repo.CouponRepository
	tx      repo.TransactionManager
	clock   Clock
}

func NewCheckoutUsecase(coupons repo.CouponRepository, tx repo.TransactionManager, clock Clock) *CheckoutUsecase {
	return &CheckoutUsecase{coupons: coupons, tx: tx, clock: clock}
}

// POST /checkout/ のフォーム。
// RemoveCoupon / ApplyCoupon はキーが送られたかどうか。
type CheckoutInput struct {
	RemoveCoupon bool
	ApplyCoupon  bool
	CouponCode   string

	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
}

type CheckoutView struct {
	Items          []CartItemResponse `json:"items"`
	Total          string             `json:"total"`
	CouponCode     string             `json:"coupon_code,omitempty"`
	CouponDiscount string             `json:"coupon_discount"`
	FinalTotal     string             `json:"final_total"`
	Success        string             `json:"success,omitempty"`
	Error          string             `json:"error,omitempty"`
}

// OrderID > 0 なら注文確定（リダイレクト）、それ以外は View を表示
type CheckoutResult struct {
	View    *CheckoutView
	OrderID int64
}

// View は表示だけ。保存済みのコードが今も有効なら割引を計算し直す。
func (u *CheckoutUsecase) View(ctx context.Context, sess *model.Session) (CheckoutView, error) {
	subtotal := sess.Cart.Total()
	discount := decimal.Zero

	if sess.CouponCode != "" {
		c, err := u.coupons.FindByCode(ctx, sess.CouponCode)
		switch {
		case err == nil:
			if c.IsValid(u.clock.Now()) {
				discount = c.DiscountAmount(subtotal)
			}
		case errors.Is(err, repo.ErrNotFound):
			//消えたクーポンは割引なし
		default:
			return CheckoutView{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	v := newCheckoutView(sess.Cart, discount)
	v.CouponCode = sess.CouponCode
	return v, nil
}

// Submit は remove → apply → 注文確定 の順で1つだけ処理する。
func (u *CheckoutUsecase) Submit(ctx context.Context, sess *model.Session, in CheckoutInput) (CheckoutResult, error) {
	switch {
	case in.RemoveCoupon:
		sess.ClearCoupon()
		v := newCheckoutView(sess.Cart, decimal.Zero)
		v.Success = MsgCouponRemoved
		return CheckoutResult{View: &v}, nil

	case in.ApplyCoupon:
		v, err := u.applyCoupon(ctx, sess, in.CouponCode)
		if err != nil {
			return CheckoutResult{}, err
		}
		return CheckoutResult{View: &v}, nil

	default:
		id, err := u.placeOrder(ctx, sess, in)
		if err != nil {
			return CheckoutResult{}, err
		}
		return CheckoutResult{OrderID: id}, nil
	}
}

func (u *CheckoutUsecase) applyCoupon(ctx context.Context, sess *model.Session, raw string) (CheckoutView, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))

	//エラー時はセッションを触らない
	fail := func(msg string) (CheckoutView, error) {
		v, err := u.View(ctx, sess)
		if err != nil {
			return CheckoutView{}, err
		}
		v.Error = msg
		return v, nil
	}

	if code == "" {
		return fail(MsgCouponUnknown)
	}
	c, err := u.coupons.FindByCode(ctx, code)
	if errors.Is(err, repo.ErrNotFound) {
		return fail(MsgCouponUnknown)
	}
	if err != nil {
		return CheckoutView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !c.IsValid(u.clock.Now()) {
		return fail(MsgCouponInvalid)
	}

	discount := c.DiscountAmount(sess.Cart.Total())
	sess.ApplyCoupon(c.Code, discount)

	v := newCheckoutView(sess.Cart, discount)
	v.CouponCode = c.Code
	v.Success = fmt.Sprintf(`Coupon "%s" applied successfully!`, c.Code)
	return v, nil
}

// 注文確定。合計は小計からセッションに保存した割引を引いたもの。
// カートが空でも注文は作り、クーポンも消費する。
func (u *CheckoutUsecase) placeOrder(ctx context.Context, sess *model.Session, in CheckoutInput) (int64, error) {
	if err := validateShipping(in); err != nil {
		return 0, err
	}
	//スナップショット
	items := make([]model.OrderItem, 0, sess.Cart.Len())
	for _, l := range sess.Cart.Lines {
		price, err := decimal.NewFromString(l.Price)
		if err != nil {
			price = decimal.Zero
		}
		items = append(items, model.OrderItem{
			ProductName: l.ProductName,
			VariantText: l.VariantText,
			Price:       price,
			Quantity:    l.Quantity,
		})
	}

	order := model.Order{
		CustomerName:  strings.TrimSpace(in.Name),
		CustomerEmail: strings.TrimSpace(in.Email),
		CustomerPhone: strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		PostalCode:    strings.TrimSpace(in.PostalCode),
		TotalAmount:   sess.Cart.Total().Sub(sess.CouponDiscount),
		Status:        model.OrderStatusPending,
	}
	if sess.IsAuthenticated() {
		uid := sess.UserID
		order.UserID = &uid
	}
	code := sess.CouponCode

	var orderID int64
	//注文・明細・クーポン使用回数は1トランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if code != "" {
			if err := r.Coupons().IncrementTimesUsed(ctx, code); err != nil {
				//適用後に消えたクーポンも含めて失敗扱い
				return NewHTTPError(http.StatusInternalServerError, "coupon update failed")
			}
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	sess.ClearCheckout()
	return orderID, nil
}

// 列の長さに合わせた入力チェック
func validateShipping(in CheckoutInput) error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"name", in.Name, 100},
		{"email", in.Email, 254},
		{"phone", in.Phone, 10},
		{"address", in.Address, 0},
		{"city", in.City, 50},
		{"postal_code", in.PostalCode, 10},
	}
	for _, f := range fields {
		v := strings.TrimSpace(f.value)
		if v == "" {
			return NewHTTPError(http.StatusBadRequest, "missing "+f.name)
		}
		if f.max > 0 && utf8.RuneCountInString(v) > f.max {
			return NewHTTPError(http.StatusBadRequest, "invalid "+f.name)
		}
	}
	if !strings.Contains(in.Email, "@") {
		return NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	return nil
}

func newCheckoutView(cart model.Cart, discount decimal.Decimal) CheckoutView {
	cr := buildCartResponse(cart)
	total := cart.Total()
	return CheckoutView{
		Items:          cr.Items,
		Total:          cr.Total,
		CouponDiscount: money(discount),
		FinalTotal:     money(total.Sub(discount)),
	}
}
