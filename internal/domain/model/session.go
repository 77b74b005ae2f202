package model

import "github.com/shopspring/decimal"

// ブラウザ1つ分のセッション状態。
// cart / coupon_code / coupon_discount と、ログイン中ならユーザーID。
type Session struct {
	ID             string          `json:"-"`
	UserID         int64           `json:"user_id,omitempty"`
	Cart           Cart            `json:"cart"`
	CouponCode     string          `json:"coupon_code,omitempty"`
	CouponDiscount decimal.Decimal `json:"coupon_discount"`

	modified  bool
	destroyed bool
	previous  string
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

// 変更フラグ。ミドルウェアが保存するか判断する。
func (s *Session) MarkModified() { s.modified = true }

func (s *Session) Modified() bool { return s.modified }

func (s *Session) Destroyed() bool { return s.destroyed }

// ローテート前のID（削除用）
func (s *Session) PreviousID() string { return s.previous }

func (s *Session) IsAuthenticated() bool { return s.UserID > 0 }

// ログイン。IDを入れ替えるがカートは残す。
func (s *Session) Login(userID int64, newID string) {
	if s.previous == "" {
		s.previous = s.ID
	}
	s.ID = newID
	s.UserID = userID
	s.modified = true
}

// ログアウト。中身ごと破棄する。
func (s *Session) Destroy() {
	s.UserID = 0
	s.Cart.Clear()
	s.ClearCoupon()
	s.destroyed = true
	s.modified = true
}

func (s *Session) ApplyCoupon(code string, discount decimal.Decimal) {
	s.CouponCode = code
	s.CouponDiscount = discount
	s.modified = true
}

func (s *Session) ClearCoupon() {
	s.CouponCode = ""
	s.CouponDiscount = decimal.Zero
	s.modified = true
}

// 注文確定後：カートとクーポンを空にする
func (s *Session) ClearCheckout() {
	s.Cart.Clear()
	s.ClearCoupon()
}
