package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var hundred = decimal.NewFromInt(100)

// 割引クーポン
type Coupon struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	DiscountType  DiscountType    `gorm:"type:varchar(10);not null" json:"discount_type"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	ValidFrom     time.Time       `gorm:"not null" json:"valid_from"`
	ValidUntil    time.Time       `gorm:"not null" json:"valid_until"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	MaxUses       int64           `gorm:"not null;default:100" json:"max_uses"`
	TimesUsed     int64           `gorm:"not null;default:0" json:"times_used"`
}

// 有効 = active かつ期間内（両端含む）かつ使用回数が上限未満
func (c Coupon) IsValid(now time.Time) bool {
	return c.IsActive &&
		!now.Before(c.ValidFrom) &&
		!now.After(c.ValidUntil) &&
		c.TimesUsed < c.MaxUses
}

// 割引額を返す。
// fixed は小計で頭打ちにしないので、小計を超えることがある。
func (c Coupon) DiscountAmount(subtotal decimal.Decimal) decimal.Decimal {
	if c.DiscountType == DiscountPercentage {
		return subtotal.Mul(c.DiscountValue).Div(hundred)
	}
	return c.DiscountValue
}
