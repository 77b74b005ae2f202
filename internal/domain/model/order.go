package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// 注文。ゲスト注文では UserID は nil。
type Order struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID *int64 `gorm:"index" json:"user_id"`
	User   *User  `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	//連絡先
	CustomerName  string `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerEmail string `gorm:"type:varchar(254);not null" json:"customer_email"`
	CustomerPhone string `gorm:"type:varchar(10);not null" json:"customer_phone"`

	//住所
	Address    string `gorm:"type:text;not null" json:"address"`
	City       string `gorm:"type:varchar(50);not null" json:"city"`
	PostalCode string `gorm:"type:varchar(10);not null" json:"postal_code"`

	//割引後の合計
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime;index" json:"created_at"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
