package model

import "github.com/shopspring/decimal"

// 注文時点のカート明細のスナップショット。商品・バリアントとは紐付けない。
type OrderItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64           `gorm:"not null;index" json:"order_id"`
	ProductName string          `gorm:"type:varchar(200);not null" json:"product_name"`
	VariantText string          `gorm:"type:varchar(50);not null" json:"variant_text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
}
