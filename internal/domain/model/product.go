package model

import "github.com/shopspring/decimal"

// 商品。必ず1つのカテゴリに属する。
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(200);not null;index" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
	Category    Category        `gorm:"constraint:OnDelete:CASCADE" json:"category"`
	//画像URL
	Image string `gorm:"type:varchar(200)" json:"image"`
}
