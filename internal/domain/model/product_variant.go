package model

// サイズ
type Size string

const (
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

var sizeLabels = map[Size]string{
	SizeS:  "Small",
	SizeM:  "Medium",
	SizeL:  "Large",
	SizeXL: "Extra Large",
}

func (s Size) Valid() bool {
	_, ok := sizeLabels[s]
	return ok
}

// 表示名（未知の値はそのまま）
func (s Size) Label() string {
	if l, ok := sizeLabels[s]; ok {
		return l
	}
	return string(s)
}

// 色
type Color string

const (
	ColorBlack Color = "black"
	ColorWhite Color = "white"
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
)

var colorLabels = map[Color]string{
	ColorBlack: "Black",
	ColorWhite: "White",
	ColorRed:   "Red",
	ColorBlue:  "Blue",
}

func (c Color) Valid() bool {
	_, ok := colorLabels[c]
	return ok
}

func (c Color) Label() string {
	if l, ok := colorLabels[c]; ok {
		return l
	}
	return string(c)
}

// 商品のサイズ・色の組み合わせ。在庫は組み合わせごと。
// (product, size, color) の一意制約は付けない。
type ProductVariant struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Size      Size    `gorm:"type:varchar(2);not null" json:"size"`
	Color     Color   `gorm:"type:varchar(10);not null" json:"color"`
	//在庫（注文では減らさない）
	Stock int64 `gorm:"not null;default:0" json:"stock"`
}

// "Small-Black" 形式の表示名
func (v ProductVariant) Label() string {
	return v.Size.Label() + "-" + v.Color.Label()
}
