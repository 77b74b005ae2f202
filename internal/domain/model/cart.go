package model

import "github.com/shopspring/decimal"

// カート明細（セッション内のみ、DBには保存しない）
// 価格は追加時点の価格を文字列で保存。
type CartLine struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	VariantID   int64  `json:"variant_id"`
	VariantText string `json:"variant_text"`
	Price       string `json:"price"`
	Quantity    int64  `json:"quantity"`
}

// 明細の小計。価格が読めない明細は0として扱う。
func (l CartLine) Subtotal() decimal.Decimal {
	p, err := decimal.NewFromString(l.Price)
	if err != nil {
		return decimal.Zero
	}
	return p.Mul(decimal.NewFromInt(l.Quantity))
}

// 明細の並び。位置（index）で操作する。
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) Add(line CartLine) {
	c.Lines = append(c.Lines, line)
}

// 範囲外なら何もしない。削除したら true。
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.Lines) {
		return false
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return true
}

// 範囲外または quantity <= 0 なら何もしない。
func (c *Cart) UpdateQuantity(index int, quantity int64) bool {
	if index < 0 || index >= len(c.Lines) || quantity <= 0 {
		return false
	}
	c.Lines[index].Quantity = quantity
	return true
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c Cart) Len() int {
	return len(c.Lines)
}

// 合計は毎回計算する
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
