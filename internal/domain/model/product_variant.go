package model

import "time"

// サイズ×カラーの購入単位。(product_id, size, color) はユニーク
type ProductVariant struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"not null;index;uniqueIndex:idx_variant_product_size_color" json:"product_id"`
	Size      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_variant_product_size_color" json:"size"`
	Color     string `gorm:"type:varchar(50);not null;uniqueIndex:idx_variant_product_size_color" json:"color"`
	ColorHex  string `gorm:"type:varchar(10)" json:"color_hex"`

	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	//セール価格（設定時はprice未満）
	DiscountPrice *float64 `gorm:"type:decimal(10,2)" json:"discount_price"`

	StockQuantity int64 `gorm:"not null;default:0" json:"stock_quantity"`

	//product id + size + color から決定的に生成
	SKU string `gorm:"type:varchar(100);not null;column:sku" json:"sku"`

	Images []ProductImage `gorm:"foreignKey:VariantID" json:"images,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 実売価格。discount_priceがあればそちら
func (v ProductVariant) EffectivePrice() float64 {
	if v.DiscountPrice != nil {
		return *v.DiscountPrice
	}
	return v.Price
}
