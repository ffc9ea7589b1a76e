package model

import "time"

// カート明細。(user_id, variant_id) で1行、同じ商品の追加は数量加算
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_cart_user_variant" json:"user_id"`
	VariantID int64     `gorm:"not null;index;uniqueIndex:idx_cart_user_variant" json:"variant_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
