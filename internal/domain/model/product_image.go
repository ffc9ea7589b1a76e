package model

import "time"

// バリアントごとにis_primary=trueは最大1枚
type ProductImage struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	VariantID    int64     `gorm:"not null;index" json:"variant_id"`
	URL          string    `gorm:"type:varchar(500);not null" json:"url"`
	AltText      string    `gorm:"type:varchar(255)" json:"alt_text"`
	IsPrimary    bool      `gorm:"not null;default:false" json:"is_primary"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
