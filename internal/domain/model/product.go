package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	//URL用スラッグ（nameから生成、ユニーク）
	Slug string `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`

	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(100);index" json:"category"`

	//公開フラグ。注文から参照されている商品は削除せずこれで非公開にする
	IsActive   bool `gorm:"not null;default:false" json:"is_active"`
	IsFeatured bool `gorm:"not null;default:false" json:"is_featured"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
