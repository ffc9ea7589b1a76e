package model

import "time"

// 注文明細。商品名・価格は注文時点のスナップショット
type OrderItem struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64     `gorm:"not null;index" json:"order_id"`
	VariantID           int64     `gorm:"not null;index" json:"variant_id"`
	ProductNameSnapshot string    `gorm:"type:varchar(255);not null" json:"product_name"`
	SizeSnapshot        string    `gorm:"type:varchar(50)" json:"size"`
	ColorSnapshot       string    `gorm:"type:varchar(50)" json:"color"`
	UnitPrice           float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity            int64     `gorm:"not null" json:"quantity"`
	TotalPrice          float64   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
