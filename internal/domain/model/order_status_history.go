package model

import "time"

// ステータス変更の追記専用ログ。現在値の判定には使わない
type OrderStatusHistory struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64       `gorm:"not null;index" json:"order_id"`
	Status    OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	Note      string      `gorm:"type:varchar(255)" json:"note"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}
