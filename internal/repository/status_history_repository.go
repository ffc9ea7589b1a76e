package repository

import (
	"context"

	"app/internal/domain/model"
)

// 追記専用。更新・削除は約束しない
type StatusHistoryRepository interface {
	Create(ctx context.Context, h model.OrderStatusHistory) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderStatusHistory, error)
}
