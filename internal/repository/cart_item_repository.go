package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	FindByUserAndVariant(ctx context.Context, userID int64, variantID int64) (model.CartItem, error)

	// 同一バリアントは数量加算
	UpsertByUserAndVariant(ctx context.Context, userID int64, variantID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error

	// ユーザーのカートを空にする（注文確定後）
	DeleteByUserID(ctx context.Context, userID int64) error
}
