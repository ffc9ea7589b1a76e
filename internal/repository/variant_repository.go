package repository

import (
	"context"

	"app/internal/domain/model"
)

type VariantRepository interface {
	FindByID(ctx context.Context, variantID int64) (model.ProductVariant, error)

	// inStockOnly=trueなら stock_quantity > 0 のみ（ストアフロント表示）
	ListByProductID(ctx context.Context, productID int64, inStockOnly bool) ([]model.ProductVariant, error)

	// (product, size, color) の既存チェック用
	FindByProductSizeColor(ctx context.Context, productID int64, size string, color string) (model.ProductVariant, error)

	Create(ctx context.Context, v model.ProductVariant) (model.ProductVariant, error)
	Update(ctx context.Context, v model.ProductVariant) error
	Delete(ctx context.Context, variantID int64) error
}
