package repository

import (
	"context"

	"app/internal/domain/model"
)

type ImageRepository interface {
	ListByVariantID(ctx context.Context, variantID int64) ([]model.ProductImage, error)
	FindByID(ctx context.Context, imageID int64) (model.ProductImage, error)
	Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error)
	Delete(ctx context.Context, imageID int64) error

	// 既存のprimaryを外してから対象を立てる（同一トランザクション）
	SetPrimary(ctx context.Context, variantID int64, imageID int64) error
}
