package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type VariantGormRepository struct {
	db *gorm.DB
}

// DI
func NewVariantGormRepository(db *gorm.DB) *VariantGormRepository {
	return &VariantGormRepository{db: db}
}

func (r *VariantGormRepository) FindByID(ctx context.Context, variantID int64) (model.ProductVariant, error) {
	var v model.ProductVariant
	err := r.db.WithContext(ctx).First(&v, variantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductVariant{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductVariant{}, err
	}
	return v, nil
}

// 商品配下のバリアント一覧
func (r *VariantGormRepository) ListByProductID(ctx context.Context, productID int64, inStockOnly bool) ([]model.ProductVariant, error) {
	var items []model.ProductVariant

	tx := r.db.WithContext(ctx).Where("product_id = ?", productID)
	if inStockOnly {
		tx = tx.Where("stock_quantity > 0")
	}

	if err := tx.Order("id asc").Find(&items).Error; err != nil {
		return []model.ProductVariant{}, err
	}
	return items, nil
}

func (r *VariantGormRepository) FindByProductSizeColor(ctx context.Context, productID int64, size string, color string) (model.ProductVariant, error) {
	var v model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND size = ? AND color = ?", productID, size, color).
		First(&v).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductVariant{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductVariant{}, err
	}
	return v, nil
}

func (r *VariantGormRepository) Create(ctx context.Context, v model.ProductVariant) (model.ProductVariant, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ProductVariant{}, repo.ErrDuplicate
		}
		return model.ProductVariant{}, err
	}
	return v, nil
}

func (r *VariantGormRepository) Update(ctx context.Context, v model.ProductVariant) error {
	res := r.db.WithContext(ctx).Model(&model.ProductVariant{}).Where("id = ?", v.ID).Updates(map[string]interface{}{
		"size":           v.Size,
		"color":          v.Color,
		"color_hex":      v.ColorHex,
		"price":          v.Price,
		"discount_price": v.DiscountPrice,
		"stock_quantity": v.StockQuantity,
		"sku":            v.SKU,
	})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return repo.ErrDuplicate
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *VariantGormRepository) Delete(ctx context.Context, variantID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductVariant{}, variantID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
