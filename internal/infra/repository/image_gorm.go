package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ImageGormRepository struct {
	db *gorm.DB
}

// DI
func NewImageGormRepository(db *gorm.DB) *ImageGormRepository {
	return &ImageGormRepository{db: db}
}

func (r *ImageGormRepository) ListByVariantID(ctx context.Context, variantID int64) ([]model.ProductImage, error) {
	var items []model.ProductImage

	err := r.db.WithContext(ctx).
		Where("variant_id = ?", variantID).
		Order("display_order asc").
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.ProductImage{}, err
	}
	return items, nil
}

func (r *ImageGormRepository) FindByID(ctx context.Context, imageID int64) (model.ProductImage, error) {
	var img model.ProductImage
	err := r.db.WithContext(ctx).First(&img, imageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductImage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ImageGormRepository) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ImageGormRepository) Delete(ctx context.Context, imageID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductImage{}, imageID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 既存primaryを外してから対象を立てる。バリアント内でprimaryは常に最大1枚
func (r *ImageGormRepository) SetPrimary(ctx context.Context, variantID int64, imageID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var img model.ProductImage
		if err := tx.Where("id = ? AND variant_id = ?", imageID, variantID).First(&img).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&model.ProductImage{}).
			Where("variant_id = ? AND is_primary = ?", variantID, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}

		res := tx.Model(&model.ProductImage{}).
			Where("id = ?", imageID).
			Update("is_primary", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}
