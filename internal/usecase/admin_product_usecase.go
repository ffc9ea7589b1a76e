package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 商品・バリアント・画像の管理系
type AdminProductUsecase struct {
	productRepo   repo.ProductRepository
	variantRepo   repo.VariantRepository
	imageRepo     repo.ImageRepository
	orderItemRepo repo.OrderItemRepository
	inventoryRepo repo.InventoryRepository
}

// DI
func NewAdminProductUsecase(
	productRepo repo.ProductRepository,
	variantRepo repo.VariantRepository,
	imageRepo repo.ImageRepository,
	orderItemRepo repo.OrderItemRepository,
	inventoryRepo repo.InventoryRepository,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		productRepo:   productRepo,
		variantRepo:   variantRepo,
		imageRepo:     imageRepo,
		orderItemRepo: orderItemRepo,
		inventoryRepo: inventoryRepo,
	}
}

type AdminCreateProductInput struct {
	Name        string
	Description string
	Category    string
	IsActive    bool
	IsFeatured  bool
}

type AdminVariantInput struct {
	Size          string
	Color         string
	ColorHex      string
	Price         float64
	DiscountPrice *float64
	StockQuantity int64
}

type AdminImageInput struct {
	URL          string
	AltText      string
	DisplayOrder int
}

// 管理者用一覧（非公開も含む）
func (u *AdminProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:            in.Page,
		Limit:           in.Limit,
		Q:               strings.TrimSpace(in.Q),
		Category:        in.Category,
		Featured:        in.Featured,
		Sort:            in.Sort,
		IncludeInactive: true,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// 管理者用詳細。在庫ゼロのバリアントも返す
func (u *AdminProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	variants, err := u.variantRepo.ListByProductID(ctx, productID, false)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for i := range variants {
		images, err := u.imageRepo.ListByVariantID(ctx, variants[i].ID)
		if err != nil {
			return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		variants[i].Images = images
	}
	p.Variants = variants

	return p, nil
}

func (u *AdminProductUsecase) CreateProduct(ctx context.Context, in AdminCreateProductInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        name,
		Slug:        model.Slugify(name),
		Description: in.Description,
		Category:    in.Category,
		IsActive:    in.IsActive,
		IsFeatured:  in.IsFeatured,
	})
	if err == repo.ErrDuplicate {
		return 0, NewHTTPError(http.StatusConflict, "slug already exists")
	}
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p.ID, nil
}

func (u *AdminProductUsecase) UpdateProduct(ctx context.Context, productID int64, in AdminCreateProductInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        name,
		Slug:        model.Slugify(name),
		Description: in.Description,
		Category:    in.Category,
		IsActive:    in.IsActive,
		IsFeatured:  in.IsFeatured,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrDuplicate {
		return NewHTTPError(http.StatusConflict, "slug already exists")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateVariantInput(in AdminVariantInput) error {
	if strings.TrimSpace(in.Size) == "" {
		return NewHTTPError(http.StatusBadRequest, "size required")
	}
	if strings.TrimSpace(in.Color) == "" {
		return NewHTTPError(http.StatusBadRequest, "color required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be > 0")
	}
	if in.DiscountPrice != nil && *in.DiscountPrice >= in.Price {
		return NewHTTPError(http.StatusBadRequest, "discount_price must be < price")
	}
	if in.StockQuantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock_quantity must be >= 0")
	}
	return nil
}

// バリアント作成。(product, size, color) の重複は409
func (u *AdminProductUsecase) CreateVariant(ctx context.Context, productID int64, in AdminVariantInput) (int64, error) {
	if productID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateVariantInput(in); err != nil {
		return 0, err
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return 0, NewHTTPError(http.StatusNotFound, "not found")
		}
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	size := strings.TrimSpace(in.Size)
	color := strings.TrimSpace(in.Color)

	//先にアプリ側で重複を弾く（uniqueインデックスは最後の砦）
	_, err := u.variantRepo.FindByProductSizeColor(ctx, productID, size, color)
	if err == nil {
		return 0, NewHTTPError(http.StatusConflict, "variant already exists")
	}
	if err != repo.ErrNotFound {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	v, err := u.variantRepo.Create(ctx, model.ProductVariant{
		ProductID:     productID,
		Size:          size,
		Color:         color,
		ColorHex:      in.ColorHex,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		StockQuantity: in.StockQuantity,
		SKU:           model.BuildSKU(productID, size, color),
	})
	if err == repo.ErrDuplicate {
		return 0, NewHTTPError(http.StatusConflict, "variant already exists")
	}
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return v.ID, nil
}

func (u *AdminProductUsecase) UpdateVariant(ctx context.Context, variantID int64, in AdminVariantInput) error {
	if variantID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid variant id")
	}
	if err := validateVariantInput(in); err != nil {
		return err
	}

	v, err := u.variantRepo.FindByID(ctx, variantID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	size := strings.TrimSpace(in.Size)
	color := strings.TrimSpace(in.Color)

	v.Size = size
	v.Color = color
	v.ColorHex = in.ColorHex
	v.Price = in.Price
	v.DiscountPrice = in.DiscountPrice
	v.StockQuantity = in.StockQuantity
	//SKUはsize/colorから決定的なので合わせて作り直す
	v.SKU = model.BuildSKU(v.ProductID, size, color)

	err = u.variantRepo.Update(ctx, v)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrDuplicate {
		return NewHTTPError(http.StatusConflict, "variant already exists")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// バリアント削除。注文明細から参照されている場合は拒否
func (u *AdminProductUsecase) DeleteVariant(ctx context.Context, variantID int64) error {
	if variantID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid variant id")
	}

	count, err := u.orderItemRepo.CountByVariantID(ctx, variantID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return NewHTTPError(http.StatusConflict, "variant is referenced by orders, set stock to 0 instead")
	}

	err = u.variantRepo.Delete(ctx, variantID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 在庫の現在値を設定
func (u *AdminProductUsecase) SetVariantStock(ctx context.Context, variantID int64, newStock int64) error {
	if variantID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid variant id")
	}
	if newStock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock_quantity must be >= 0")
	}

	err := u.inventoryRepo.SetStock(ctx, variantID, newStock)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminProductUsecase) AddImage(ctx context.Context, variantID int64, in AdminImageInput) (int64, error) {
	if variantID <= 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid variant id")
	}
	if strings.TrimSpace(in.URL) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "url required")
	}

	if _, err := u.variantRepo.FindByID(ctx, variantID); err != nil {
		if err == repo.ErrNotFound {
			return 0, NewHTTPError(http.StatusNotFound, "not found")
		}
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	img, err := u.imageRepo.Create(ctx, model.ProductImage{
		VariantID:    variantID,
		URL:          strings.TrimSpace(in.URL),
		AltText:      in.AltText,
		DisplayOrder: in.DisplayOrder,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return img.ID, nil
}

func (u *AdminProductUsecase) DeleteImage(ctx context.Context, imageID int64) error {
	if imageID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	err := u.imageRepo.Delete(ctx, imageID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 代表画像の切り替え。バリアント内でprimaryは常に最大1枚
func (u *AdminProductUsecase) SetPrimaryImage(ctx context.Context, variantID int64, imageID int64) error {
	if variantID <= 0 || imageID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.imageRepo.SetPrimary(ctx, variantID, imageID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
