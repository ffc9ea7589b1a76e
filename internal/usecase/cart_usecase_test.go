package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartUsecase() (*usecase.CartUsecase, *CartItemRepoMock, *VariantRepoMock, *ProductRepoMock, *ImageRepoMock) {
	cartRepo := new(CartItemRepoMock)
	variantRepo := new(VariantRepoMock)
	productRepo := new(ProductRepoMock)
	imageRepo := new(ImageRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, variantRepo, productRepo, imageRepo)
	return uc, cartRepo, variantRepo, productRepo, imageRepo
}

func TestCartUsecase_AddToCart_InvalidQuantity(t *testing.T) {
	uc, _, _, _, _ := newCartUsecase()

	_, err := uc.AddToCart(context.Background(), 1, usecase.AddCartInput{VariantID: 100, Quantity: 0})
	assertErrContains(t, err, "invalid quantity")
}

func TestCartUsecase_AddToCart_UnknownVariant(t *testing.T) {
	ctx := context.Background()
	uc, _, variantRepo, _, _ := newCartUsecase()

	variantRepo.On("FindByID", mock.Anything, int64(100)).Return(model.ProductVariant{}, repo.ErrNotFound)

	_, err := uc.AddToCart(ctx, 1, usecase.AddCartInput{VariantID: 100, Quantity: 1})
	assertErrContains(t, err, "invalid variant")
}

// 既存数量との合算が在庫を超えたら追加できない
func TestCartUsecase_AddToCart_MergedQuantityExceedsStock(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, variantRepo, productRepo, _ := newCartUsecase()

	variantRepo.On("FindByID", mock.Anything, int64(100)).Return(model.ProductVariant{
		ID: 100, ProductID: 10, Size: "M", Price: 49.99, StockQuantity: 3,
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{
		ID: 10, Name: "Classic Tee", IsActive: true,
	}, nil)

	//すでに2個入っているところに2個追加 → 4 > 在庫3
	cartRepo.On("FindByUserAndVariant", mock.Anything, int64(1), int64(100)).Return(model.CartItem{
		ID: 5, UserID: 1, VariantID: 100, Quantity: 2,
	}, nil)

	_, err := uc.AddToCart(ctx, 1, usecase.AddCartInput{VariantID: 100, Quantity: 2})
	assertErrContains(t, err, "insufficient stock: Classic Tee (M)")

	cartRepo.AssertNotCalled(t, "UpsertByUserAndVariant", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddToCart_Success_MergesQuantity(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, variantRepo, productRepo, imageRepo := newCartUsecase()

	v := model.ProductVariant{ID: 100, ProductID: 10, Size: "M", Color: "White", Price: 49.99, StockQuantity: 10}
	p := model.Product{ID: 10, Name: "Classic Tee", IsActive: true}

	variantRepo.On("FindByID", mock.Anything, int64(100)).Return(v, nil)
	productRepo.On("FindByID", mock.Anything, int64(10)).Return(p, nil)

	cartRepo.On("FindByUserAndVariant", mock.Anything, int64(1), int64(100)).Return(model.CartItem{
		ID: 5, UserID: 1, VariantID: 100, Quantity: 2,
	}, nil)
	cartRepo.On("UpsertByUserAndVariant", mock.Anything, int64(1), int64(100), int64(3)).Return(nil)

	//レスポンス構築
	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 5, UserID: 1, VariantID: 100, Quantity: 5},
	}, nil)
	imageRepo.On("ListByVariantID", mock.Anything, int64(100)).Return([]model.ProductImage{
		{ID: 1, VariantID: 100, URL: "https://img.example.com/a.jpg"},
		{ID: 2, VariantID: 100, URL: "https://img.example.com/b.jpg", IsPrimary: true},
	}, nil)

	out, err := uc.AddToCart(ctx, 1, usecase.AddCartInput{VariantID: 100, Quantity: 3})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(5), out.Items[0].Quantity)
	//primary画像が代表になる
	assert.Equal(t, "https://img.example.com/b.jpg", out.Items[0].ImageURL)
	assert.Equal(t, 249.95, out.Total)

	cartRepo.AssertExpectations(t)
}

// セール価格が合計に効く
func TestCartUsecase_GetCart_UsesEffectivePrice(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, variantRepo, productRepo, imageRepo := newCartUsecase()

	discount := 39.99
	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, VariantID: 200, Quantity: 2},
	}, nil)
	variantRepo.On("FindByID", mock.Anything, int64(200)).Return(model.ProductVariant{
		ID: 200, ProductID: 20, Size: "L", Price: 59.99, DiscountPrice: &discount, StockQuantity: 4,
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(20)).Return(model.Product{
		ID: 20, Name: "Denim Jacket", IsActive: true,
	}, nil)
	imageRepo.On("ListByVariantID", mock.Anything, int64(200)).Return([]model.ProductImage{}, nil)

	out, err := uc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, 39.99, out.Items[0].Price)
	assert.Equal(t, 79.98, out.Total)
}

// 非公開になった商品の明細は表示から外す
func TestCartUsecase_GetCart_SkipsInactiveProduct(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, variantRepo, productRepo, _ := newCartUsecase()

	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, VariantID: 200, Quantity: 1},
	}, nil)
	variantRepo.On("FindByID", mock.Anything, int64(200)).Return(model.ProductVariant{
		ID: 200, ProductID: 20, Price: 10,
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(20)).Return(model.Product{
		ID: 20, IsActive: false,
	}, nil)

	out, err := uc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))
	assert.Equal(t, 0.0, out.Total)
}

// 数量0以下は削除扱い
func TestCartUsecase_UpdateCartItem_ZeroQuantityDeletes(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, _, _, _ := newCartUsecase()

	cartRepo.On("FindByID", mock.Anything, int64(5)).Return(model.CartItem{
		ID: 5, UserID: 1, VariantID: 100, Quantity: 2,
	}, nil)
	cartRepo.On("DeleteByID", mock.Anything, int64(5)).Return(nil)
	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.UpdateCartItem(ctx, 1, 5, usecase.UpdateCartItemInput{Quantity: 0})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))

	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_UpdateCartItem_StockExceeded(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, variantRepo, _, _ := newCartUsecase()

	cartRepo.On("FindByID", mock.Anything, int64(5)).Return(model.CartItem{
		ID: 5, UserID: 1, VariantID: 100, Quantity: 2,
	}, nil)
	variantRepo.On("FindByID", mock.Anything, int64(100)).Return(model.ProductVariant{
		ID: 100, ProductID: 10, StockQuantity: 3,
	}, nil)

	_, err := uc.UpdateCartItem(ctx, 1, 5, usecase.UpdateCartItemInput{Quantity: 4})
	assertErrContains(t, err, "stock exceeded")
}

// 他人の明細はnot found扱い（存在を教えない）
func TestCartUsecase_UpdateCartItem_NotOwner(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, _, _, _ := newCartUsecase()

	cartRepo.On("FindByID", mock.Anything, int64(5)).Return(model.CartItem{
		ID: 5, UserID: 2, VariantID: 100, Quantity: 2,
	}, nil)

	_, err := uc.UpdateCartItem(ctx, 1, 5, usecase.UpdateCartItemInput{Quantity: 1})
	assertErrContains(t, err, "not found")
}

func TestCartUsecase_DeleteCartItem_NotOwner(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, _, _, _ := newCartUsecase()

	cartRepo.On("FindByID", mock.Anything, int64(5)).Return(model.CartItem{
		ID: 5, UserID: 2, VariantID: 100, Quantity: 2,
	}, nil)

	_, err := uc.DeleteCartItem(ctx, 1, 5)
	assertErrContains(t, err, "not found")

	cartRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestCartUsecase_ClearCart(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, _, _, _ := newCartUsecase()

	cartRepo.On("DeleteByUserID", mock.Anything, int64(1)).Return(nil)

	out, err := uc.ClearCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))

	cartRepo.AssertExpectations(t)
}
