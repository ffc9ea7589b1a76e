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

func newProductUsecase() (*usecase.ProductUsecase, *ProductRepoMock, *VariantRepoMock, *ImageRepoMock) {
	productRepo := new(ProductRepoMock)
	variantRepo := new(VariantRepoMock)
	imageRepo := new(ImageRepoMock)
	uc := usecase.NewProductUsecase(productRepo, variantRepo, imageRepo)
	return uc, productRepo, variantRepo, imageRepo
}

func TestProductUsecase_ListPublicProducts_InvalidSort(t *testing.T) {
	uc, _, _, _ := newProductUsecase()

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 20, Sort: "price_asc",
	})
	assertErrContains(t, err, "invalid sort")
}

// 公開一覧は非公開商品を含まない条件でrepoに問い合わせ、在庫ありバリアントを載せる
func TestProductUsecase_ListPublicProducts_ExcludesInactive(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, variantRepo, _ := newProductUsecase()

	productRepo.On("List", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return !q.IncludeInactive && q.Page == 1 && q.Limit == 20 && q.Q == "tee"
	})).Return([]model.Product{{ID: 1, Name: "Classic Tee"}}, int64(1), nil)

	variantRepo.On("ListByProductID", mock.Anything, int64(1), true).Return([]model.ProductVariant{
		{ID: 100, ProductID: 1, Size: "M", StockQuantity: 5},
	}, nil)

	out, err := uc.ListPublicProducts(ctx, usecase.ListProductsInput{
		Page: 1, Limit: 20, Q: " tee ",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, 1, len(out.Items[0].Variants))

	productRepo.AssertExpectations(t)
	variantRepo.AssertExpectations(t)
}

func TestProductUsecase_GetProductDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _ := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(404)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(ctx, 404)
	assertErrContains(t, err, "not found")
}

// 非公開商品は存在しない扱い
func TestProductUsecase_GetProductDetail_InactiveIsNotFound(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _ := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "Hidden", IsActive: false,
	}, nil)

	_, err := uc.GetProductDetail(ctx, 1)
	assertErrContains(t, err, "not found")
}

// 詳細には在庫ありバリアントだけ載る
func TestProductUsecase_GetProductDetail_InStockVariantsOnly(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, variantRepo, imageRepo := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "Classic Tee", IsActive: true,
	}, nil)

	variantRepo.On("ListByProductID", mock.Anything, int64(1), true).Return([]model.ProductVariant{
		{ID: 100, ProductID: 1, Size: "M", StockQuantity: 5},
	}, nil)
	imageRepo.On("ListByVariantID", mock.Anything, int64(100)).Return([]model.ProductImage{
		{ID: 1, VariantID: 100, URL: "https://img.example.com/a.jpg", IsPrimary: true},
	}, nil)

	p, err := uc.GetProductDetail(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(p.Variants))
	assert.Equal(t, 1, len(p.Variants[0].Images))

	variantRepo.AssertExpectations(t)
}

func TestProductUsecase_GetProductBySlug(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, variantRepo, _ := newProductUsecase()

	productRepo.On("FindBySlug", mock.Anything, "classic-tee").Return(model.Product{
		ID: 1, Name: "Classic Tee", Slug: "classic-tee", IsActive: true,
	}, nil)
	variantRepo.On("ListByProductID", mock.Anything, int64(1), true).Return([]model.ProductVariant{}, nil)

	p, err := uc.GetProductBySlug(ctx, "classic-tee")
	assert.NoError(t, err)
	assert.Equal(t, "classic-tee", p.Slug)
}

func TestProductUsecase_GetProductBySlug_Empty(t *testing.T) {
	uc, _, _, _ := newProductUsecase()

	_, err := uc.GetProductBySlug(context.Background(), "  ")
	assertErrContains(t, err, "invalid slug")
}
