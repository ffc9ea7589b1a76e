package usecase

import (
	"context"
	"fmt"
	"net/http"

	repo "app/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// 所有チェックは常にサーバー側のuserIDで行い、クライアントの申告は信用しない
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	variantRepo  repo.VariantRepository
	productRepo  repo.ProductRepository
	imageRepo    repo.ImageRepository
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	variantRepo repo.VariantRepository,
	productRepo repo.ProductRepository,
	imageRepo repo.ImageRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		variantRepo:  variantRepo,
		productRepo:  productRepo,
		imageRepo:    imageRepo,
	}
}

type CartItemResponse struct {
	ID          int64   `json:"id"`
	VariantID   int64   `json:"variant_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Stock       int64   `json:"stock"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

type AddCartInput struct {
	VariantID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// GetCart はカート取得
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.buildCartResponse(ctx, userID)
}

// AddToCart はカートに追加（同一バリアントは数量加算）。
// 加算後の数量でも在庫を超えないことを確認する
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.VariantID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	v, err := u.variantRepo.FindByID(ctx, in.VariantID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 商品チェック（公開のみ）
	p, err := u.productRepo.FindByID(ctx, v.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
	}

	//既存数量と合算して在庫チェック
	var existingQty int64 = 0
	existing, err := u.cartItemRepo.FindByUserAndVariant(ctx, userID, in.VariantID)
	if err == nil {
		existingQty = existing.Quantity
	} else if err != repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	newQty := existingQty + in.Quantity
	if newQty > v.StockQuantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("insufficient stock: %s (%s)", p.Name, v.Size))
	}

	if err := u.cartItemRepo.UpsertByUserAndVariant(ctx, userID, in.VariantID, in.Quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 数量変更（所有チェック＋在庫チェック）。0以下は削除扱い
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if item.UserID != userID {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	//0以下なら明細を消す
	if in.Quantity <= 0 {
		if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil && err != repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return u.buildCartResponse(ctx, userID)
	}

	v, err := u.variantRepo.FindByID(ctx, item.VariantID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if in.Quantity > v.StockQuantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "stock exceeded")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 明細削除
func (u *CartUsecase) DeleteCartItem(ctx context.Context, userID int64, cartItemID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if item.UserID != userID {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// カートを空にする
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.cartItemRepo.DeleteByUserID(ctx, userID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CartResponse{Items: []CartItemResponse{}}, nil
}

// 明細をバリアント・商品・画像と突き合わせてCartResponseを作る
func (u *CartUsecase) buildCartResponse(ctx context.Context, userID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var total float64 = 0

	for _, it := range items {
		v, err := u.variantRepo.FindByID(ctx, it.VariantID)
		if err != nil {
			continue
		}

		p, err := u.productRepo.FindByID(ctx, v.ProductID)
		if err != nil {
			continue
		}
		if !p.IsActive {
			continue
		}

		price := v.EffectivePrice()

		respItems = append(respItems, CartItemResponse{
			ID:          it.ID,
			VariantID:   it.VariantID,
			ProductName: p.Name,
			Size:        v.Size,
			Color:       v.Color,
			Price:       price,
			Quantity:    it.Quantity,
			Stock:       v.StockQuantity,
			ImageURL:    u.representativeImageURL(ctx, v.ID),
		})

		total += price * float64(it.Quantity)
	}

	return CartResponse{Items: respItems, Total: roundAmount(total)}, nil
}

// 代表画像。primary→先頭→なし
func (u *CartUsecase) representativeImageURL(ctx context.Context, variantID int64) string {
	images, err := u.imageRepo.ListByVariantID(ctx, variantID)
	if err != nil || len(images) == 0 {
		return ""
	}
	for _, img := range images {
		if img.IsPrimary {
			return img.URL
		}
	}
	return images[0].URL
}
