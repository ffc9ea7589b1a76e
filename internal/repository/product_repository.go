package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")
	//(product, size, color) 重複
	ErrDuplicate = errors.New("duplicate")
	//参照が残っていて削除できない
	ErrConflict = errors.New("conflict")
)

// 一覧検索
type ProductListQuery struct {
	Page     int
	Limit    int
	Q        string
	Category string
	Featured *bool
	Sort     string
	//falseなら公開商品のみ（ストアフロント）
	IncludeInactive bool
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
}
