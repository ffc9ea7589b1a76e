package repository

import (
	"context"

	"app/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error

	//管理者用
	List(ctx context.Context, page int, limit int) ([]model.User, int64, error)
	SetActive(ctx context.Context, userID int64, active bool) error
}
