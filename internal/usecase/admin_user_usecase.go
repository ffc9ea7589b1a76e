package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"
)

type AdminUserUsecase struct {
	users repo.UserRepository
}

func NewAdminUserUsecase(users repo.UserRepository) *AdminUserUsecase {
	return &AdminUserUsecase{users: users}
}

type UserListOutput struct {
	Items []UserDTO `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

func (u *AdminUserUsecase) List(ctx context.Context, page int, limit int) (UserListOutput, error) {
	if page < 1 {
		return UserListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return UserListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	users, total, err := u.users.List(ctx, page, limit)
	if err != nil {
		return UserListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]UserDTO, 0, len(users))
	for i := range users {
		items = append(items, toUserDTO(&users[i]))
	}

	return UserListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// アカウントの有効/停止切り替え
func (u *AdminUserUsecase) SetActive(ctx context.Context, userID int64, active bool) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.users.SetActive(ctx, userID, active)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
