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

func TestAdminUserUsecase_List_InvalidPage(t *testing.T) {
	uc := usecase.NewAdminUserUsecase(new(UserRepoMock))

	_, err := uc.List(context.Background(), 0, 20)
	assertErrContains(t, err, "invalid page")
}

func TestAdminUserUsecase_List_Success(t *testing.T) {
	ctx := context.Background()
	users := new(UserRepoMock)
	uc := usecase.NewAdminUserUsecase(users)

	users.On("List", mock.Anything, 1, 20).Return([]model.User{
		{ID: 1, Email: "a@example.com", Role: model.RoleUser, IsActive: true},
		{ID: 2, Email: "b@example.com", Role: model.RoleAdmin, IsActive: false},
	}, int64(2), nil)

	out, err := uc.List(ctx, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
	assert.Equal(t, 2, len(out.Items))
	//password_hashはDTOに含めない
	assert.Equal(t, "ADMIN", out.Items[1].Role)
	assert.False(t, out.Items[1].IsActive)
}

func TestAdminUserUsecase_SetActive_NotFound(t *testing.T) {
	ctx := context.Background()
	users := new(UserRepoMock)
	uc := usecase.NewAdminUserUsecase(users)

	users.On("SetActive", mock.Anything, int64(99), false).Return(repo.ErrNotFound)

	err := uc.SetActive(ctx, 99, false)
	assertErrContains(t, err, "not found")
}

func TestAdminUserUsecase_SetActive_Success(t *testing.T) {
	ctx := context.Background()
	users := new(UserRepoMock)
	uc := usecase.NewAdminUserUsecase(users)

	users.On("SetActive", mock.Anything, int64(2), true).Return(nil)

	err := uc.SetActive(ctx, 2, true)
	assert.NoError(t, err)

	users.AssertExpectations(t)
}
