package laundry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/freshfold/freshfold/internal/adapters/store/errstore"
	"github.com/freshfold/freshfold/internal/adapters/store/model"
	"github.com/freshfold/freshfold/internal/core/laundry"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		service, storeMock, _ := newService(t)

		storeMock.EXPECT().
			RegisterUser(ctx, "washer", gomock.Any(), model.RoleWasher).
			Return(nil).
			Times(1)

		assert.NoError(t, service.Register(ctx, "washer", "pass", model.RoleWasher))
	})

	t.Run("empty credentials", func(t *testing.T) {
		service, _, _ := newService(t)

		assert.ErrorIs(t, service.Register(ctx, "", "pass", model.RoleUser), laundry.ErrLoginNotValid)
		assert.ErrorIs(t, service.Register(ctx, "user", "", model.RoleUser), laundry.ErrPasswordNotValid)
	})

	t.Run("admin cannot self-register", func(t *testing.T) {
		service, _, _ := newService(t)

		assert.ErrorIs(t, service.Register(ctx, "user", "pass", model.RoleAdmin), laundry.ErrRoleNotValid)
		assert.ErrorIs(t, service.Register(ctx, "user", "pass", "SUPERUSER"), laundry.ErrRoleNotValid)
	})

	t.Run("login taken", func(t *testing.T) {
		service, storeMock, _ := newService(t)

		storeMock.EXPECT().
			RegisterUser(ctx, "user", gomock.Any(), model.RoleUser).
			Return(errstore.ErrLoginNotUnique).
			Times(1)

		assert.ErrorIs(t, service.Register(ctx, "user", "pass", model.RoleUser), errstore.ErrLoginNotUnique)
	})
}

func TestAuthorization(t *testing.T) {
	ctx := context.Background()

	hashPass, err := laundry.HashPassword("pass")
	assert.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		service, storeMock, _ := newService(t)

		storeMock.EXPECT().
			GetUserByLogin(ctx, "user").
			Return(model.User{ID: 1, PasswordHash: hashPass, Role: model.RoleUser}, nil).
			Times(1)

		user, err := service.Authorization(ctx, "user", "pass")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, model.RoleUser, user.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, storeMock, _ := newService(t)

		storeMock.EXPECT().
			GetUserByLogin(ctx, "user").
			Return(model.User{ID: 1, PasswordHash: hashPass}, nil).
			Times(1)

		_, err := service.Authorization(ctx, "user", "wrong")
		assert.ErrorIs(t, err, laundry.ErrPasswordNotEqual)
	})

	t.Run("unknown login", func(t *testing.T) {
		service, storeMock, _ := newService(t)

		storeMock.EXPECT().
			GetUserByLogin(ctx, "ghost").
			Return(model.User{}, errstore.ErrNotFoundData).
			Times(1)

		_, err := service.Authorization(ctx, "ghost", "pass")
		assert.ErrorIs(t, err, errstore.ErrNotFoundData)
	})
}
