package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/user/model"
	"bookstore-api/internal/testutil"
)

func TestGormRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRepository(testutil.NewTestDB(t))

	u := &model.User{
		UserName:     "admin",
		Email:        "admin@bookstore.test",
		PasswordHash: "hash",
		Roles:        []model.UserRole{{Name: model.RoleAdministrator}, {Name: model.RoleCustomer}},
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEmpty(t, u.ID)

	found, err := repo.FindByUserName(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "admin@bookstore.test", found.Email)
	assert.ElementsMatch(t, []string{model.RoleAdministrator, model.RoleCustomer}, found.RoleNames())
}

func TestGormRepository_FindUnknownUser(t *testing.T) {
	repo := NewGormRepository(testutil.NewTestDB(t))

	_, err := repo.FindByUserName(context.Background(), "ghost")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestGormRepository_DuplicateUserName(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	repo := NewGormRepository(db)

	require.NoError(t, repo.Create(ctx, &model.User{UserName: "jane", Email: "a@b.c", PasswordHash: "h"}))
	err := repo.Create(ctx, &model.User{
		UserName:     "jane",
		Email:        "other@b.c",
		PasswordHash: "h",
		Roles:        []model.UserRole{{Name: model.RoleAdministrator}},
	})
	assert.ErrorIs(t, err, model.ErrUserExists)

	var roles int64
	require.NoError(t, db.Model(&model.UserRole{}).Count(&roles).Error)
	assert.Zero(t, roles)
}
