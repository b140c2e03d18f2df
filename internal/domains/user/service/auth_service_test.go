package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookstore-api/internal/domains/user/model"
	"bookstore-api/internal/domains/user/repository"
	"bookstore-api/internal/testutil"
	"bookstore-api/pkg/jwt"
	"bookstore-api/pkg/logger"
)

type fakeRepo struct {
	FindByUserNameFn func(ctx context.Context, userName string) (*model.User, error)
	CreateFn         func(ctx context.Context, u *model.User) error
}

func (f *fakeRepo) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	return f.FindByUserNameFn(ctx, userName)
}

func (f *fakeRepo) Create(ctx context.Context, u *model.User) error {
	return f.CreateFn(ctx, u)
}

func newService(t *testing.T) (AuthService, *jwt.Manager, *model.User) {
	t.Helper()
	db := testutil.NewTestDB(t)
	admin := testutil.SeedUser(t, db, "admin", "P@ssword1", model.RoleAdministrator)
	m := jwt.NewManager(testutil.JWTKey, testutil.JWTIssuer)
	return NewAuthService(repository.NewGormRepository(db), m, logger.Nop()), m, admin
}

func TestLogin_IssuesTokenWithClaims(t *testing.T) {
	svc, m, admin := newService(t)

	token, err := svc.Login(context.Background(), "admin", "P@ssword1")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@bookstore.test", claims.Subject)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, []string{model.RoleAdministrator}, claims.Roles)
	assert.Equal(t, jwt.TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "P@ssword1")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLogin_StoreErrorIsNotInvalidCredentials(t *testing.T) {
	repo := &fakeRepo{
		FindByUserNameFn: func(ctx context.Context, userName string) (*model.User, error) {
			return nil, errors.New("database is locked")
		},
	}
	svc := NewAuthService(repo, jwt.NewManager("k", "i"), logger.Nop())

	_, err := svc.Login(context.Background(), "admin", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	var stored *model.User
	repo := &fakeRepo{
		CreateFn: func(ctx context.Context, u *model.User) error {
			stored = u
			return nil
		},
	}
	svc := NewAuthService(repo, jwt.NewManager("k", "i"), logger.Nop())

	u, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		UserName: "jane",
		Email:    "jane@bookstore.test",
		Password: "secret123",
		Roles:    []string{model.RoleCustomer},
	})
	require.NoError(t, err)
	require.Same(t, stored, u)

	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
	assert.Equal(t, []string{model.RoleCustomer}, u.RoleNames())
}

func TestCreateUser_Validation(t *testing.T) {
	repo := &fakeRepo{
		CreateFn: func(ctx context.Context, u *model.User) error {
			t.Fatal("store must not be reached")
			return nil
		},
	}
	svc := NewAuthService(repo, jwt.NewManager("k", "i"), logger.Nop())

	_, err := svc.CreateUser(context.Background(), model.CreateUserRequest{UserName: "jane", Email: "not-an-email", Password: "123"})
	assert.Error(t, err)
}

func TestCreateUser_ThenLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewAuthService(repository.NewGormRepository(db), jwt.NewManager(testutil.JWTKey, testutil.JWTIssuer), logger.Nop())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, model.CreateUserRequest{UserName: "jane", Email: "jane@bookstore.test", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, model.CreateUserRequest{UserName: "jane", Email: "jane2@bookstore.test", Password: "secret123"})
	assert.ErrorIs(t, err, model.ErrUserExists)

	token, err := svc.Login(ctx, "jane", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
