package repository

import (
	"context"

	"bookstore-api/internal/domains/user/model"
)

// Repository is the identity store contract.
type Repository interface {
	// FindByUserName loads the user with its roles.
	// Returns model.ErrUserNotFound when no such user exists.
	FindByUserName(ctx context.Context, userName string) (*model.User, error)

	// Create stores the user and its roles atomically.
	// Returns model.ErrUserExists when the user name is taken.
	Create(ctx context.Context, user *model.User) error
}
