package service

import (
	"context"

	"bookstore-api/internal/domains/user/model"
)

// AuthService authenticates users and provisions identities.
type AuthService interface {
	// Login verifies the credentials and issues a one hour bearer token.
	// Returns model.ErrInvalidCredentials for an unknown user or a wrong password alike.
	Login(ctx context.Context, userName, password string) (string, error)

	// CreateUser hashes the password and stores the user with its roles.
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
}
