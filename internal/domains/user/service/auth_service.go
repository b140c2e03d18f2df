package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bookstore-api/internal/domains/user/model"
	"bookstore-api/internal/domains/user/repository"
	"bookstore-api/pkg/jwt"
	"bookstore-api/pkg/logger"
)

type authService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
	log        logger.Logger

	// dummyHash is compared against when the user does not exist so that
	// both rejection paths cost one bcrypt comparison.
	dummyHash []byte
}

// NewAuthService creates the authentication service.
func NewAuthService(repo repository.Repository, jwtManager *jwt.Manager, log logger.Logger) AuthService {
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return &authService{
		repo:       repo,
		jwtManager: jwtManager,
		log:        log,
		dummyHash:  dummy,
	}
}

func (s *authService) Login(ctx context.Context, userName, password string) (string, error) {
	// 1. FIND USER
	u, err := s.repo.FindByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return "", model.ErrInvalidCredentials
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	// 2. VERIFY PASSWORD
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	// 3. ISSUE TOKEN
	token, err := s.jwtManager.GenerateToken(u.ID, u.Email, u.RoleNames())
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}

func (s *authService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	for _, role := range req.Roles {
		u.Roles = append(u.Roles, model.UserRole{Name: role})
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("[AUTH] User created", map[string]interface{}{
		"user_id": u.ID,
		"roles":   u.RoleNames(),
	})
	return u, nil
}
