package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookstore-api/internal/domains/user/model"
	"bookstore-api/pkg/database"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates the GORM backed identity store.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("user_name = ?", userName).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by name: %w", err)
	}
	return &u, nil
}

func (r *gormRepository) Create(ctx context.Context, user *model.User) error {
	return database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).
			Where("user_name = ?", user.UserName).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check user name: %w", err)
		}
		if count > 0 {
			return model.ErrUserExists
		}

		roles := user.Roles
		if err := tx.Omit("Roles").Create(user).Error; err != nil {
			return fmt.Errorf("insert user: %w", err)
		}

		for i := range roles {
			roles[i].UserID = user.ID
		}
		if len(roles) > 0 {
			if err := tx.Create(&roles).Error; err != nil {
				return fmt.Errorf("insert user roles: %w", err)
			}
		}
		user.Roles = roles
		return nil
	})
}
