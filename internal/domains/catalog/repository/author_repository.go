package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookstore-api/internal/domains/catalog/model"
	"bookstore-api/pkg/logger"
)

type gormAuthorRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewAuthorRepository creates a GORM backed AuthorRepository.
func NewAuthorRepository(db *gorm.DB, log logger.Logger) AuthorRepository {
	return &gormAuthorRepository{db: db, log: log}
}

// FindAll returns every author with its books.
func (r *gormAuthorRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).
		Preload("Books").
		Order("id").
		Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("find all authors: %w", err)
	}
	return authors, nil
}

func (r *gormAuthorRepository) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	err := r.db.WithContext(ctx).
		Preload("Books").
		First(&author, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find author %d: %w", id, err)
	}
	return &author, nil
}

func (r *gormAuthorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check author %d exists: %w", id, err)
	}
	return count > 0, nil
}

// Create inserts the author and writes the generated id back into it.
func (r *gormAuthorRepository) Create(ctx context.Context, author *model.Author) bool {
	result := r.db.WithContext(ctx).Omit("Books").Create(author)
	return r.saved("create author", result)
}

// Update replaces the editable columns of the row with author.ID.
func (r *gormAuthorRepository) Update(ctx context.Context, author *model.Author) bool {
	result := r.db.WithContext(ctx).
		Model(&model.Author{ID: author.ID}).
		Select(author.EditableColumns()).
		Updates(author)
	return r.saved("update author", result)
}

func (r *gormAuthorRepository) Delete(ctx context.Context, author *model.Author) bool {
	result := r.db.WithContext(ctx).Delete(&model.Author{}, author.ID)
	return r.saved("delete author", result)
}

// saved reports a write that errors or touches no row as a failure.
func (r *gormAuthorRepository) saved(op string, result *gorm.DB) bool {
	if result.Error != nil {
		r.log.Error("[REPOSITORY] "+op+" failed", result.Error)
		return false
	}
	if result.RowsAffected == 0 {
		r.log.Warn("[REPOSITORY] "+op+" affected no rows", nil)
		return false
	}
	return true
}
