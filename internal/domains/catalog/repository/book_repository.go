package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookstore-api/internal/domains/catalog/model"
	"bookstore-api/pkg/logger"
)

type gormBookRepository struct {
	db  *gorm.DB
	log logger.Logger
}

// NewBookRepository creates a GORM backed BookRepository.
func NewBookRepository(db *gorm.DB, log logger.Logger) BookRepository {
	return &gormBookRepository{db: db, log: log}
}

// FindAll returns every book with its author.
func (r *gormBookRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("id").
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("find all books: %w", err)
	}
	return books, nil
}

func (r *gormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find book %d: %w", id, err)
	}
	return &book, nil
}

func (r *gormBookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check book %d exists: %w", id, err)
	}
	return count > 0, nil
}

// Create inserts the book and writes the generated id back into it.
// The author relation is referenced by AuthorID only, never upserted.
func (r *gormBookRepository) Create(ctx context.Context, book *model.Book) bool {
	result := r.db.WithContext(ctx).Omit("Author").Create(book)
	return r.saved("create book", result)
}

// Update replaces the editable columns of the row with book.ID.
func (r *gormBookRepository) Update(ctx context.Context, book *model.Book) bool {
	result := r.db.WithContext(ctx).
		Model(&model.Book{ID: book.ID}).
		Select(book.EditableColumns()).
		Updates(book)
	return r.saved("update book", result)
}

func (r *gormBookRepository) Delete(ctx context.Context, book *model.Book) bool {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, book.ID)
	return r.saved("delete book", result)
}

func (r *gormBookRepository) saved(op string, result *gorm.DB) bool {
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
