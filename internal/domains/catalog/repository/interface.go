package repository

import (
	"context"

	"bookstore-api/internal/domains/catalog/model"
)

// AuthorRepository is the data access contract for authors.
//
// FindByID returns (nil, nil) when the row does not exist.
// Create, Update and Delete report success as a bool; the cause of a failure
// is logged by the implementation and never returned.
type AuthorRepository interface {
	FindAll(ctx context.Context) ([]model.Author, error)
	FindByID(ctx context.Context, id uint) (*model.Author, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, author *model.Author) bool
	Update(ctx context.Context, author *model.Author) bool
	Delete(ctx context.Context, author *model.Author) bool
}

// BookRepository is the data access contract for books. Same semantics as AuthorRepository.
type BookRepository interface {
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, book *model.Book) bool
	Update(ctx context.Context, book *model.Book) bool
	Delete(ctx context.Context, book *model.Book) bool
}
