package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Field limits mirrored by the column sizes in author.go and book.go.
const (
	MaxAuthorNameLength = 50
	MaxBioLength        = 250
	MaxTitleLength      = 100
	MaxISBNLength       = 50
	MaxSummaryLength    = 500
	MaxCoverLength      = 150
)

// ========================================
// AUTHOR DTOs
// ========================================

// AuthorDTO is the externally visible author shape.
type AuthorDTO struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Bio       string    `json:"bio"`
	Books     []BookDTO `json:"books,omitempty"`
}

// AuthorCreateRequest - POST /api/authors
type AuthorCreateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
}

func (r AuthorCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.RuneLength(1, MaxAuthorNameLength)),
		validation.Field(&r.LastName, validation.Required, validation.RuneLength(1, MaxAuthorNameLength)),
		validation.Field(&r.Bio, validation.RuneLength(0, MaxBioLength)),
	)
}

// AuthorUpdateRequest - PUT /api/authors
// Full replace of the editable fields of the author identified by ID.
type AuthorUpdateRequest struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
}

func (r AuthorUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.FirstName, validation.Required, validation.RuneLength(1, MaxAuthorNameLength)),
		validation.Field(&r.LastName, validation.Required, validation.RuneLength(1, MaxAuthorNameLength)),
		validation.Field(&r.Bio, validation.RuneLength(0, MaxBioLength)),
	)
}

// ========================================
// BOOK DTOs
// ========================================

// BookDTO is the externally visible book shape. Author is present only when loaded.
// Price is written as a JSON string ("10.1") to keep the exact decimal value;
// requests accept it either as a string or as a number.
type BookDTO struct {
	ID       uint             `json:"id"`
	Title    string           `json:"title"`
	Year     *int             `json:"year,omitempty"`
	ISBN     string           `json:"isbn"`
	Summary  string           `json:"summary,omitempty"`
	Cover    string           `json:"cover,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	AuthorID *uint            `json:"authorId,omitempty"`
	Author   *AuthorDTO       `json:"author,omitempty"`
}

// BookCreateRequest - POST /api/books
type BookCreateRequest struct {
	Title    string           `json:"title"`
	Year     *int             `json:"year"`
	ISBN     string           `json:"isbn"`
	Summary  string           `json:"summary"`
	Cover    string           `json:"cover"`
	Price    *decimal.Decimal `json:"price"`
	AuthorID *uint            `json:"authorId"`
}

func (r BookCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&r.ISBN, validation.Required, validation.RuneLength(1, MaxISBNLength)),
		validation.Field(&r.Summary, validation.RuneLength(0, MaxSummaryLength)),
		validation.Field(&r.Cover, validation.RuneLength(0, MaxCoverLength)),
		validation.Field(&r.AuthorID, validation.Required),
	)
}

// BookUpdateRequest - PUT /api/books
type BookUpdateRequest struct {
	ID       uint             `json:"id"`
	Title    string           `json:"title"`
	Year     *int             `json:"year"`
	ISBN     string           `json:"isbn"`
	Summary  string           `json:"summary"`
	Cover    string           `json:"cover"`
	Price    *decimal.Decimal `json:"price"`
	AuthorID *uint            `json:"authorId"`
}

func (r BookUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&r.ISBN, validation.Required, validation.RuneLength(1, MaxISBNLength)),
		validation.Field(&r.Summary, validation.RuneLength(0, MaxSummaryLength)),
		validation.Field(&r.Cover, validation.RuneLength(0, MaxCoverLength)),
		validation.Field(&r.AuthorID, validation.Required),
	)
}
