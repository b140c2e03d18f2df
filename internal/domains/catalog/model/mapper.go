package model

// Conversions between persisted entities and DTOs.
// Relations are projected only when they were loaded; a nil relation stays nil.

func AuthorToDTO(a *Author) *AuthorDTO {
	if a == nil {
		return nil
	}

	dto := &AuthorDTO{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
	}
	if len(a.Books) > 0 {
		dto.Books = BooksToDTO(a.Books)
	}
	return dto
}

func AuthorsToDTO(authors []Author) []AuthorDTO {
	out := make([]AuthorDTO, 0, len(authors))
	for i := range authors {
		out = append(out, *AuthorToDTO(&authors[i]))
	}
	return out
}

func BookToDTO(b *Book) *BookDTO {
	if b == nil {
		return nil
	}

	return &BookDTO{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  b.Summary,
		Cover:    b.Cover,
		Price:    b.Price,
		AuthorID: b.AuthorID,
		Author:   AuthorToDTO(b.Author),
	}
}

func BooksToDTO(books []Book) []BookDTO {
	out := make([]BookDTO, 0, len(books))
	for i := range books {
		out = append(out, *BookToDTO(&books[i]))
	}
	return out
}

func (r *AuthorCreateRequest) ToEntity() *Author {
	return &Author{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
	}
}

func (r *AuthorUpdateRequest) ToEntity() *Author {
	return &Author{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
	}
}

func (r *BookCreateRequest) ToEntity() *Book {
	return &Book{
		Title:    r.Title,
		Year:     r.Year,
		ISBN:     r.ISBN,
		Summary:  r.Summary,
		Cover:    r.Cover,
		Price:    r.Price,
		AuthorID: r.AuthorID,
	}
}

func (r *BookUpdateRequest) ToEntity() *Book {
	return &Book{
		ID:       r.ID,
		Title:    r.Title,
		Year:     r.Year,
		ISBN:     r.ISBN,
		Summary:  r.Summary,
		Cover:    r.Cover,
		Price:    r.Price,
		AuthorID: r.AuthorID,
	}
}
