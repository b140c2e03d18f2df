package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/domains/catalog/model"
	"bookstore-api/internal/domains/catalog/repository"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

const (
	bookCreateFailed = "Book creation failed. Please contact customer support."
	bookUpdateFailed = "Update book failed. Please contact customer support."
	bookDeleteFailed = "Delete book failed. Please contact customer support."
)

// BookHandler serves /api/books.
type BookHandler struct {
	base
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository, log logger.Logger) *BookHandler {
	return &BookHandler{
		base: base{controller: "Books", log: log},
		repo: repo,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetBooks(c *gin.Context) {
	location := h.location("GetBooks")
	defer h.recoverPanic(c, location)
	h.attempted(location)

	books, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.internalError(c, location, err)
		return
	}

	h.successful(location)
	response.OK(c, model.BooksToDTO(books))
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetBook(c *gin.Context) {
	location := h.location("GetBook")
	defer h.recoverPanic(c, location)
	h.attempted(location)

	id, ok := h.parseID(c, location)
	if !ok {
		return
	}

	book, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, location, err)
		return
	}
	if book == nil {
		h.warn(location, fmt.Sprintf("Book with id:%d not found.", id))
		response.NotFound(c, fmt.Sprintf("Book (id: %d) not found.", id))
		return
	}

	h.successful(location)
	response.OK(c, model.BookToDTO(book))
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/books (Administrator)
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	location := h.location("Create")
	defer h.recoverPanic(c, location)
	h.attempted(location)

	var req model.BookCreateRequest
	if !h.bind(c, location, "bookDTO", &req) {
		return
	}

	book := req.ToEntity()
	if !h.repo.Create(c.Request.Context(), book) {
		h.writeFailed(c, location, "book", "create", bookCreateFailed)
		return
	}

	h.successful(location)
	response.Created(c, fmt.Sprintf("/api/books/%d", book.ID), model.BookToDTO(book))
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/books (Administrator)
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	location := h.location("Update")
	defer h.recoverPanic(c, location)
	h.attempted(location)

	var req model.BookUpdateRequest
	if !h.bind(c, location, "bookUpdateDTO", &req) {
		return
	}

	if !h.repo.Update(c.Request.Context(), req.ToEntity()) {
		h.writeFailed(c, location, "book", "update", bookUpdateFailed)
		return
	}

	h.successful(location)
	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/books/:id (Administrator)
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	location := h.location("Delete")
	defer h.recoverPanic(c, location)
	h.attempted(location)

	id, ok := h.parseID(c, location)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	exists, err := h.repo.Exists(ctx, id)
	if err != nil {
		h.internalError(c, location, err)
		return
	}
	if !exists {
		h.warn(location, fmt.Sprintf("Book with id:%d not found.", id))
		response.NotFound(c, fmt.Sprintf("Book (id: %d) not found.", id))
		return
	}

	book, err := h.repo.FindByID(ctx, id)
	if err != nil {
		h.internalError(c, location, err)
		return
	}
	// Removed between Exists and FindByID.
	if book == nil {
		h.warn(location, fmt.Sprintf("Book with id:%d not found.", id))
		response.NotFound(c, fmt.Sprintf("Book (id: %d) not found.", id))
		return
	}

	if !h.repo.Delete(ctx, book) {
		h.writeFailed(c, location, "book", "delete", bookDeleteFailed)
		return
	}

	h.successful(location)
	response.NoContent(c)
}
