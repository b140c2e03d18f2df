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
	authorCreateFailed = "Author creation failed. Please contact customer support."
	authorUpdateFailed = "Update author failed. Please contact customer support."
	authorDeleteFailed = "Delete author failed. Please contact customer support."
)

// AuthorHandler serves /api/authors.
type AuthorHandler struct {
	base
	repo repository.AuthorRepository
}

func NewAuthorHandler(repo repository.AuthorRepository, log logger.Logger) *AuthorHandler {
	return &AuthorHandler{
		base: base{controller: "Authors", log: log},
		repo: repo,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAuthors(c *gin.Context) {
	location := h.location("GetAuthors")
	defer h.recoverPanic(c, location)
	h.attempted(location)

	authors, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		h.internalError(c, location, err)
		return
	}

	h.successful(location)
	response.OK(c, model.AuthorsToDTO(authors))
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	location := h.location("GetAuthor")
	defer h.recoverPanic(c, location)
	h.attempted(location)

	id, ok := h.parseID(c, location)
	if !ok {
		return
	}

	author, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, location, err)
		return
	}
	if author == nil {
		h.warn(location, fmt.Sprintf("Author with id:%d not found.", id))
		response.NotFound(c, fmt.Sprintf("Author (id: %d) not found.", id))
		return
	}

	h.successful(location)
	response.OK(c, model.AuthorToDTO(author))
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/authors (Administrator)
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	location := h.location("Create")
	defer h.recoverPanic(c, location)
	h.attempted(location)

	var req model.AuthorCreateRequest
	if !h.bind(c, location, "authorDTO", &req) {
		return
	}

	author := req.ToEntity()
	if !h.repo.Create(c.Request.Context(), author) {
		h.writeFailed(c, location, "author", "create", authorCreateFailed)
		return
	}

	h.successful(location)
	response.Created(c, fmt.Sprintf("/api/authors/%d", author.ID), model.AuthorToDTO(author))
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/authors (Administrator)
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	location := h.location("Update")
	defer h.recoverPanic(c, location)
	h.attempted(location)

	var req model.AuthorUpdateRequest
	if !h.bind(c, location, "authorUpdateDTO", &req) {
		return
	}

	if !h.repo.Update(c.Request.Context(), req.ToEntity()) {
		h.writeFailed(c, location, "author", "update", authorUpdateFailed)
		return
	}

	h.successful(location)
	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/authors/:id (Administrator)
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
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
		h.warn(location, fmt.Sprintf("Author with id:%d not found.", id))
		response.NotFound(c, fmt.Sprintf("Author (id: %d) not found.", id))
		return
	}

	author, err := h.repo.FindByID(ctx, id)
	if err != nil {
		h.internalError(c, location, err)
		return
	}
	// Removed between Exists and FindByID.
	if author == nil {
		h.warn(location, fmt.Sprintf("Author with id:%d not found.", id))
		response.NotFound(c, fmt.Sprintf("Author (id: %d) not found.", id))
		return
	}

	if !h.repo.Delete(ctx, author) {
		h.writeFailed(c, location, "author", "delete", authorDeleteFailed)
		return
	}

	h.successful(location)
	response.NoContent(c)
}
