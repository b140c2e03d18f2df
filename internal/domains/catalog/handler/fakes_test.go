package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/catalog/model"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

type fakeAuthorRepo struct {
	FindAllFn  func(ctx context.Context) ([]model.Author, error)
	FindByIDFn func(ctx context.Context, id uint) (*model.Author, error)
	ExistsFn   func(ctx context.Context, id uint) (bool, error)
	CreateFn   func(ctx context.Context, a *model.Author) bool
	UpdateFn   func(ctx context.Context, a *model.Author) bool
	DeleteFn   func(ctx context.Context, a *model.Author) bool
}

func (f *fakeAuthorRepo) FindAll(ctx context.Context) ([]model.Author, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if f.ExistsFn != nil {
		return f.ExistsFn(ctx, id)
	}
	return false, nil
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *model.Author) bool {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, a)
	}
	return true
}

func (f *fakeAuthorRepo) Update(ctx context.Context, a *model.Author) bool {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, a)
	}
	return true
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, a *model.Author) bool {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, a)
	}
	return true
}

type fakeBookRepo struct {
	FindAllFn  func(ctx context.Context) ([]model.Book, error)
	FindByIDFn func(ctx context.Context, id uint) (*model.Book, error)
	ExistsFn   func(ctx context.Context, id uint) (bool, error)
	CreateFn   func(ctx context.Context, b *model.Book) bool
	UpdateFn   func(ctx context.Context, b *model.Book) bool
	DeleteFn   func(ctx context.Context, b *model.Book) bool
}

func (f *fakeBookRepo) FindAll(ctx context.Context) ([]model.Book, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeBookRepo) Exists(ctx context.Context, id uint) (bool, error) {
	if f.ExistsFn != nil {
		return f.ExistsFn(ctx, id)
	}
	return false, nil
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) bool {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return true
}

func (f *fakeBookRepo) Update(ctx context.Context, b *model.Book) bool {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, b)
	}
	return true
}

func (f *fakeBookRepo) Delete(ctx context.Context, b *model.Book) bool {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, b)
	}
	return true
}

func setupAuthorRouter(repo *fakeAuthorRepo) *gin.Engine {
	return setupAuthorRouterWithLogger(repo, logger.Nop())
}

func setupAuthorRouterWithLogger(repo *fakeAuthorRepo, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewAuthorHandler(repo, log)
	g := r.Group("/api/authors")
	g.GET("", h.GetAuthors)
	g.GET("/:id", h.GetAuthor)
	g.POST("", h.Create)
	g.PUT("", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func setupBookRouter(repo *fakeBookRepo) *gin.Engine {
	return setupBookRouterWithLogger(repo, logger.Nop())
}

func setupBookRouterWithLogger(repo *fakeBookRepo, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookHandler(repo, log)
	g := r.Group("/api/books")
	g.GET("", h.GetBooks)
	g.GET("/:id", h.GetBook)
	g.POST("", h.Create)
	g.PUT("", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body
}

func uintPtr(v uint) *uint { return &v }

// bufferLogger writes JSON log lines into buf.
func bufferLogger(buf *bytes.Buffer) logger.Logger {
	return logger.New(zerolog.New(buf))
}
