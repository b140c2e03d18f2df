package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestCreatedSetsLocation(t *testing.T) {
	c, w := newContext()

	Created(c, "/api/books/3", gin.H{"id": 3})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/books/3", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":3}`, w.Body.String())
}

func TestErrorEnvelope(t *testing.T) {
	c, w := newContext()

	NotFound(c, "Book (id: 3) not found.")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"NOT_FOUND","message":"Book (id: 3) not found."}}`, w.Body.String())
}

func TestValidationErrorListsFields(t *testing.T) {
	c, w := newContext()

	ValidationError(c, validation.Errors{"title": errors.New("cannot be blank")})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, map[string]interface{}{"title": "cannot be blank"}, body.Error.Details)
}

func TestValidationErrorPlain(t *testing.T) {
	c, w := newContext()

	ValidationError(c, errors.New("bad input"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad input")
}

func TestNoContent(t *testing.T) {
	c, w := newContext()

	NoContent(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
