package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/books", "200"))

	ObserveHTTPRequest(http.MethodGet, "/api/books", http.StatusOK, 15*time.Millisecond)

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/books", "200"))
	assert.Equal(t, before+1, after)
}

func TestObserveHTTPRequestUnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404"))

	ObserveHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestIncLogin(t *testing.T) {
	before := testutil.ToFloat64(logins.WithLabelValues(LoginRejected))
	IncLogin(LoginRejected)
	assert.Equal(t, before+1, testutil.ToFloat64(logins.WithLabelValues(LoginRejected)))
}

func TestIncStoreWriteFailure(t *testing.T) {
	before := testutil.ToFloat64(storeWriteFailures.WithLabelValues("book", "delete"))
	IncStoreWriteFailure("book", "delete")
	assert.Equal(t, before+1, testutil.ToFloat64(storeWriteFailures.WithLabelValues("book", "delete")))
}
