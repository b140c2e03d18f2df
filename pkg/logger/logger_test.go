package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(zerolog.New(&buf))

	log.Info("Books - GetBook: Successful", map[string]interface{}{"id": 7})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "Books - GetBook: Successful", line["message"])
	assert.EqualValues(t, 7, line["id"])
}

func TestLoggerError(t *testing.T) {
	var buf bytes.Buffer
	log := New(zerolog.New(&buf))

	log.Error("Books - Delete: failed", errors.New("constraint"))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "constraint", line["error"])
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		log := Nop()
		log.Debug("x")
		log.Info("x", nil)
		log.Warn("x", map[string]interface{}{"k": "v"})
		log.Error("x", nil)
	})
}
