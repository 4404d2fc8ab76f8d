package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_JSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "version": "1.2.3"}`))
	}))
	defer srv.Close()

	res := NewProber(nil).Check(context.Background(), srv.URL)

	assert.Equal(t, StateHealthy, res.State)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.GreaterOrEqual(t, res.ResponseTime, time.Duration(0))
	require.IsType(t, map[string]any{}, res.Data)
	data := res.Data.(map[string]any)
	assert.Equal(t, true, data["ok"])
	assert.Equal(t, "1.2.3", data["version"])
}

func TestCheck_PlainTextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	res := NewProber(nil).Check(context.Background(), srv.URL)

	assert.Equal(t, StateHealthy, res.State)
	assert.Equal(t, "OK", res.Data)
}

func TestCheck_JSONContentTypeWithBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	res := NewProber(nil).Check(context.Background(), srv.URL)

	// falls back to the raw text when decoding fails
	assert.Equal(t, StateHealthy, res.State)
	assert.Equal(t, "not json at all", res.Data)
}

func TestCheck_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	res := NewProber(nil).Check(context.Background(), srv.URL)

	assert.Equal(t, StateUnhealthy, res.State)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Nil(t, res.Data)
	assert.Empty(t, res.Err)
}

func TestCheck_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := NewProber(nil).Check(context.Background(), url)

	assert.Equal(t, StateError, res.State)
	assert.Zero(t, res.StatusCode)
	assert.NotEmpty(t, res.Err)
}

func TestCheck_InvalidURL(t *testing.T) {
	res := NewProber(nil).Check(context.Background(), "http://[::1]:namedport/health")

	assert.Equal(t, StateError, res.State)
	assert.NotEmpty(t, res.Err)
}
