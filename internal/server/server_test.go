package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/noobdev/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(`<div id="app"></div>`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.wasm"), []byte("\x00asm"), 0o600))

	cfg := config.Default().Server
	cfg.Root = root
	cfg.Addr = "127.0.0.1:0"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := New(cfg, logger)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_Index(t *testing.T) {
	h := testServer(t).Routes()

	rec := get(t, h, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="app"`)
}

func TestServer_WasmContentType(t *testing.T) {
	h := testServer(t).Routes()

	rec := get(t, h, "/main.wasm")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/wasm", rec.Header().Get("Content-Type"))
}

func TestServer_Healthz(t *testing.T) {
	rec := get(t, testServer(t).Routes(), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServer_MetricsCountRequests(t *testing.T) {
	h := testServer(t).Routes()
	get(t, h, "/")
	get(t, h, "/missing.js")

	rec := get(t, h, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `noobdev_http_requests_total{code="200",method="GET"} 1`)
	assert.Contains(t, body, `noobdev_http_requests_total{code="404",method="GET"} 1`)
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := get(t, h, "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNew_MissingRoot(t *testing.T) {
	cfg := config.Default().Server
	cfg.Root = filepath.Join(t.TempDir(), "nope")

	_, err := New(cfg, slog.Default())
	require.Error(t, err)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	s := testServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
