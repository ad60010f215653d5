package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cytomat_exporter/internal/capability"
	"cytomat_exporter/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "parseLevel(%q)", in)
	}
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
}

func TestOpenFeed(t *testing.T) {
	rc, err := openFeed("")
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	path := filepath.Join(t.TempDir(), "feed")
	require.NoError(t, os.WriteFile(path, []byte("overview 00\n"), 0o600))
	rc, err = openFeed(path)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	_, err = openFeed(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestAuthorizeDevice(t *testing.T) {
	v, err := authorizeDevice(&config.Config{Variant: "C2C_450_SHAKE", Require: []string{"incubate", "shake"}})
	require.NoError(t, err)
	assert.Equal(t, capability.C2C450Shake, v)

	v, err = authorizeDevice(&config.Config{Variant: "C6002"})
	require.NoError(t, err)
	assert.Equal(t, capability.C6002, v)

	_, err = authorizeDevice(&config.Config{Variant: "C9999"})
	assert.ErrorIs(t, err, capability.ErrUnknownVariant)

	_, err = authorizeDevice(&config.Config{Variant: "C5C", Require: []string{"freeze"}})
	assert.Error(t, err)

	_, err = authorizeDevice(&config.Config{Variant: "C6000", Require: []string{"incubate", "shake"}})
	assert.ErrorIs(t, err, capability.ErrUnsupportedCapability)
}
