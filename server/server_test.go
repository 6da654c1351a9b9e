package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/speech/config"
	"github.com/adrianliechti/speech/server"

	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, origins ...string) *server.Server {
	cfg := config.Default()
	cfg.Origins = origins
	cfg.Credential = config.StaticCredential{}

	s, err := server.New(cfg)
	require.NoError(t, err)

	return s
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSpeechRoute(t *testing.T) {
	s := newServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.JSONEq(t, `{"error":"Use POST"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hello"}`)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Missing GROQ_API_KEY"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	s := newServer(t, "https://example.org")

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))
}
