//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vntravel-backend/internal/app"
	authpkg "github.com/heartmarshall/vntravel-backend/internal/auth"
	"github.com/heartmarshall/vntravel-backend/internal/config"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func baseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{ShutdownTimeout: 5 * time.Second},
		Auth: config.AuthConfig{
			JWTSecret:      jwtSecret,
			JWTIssuer:      jwtIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		Catalog:   config.CatalogConfig{Source: config.CatalogSourceSeed},
		Recommend: config.RecommendConfig{Strategy: config.StrategyOverlap, Seed: 7},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,X-Request-Id,X-Session-ID",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	}
}

// setupTestServer boots the application exactly as cmd/server does, on an
// httptest listener. mutate adjusts the configuration first.
func setupTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()

	cfg := baseConfig()
	for _, m := range mutate {
		m(cfg)
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	a, err := app.New(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
	}
}

// tokenFor mints an access token for a fresh user.
func (ts *testServer) tokenFor(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	token, err := ts.jwt.GenerateAccessToken(id, "E2E")
	require.NoError(t, err)
	return id, token
}

type request struct {
	method  string
	path    string
	body    any
	token   string
	session string
}

// do sends req and decodes the JSON response into a generic map.
func (ts *testServer) do(t *testing.T, req request) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	httpReq, err := http.NewRequest(req.method, ts.URL+req.path, reader)
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	if req.session != "" {
		httpReq.Header.Set("X-Session-ID", req.session)
	}

	resp, err := ts.Client.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func (ts *testServer) get(t *testing.T, path, token string) (int, map[string]any) {
	t.Helper()
	return ts.do(t, request{method: http.MethodGet, path: path, token: token})
}

func (ts *testServer) post(t *testing.T, path, token string, body any) (int, map[string]any) {
	t.Helper()
	return ts.do(t, request{method: http.MethodPost, path: path, token: token, body: body})
}

// errorCode extracts error.code from an error envelope.
func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %v", body)
	code, _ := e["code"].(string)
	return code
}

// errorFields extracts the field names of a validation error in order.
func errorFields(t *testing.T, body map[string]any) []string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %v", body)
	raw, _ := e["fields"].([]any)
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		out = append(out, f.(map[string]any)["field"].(string))
	}
	return out
}

// ids collects the "id" of every object in body[key].
func ids(t *testing.T, body map[string]any, key string) []string {
	t.Helper()
	items, ok := body[key].([]any)
	require.True(t, ok, "expected %q array in %v", key, body)
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.(map[string]any)["id"].(string))
	}
	return out
}
