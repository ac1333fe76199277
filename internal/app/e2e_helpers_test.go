//go:build e2e

package app_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tastebite-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/tastebite-backend/internal/app"
	"github.com/heartmarshall/tastebite-backend/internal/auth"
	"github.com/heartmarshall/tastebite-backend/internal/config"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "test-issuer"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTValidator
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// catalogMeals is the fake catalog content keyed by lookup id.
type catalogMeals map[string]map[string]any

// newFakeCatalog serves lookup.php from meals. Unknown ids get
// {"meals": null} like the real catalog.
func newFakeCatalog(t *testing.T, meals catalogMeals) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/lookup.php" {
			http.NotFound(w, r)
			return
		}
		body := map[string]any{"meals": nil}
		if m, ok := meals[r.URL.Query().Get("i")]; ok {
			body["meals"] = []any{m}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and a fake recipe catalog.
func setupTestServer(t *testing.T, meals catalogMeals) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	catalog := newFakeCatalog(t, meals)

	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: testJWTSecret, JWTIssuer: testJWTIssuer},
		Catalog: config.CatalogConfig{
			BaseURL:          catalog.URL,
			Timeout:          5 * time.Second,
			RequestsPerSec:   100,
			Burst:            100,
			FailureThreshold: 5,
			OpenTimeout:      time.Second,
		},
		Maintenance: config.MaintenanceConfig{
			SystemUserEmail: "system-" + uuid.NewString()[:8] + "@tastebite.com",
			SystemUserName:  "Tastebite System",
		},
		Shopping: config.ShoppingConfig{MaxTxRetries: 10, RetryBaseWait: 2 * time.Millisecond},
		Share:    config.ShareConfig{TokenBytes: 32},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	}

	svcs := app.NewServices(cfg, pool, logger)
	handler, stop := app.NewHTTPHandler(cfg, pool, svcs, logger)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    auth.NewJWTValidator(testJWTSecret, testJWTIssuer),
	}
}

// createTestUserWithID inserts a user and returns a valid access token for it.
func createTestUserWithID(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	u := testhelper.SeedUser(t, ts.Pool)
	tok, err := ts.jwt.IssueAccessToken(u.ID, 15*time.Minute)
	require.NoError(t, err)
	return tok, u.ID
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do plus decoding the body into a generic map.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := ts.do(t, method, path, token, body)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return status, out
}

// importRecipe posts a direct import and returns the recipe id.
func (ts *testServer) importRecipe(t *testing.T, token, externalID, title string, ingredients ...[2]string) (int, string) {
	t.Helper()

	ings := make([]map[string]string, len(ingredients))
	for i, p := range ingredients {
		ings[i] = map[string]string{"name": p[0], "measure": p[1]}
	}
	status, body := ts.doJSON(t, http.MethodPost, "/api/recipes/import", token, map[string]any{
		"externalId":   externalID,
		"title":        title,
		"instructions": "Cook it.",
		"ingredients":  ings,
	})
	id, _ := body["id"].(string)
	return status, id
}

// tryImport is importRecipe without assertions, for use off the test goroutine.
func (ts *testServer) tryImport(token, externalID, title string) (int, string, error) {
	b, err := json.Marshal(map[string]any{
		"externalId":   externalID,
		"title":        title,
		"instructions": "Cook it.",
		"ingredients":  []map[string]string{{"name": "Flour", "measure": "100g"}},
	})
	if err != nil {
		return 0, "", err
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, ts.URL+"/api/recipes/import", bytes.NewReader(b))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ts.Client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return resp.StatusCode, "", fmt.Errorf("decode import response: %w", err)
	}
	return resp.StatusCode, body.ID, nil
}

// tryPost sends a bodiless POST without assertions, for use off the test
// goroutine.
func (ts *testServer) tryPost(token, path string) (int, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, ts.URL+path, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ts.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// shoppingItems fetches the caller's list keyed by item name.
func (ts *testServer) shoppingItems(t *testing.T, token string) map[string]map[string]any {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodGet, "/api/shopping-list", token, nil)
	require.Equal(t, http.StatusOK, status)

	raw, ok := body["items"].([]any)
	require.True(t, ok, "expected items array")

	out := make(map[string]map[string]any, len(raw))
	for _, it := range raw {
		m := it.(map[string]any)
		out[m["name"].(string)] = m
	}
	return out
}
