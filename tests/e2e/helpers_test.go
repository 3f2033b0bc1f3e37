//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/nestling-app/nestling-backend/internal/adapter/postgres"
	hospitalrepo "github.com/nestling-app/nestling-backend/internal/adapter/postgres/hospital"
	parentrepo "github.com/nestling-app/nestling-backend/internal/adapter/postgres/parent"
	postrepo "github.com/nestling-app/nestling-backend/internal/adapter/postgres/post"
	relationrepo "github.com/nestling-app/nestling-backend/internal/adapter/postgres/relation"
	"github.com/nestling-app/nestling-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/nestling-app/nestling-backend/internal/auth"
	"github.com/nestling-app/nestling-backend/internal/config"
	"github.com/nestling-app/nestling-backend/internal/domain"
	authsvc "github.com/nestling-app/nestling-backend/internal/service/auth"
	"github.com/nestling-app/nestling-backend/internal/service/feed"
	hospitalsvc "github.com/nestling-app/nestling-backend/internal/service/hospital"
	postsvc "github.com/nestling-app/nestling-backend/internal/service/post"
	"github.com/nestling-app/nestling-backend/internal/service/search"
	"github.com/nestling-app/nestling-backend/internal/transport/middleware"
	"github.com/nestling-app/nestling-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// Mock Kakao verifier (not exercised in E2E tests)
// ---------------------------------------------------------------------------

type mockKakaoVerifier struct{}

func (m *mockKakaoVerifier) VerifyCode(_ context.Context, _ string) (*authpkg.ProviderIdentity, error) {
	return nil, fmt.Errorf("mock: kakao not supported in tests")
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// 3. Repositories.
	parents := parentrepo.New(pool)
	posts := postrepo.New(pool)
	relations := relationrepo.New(pool)
	records := hospitalrepo.New(pool)
	txMgr := postgres.NewTxManager(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	// 5. Services.
	feedCfg := config.FeedConfig{MaxPageSize: 100, ExcerptLength: 80}
	authService := authsvc.NewService(logger, parents, jwtMgr, &mockKakaoVerifier{}, config.AuthConfig{
		JWTSecret:      jwtSecret,
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
		BcryptCost:     4,
	})
	feedService := feed.NewService(logger, relations, posts, feedCfg)
	searchService := search.NewService(logger, posts, feedCfg)
	postService := postsvc.NewService(logger, posts, feedCfg)
	hospitalService := hospitalsvc.NewService(logger, records, txMgr)

	// 6. Handlers.
	authHandler := rest.NewAuthHandler(authService, logger)
	searchHandler := rest.NewSearchHandler(feedService, searchService, logger)
	postHandler := rest.NewPostHandler(postService, logger)
	hospitalHandler := rest.NewHospitalHandler(hospitalService, logger)
	healthHandler := rest.NewHealthHandler(pool, "test-version")

	// 7. Mux.
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/login/kakao", authHandler.LoginKakao)

	mux.HandleFunc("POST /post/search/recommend", searchHandler.Recommend)
	mux.HandleFunc("POST /post/search/result", searchHandler.Result)

	mux.HandleFunc("POST /post", postHandler.Create)
	mux.HandleFunc("GET /post", postHandler.List)
	mux.HandleFunc("GET /post/{id}", postHandler.Get)
	mux.HandleFunc("PUT /post/{id}", postHandler.Update)
	mux.HandleFunc("DELETE /post/{id}", postHandler.Delete)
	mux.HandleFunc("POST /post/{id}/script", postHandler.ToggleScript)
	mux.HandleFunc("POST /post/{id}/heart", postHandler.ToggleHeart)

	mux.HandleFunc("POST /hospital", hospitalHandler.Create)
	mux.HandleFunc("GET /hospital", hospitalHandler.List)
	mux.HandleFunc("GET /hospital/{id}", hospitalHandler.Get)
	mux.HandleFunc("PUT /hospital/{id}", hospitalHandler.Update)
	mux.HandleFunc("DELETE /hospital/{id}", hospitalHandler.Delete)

	// 8. Middleware chain.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	// 9. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// tokenFor mints a valid access token for a seeded parent.
func (ts *testServer) tokenFor(t *testing.T, parent domain.Parent) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(parent.ID, parent.SignInMethod)
	require.NoError(t, err)
	return token
}

// restRequest sends a JSON request and returns the raw response.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes a JSON response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
