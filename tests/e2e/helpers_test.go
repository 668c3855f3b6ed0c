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
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/ricmershon/dwellio-sub005/internal/adapter/postgres"
	bookmarkrepo "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/bookmark"
	messagerepo "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/message"
	propertyrepo "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/property"
	"github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/testhelper"
	userrepo "github.com/ricmershon/dwellio-sub005/internal/adapter/postgres/user"
	authpkg "github.com/ricmershon/dwellio-sub005/internal/auth"
	"github.com/ricmershon/dwellio-sub005/internal/config"
	authsvc "github.com/ricmershon/dwellio-sub005/internal/service/auth"
	messagesvc "github.com/ricmershon/dwellio-sub005/internal/service/message"
	propertysvc "github.com/ricmershon/dwellio-sub005/internal/service/property"
	usersvc "github.com/ricmershon/dwellio-sub005/internal/service/user"
	"github.com/ricmershon/dwellio-sub005/internal/transport/dataloader"
	"github.com/ricmershon/dwellio-sub005/internal/transport/middleware"
	"github.com/ricmershon/dwellio-sub005/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
	google *fakeGoogle
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// fakeGoogle resolves authorization codes registered by the test.
// ---------------------------------------------------------------------------

type fakeGoogle struct {
	mu    sync.Mutex
	codes map[string]authpkg.OAuthIdentity
}

func (g *fakeGoogle) register(code string, id authpkg.OAuthIdentity) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.codes[code] = id
}

func (g *fakeGoogle) VerifyCode(_ context.Context, code string) (*authpkg.OAuthIdentity, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, ok := g.codes[code]
	if !ok {
		return nil, fmt.Errorf("fake google: unknown code %q", code)
	}
	return &id, nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	properties := propertyrepo.New(pool)
	bookmarks := bookmarkrepo.New(pool)
	messages := messagerepo.New(pool)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", time.Hour)
	google := &fakeGoogle{codes: make(map[string]authpkg.OAuthIdentity)}

	authService := authsvc.NewService(logger, users, txm, authpkg.NewPasswordHasher(4), google, jwtMgr)
	userService := usersvc.NewService(logger, users, txm)
	propertyService := propertysvc.NewService(logger, properties, bookmarks, messages, txm, propertysvc.Paging{})
	messageService := messagesvc.NewService(logger, messages, properties)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterConfig{
		Logger:      logger,
		Health:      rest.NewHealthHandler(pool, "test-version"),
		Auth:        rest.NewAuthHandler(authService, logger),
		User:        rest.NewUserHandler(userService, logger),
		Property:    rest.NewPropertyHandler(propertyService, logger),
		Message:     rest.NewMessageHandler(messageService, logger),
		Validator:   authService,
		Loaders:     &dataloader.Repos{User: users, Property: properties},
		RateLimiter: limiter,
		RateLimit:   config.RateLimitConfig{AuthPerMinute: 1000},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
		google: google,
	}
}

// ---------------------------------------------------------------------------
// do sends a JSON request and returns status + decoded body.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	status, raw := ts.doRaw(t, method, path, body, token)
	if len(raw) == 0 {
		return status, nil
	}
	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "decode %s %s: %s", method, path, raw)
	return status, result
}

// doList is like do for endpoints returning a JSON array.
func (ts *testServer) doList(t *testing.T, method, path string, token string) (int, []map[string]any) {
	t.Helper()

	status, raw := ts.doRaw(t, method, path, nil, token)
	var result []map[string]any
	require.NoError(t, json.Unmarshal(raw, &result), "decode %s %s: %s", method, path, raw)
	return status, result
}

func (ts *testServer) doRaw(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out.Bytes()
}

// ---------------------------------------------------------------------------
// Users and tokens
// ---------------------------------------------------------------------------

// createTestUserWithID seeds an OAuth-only user and returns a session token
// for it.
func createTestUserWithID(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	u := testhelper.SeedUser(t, ts.Pool)
	tok, _, err := ts.jwt.GenerateSessionToken(u.ID, u.Email)
	require.NoError(t, err)
	return tok, u.ID
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.New().String()[:8])
}

// validListing returns a create-listing body that passes validation.
func validListing(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"type":        "Apartment",
		"description": "Sunny two bedroom near the park",
		"location": map[string]any{
			"street": "1 Main St", "city": "Boston", "state": "MA", "zipcode": "02101",
		},
		"beds":        2,
		"baths":       1,
		"square_feet": 900,
		"amenities":   []string{"Wifi", "Dishwasher"},
		"rates":       map[string]any{"monthly": 2500},
		"seller_info": map[string]any{"name": "Olivia", "email": "olivia@example.com", "phone": "555-0100"},
		"images":      []string{"https://img.example.com/1.jpg"},
	}
}

// createListing creates a listing through the API and returns its id.
func createListing(t *testing.T, ts *testServer, token, name string) string {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/properties", validListing(name), token)
	require.Equal(t, http.StatusCreated, status, "create listing: %v", body)
	id, ok := body["id"].(string)
	require.True(t, ok)
	return id
}
