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
	"regexp"
	"strings"
	"testing"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres"
	activityrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/activity"
	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/commentbatch"
	contentrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/content"
	creatorrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/creator"
	idearepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/idea"
	snapshotrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/snapshot"
	subscriberrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/subscriber"
	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/user"
	authpkg "github.com/ndvoronin/creatorpulse-backend/internal/auth"
	"github.com/ndvoronin/creatorpulse-backend/internal/config"
	activitysvc "github.com/ndvoronin/creatorpulse-backend/internal/service/activity"
	authsvc "github.com/ndvoronin/creatorpulse-backend/internal/service/auth"
	commentssvc "github.com/ndvoronin/creatorpulse-backend/internal/service/comments"
	contentsvc "github.com/ndvoronin/creatorpulse-backend/internal/service/content"
	creatorsvc "github.com/ndvoronin/creatorpulse-backend/internal/service/creator"
	ideassvc "github.com/ndvoronin/creatorpulse-backend/internal/service/ideas"
	sentimentsvc "github.com/ndvoronin/creatorpulse-backend/internal/service/sentiment"
	subscribersvc "github.com/ndvoronin/creatorpulse-backend/internal/service/subscriber"
	gqlpkg "github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/dataloader"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/generated"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/graphql/resolver"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/middleware"
	"github.com/ndvoronin/creatorpulse-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// GraphQL assertion / extraction helpers.
// ---------------------------------------------------------------------------

// gqlData extracts the "data" map from a GraphQL response.
func gqlData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response")
	return data
}

// gqlPayload extracts a specific field from the data map.
func gqlPayload(t *testing.T, result map[string]any, field string) map[string]any {
	t.Helper()
	data := gqlData(t, result)
	payload, ok := data[field].(map[string]any)
	require.True(t, ok, "expected %q in data", field)
	return payload
}

// gqlList extracts a list field from the data map.
func gqlList(t *testing.T, result map[string]any, field string) []any {
	t.Helper()
	data := gqlData(t, result)
	list, ok := data[field].([]any)
	require.True(t, ok, "expected list %q in data", field)
	return list
}

// gqlErrorCode extracts the error code from the first GraphQL error.
func gqlErrorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	errors, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.NotEmpty(t, errors)

	firstErr, ok := errors[0].(map[string]any)
	require.True(t, ok)
	extensions, ok := firstErr["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}

// requireNoErrors asserts that the GraphQL response has no errors.
func requireNoErrors(t *testing.T, result map[string]any) {
	t.Helper()
	if errs, ok := result["errors"]; ok && errs != nil {
		t.Fatalf("unexpected GraphQL errors: %v", errs)
	}
}

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
// Scripted text-generation provider. Classification follows simple keyword
// rules over the numbered comments embedded in the prompt, so tests can
// predict every count in the resulting snapshot.
// ---------------------------------------------------------------------------

var commentLine = regexp.MustCompile(`(?m)^\d+\. (.+)$`)

const scriptedIdeas = `[
  {"title": "Beginner Jigs Series", "description": "Short builds using scrap wood.", "ideaType": "VIDEO", "outline": ["pick a jig", "film the build", "publish"]},
  {"title": "Joinery Mini-Course", "description": "Four-part course on classic joints.", "ideaType": "MINI_COURSE", "outline": ["dovetails", "mortise and tenon"]},
  {"title": "Shop Tour Live Q&A", "description": "Walk through the shop and answer questions.", "ideaType": "LIVE_QA", "outline": []}
]`

type scriptedGenerator struct{}

func (g *scriptedGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "sentiment analysis engine"):
		matches := commentLine.FindAllStringSubmatch(prompt, -1)
		judgments := make([]map[string]any, len(matches))
		for i, m := range matches {
			text := strings.ToLower(m[1])
			switch {
			case strings.Contains(text, "love") || strings.Contains(text, "great"):
				judgments[i] = map[string]any{"sentiment": "POSITIVE", "score": 0.9, "keywords": []string{"praise", "quality"}}
			case strings.Contains(text, "boring") || strings.Contains(text, "hate"):
				judgments[i] = map[string]any{"sentiment": "NEGATIVE", "score": -0.8, "keywords": []string{"pacing"}}
			default:
				judgments[i] = map[string]any{"sentiment": "NEUTRAL", "score": 0.0, "keywords": []string{"general"}}
			}
		}
		out, err := json.Marshal(judgments)
		return string(out), err

	case strings.Contains(prompt, "asking the creator for"):
		return `["more beginner tutorials", "longer live sessions"]`, nil

	case strings.Contains(prompt, "content ideas"):
		return scriptedIdeas, nil
	}
	return "", fmt.Errorf("scripted generator: unrecognized prompt")
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). The scripted provider stands
// in for the external model; setupDegradedServer boots without any provider.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	return bootServer(t, &scriptedGenerator{}, true)
}

func setupDegradedServer(t *testing.T) *testServer {
	return bootServer(t, nil, false)
}

func bootServer(t *testing.T, provider *scriptedGenerator, configured bool) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	users := userrepo.New(pool)
	creators := creatorrepo.New(pool)
	subscribers := subscriberrepo.New(pool)
	contentItems := contentrepo.New(pool)
	batches := commentbatch.New(pool)
	snapshots := snapshotrepo.New(pool)
	ideas := idearepo.New(pool)
	events := activityrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtIssuer := "test-issuer"
	accessTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager(jwtSecret, jwtIssuer, accessTTL)

	authCfg := config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        jwtIssuer,
		AccessTokenTTL:   accessTTL,
		PasswordHashCost: 4, // bcrypt.MinCost keeps registration fast in tests
	}
	pipelineCfg := config.PipelineConfig{
		ChunkSize:           5,
		ChunkTimeout:        5 * time.Second,
		IdeaTimeout:         5 * time.Second,
		TopKeywords:         10,
		RequestSampleSize:   20,
		MaxRequests:         5,
		IdeasPerGeneration:  3,
		MaxCommentsPerBatch: 2000,
	}

	// 5. Services.
	activityService := activitysvc.NewService(logger, events)
	authService := authsvc.NewService(logger, users, jwtMgr, activityService, authCfg)
	creatorService := creatorsvc.NewService(logger, creators)
	subscriberService := subscribersvc.NewService(logger, subscribers, creators, activityService)
	contentService := contentsvc.NewService(logger, contentItems, creators, subscribers, activityService)
	commentsService := commentssvc.NewService(logger, batches, creators, activityService, pipelineCfg)
	sentimentService := sentimentsvc.NewService(
		logger, batches, snapshots, creators, provider, activityService,
		pipelineCfg, configured,
	)
	ideasService := ideassvc.NewService(
		logger, ideas, snapshots, batches, creators, provider, txm,
		activityService, pipelineCfg, configured,
	)

	// 6. GraphQL resolver + handler.
	res := resolver.NewResolver(
		logger, authService, creatorService, subscriberService,
		contentService, commentsService, sentimentService, ideasService,
		activityService,
	)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlhandler.NewDefaultServer(schema)
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))

	// 7. DataLoader repositories.
	dlRepos := &dataloader.Repos{
		Creator:  creators,
		Snapshot: snapshots,
		Idea:     ideas,
	}

	// 8. Middleware chain.
	graphqlHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Auth(jwtMgr),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)(gqlSrv)

	// 9. Mux.
	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, "test-version", configured)
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)

	adminHandler := rest.NewAdminHandler(activityService, authService, logger)
	adminChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Auth(jwtMgr),
	)
	mux.Handle("GET /admin/users", adminChain(http.HandlerFunc(adminHandler.Users)))
	mux.Handle("GET /admin/activity/stats", adminChain(http.HandlerFunc(adminHandler.ActivityStats)))
	mux.Handle("GET /admin/activity/events", adminChain(http.HandlerFunc(adminHandler.ActivityEvents)))

	// 10. httptest server.
	srv := httptest.NewServer(mux)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// graphqlQuery sends a GraphQL POST request and returns status + decoded body.
// ---------------------------------------------------------------------------

func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any, token string) (int, map[string]any) {
	t.Helper()

	body := map[string]any{
		"query":     query,
		"variables": variables,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal graphql body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(jsonBody))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// Account and fixture helpers. Accounts go through the real register
// mutation; only the admin helper writes to the DB directly, since there is
// no API path that mints admins.
// ---------------------------------------------------------------------------

const testPassword = "correct-horse-battery"

// registerUser registers a fresh account and returns its token and user ID.
func registerUser(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	email := fmt.Sprintf("e2e-%s@example.com", uuid.New().String()[:8])
	_, result := ts.graphqlQuery(t, `
		mutation($input: RegisterInput!) {
			register(input: $input) {
				accessToken
				user { id email }
			}
		}`,
		map[string]any{"input": map[string]any{
			"email":    email,
			"name":     "E2E User",
			"password": testPassword,
		}}, "")
	requireNoErrors(t, result)

	payload := gqlPayload(t, result, "register")
	token, ok := payload["accessToken"].(string)
	require.True(t, ok, "expected accessToken string")

	user, ok := payload["user"].(map[string]any)
	require.True(t, ok, "expected user object")
	userID, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)

	return token, userID
}

// createCreator upgrades an account to a creator profile and returns the
// profile ID.
func createCreator(t *testing.T, ts *testServer, token string) uuid.UUID {
	t.Helper()

	_, result := ts.graphqlQuery(t, `
		mutation($input: CreateCreatorProfileInput!) {
			createCreatorProfile(input: $input) { id displayName niche }
		}`,
		map[string]any{"input": map[string]any{
			"displayName": "Workshop Diaries",
			"niche":       "woodworking",
		}}, token)
	requireNoErrors(t, result)

	payload := gqlPayload(t, result, "createCreatorProfile")
	creatorID, err := uuid.Parse(payload["id"].(string))
	require.NoError(t, err)
	return creatorID
}

// createAdminToken inserts an admin user directly and mints a token for it.
func createAdminToken(t *testing.T, ts *testServer) string {
	t.Helper()

	adminID := uuid.New()
	email := fmt.Sprintf("admin-%s@example.com", adminID.String()[:8])
	now := time.Now().UTC()

	_, err := ts.Pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		adminID, email, "E2E Admin", "not-a-real-hash", "admin", now, now,
	)
	require.NoError(t, err)

	token, err := ts.jwt.GenerateAccessToken(adminID, email, "admin")
	require.NoError(t, err)
	return token
}
