// Package app wires configuration, storage, services, and transports into
// a running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres"
	activityrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/activity"
	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/commentbatch"
	contentrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/content"
	creatorrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/creator"
	idearepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/idea"
	snapshotrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/snapshot"
	subscriberrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/subscriber"
	userrepo "github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres/user"
	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/provider/anthropic"
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

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services into the GraphQL and REST
// transports, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	providerConfigured := cfg.Provider.HasProviderKey()

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("provider_configured", providerConfigured),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	creators := creatorrepo.New(pool)
	subscribers := subscriberrepo.New(pool)
	contentItems := contentrepo.New(pool)
	batches := commentbatch.New(pool)
	snapshots := snapshotrepo.New(pool)
	ideas := idearepo.New(pool)
	events := activityrepo.New(pool)

	var textGen *anthropic.Client
	if providerConfigured {
		textGen = anthropic.New(cfg.Provider)
	}

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	activityService := activitysvc.NewService(logger, events)
	authService := authsvc.NewService(logger, users, jwtMgr, activityService, cfg.Auth)
	creatorService := creatorsvc.NewService(logger, creators)
	subscriberService := subscribersvc.NewService(logger, subscribers, creators, activityService)
	contentService := contentsvc.NewService(logger, contentItems, creators, subscribers, activityService)
	commentsService := commentssvc.NewService(logger, batches, creators, activityService, cfg.Pipeline)
	sentimentService := sentimentsvc.NewService(
		logger, batches, snapshots, creators, textGen, activityService,
		cfg.Pipeline, providerConfigured,
	)
	ideasService := ideassvc.NewService(
		logger, ideas, snapshots, batches, creators, textGen, txm,
		activityService, cfg.Pipeline, providerConfigured,
	)

	res := resolver.NewResolver(
		logger, authService, creatorService, subscriberService,
		contentService, commentsService, sentimentService, ideasService,
		activityService,
	)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlhandler.New(schema)
	gqlSrv.AddTransport(transport.Options{})
	gqlSrv.AddTransport(transport.GET{})
	gqlSrv.AddTransport(transport.POST{})
	gqlSrv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))
	if cfg.GraphQL.IntrospectionEnabled {
		gqlSrv.Use(extension.Introspection{})
	}
	if cfg.GraphQL.ComplexityLimit > 0 {
		gqlSrv.Use(extension.FixedComplexityLimit(cfg.GraphQL.ComplexityLimit))
	}

	dlRepos := &dataloader.Repos{
		Creator:  creators,
		Snapshot: snapshots,
		Idea:     ideas,
	}

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	graphqlHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(jwtMgr),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)(gqlSrv)

	healthHandler := rest.NewHealthHandler(pool, BuildVersion(), providerConfigured)
	adminHandler := rest.NewAdminHandler(activityService, authService, logger)
	adminChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Auth(jwtMgr),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /query", playground.Handler("CreatorPulse", "/query"))
	}
	mux.Handle("GET /admin/users", adminChain(http.HandlerFunc(adminHandler.Users)))
	mux.Handle("GET /admin/activity/stats", adminChain(http.HandlerFunc(adminHandler.ActivityStats)))
	mux.Handle("GET /admin/activity/events", adminChain(http.HandlerFunc(adminHandler.ActivityEvents)))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
