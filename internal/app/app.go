package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nestling-app/nestling-backend/internal/adapter/postgres"
	hospitalrepo "github.com/nestling-app/nestling-backend/internal/adapter/postgres/hospital"
	parentrepo "github.com/nestling-app/nestling-backend/internal/adapter/postgres/parent"
	postrepo "github.com/nestling-app/nestling-backend/internal/adapter/postgres/post"
	relationrepo "github.com/nestling-app/nestling-backend/internal/adapter/postgres/relation"
	"github.com/nestling-app/nestling-backend/internal/adapter/provider/kakao"
	authpkg "github.com/nestling-app/nestling-backend/internal/auth"
	"github.com/nestling-app/nestling-backend/internal/config"
	authsvc "github.com/nestling-app/nestling-backend/internal/service/auth"
	"github.com/nestling-app/nestling-backend/internal/service/feed"
	hospitalsvc "github.com/nestling-app/nestling-backend/internal/service/hospital"
	postsvc "github.com/nestling-app/nestling-backend/internal/service/post"
	"github.com/nestling-app/nestling-backend/internal/service/search"
	"github.com/nestling-app/nestling-backend/internal/transport/middleware"
	"github.com/nestling-app/nestling-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services, and HTTP handlers, and serves
// until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	parents := parentrepo.New(pool)
	posts := postrepo.New(pool)
	relations := relationrepo.New(pool)
	records := hospitalrepo.New(pool)
	txMgr := postgres.NewTxManager(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	kakaoVerifier := kakao.NewVerifier(cfg.Auth.KakaoClientID, cfg.Auth.KakaoClientSecret, cfg.Auth.KakaoRedirectURI, logger)

	// Services.
	authService := authsvc.NewService(logger, parents, jwtMgr, kakaoVerifier, cfg.Auth)
	feedService := feed.NewService(logger, relations, posts, cfg.Feed)
	searchService := search.NewService(logger, posts, cfg.Feed)
	postService := postsvc.NewService(logger, posts, cfg.Feed)
	hospitalService := hospitalsvc.NewService(logger, records, txMgr)

	// Handlers.
	authHandler := rest.NewAuthHandler(authService, logger)
	searchHandler := rest.NewSearchHandler(feedService, searchService, logger)
	postHandler := rest.NewPostHandler(postService, logger)
	hospitalHandler := rest.NewHospitalHandler(hospitalService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	limiter := middleware.NewRateLimiter(10 * time.Minute)
	defer limiter.Stop()
	authLimit := limiter.Limit(10)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /auth/login/kakao", authLimit(http.HandlerFunc(authHandler.LoginKakao)))

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

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
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
