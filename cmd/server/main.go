package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/listkeeper/internal/models"
	"github.com/iudanet/listkeeper/internal/server/handlers"
	"github.com/iudanet/listkeeper/internal/server/middleware"
	"github.com/iudanet/listkeeper/internal/server/storage"
	"github.com/iudanet/listkeeper/internal/server/storage/sqlite"
	"github.com/iudanet/listkeeper/internal/server/token"
	syncer "github.com/iudanet/listkeeper/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "listkeeper-server.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (or LISTKEEPER_JWT_SECRET)")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "Access token lifetime")
	issueToken := flag.String("issue-token", "", "Register an owner with this name, print a token and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("LISTKEEPER_JWT_SECRET")
	}
	if secret == "" {
		logger.Error("jwt secret is not set, use -jwt-secret or LISTKEEPER_JWT_SECRET")
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	tokens := token.NewManager(secret, *tokenTTL)

	if *issueToken != "" {
		if err := issueOwnerToken(ctx, store, tokens, *issueToken); err != nil {
			logger.Error("failed to issue token", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, logger, store, tokens, *addr); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, store *sqlite.Storage, tokens *token.Manager, addr string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	syncHandler := handlers.NewSyncHandler(logger, store, store, syncer.NewSystemClock())
	healthHandler := handlers.NewHealthHandler(logger, Version)

	rateLimiter := middleware.RateLimitMiddleware(100, time.Minute, logger)
	auth := middleware.AuthMiddleware(logger, tokens)

	protected := func(h http.HandlerFunc) http.Handler {
		return rateLimiter(auth(h))
	}

	mux := http.NewServeMux()
	mux.Handle("GET /api/v1/sync/{type}/full", protected(syncHandler.HandleFull))
	mux.Handle("GET /api/v1/sync/{type}/changes", protected(syncHandler.HandleChanges))
	mux.Handle("POST /api/v1/sync/{type}/upload", protected(syncHandler.HandleUpload))
	mux.HandleFunc("GET /healthz", healthHandler.Health)

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/healthz"})(mux))

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", addr, "version", Version)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// issueOwnerToken регистрирует владельца (или находит уже созданного
// с тем же именем) и печатает для него токен доступа. Хелпер для
// разработки: клиент кладет токен в LISTKEEPER_TOKEN.
func issueOwnerToken(ctx context.Context, store *sqlite.Storage, tokens *token.Manager, name string) error {
	owner, err := store.GetOwnerByName(ctx, name)
	switch {
	case errors.Is(err, storage.ErrOwnerNotFound):
		owner = &models.Owner{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.CreateOwner(ctx, owner); err != nil {
			return fmt.Errorf("create owner: %w", err)
		}
	case err != nil:
		return fmt.Errorf("lookup owner: %w", err)
	}

	accessToken, err := tokens.Issue(owner.ID, owner.Name)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	fmt.Printf("owner: %s\ntoken: %s\n", owner.ID, accessToken)
	return nil
}

func printVersion() {
	fmt.Printf("ListKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
