package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eishan-studio/eishan/internal/config"
	"github.com/eishan-studio/eishan/internal/domain/auth"
	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/review"
	"github.com/eishan-studio/eishan/internal/domain/view"
	"github.com/eishan-studio/eishan/internal/mcp"
	"github.com/eishan-studio/eishan/internal/memory"
	"github.com/eishan-studio/eishan/internal/seed"
	"github.com/eishan-studio/eishan/internal/sqlite"
	"github.com/eishan-studio/eishan/internal/transport"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.SessionDB.Path); err != nil {
		logger.Error("failed to prepare session db path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.SessionDB.Path)
	if err != nil {
		logger.Error("failed to open session db", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	projectStore := memory.NewProjectStore()
	reviewStore := memory.NewReviewStore()
	sessionStore := sqlite.NewSessionStore(db)

	projectSvc := project.NewService(projectStore, logger)
	reviewSvc := review.NewService(reviewStore, logger)

	sessions := auth.NewProvider(sessionStore, auth.Config{
		Secret:  cfg.Auth.TokenSecret,
		TTL:     cfg.Auth.SessionTTL,
		Latency: cfg.Auth.Latency,
	}, logger)

	nav, err := view.NewNavigator(view.Options{
		CoverDelay:  cfg.Transition.Cover,
		RevealDelay: cfg.Transition.Reveal,
		Sessions:    sessions,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to create navigator", "error", err)
		os.Exit(1)
	}
	sessions.Subscribe(func(sess *auth.Session) {
		nav.OnSessionChange(sess != nil)
	})

	ctx := context.Background()
	if err := sessions.Restore(ctx); err != nil {
		logger.Warn("session restore failed", "error", err)
	}
	if err := seed.Load(ctx, projectSvc, reviewSvc); err != nil {
		logger.Error("failed to seed content", "error", err)
		os.Exit(1)
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects: projectSvc,
			Reviews:  reviewSvc,
			Nav:      nav,
			Sessions: sessions,
		},
		Logger: logger,
	})

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
	} else {
		runHTTPMode(logger, cfg, mcpServer, transport.Deps{
			Navigator: nav,
			Sessions:  sessions,
			Projects:  projectSvc,
			Reviews:   reviewSvc,
			Logger:    logger,
		})
	}
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, cfg config.Config, mcpServer *sdkmcp.Server, deps transport.Deps) {
	router := transport.NewRouter(deps, cfg.Server.CORSOrigins)

	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/*", mcpHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
