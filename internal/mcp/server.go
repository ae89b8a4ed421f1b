package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/review"
	"github.com/eishan-studio/eishan/internal/domain/view"
)

const serverInstructions = `Content-management tools for the Eishan studio site.
Read tools are public. Mutating tools require an established dashboard
session; sign in through the site first. Deletes additionally require
confirm=true, mirroring the dashboard's confirmation step.`

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Record, error)
	Get(ctx context.Context, id string) (*project.Record, error)
	List(ctx context.Context) ([]project.Record, error)
	Update(ctx context.Context, id string, req project.UpdateRequest) (*project.Record, error)
	UpdateByTitle(ctx context.Context, originalTitle string, req project.UpdateRequest) (*project.Record, error)
	Remove(ctx context.Context, id string) error
	RemoveByTitle(ctx context.Context, title string) (int, error)
	Search(ctx context.Context, query string) ([]project.Record, error)
}

// ReviewService defines review operations needed by MCP.
type ReviewService interface {
	Create(ctx context.Context, req review.CreateRequest) (*review.Review, error)
	Get(ctx context.Context, id int64) (*review.Review, error)
	List(ctx context.Context) ([]review.Review, error)
	Update(ctx context.Context, id int64, req review.UpdateRequest) (*review.Review, error)
	Remove(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]review.Review, error)
}

// Navigator defines the navigation operations needed by MCP.
type Navigator interface {
	Request(target view.Screen) bool
	RequestProject(rec *project.Record) bool
	Snapshot() view.Snapshot
}

// Services contains all collaborators needed by MCP.
type Services struct {
	Projects ProjectService
	Reviews  ReviewService
	Nav      Navigator
	Sessions view.SessionSource
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "eishan",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
