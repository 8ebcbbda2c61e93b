package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/projectdash/internal/domain/project"
	"github.com/rpggio/projectdash/internal/domain/session"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Create(ctx context.Context, fields project.Fields) (*project.Project, error)
	Update(ctx context.Context, id int64, fields project.Fields) (*project.Project, error)
	Delete(ctx context.Context, id int64) error
}

// Config contains server configuration.
type Config struct {
	Projects ProjectService
	// Sessions is created over Projects when nil.
	Sessions *session.Manager
	// Now is the clock for derived card fields. Defaults to time.Now.
	Now           func() time.Time
	TransportMode string // "stdio" or "http"
	Version       string
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sessions == nil {
		cfg.Sessions = session.NewManager(cfg.Projects, cfg.Now, cfg.Logger)
	}
	if cfg.Version == "" {
		cfg.Version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "projectdash",
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(sessionMiddleware(newSessionReaper(cfg.Sessions)))
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	h := &handlers{
		projects: cfg.Projects,
		sessions: cfg.Sessions,
		now:      cfg.Now,
	}
	registerTools(server, h)

	cfg.Logger.Debug("mcp server configured", "transport", cfg.TransportMode, "version", cfg.Version)
	return server
}
