package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/rpggio/projectdash/internal/config"
	"github.com/rpggio/projectdash/internal/mcp"
)

var serveTransport string

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "stdio or http (overrides config)")
}

// serveCmd runs the MCP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard to MCP clients",
	Long: `Serve the dashboard as MCP tools over stdio or streamable HTTP.

Examples:
  # Serve over stdio (default)
  projectdash serve

  # Serve over HTTP on the configured host and port
  projectdash serve --transport http`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Logs go to stderr so stdout stays clean for JSON-RPC in stdio mode.
	a, err := newApp(os.Stderr, func(cfg *config.Config) {
		if serveTransport != "" {
			cfg.Transport = serveTransport
		}
	})
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.Seed {
		if err := a.seed(cmd.Context(), time.Now()); err != nil {
			return err
		}
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Projects:      a.projects,
		TransportMode: a.cfg.Transport,
		Version:       version,
		Logger:        a.logger,
	})

	if a.cfg.Transport == config.TransportStdio {
		return runStdioMode(a.logger, mcpServer)
	}
	return runHTTPMode(a.logger, mcpServer, a.cfg.Server.Host, a.cfg.Server.Port)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	go func() {
		select {
		case <-stop:
			logger.Info("shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stdio server error: %w", err)
	}
	return nil
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: newRouter(mcpServer),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

// newRouter mounts the MCP handler and a health endpoint.
func newRouter(mcpServer *sdkmcp.Server) http.Handler {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return router
}
