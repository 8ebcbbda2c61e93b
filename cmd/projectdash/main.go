// Package main implements the projectdash CLI: an MCP dashboard server and a terminal list view.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpggio/projectdash/internal/config"
	"github.com/rpggio/projectdash/internal/domain/project"
	"github.com/rpggio/projectdash/internal/logging"
	"github.com/rpggio/projectdash/internal/memory"
	"github.com/rpggio/projectdash/internal/sqlite"
)

var (
	// configPath overrides PROJECTDASH_CONFIG_PATH
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "projectdash",
	Short: "Project-tracking dashboard",
	Long: `projectdash tracks projects with status, priority, due dates and progress.

It serves the dashboard to MCP clients over stdio or streamable HTTP, and can
print the dashboard as cards in the terminal.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}

// app holds what every command needs.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	projects *project.Service
	closers  []io.Closer
}

// newApp loads config, sets up logging and opens the project store.
// logOut receives logs when no log file is configured. Overrides run after
// the config is loaded, before it is validated again.
func newApp(logOut io.Writer, overrides ...func(*config.Config)) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	for _, override := range overrides {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger, logCloser, err := logging.New(logging.Options{
		Level:    cfg.Log.Level,
		Path:     cfg.Log.Path,
		Fallback: logOut,
	})
	if err != nil {
		return nil, fmt.Errorf("log file error: %w", err)
	}

	a := &app{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	repo, err := a.openRepository()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.projects = project.NewService(repo, logger)

	return a, nil
}

func (a *app) openRepository() (project.Repository, error) {
	switch a.cfg.Store.Backend {
	case config.BackendSQLite:
		db, err := sqlite.NewInMemory()
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.closers = append(a.closers, db)
		a.logger.Debug("using sqlite store", "dsn", sqlite.MemoryDSN)
		return sqlite.NewProjectRepository(db), nil
	default:
		a.logger.Debug("using memory store")
		return memory.NewProjectRepository(), nil
	}
}

// seed loads the sample projects relative to now.
func (a *app) seed(ctx context.Context, now time.Time) error {
	seeded, err := a.projects.Seed(ctx, project.SampleProjects(now))
	if err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}
	a.logger.Info("seeded sample projects", "count", len(seeded))
	return nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
}
