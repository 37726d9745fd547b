package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/platform/logger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("provider", cfg.LLM.Provider),
		slog.String("model", cfg.LLM.ModelName))

	app, err := newApplication(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(cmd.Context(), app.setupRouter())
}
