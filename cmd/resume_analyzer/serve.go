package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var (
	serveConfigPath string
	serveAddr       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config, default :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.ListenAddr = serveAddr
	}

	coordinator, cleanup, err := buildCoordinator(ctx, cfg, "")
	if err != nil {
		return err
	}
	defer cleanup()

	return server.New(cfg, coordinator).Start()
}
