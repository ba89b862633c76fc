package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/atelierfield/matspec/internal/config"
	"github.com/atelierfield/matspec/internal/handlers"
	"github.com/atelierfield/matspec/internal/pipeline"
	"github.com/atelierfield/matspec/internal/specgen"
	"github.com/atelierfield/matspec/internal/vision"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var provider string
	var model string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for the specification interface",
		Long: `Starts the Matspec web interface on the specified port.

The web interface allows you to upload architectural visualization images
plus an optional project brief and download the generated material
specification document.`,
		Example: `  # Start server on default port 8888
  matspec serve

  # Start server on custom port with a local model
  matspec serve --port 3000 --provider ollama`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if provider != "" {
				cfg.Provider = provider
				cfg.Model = config.DefaultModel(provider)
			}
			if model != "" {
				cfg.Model = model
			}

			generator, err := newGenerator(cfg.Provider)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(
				vision.New(generator, cfg.Model, cfg.Temperature),
				specgen.New(generator, cfg.Model, cfg.Temperature),
			)
			handler := handlers.New(runner, cfg.Provider, cfg.Model)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/generate", handler.HandleGenerate)
			mux.HandleFunc("/api/runs", handler.HandleRuns)
			mux.HandleFunc("/api/runs/", handler.HandleRunDetail)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Matspec interface available", "addr", addr, "url", "http://localhost"+addr, "provider", cfg.Provider, "model", cfg.Model)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (anthropic, gemini, or ollama)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (defaults to provider's default)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")

	return cmd
}
