// Package main starts the stacklens HTTP server, exposing health checks and
// the merge endpoint that reconciles n8n workflow exports with the Supabase
// catalog.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/stacklens/core/internal/api"
	"github.com/stacklens/core/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("STACKLENS_CONFIG"), nil)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	slog.Info("server starting", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, api.NewRouter(cfg)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
