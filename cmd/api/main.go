// Package main starts the HTTP server exposing graph parsing and analysis
// endpoints. Configuration is read from an optional YAML file named by
// REPGRAPH_CONFIG; handlers render visualization payloads using the
// configured palette.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/repgraph/core/cmd/api/middleware"
	"github.com/repgraph/core/internal/config"
	"github.com/repgraph/core/internal/handlers"
	"github.com/repgraph/core/internal/viz"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.Load(os.Getenv("REPGRAPH_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	api := handlers.New(viz.Merge(cfg.Palette))

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HealthHandler)
	mux.HandleFunc("/parse", api.Parse)
	mux.HandleFunc("/analyze/subgraph", api.Subgraph)
	mux.HandleFunc("/analyze/compare", api.Compare)
	mux.HandleFunc("/analyze/pattern", api.Pattern)
	mux.Handle("/metrics", promhttp.Handler())

	handler := middleware.Recovery(middleware.Logging(middleware.Cors(cfg.Server.CORSAllowedOrigin)(mux)))

	slog.Info("server starting", "port", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Server.Port), handler))
}
