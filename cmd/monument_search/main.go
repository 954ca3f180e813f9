package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/monument-search/api"
	"github.com/gcbaptista/monument-search/config"
	"github.com/gcbaptista/monument-search/internal/history"
	"github.com/gcbaptista/monument-search/internal/metrics"
	"github.com/gcbaptista/monument-search/internal/search"
	"github.com/gcbaptista/monument-search/internal/store"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", "", "Path to a YAML config file")
		port       = flag.String("port", "", "Port to run the server on (overrides config)")
		dbPath     = flag.String("db", "", "Path to the monument SQLite database (overrides config)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Monument Search - ranked full-text search over a monument dataset\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                              # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                  # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --db /data/monuments.db      # Use a custom dataset file\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Monument Search v1.0.0\n")
		return
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		settings.Server.Port = *port
	}
	if *dbPath != "" {
		settings.Database.Path = *dbPath
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(settings.Logging.Level)
	if err != nil {
		logrus.Fatalf("Invalid logging level %q: %v", settings.Logging.Level, err)
	}
	logger.SetLevel(level)

	// Open the dataset. A connection failure here is fatal: the service
	// cannot run without its dataset.
	logger.WithField("path", settings.Database.Path).Info("Opening monument database")
	monumentStore, err := store.Open(settings.Database.Path, logger)
	if err != nil {
		logger.Fatalf("Failed to open monument database: %v", err)
	}
	defer func() { _ = monumentStore.Close() }()

	registry := prometheus.NewRegistry()
	searchMetrics := metrics.NewSearchMetrics(registry)

	searchService, err := search.NewService(monumentStore, logger, searchMetrics)
	if err != nil {
		logger.Fatalf("Failed to create search service: %v", err)
	}
	historyLog := history.NewLog(searchMetrics.HistorySizeGauge)

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, searchService, historyLog, monumentStore, registry)

	// Start the server
	logger.WithField("port", settings.Server.Port).Info("Starting server")
	if err := router.Run(":" + settings.Server.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
