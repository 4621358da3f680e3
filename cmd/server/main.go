package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/evodexlab/evodex-mcp/internal/config"
	"github.com/evodexlab/evodex-mcp/internal/server"
)

func main() {
	transport := flag.String("transport", "", "Transport mode: stdio, sse or http")
	port := flag.String("port", "", "Port for the sse and http transports")
	baseURL := flag.String("base-url", "", "Base URL advertised by the SSE transport")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg := loadConfig(logger)
	if *transport != "" {
		cfg.Server.Transport = *transport
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *baseURL != "" {
		cfg.Server.BaseURL = *baseURL
	}

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}

	switch cfg.Server.Transport {
	case "sse":
		base := cfg.Server.BaseURL
		if base == "" {
			base = fmt.Sprintf("http://localhost:%s", cfg.Server.Port)
		}

		sseServer := mcpserver.NewSSEServer(srv.MCPServer(),
			mcpserver.WithBaseURL(base),
			mcpserver.WithKeepAlive(true),
		)

		logger.Info("Starting SSE server",
			zap.String("port", cfg.Server.Port),
			zap.String("base_url", base))
		if err := http.ListenAndServe(":"+cfg.Server.Port, sseServer); err != nil {
			logger.Fatal("SSE server error", zap.Error(err))
		}

	case "http":
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := srv.SetupRouter().Run(":" + cfg.Server.Port); err != nil {
			logger.Fatal("HTTP server error", zap.Error(err))
		}

	case "stdio", "":
		if err := mcpserver.ServeStdio(srv.MCPServer()); err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}

	default:
		logger.Fatal("Unknown transport", zap.String("transport", cfg.Server.Transport))
	}
}

// newLogger writes JSON to stderr so stdout stays clean for the stdio
// protocol.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func loadConfig(logger *zap.Logger) *config.Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.toml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("Config file not loaded, using defaults",
			zap.String("path", path),
			zap.Error(err))
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	return cfg
}
