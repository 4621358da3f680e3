package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/evodexlab/evodex-mcp/internal/agent"
	"github.com/evodexlab/evodex-mcp/internal/config"
	"github.com/evodexlab/evodex-mcp/internal/llm"
	"github.com/evodexlab/evodex-mcp/internal/server"
)

func main() {
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
	ctx := context.Background()

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		logger.Fatal("Failed to initialize LLM client", zap.Error(err))
	}

	a := agent.NewAgent(llmClient, srv, logger)

	if question := strings.Join(flag.Args(), " "); question != "" {
		answer, err := a.Run(ctx, question)
		if err != nil {
			logger.Fatal("Agent failed", zap.Error(err))
		}
		fmt.Println(answer)
		return
	}

	// No question on the command line: answer interactively.
	fmt.Println("EVODEX reaction assistant. Ask about a reaction, or 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		answer, err := a.Run(ctx, question)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(answer)
	}
}

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
