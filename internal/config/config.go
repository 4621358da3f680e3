package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Transport string `toml:"transport"`
	Port      string `toml:"port"`
	BaseURL   string `toml:"base_url"`
}

type ClassifierConfig struct {
	Provider       string `toml:"provider"`
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Classifier ClassifierConfig `toml:"classifier"`
	LLM        LLMConfig        `toml:"llm"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// Default is the configuration used when no config file is present: a
// stdio server backed by the in-process classifier, with a local Ollama
// model for the agent.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Transport: "stdio",
			Port:      "8080",
		},
		Classifier: ClassifierConfig{
			Provider:       "memory",
			TimeoutSeconds: 30,
		},
		LLM: LLMConfig{
			Provider: "ollama",
			Model:    "qwen3:latest",
			BaseURL:  "http://localhost:11434",
		},
	}
}

// ApplyEnv overrides file values with environment variables if present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		c.Server.Transport = v
	}
	if v := os.Getenv("MCP_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("MCP_BASE_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("EVODEX_CLASSIFIER_PROVIDER"); v != "" {
		c.Classifier.Provider = v
	}
	if v := os.Getenv("EVODEX_CLASSIFIER_URL"); v != "" {
		c.Classifier.BaseURL = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
}
