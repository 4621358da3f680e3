package classifier

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/evodexlab/evodex-mcp/internal/config"
)

// NewClient builds the configured oracle.
func NewClient(cfg config.ClassifierConfig, logger *zap.Logger) (Client, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "", "memory":
		return NewMemoryClient(logger), nil

	case "http":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("classifier provider %q requires base_url", provider)
		}
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		return NewHTTPClient(cfg.BaseURL, timeout, logger), nil

	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", provider)
	}
}
