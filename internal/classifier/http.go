package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// HTTPClient queries a remote EVODEX classification service. The service
// answers POST /formula and POST /operators with JSON identifier lists.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type classifyRequest struct {
	Reaction     string `json:"reaction"`
	OperatorType string `json:"operator_type,omitempty"`
}

type classifyResponse struct {
	Identifiers []string `json:"identifiers"`
	Error       string   `json:"error,omitempty"`
	Unparseable bool     `json:"unparseable,omitempty"`
}

func (c *HTTPClient) FormulaDifference(ctx context.Context, reaction model.Reaction) ([]string, error) {
	return c.post(ctx, "/formula", classifyRequest{Reaction: reaction.String()})
}

func (c *HTTPClient) MatchOperators(ctx context.Context, reaction model.Reaction, category model.OperatorCategory) ([]string, error) {
	return c.post(ctx, "/operators", classifyRequest{
		Reaction:     reaction.String(),
		OperatorType: string(category),
	})
}

func (c *HTTPClient) post(ctx context.Context, endpoint string, payload classifyRequest) ([]string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	var out classifyResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	// The service flags structures its chemistry library cannot parse;
	// that is the caller's fault, not an outage.
	if out.Unparseable {
		return nil, fmt.Errorf("%w: %s", ErrUnparseable, out.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, out.Error)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, out.Error)
	}

	c.logger.Debug("classifier query",
		zap.String("endpoint", endpoint),
		zap.String("reaction", payload.Reaction),
		zap.Int("identifiers", len(out.Identifiers)))

	return out.Identifiers, nil
}
