// Package server exposes the reaction evaluation engine over the tool
// protocol and a REST gateway. All request validation and error
// conversion happens at this boundary; the engine below it only ever
// sees well-formed calls.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evodexlab/evodex-mcp/internal/classifier"
	"github.com/evodexlab/evodex-mcp/internal/config"
	"github.com/evodexlab/evodex-mcp/internal/core"
)

const (
	serverName    = "evodex-mcp-server"
	serverVersion = "0.1.0"
)

type Server struct {
	evaluator *core.Evaluator
	logger    *zap.Logger
}

func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	oracle, err := classifier.NewClient(cfg.Classifier, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize classifier: %w", err)
	}

	return &Server{
		evaluator: core.NewEvaluator(oracle, logger),
		logger:    logger,
	}, nil
}

// NewServerWithEvaluator wires a server around an existing evaluator.
// Used by tests and embedded callers that bring their own oracle.
func NewServerWithEvaluator(evaluator *core.Evaluator, logger *zap.Logger) *Server {
	return &Server{
		evaluator: evaluator,
		logger:    logger,
	}
}

// Handle validates and runs one tool call. Every failure comes back as an
// error value for the transport to report; nothing escapes to kill the
// serve loop, and the server stays ready for the next request.
func (s *Server) Handle(ctx context.Context, name string, args map[string]any) (Response, error) {
	requestID := uuid.NewString()
	start := time.Now()

	call, err := parseToolCall(name, args)
	if err != nil {
		s.logger.Warn("rejected tool call",
			zap.String("request_id", requestID),
			zap.String("tool", name),
			zap.Error(err))
		return Response{}, err
	}

	resp, err := s.dispatch(ctx, call)
	if err != nil {
		s.logger.Warn("tool call failed",
			zap.String("request_id", requestID),
			zap.String("tool", name),
			zap.Error(err))
		return Response{}, err
	}

	s.logger.Info("tool call served",
		zap.String("request_id", requestID),
		zap.String("tool", name),
		zap.Duration("elapsed", time.Since(start)))

	return resp, nil
}

// RunTool runs one tool call and returns only the rendered text. This is
// the surface the agent drives.
func (s *Server) RunTool(ctx context.Context, name string, args map[string]any) (string, error) {
	resp, err := s.Handle(ctx, name, args)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
