// Package classifier provides the classification oracle behind the
// evaluation engine: the two queries that tag a reaction with EVODEX
// formula-difference and operator identifiers.
package classifier

import (
	"context"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// Client answers the two classification queries for a parsed reaction.
// An empty identifier slice means the structure parsed but nothing
// matched; an error means the query itself failed.
type Client interface {
	FormulaDifference(ctx context.Context, reaction model.Reaction) ([]string, error)
	MatchOperators(ctx context.Context, reaction model.Reaction, category model.OperatorCategory) ([]string, error)
}
