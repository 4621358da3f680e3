package classifier

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// MemoryClient is a deterministic in-process oracle seeded with the
// documented primary-alcohol oxidation examples. It serves dev and demo
// runs without a classification backend: known reactions answer with
// their published identifiers, unknown but well-formed structures answer
// with empty sets.
type MemoryClient struct {
	entries map[string]memoryEntry
	logger  *zap.Logger
}

type memoryEntry struct {
	formulas  []string
	operators map[model.OperatorCategory][]string
}

// smilesPattern is a token-level sanity check, not a chemistry parser:
// anything outside the SMILES alphabet is rejected the way a structure
// library would reject it.
var smilesPattern = regexp.MustCompile(`^[A-Za-z0-9@+\-\[\]\(\)=#$/\\.%*:~]+$`)

func NewMemoryClient(logger *zap.Logger) *MemoryClient {
	oxidation := memoryEntry{
		formulas: []string{"EVODEX.1-F4"},
		operators: map[model.OperatorCategory][]string{
			model.CategoryExact: {"EVODEX.1-E40"},
		},
	}

	return &MemoryClient{
		logger: logger,
		entries: map[string]memoryEntry{
			"CCO>>CC=O":     oxidation,
			"CCCO>>CCC=O":   oxidation,
			"CCCCO>>CCCC=O": oxidation,
			"C([C@@H](C(=O)O)N)O>>C([C@@H](C(=O)O)N)=O": oxidation,
		},
	}
}

func (c *MemoryClient) FormulaDifference(ctx context.Context, reaction model.Reaction) ([]string, error) {
	if err := c.checkStructure(reaction); err != nil {
		return nil, err
	}

	entry, ok := c.entries[reaction.String()]
	if !ok {
		return nil, nil
	}

	c.logger.Debug("formula lookup hit", zap.String("reaction", reaction.String()))
	return entry.formulas, nil
}

func (c *MemoryClient) MatchOperators(ctx context.Context, reaction model.Reaction, category model.OperatorCategory) ([]string, error) {
	if err := c.checkStructure(reaction); err != nil {
		return nil, err
	}

	entry, ok := c.entries[reaction.String()]
	if !ok {
		return nil, nil
	}

	return entry.operators[category], nil
}

func (c *MemoryClient) checkStructure(reaction model.Reaction) error {
	for _, half := range []string{reaction.Substrate, reaction.Product} {
		if !smilesPattern.MatchString(half) {
			return fmt.Errorf("%w: %q", ErrUnparseable, half)
		}
	}
	return nil
}
