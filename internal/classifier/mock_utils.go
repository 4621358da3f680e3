package classifier

import (
	"context"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// MockClient is a deterministic oracle for tests. It answers every query
// with the configured slices and records what it was asked.
type MockClient struct {
	Formulas    []string
	Operators   []string
	FormulaErr  error
	OperatorErr error

	FormulaCalls  []string
	OperatorCalls []string
}

func (m *MockClient) FormulaDifference(ctx context.Context, reaction model.Reaction) ([]string, error) {
	m.FormulaCalls = append(m.FormulaCalls, reaction.String())
	if m.FormulaErr != nil {
		return nil, m.FormulaErr
	}
	return m.Formulas, nil
}

func (m *MockClient) MatchOperators(ctx context.Context, reaction model.Reaction, category model.OperatorCategory) ([]string, error) {
	m.OperatorCalls = append(m.OperatorCalls, reaction.String())
	if m.OperatorErr != nil {
		return nil, m.OperatorErr
	}
	return m.Operators, nil
}
