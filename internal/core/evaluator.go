// Package core implements the reaction evaluation engine: it combines the
// oracle's formula-difference and operator-match signals into a
// plausibility verdict with a confidence grade.
package core

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/evodexlab/evodex-mcp/internal/classifier"
	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// Evaluator derives verdicts from the two classification signals. It holds
// no state between calls; evaluating the same reaction twice against an
// unchanged oracle yields the same result.
type Evaluator struct {
	oracle classifier.Client
	logger *zap.Logger
}

func NewEvaluator(oracle classifier.Client, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		oracle: oracle,
		logger: logger,
	}
}

// AssignFormula runs only the formula-difference query for a reaction.
func (e *Evaluator) AssignFormula(ctx context.Context, raw string) ([]string, error) {
	reaction, err := model.ParseReaction(raw)
	if err != nil {
		return nil, err
	}

	ids, err := e.oracle.FormulaDifference(ctx, reaction)
	if err != nil {
		return nil, e.wrapOracleError(raw, err)
	}

	return normalize(ids), nil
}

// MatchOperators runs only the operator-match query for a reaction.
func (e *Evaluator) MatchOperators(ctx context.Context, raw string, category model.OperatorCategory) ([]string, error) {
	reaction, err := model.ParseReaction(raw)
	if err != nil {
		return nil, err
	}

	ids, err := e.oracle.MatchOperators(ctx, reaction, category)
	if err != nil {
		return nil, e.wrapOracleError(raw, err)
	}

	return normalize(ids), nil
}

// Evaluate runs both queries and derives the full verdict. The reaction is
// plausible iff at least one operator matched; the formula signal only
// raises confidence.
func (e *Evaluator) Evaluate(ctx context.Context, raw string, category model.OperatorCategory) (model.EvaluationResult, error) {
	reaction, err := model.ParseReaction(raw)
	if err != nil {
		return model.EvaluationResult{}, err
	}

	formulas, err := e.oracle.FormulaDifference(ctx, reaction)
	if err != nil {
		return model.EvaluationResult{}, e.wrapOracleError(raw, err)
	}

	operators, err := e.oracle.MatchOperators(ctx, reaction, category)
	if err != nil {
		return model.EvaluationResult{}, e.wrapOracleError(raw, err)
	}

	result := model.EvaluationResult{
		Reaction:         reaction.String(),
		OperatorCategory: category,
		FormulaMatches:   normalize(formulas),
		OperatorMatches:  normalize(operators),
	}
	result.IsPlausible = len(result.OperatorMatches) > 0
	result.Confidence = gradeConfidence(result.FormulaMatches, result.OperatorMatches)

	e.logger.Debug("evaluated reaction",
		zap.String("reaction", result.Reaction),
		zap.String("category", string(category)),
		zap.Bool("plausible", result.IsPlausible),
		zap.String("confidence", string(result.Confidence)))

	return result, nil
}

// gradeConfidence grades the verdict jointly from both signals: operator
// and formula evidence give High, operator evidence alone Medium, and no
// operator match Low whatever the formula signal says.
func gradeConfidence(formulas, operators []string) model.Confidence {
	switch {
	case len(operators) > 0 && len(formulas) > 0:
		return model.ConfidenceHigh
	case len(operators) > 0:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}

// wrapOracleError keeps the two oracle failure modes apart: a structure
// the chemistry library cannot parse is the reaction's fault, everything
// else is a classification failure with the cause attached.
func (e *Evaluator) wrapOracleError(raw string, err error) error {
	if errors.Is(err, classifier.ErrUnparseable) {
		return fmt.Errorf("%w: %q: %v", model.ErrMalformedReaction, raw, err)
	}
	return fmt.Errorf("%w: reaction %q: %w", ErrClassification, raw, err)
}

// normalize sorts a copy of the identifier slice so renderings and
// comparisons are deterministic regardless of oracle ordering. The result
// is never nil.
func normalize(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}
