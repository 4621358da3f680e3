package server

import (
	"context"
	"fmt"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// Tool names served over the protocol.
const (
	ToolFormulaAssign = "formula-assign"
	ToolOperatorMatch = "operator-match"
	ToolFullEvaluate  = "full-evaluate"
	ToolBatchEvaluate = "batch-evaluate"
)

type toolOp int

const (
	opFormulaAssign toolOp = iota
	opOperatorMatch
	opFullEvaluate
	opBatchEvaluate
)

// toolCall is a validated request: the operation tag plus exactly one
// populated argument struct. Building one is the only way into dispatch,
// so stringly-typed lookups stop at parseToolCall.
type toolCall struct {
	op       toolOp
	formula  *formulaArgs
	operator *operatorArgs
	evaluate *evaluateArgs
	batch    *batchArgs
}

type formulaArgs struct {
	Reaction string
}

type operatorArgs struct {
	Reaction string
	Category model.OperatorCategory
}

type evaluateArgs struct {
	Reaction string
	Category model.OperatorCategory
}

type batchArgs struct {
	Reactions []string
	Category  model.OperatorCategory
}

// parseToolCall validates a raw protocol request before anything touches
// the evaluator. Unknown names and missing or mistyped arguments fail
// here and nowhere deeper.
func parseToolCall(name string, args map[string]any) (toolCall, error) {
	switch name {
	case ToolFormulaAssign:
		reaction, err := stringArg(args, "reaction", true)
		if err != nil {
			return toolCall{}, err
		}
		return toolCall{op: opFormulaAssign, formula: &formulaArgs{Reaction: reaction}}, nil

	case ToolOperatorMatch:
		reaction, err := stringArg(args, "reaction", true)
		if err != nil {
			return toolCall{}, err
		}
		category, err := categoryArg(args)
		if err != nil {
			return toolCall{}, err
		}
		return toolCall{op: opOperatorMatch, operator: &operatorArgs{Reaction: reaction, Category: category}}, nil

	case ToolFullEvaluate:
		reaction, err := stringArg(args, "reaction", true)
		if err != nil {
			return toolCall{}, err
		}
		category, err := categoryArg(args)
		if err != nil {
			return toolCall{}, err
		}
		return toolCall{op: opFullEvaluate, evaluate: &evaluateArgs{Reaction: reaction, Category: category}}, nil

	case ToolBatchEvaluate:
		reactions, err := stringListArg(args, "reactions")
		if err != nil {
			return toolCall{}, err
		}
		category, err := categoryArg(args)
		if err != nil {
			return toolCall{}, err
		}
		return toolCall{op: opBatchEvaluate, batch: &batchArgs{Reactions: reactions, Category: category}}, nil
	}

	return toolCall{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Response carries the rendered text plus the structured form of the same
// answer for transports that serve JSON. Exactly one of the optional
// fields is set, matching the operation.
type Response struct {
	Text        string                  `json:"text"`
	Identifiers []string                `json:"identifiers,omitempty"`
	Result      *model.EvaluationResult `json:"result,omitempty"`
	Items       []model.BatchItemResult `json:"items,omitempty"`
}

// dispatch runs a validated call. The formula and operator tools invoke
// only their half of the evaluator; the other two produce full verdicts.
func (s *Server) dispatch(ctx context.Context, call toolCall) (Response, error) {
	switch call.op {
	case opFormulaAssign:
		ids, err := s.evaluator.AssignFormula(ctx, call.formula.Reaction)
		if err != nil {
			return Response{}, err
		}
		return Response{
			Text:        renderFormula(call.formula.Reaction, ids),
			Identifiers: ids,
		}, nil

	case opOperatorMatch:
		ids, err := s.evaluator.MatchOperators(ctx, call.operator.Reaction, call.operator.Category)
		if err != nil {
			return Response{}, err
		}
		return Response{
			Text:        renderOperators(call.operator.Reaction, call.operator.Category, ids),
			Identifiers: ids,
		}, nil

	case opFullEvaluate:
		result, err := s.evaluator.Evaluate(ctx, call.evaluate.Reaction, call.evaluate.Category)
		if err != nil {
			return Response{}, err
		}
		return Response{
			Text:   renderEvaluation(result),
			Result: &result,
		}, nil

	case opBatchEvaluate:
		items := s.evaluator.EvaluateBatch(ctx, call.batch.Reactions, call.batch.Category)
		return Response{
			Text:  renderBatch(items),
			Items: items,
		}, nil
	}

	return Response{}, fmt.Errorf("%w: unhandled operation %d", ErrUnknownTool, call.op)
}

func stringArg(args map[string]any, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("%w: %s parameter is required", ErrInvalidArguments, key)
		}
		return "", nil
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArguments, key)
	}
	if required && s == "" {
		return "", fmt.Errorf("%w: %s parameter is required", ErrInvalidArguments, key)
	}
	return s, nil
}

func categoryArg(args map[string]any) (model.OperatorCategory, error) {
	raw, err := stringArg(args, "operator_type", false)
	if err != nil {
		return "", err
	}

	category, err := model.ParseCategory(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return category, nil
}

func stringListArg(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s parameter is required", ErrInvalidArguments, key)
	}

	// JSON arrays arrive as []any over the wire; []string shows up from
	// in-process callers.
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be a string", ErrInvalidArguments, key, i)
			}
			out = append(out, s)
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %s must be an array of strings", ErrInvalidArguments, key)
}
