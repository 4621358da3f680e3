package core

import (
	"context"

	"go.uber.org/zap"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// EvaluateBatch evaluates reactions strictly in input order, one result
// slot per input. A failing item becomes that slot's error record and
// never stops the remaining items. An empty input yields an empty output.
func (e *Evaluator) EvaluateBatch(ctx context.Context, raws []string, category model.OperatorCategory) []model.BatchItemResult {
	results := make([]model.BatchItemResult, 0, len(raws))

	// Evaluation is idempotent, so repeated reactions within one batch
	// reuse the first slot's outcome instead of querying the oracle again.
	seen := make(map[string]model.BatchItemResult, len(raws))

	for _, raw := range raws {
		if item, ok := seen[raw]; ok {
			results = append(results, item)
			continue
		}

		item := model.BatchItemResult{Reaction: raw}
		result, err := e.Evaluate(ctx, raw, category)
		if err != nil {
			item.ErrorKind = KindOf(err)
			item.Error = err.Error()
			e.logger.Warn("batch item failed",
				zap.String("reaction", raw),
				zap.String("kind", item.ErrorKind),
				zap.Error(err))
		} else {
			item.Result = &result
		}

		seen[raw] = item
		results = append(results, item)
	}

	return results
}
