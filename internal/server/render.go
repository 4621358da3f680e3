package server

import (
	"fmt"
	"strings"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// Empty-set sentinels. The single-signal tools use the long spellings,
// the full verdict layouts the short ones.
const (
	noFormulaFound   = "No match found"
	noOperatorsFound = "No matches found"
	noFormulaMatch   = "No match"
	noOperatorMatch  = "No matches"
)

func joinOr(ids []string, empty string) string {
	if len(ids) == 0 {
		return empty
	}
	return strings.Join(ids, ", ")
}

func renderFormula(reaction string, ids []string) string {
	return fmt.Sprintf("EVODEX-F ID: %s\n\nReaction: %s", joinOr(ids, noFormulaFound), reaction)
}

func renderOperators(reaction string, category model.OperatorCategory, ids []string) string {
	return fmt.Sprintf("Matched Operators (%s): %s\n\nReaction: %s",
		category, joinOr(ids, noOperatorsFound), reaction)
}

func renderEvaluation(result model.EvaluationResult) string {
	var b strings.Builder

	b.WriteString("EVODEX Reaction Evaluation Results\n")
	b.WriteString("================================\n\n")
	fmt.Fprintf(&b, "Reaction: %s\n", result.Reaction)
	fmt.Fprintf(&b, "EVODEX-F ID: %s\n", joinOr(result.FormulaMatches, noFormulaMatch))
	fmt.Fprintf(&b, "Matched Operators (%s): %s\n", result.OperatorCategory, joinOr(result.OperatorMatches, noOperatorMatch))
	fmt.Fprintf(&b, "Is Plausible: %t\n", result.IsPlausible)
	fmt.Fprintf(&b, "Confidence: %s\n\n", result.Confidence)
	b.WriteString("Interpretation:\n")
	b.WriteString("-- EVODEX-F ID indicates known formula change patterns\n")
	b.WriteString("-- Matched operators indicate specific mechanistic patterns\n")
	b.WriteString("-- Higher confidence when both methods find matches")

	return b.String()
}

func renderBatch(items []model.BatchItemResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Batch Evaluation Results (%d reactions)\n", len(items))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Reaction)
		if item.Failed() {
			fmt.Fprintf(&b, "   Error: %s\n\n", item.Error)
			continue
		}

		r := item.Result
		fmt.Fprintf(&b, "   EVODEX-F: %s\n", joinOr(r.FormulaMatches, noFormulaMatch))
		fmt.Fprintf(&b, "   Operators: %s\n", joinOr(r.OperatorMatches, noOperatorMatch))
		fmt.Fprintf(&b, "   Plausible: %t (Confidence: %s)\n\n", r.IsPlausible, r.Confidence)
	}

	return strings.TrimRight(b.String(), "\n")
}
