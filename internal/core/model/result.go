package model

// Confidence grades the strength of a plausibility verdict.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// EvaluationResult is the complete verdict for one reaction. Results are
// derived per request and never stored.
type EvaluationResult struct {
	Reaction         string           `json:"reaction"`
	OperatorCategory OperatorCategory `json:"operator_category"`
	FormulaMatches   []string         `json:"formula_match"`
	OperatorMatches  []string         `json:"operator_match"`
	IsPlausible      bool             `json:"is_plausible"`
	Confidence       Confidence       `json:"confidence"`
}

// BatchItemResult is one slot of a batch evaluation: a completed result or
// an error record for the reaction at the same input index, never both.
type BatchItemResult struct {
	Reaction  string            `json:"reaction"`
	Result    *EvaluationResult `json:"result,omitempty"`
	ErrorKind string            `json:"error_kind,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// Failed reports whether this slot carries an error record.
func (b BatchItemResult) Failed() bool {
	return b.Result == nil
}
