package core

import (
	"errors"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// ErrClassification wraps oracle-internal faults: the reaction was fine,
// the classification backend was not.
var ErrClassification = errors.New("classification failed")

// Error kinds carried on batch item records.
const (
	KindMalformedReaction     = "malformed_reaction"
	KindClassificationFailure = "classification_failure"
	KindInternal              = "internal"
)

// KindOf buckets an evaluation error for reporting.
func KindOf(err error) string {
	switch {
	case errors.Is(err, model.ErrMalformedReaction):
		return KindMalformedReaction
	case errors.Is(err, ErrClassification):
		return KindClassificationFailure
	default:
		return KindInternal
	}
}
