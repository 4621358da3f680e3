package classifier

import "errors"

var (
	// ErrUnparseable means the structure library rejected the reaction
	// SMILES outright.
	ErrUnparseable = errors.New("unparseable reaction structure")

	// ErrUnavailable means the classification backend could not be
	// reached or answered with something other than a classification.
	ErrUnavailable = errors.New("classifier unavailable")
)
