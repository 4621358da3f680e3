package model

import (
	"errors"
	"fmt"
	"strings"
)

// Separator divides the substrate and product halves of a reaction string.
const Separator = ">>"

// ErrMalformedReaction means a reaction string does not split into exactly
// two non-empty parts on ">>".
var ErrMalformedReaction = errors.New("malformed reaction")

// Reaction is a substrate/product structure pair, parsed from the wire
// form "substrate>>product".
type Reaction struct {
	Substrate string
	Product   string
}

// ParseReaction validates and splits a raw reaction string. Surrounding
// whitespace on either half is dropped; a half that is empty after that
// makes the whole string malformed.
func ParseReaction(raw string) (Reaction, error) {
	parts := strings.Split(raw, Separator)
	if len(parts) != 2 {
		return Reaction{}, fmt.Errorf("%w: %q", ErrMalformedReaction, raw)
	}

	substrate := strings.TrimSpace(parts[0])
	product := strings.TrimSpace(parts[1])
	if substrate == "" || product == "" {
		return Reaction{}, fmt.Errorf("%w: %q", ErrMalformedReaction, raw)
	}

	return Reaction{Substrate: substrate, Product: product}, nil
}

func (r Reaction) String() string {
	return r.Substrate + Separator + r.Product
}
