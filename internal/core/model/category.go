package model

import (
	"fmt"
	"strings"
)

// OperatorCategory selects the strictness level of operator matching.
type OperatorCategory string

const (
	CategoryExact OperatorCategory = "E"
	CategoryCore  OperatorCategory = "C"
	CategoryN     OperatorCategory = "N"
)

// DefaultCategory applies when a caller omits operator_type.
const DefaultCategory = CategoryExact

// ParseCategory maps a raw operator_type argument onto a category. Empty
// input selects the default; anything outside E, C and N is rejected.
func ParseCategory(raw string) (OperatorCategory, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "":
		return DefaultCategory, nil
	case "E":
		return CategoryExact, nil
	case "C":
		return CategoryCore, nil
	case "N":
		return CategoryN, nil
	}
	return "", fmt.Errorf("invalid operator category %q (want E, C or N)", raw)
}
