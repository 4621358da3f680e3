package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReaction(t *testing.T) {
	r, err := ParseReaction("CCCO>>CCC=O")
	assert.NoError(t, err)
	assert.Equal(t, "CCCO", r.Substrate)
	assert.Equal(t, "CCC=O", r.Product)
	assert.Equal(t, "CCCO>>CCC=O", r.String())
}

func TestParseReactionTrimsWhitespace(t *testing.T) {
	r, err := ParseReaction("  CCO >> CC=O ")
	assert.NoError(t, err)
	assert.Equal(t, "CCO", r.Substrate)
	assert.Equal(t, "CC=O", r.Product)
}

func TestParseReactionMalformed(t *testing.T) {
	cases := []string{
		"",
		"CCCO",
		"CCCO>CCC=O",
		">>CCC=O",
		"CCCO>>",
		"   >>   ",
		"A>>B>>C",
	}
	for _, raw := range cases {
		_, err := ParseReaction(raw)
		assert.ErrorIs(t, err, ErrMalformedReaction, "input %q", raw)
	}
}
