package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONClean(t *testing.T) {
	act, err := ParseJSON[action](`{"tool": "full-evaluate", "arguments": {"reaction": "CCO>>CC=O"}}`)
	require.NoError(t, err)
	assert.Equal(t, "full-evaluate", act.Tool)
	assert.Equal(t, "CCO>>CC=O", act.Arguments["reaction"])
}

func TestParseJSONWithSurroundingText(t *testing.T) {
	response := "Sure, I'll check that:\n```json\n{\"answer\": \"looks plausible\"}\n```\nDone."
	act, err := ParseJSON[action](response)
	require.NoError(t, err)
	assert.Equal(t, "looks plausible", act.Answer)
}

func TestParseJSONNoObject(t *testing.T) {
	_, err := ParseJSON[action]("no braces here")
	assert.Error(t, err)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON[action](`{"tool": }`)
	assert.Error(t, err)
}
