package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockToolRunner records calls and answers from a canned map.
type mockToolRunner struct {
	outputs map[string]string
	calls   []string
	args    []map[string]any
}

func (m *mockToolRunner) RunTool(ctx context.Context, name string, args map[string]any) (string, error) {
	m.calls = append(m.calls, name)
	m.args = append(m.args, args)
	out, ok := m.outputs[name]
	if !ok {
		return "", errors.New("unknown tool: " + name)
	}
	return out, nil
}

func TestAgentCallsToolThenAnswers(t *testing.T) {
	mockLLM := &MockLLMClient{
		ResponseQueue: []string{
			`{"tool": "full-evaluate", "arguments": {"reaction": "CCCO>>CCC=O"}}`,
			`{"answer": "Yes, the oxidation of 1-propanol to propanal is enzymatically plausible with high confidence."}`,
		},
	}
	tools := &mockToolRunner{outputs: map[string]string{
		"full-evaluate": "Is Plausible: true\nConfidence: High",
	}}

	a := NewAgent(mockLLM, tools, zap.NewNop())
	answer, err := a.Run(context.Background(), "Is CCCO>>CCC=O a valid enzymatic reaction?")

	require.NoError(t, err)
	assert.Contains(t, answer, "plausible")
	require.Len(t, tools.calls, 1)
	assert.Equal(t, "full-evaluate", tools.calls[0])
	assert.Equal(t, "CCCO>>CCC=O", tools.args[0]["reaction"])
}

func TestAgentHandlesFencedJSON(t *testing.T) {
	mockLLM := &MockLLMClient{
		ResponseQueue: []string{
			"```json\n{\"tool\": \"formula-assign\", \"arguments\": {\"reaction\": \"CCO>>CC=O\"}}\n```",
			`{"answer": "The formula change matches EVODEX.1-F4."}`,
		},
	}
	tools := &mockToolRunner{outputs: map[string]string{
		"formula-assign": "EVODEX-F ID: EVODEX.1-F4",
	}}

	a := NewAgent(mockLLM, tools, zap.NewNop())
	answer, err := a.Run(context.Background(), "What formula change is ethanol to acetaldehyde?")

	require.NoError(t, err)
	assert.Contains(t, answer, "EVODEX.1-F4")
	assert.Equal(t, []string{"formula-assign"}, tools.calls)
}

func TestAgentRecoversFromBadToolName(t *testing.T) {
	// First turn asks for a tool that does not exist; the error is fed
	// back and the model answers on the next turn.
	mockLLM := &MockLLMClient{
		ResponseQueue: []string{
			`{"tool": "validate_reaction", "arguments": {"reaction": "CCO>>CC=O"}}`,
			`{"answer": "I could not validate the reaction."}`,
		},
	}
	tools := &mockToolRunner{outputs: map[string]string{}}

	a := NewAgent(mockLLM, tools, zap.NewNop())
	answer, err := a.Run(context.Background(), "Check CCO>>CC=O")

	require.NoError(t, err)
	assert.Equal(t, "I could not validate the reaction.", answer)
	assert.Equal(t, []string{"validate_reaction"}, tools.calls)
}

func TestAgentProseReplyIsFinalAnswer(t *testing.T) {
	mockLLM := &MockLLMClient{Response: "Hello! Ask me about a reaction."}

	a := NewAgent(mockLLM, &mockToolRunner{}, zap.NewNop())
	answer, err := a.Run(context.Background(), "hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello! Ask me about a reaction.", answer)
}

func TestAgentGivesUpAfterMaxTurns(t *testing.T) {
	mockLLM := &MockLLMClient{
		Response: `{"tool": "full-evaluate", "arguments": {"reaction": "CCO>>CC=O"}}`,
	}
	tools := &mockToolRunner{outputs: map[string]string{
		"full-evaluate": "Is Plausible: true",
	}}

	a := NewAgent(mockLLM, tools, zap.NewNop())
	a.MaxTurns = 3

	_, err := a.Run(context.Background(), "loop forever")
	assert.Error(t, err)
	assert.Len(t, tools.calls, 3)
}

func TestAgentLLMErrorPropagates(t *testing.T) {
	mockLLM := &MockLLMClient{Err: errors.New("model offline")}

	a := NewAgent(mockLLM, &mockToolRunner{}, zap.NewNop())
	_, err := a.Run(context.Background(), "anything")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "model offline")
}
