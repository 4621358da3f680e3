// Package agent answers natural-language questions about reactions by
// letting a language model drive the evaluation tools and interpret their
// verdicts.
package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/evodexlab/evodex-mcp/internal/llm"
)

// defaultMaxTurns caps the model/tool loop so a confused model cannot
// spin forever.
const defaultMaxTurns = 5

// ToolRunner executes one tool call and returns its rendered text. The
// server satisfies this directly.
type ToolRunner interface {
	RunTool(ctx context.Context, name string, args map[string]any) (string, error)
}

type Agent struct {
	LLM      llm.LLMClient
	Tools    ToolRunner
	Logger   *zap.Logger
	MaxTurns int
}

func NewAgent(llmClient llm.LLMClient, tools ToolRunner, logger *zap.Logger) *Agent {
	return &Agent{
		LLM:      llmClient,
		Tools:    tools,
		Logger:   logger,
		MaxTurns: defaultMaxTurns,
	}
}

// action is one model reply: a tool call or a final answer.
type action struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
	Answer    string         `json:"answer"`
}

// Run answers one question, calling tools as the model requests them. A
// failed tool call is fed back to the model as text so it can correct
// itself on the next turn.
func (a *Agent) Run(ctx context.Context, question string) (string, error) {
	maxTurns := a.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}

	transcript := []string{systemPrompt, "User question: " + question}

	for turn := 0; turn < maxTurns; turn++ {
		reply, err := a.LLM.Generate(ctx, strings.Join(transcript, "\n\n"))
		if err != nil {
			return "", fmt.Errorf("failed to generate agent step: %w", err)
		}

		act, err := ParseJSON[action](reply)
		if err != nil {
			// The model answered in prose; take it as the final answer.
			return strings.TrimSpace(reply), nil
		}

		if act.Tool == "" {
			if act.Answer != "" {
				return act.Answer, nil
			}
			return strings.TrimSpace(reply), nil
		}

		a.Logger.Info("agent tool call",
			zap.Int("turn", turn),
			zap.String("tool", act.Tool))

		output, err := a.Tools.RunTool(ctx, act.Tool, act.Arguments)
		if err != nil {
			output = "Tool error: " + err.Error()
		}

		transcript = append(transcript,
			"Assistant: "+strings.TrimSpace(reply),
			"Tool output:\n"+output,
			"Continue. Reply with another tool call or your final answer.")
	}

	return "", fmt.Errorf("no final answer after %d turns", maxTurns)
}
