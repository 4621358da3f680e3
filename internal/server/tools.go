package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// MCPServer assembles the protocol server with all four tools registered.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	srv := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	formulaTool := mcp.NewTool(ToolFormulaAssign,
		mcp.WithDescription("Calculate the formula difference for a reaction and assign EVODEX-F identifiers"),
		mcp.WithString("reaction",
			mcp.Required(),
			mcp.Description("Reaction SMILES string in format 'substrate>>product'"),
		),
	)
	srv.AddTool(formulaTool, s.toolHandler(ToolFormulaAssign))

	operatorTool := mcp.NewTool(ToolOperatorMatch,
		mcp.WithDescription("Match a reaction against the EVODEX operator datasets (E, C or N)"),
		mcp.WithString("reaction",
			mcp.Required(),
			mcp.Description("Reaction SMILES string in format 'substrate>>product'"),
		),
		mcp.WithString("operator_type",
			mcp.Description("Operator dataset to match against: 'E', 'C' or 'N' (default: E)"),
		),
	)
	srv.AddTool(operatorTool, s.toolHandler(ToolOperatorMatch))

	evaluateTool := mcp.NewTool(ToolFullEvaluate,
		mcp.WithDescription("Full reaction evaluation combining the formula and operator signals into a plausibility verdict"),
		mcp.WithString("reaction",
			mcp.Required(),
			mcp.Description("Reaction SMILES string in format 'substrate>>product'"),
		),
		mcp.WithString("operator_type",
			mcp.Description("Operator dataset to match against: 'E', 'C' or 'N' (default: E)"),
		),
	)
	srv.AddTool(evaluateTool, s.toolHandler(ToolFullEvaluate))

	batchTool := mcp.NewTool(ToolBatchEvaluate,
		mcp.WithDescription("Evaluate a list of reactions in order, one verdict or error per input"),
		mcp.WithArray("reactions",
			mcp.Required(),
			mcp.Description("Reaction SMILES strings, each in format 'substrate>>product'"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("operator_type",
			mcp.Description("Operator dataset to match against: 'E', 'C' or 'N' (default: E)"),
		),
	)
	srv.AddTool(batchTool, s.toolHandler(ToolBatchEvaluate))

	return srv
}

// toolHandler adapts Handle to the protocol handler signature. Tool
// failures are returned as protocol tool errors, never as Go errors, so
// the serve loop keeps running.
func (s *Server) toolHandler(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		resp, err := s.Handle(ctx, name, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(resp.Text), nil
	}
}
