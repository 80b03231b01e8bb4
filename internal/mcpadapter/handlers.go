package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/advent-of-code-2022/internal/executor"
	"github.com/povarna/advent-of-code-2022/internal/models"
)

// SolvePuzzleInput is the MCP tool input schema (matches HTTP API field names).
type SolvePuzzleInput struct {
	Day   int    `json:"day" jsonschema:"puzzle day between 1 and 25"`
	Input string `json:"input,omitempty" jsonschema:"optional raw puzzle input; fetched when empty"`
}

type ListPuzzlesInput struct{}

// ListPuzzlesOutput wraps the list since tool output must be an object.
type ListPuzzlesOutput struct {
	Puzzles []models.PuzzleInfo `json:"puzzles"`
}

// RegisterTools adds solve_puzzle and list_puzzles to the server.
func RegisterTools(server *mcp.Server, exec *executor.Executor) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve both parts of an Advent of Code 2022 day, from the given input or the fetched one",
	}, NewSolvePuzzleHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_puzzles",
		Description: "List the Advent of Code 2022 days that have a solver",
	}, NewListPuzzlesHandler(exec))
}

// NewSolvePuzzleHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolvePuzzleHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, SolvePuzzleInput) (*mcp.CallToolResult, models.SolveResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SolvePuzzleInput) (*mcp.CallToolResult, models.SolveResult, error) {
		return SolvePuzzle(ctx, exec, req, input)
	}
}

// SolvePuzzle runs one solve; failures surface as tool errors.
func SolvePuzzle(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input SolvePuzzleInput,
) (*mcp.CallToolResult, models.SolveResult, error) {
	result, err := exec.Execute(ctx, models.SolveRequest{
		Day:   input.Day,
		Input: input.Input,
	})
	return nil, result, err
}

func NewListPuzzlesHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, ListPuzzlesInput) (*mcp.CallToolResult, ListPuzzlesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListPuzzlesInput) (*mcp.CallToolResult, ListPuzzlesOutput, error) {
		return nil, ListPuzzlesOutput{Puzzles: exec.Puzzles()}, nil
	}
}
