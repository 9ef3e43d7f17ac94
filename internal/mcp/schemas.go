package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// solvePuzzleTool returns the tool definition for solve_puzzle
func solvePuzzleTool() mcp.Tool {
	return mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve a word search puzzle: find every listed word in the grid's rows and columns, forwards and backwards",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to a puzzle file (grid rows, a blank line, then one word per line)",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Puzzle text, used instead of path",
				},
				"all_matches": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, list every match of each word instead of only the first",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Added to every coordinate in the text output (1 = one-based)",
					"minimum":     0,
				},
				"write_output": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, also write the result next to the puzzle file with a .out extension (requires path)",
					"default":     false,
				},
			},
		},
	}
}

// findWordTool returns the tool definition for find_word
func findWordTool() mcp.Tool {
	return mcp.Tool{
		Name:        "find_word",
		Description: "Find every occurrence of a single word in a puzzle grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Grid text, one row per line; a word list after a blank line is allowed and ignored",
				},
				"word": map[string]interface{}{
					"type":        "string",
					"description": "Word to search for (case-insensitive)",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Added to every returned coordinate",
					"default":     0,
					"minimum":     0,
				},
			},
			Required: []string{"content", "word"},
		},
	}
}

// solveFilesTool returns the tool definition for solve_files
func solveFilesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "solve_files",
		Description: "Solve several puzzle files and write a .out result file next to each",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"paths": map[string]interface{}{
					"type":        "array",
					"description": "Absolute paths to puzzle files",
					"items": map[string]interface{}{
						"type": "string",
					},
					"minItems": 1,
				},
				"all_matches": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, list every match of each word instead of only the first",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Added to every coordinate in the result files",
					"minimum":     0,
				},
			},
			Required: []string{"paths"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report server settings and result cache usage",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// clearCacheTool returns the tool definition for clear_cache
func clearCacheTool() mcp.Tool {
	return mcp.Tool{
		Name:        "clear_cache",
		Description: "Drop every cached puzzle result so the next solve searches again",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
