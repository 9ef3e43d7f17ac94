package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/wordsearch/internal/formatter"
	"github.com/dshills/wordsearch/internal/output"
	"github.com/dshills/wordsearch/internal/searcher"
	"github.com/dshills/wordsearch/internal/solver"
	"github.com/dshills/wordsearch/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeMalformedPuzzle = -32001 // Puzzle text does not describe a valid puzzle
	ErrorCodeSolveInProgress = -32002 // Another solve_files batch is already running
	ErrorCodePuzzleNotFound  = -32003 // Puzzle file does not exist
)

// maxReportedErrors caps the error list in a solve_files response
const maxReportedErrors = 5

// handleSolvePuzzle handles the solve_puzzle tool invocation
func (s *Server) handleSolvePuzzle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract and validate parameters
	args, err := getArguments(request)
	if err != nil {
		return nil, err
	}

	path := getStringDefault(args, "path", "")
	content := getStringDefault(args, "content", "")
	if (path == "") == (content == "") {
		return nil, newMCPError(ErrorCodeInvalidParams, "exactly one of path or content is required", map[string]interface{}{
			"param":  "path",
			"reason": "provide a file path or puzzle text, not both",
		})
	}

	allMatches := getBoolDefault(args, "all_matches", s.config.AllMatches)
	offset, err := getOffset(args, s.config.Offset)
	if err != nil {
		return nil, err
	}

	writeOutput := getBoolDefault(args, "write_output", false)
	if writeOutput && path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "write_output requires path", map[string]interface{}{
			"param":  "write_output",
			"reason": "no input file to write next to",
		})
	}

	// Parse the puzzle
	var puzzle *types.Puzzle
	if path != "" {
		if err := validatePath(path); err != nil {
			return nil, pathError(err)
		}
		puzzle, err = s.solver.Parser().ParseFile(path)
	} else {
		puzzle, err = s.solver.Parser().ParseString(content)
	}
	if err != nil {
		return nil, parseError(err)
	}

	// Run the search
	sol, err := s.solver.Solve(ctx, puzzle, formatter.Options{
		AllMatches: allMatches,
		Offset:     offset,
	}, true)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	notFound := len(sol.Results.NotFound())

	// Format response
	response := map[string]interface{}{
		"text":            sol.Text,
		"words":           formatter.Records(sol.Results, offset),
		"words_found":     len(sol.Results) - notFound,
		"words_not_found": notFound,
		"total_matches":   sol.Results.TotalMatches(),
		"cache_hit":       sol.CacheHit,
		"grid": map[string]interface{}{
			"width":  puzzle.Width(),
			"height": puzzle.Height(),
		},
	}

	if writeOutput {
		written, err := output.WriteFile(output.DerivePath(path), []byte(sol.Text))
		if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "failed to write output", map[string]interface{}{
				"error": err.Error(),
			})
		}
		s.logger.Info("wrote result file", "path", written)
		response["output_path"] = written
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleFindWord handles the find_word tool invocation
func (s *Server) handleFindWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract and validate parameters
	args, err := getArguments(request)
	if err != nil {
		return nil, err
	}

	content, ok := args["content"].(string)
	if !ok || strings.TrimSpace(content) == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "content parameter is required", map[string]interface{}{
			"param":  "content",
			"reason": "missing or empty",
		})
	}

	word, _ := args["word"].(string)
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "word parameter is required and cannot be empty", map[string]interface{}{
			"param":  "word",
			"reason": "missing or empty",
		})
	}

	offset, err := getOffset(args, 0)
	if err != nil {
		return nil, err
	}

	grid, err := s.solver.Parser().ParseGrid(strings.NewReader(content))
	if err != nil {
		return nil, parseError(err)
	}

	matches := searcher.Scan(word, grid.Rows, grid.Columns)
	record := formatter.Records(types.ResultSet{{Word: word, Matches: matches}}, offset)[0]

	response := map[string]interface{}{
		"word":    record.Word,
		"found":   record.Found,
		"count":   len(record.Matches),
		"matches": record.Matches,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSolveFiles handles the solve_files tool invocation
func (s *Server) handleSolveFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract and validate parameters
	args, err := getArguments(request)
	if err != nil {
		return nil, err
	}

	paths, ok := getStringSlice(args, "paths")
	if !ok || len(paths) == 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, "paths parameter is required", map[string]interface{}{
			"param":  "paths",
			"reason": "missing, empty or not a list of strings",
		})
	}

	for _, path := range paths {
		if !filepath.IsAbs(path) {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
				"param":  "paths",
				"value":  path,
				"reason": ErrPathNotAbsolute.Error(),
			})
		}
	}

	allMatches := getBoolDefault(args, "all_matches", s.config.AllMatches)
	offset, err := getOffset(args, s.config.Offset)
	if err != nil {
		return nil, err
	}

	jobs := make([]solver.Job, len(paths))
	for i, path := range paths {
		jobs[i] = solver.Job{Path: path, AllMatches: allMatches}
	}

	// Run the batch
	stats, err := s.solver.SolveFiles(ctx, jobs, &solver.Config{
		Workers:  s.config.Workers,
		Offset:   offset,
		UseCache: true,
	})
	if errors.Is(err, solver.ErrBatchInProgress) {
		return nil, newMCPError(ErrorCodeSolveInProgress, "another solve_files batch is in progress", nil)
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "solving failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	files := make([]map[string]interface{}, len(stats.Outcomes))
	for i, o := range stats.Outcomes {
		entry := map[string]interface{}{
			"path":   o.Path,
			"solved": o.Err == nil,
		}
		if o.Err == nil {
			entry["output_path"] = o.OutputPath
			entry["words_found"] = o.WordsFound
			entry["words_not_found"] = o.WordsNotFound
		} else {
			entry["error"] = o.Err.Error()
		}
		files[i] = entry
	}

	// Format response
	response := map[string]interface{}{
		"files_solved":    stats.FilesSolved,
		"files_failed":    stats.FilesFailed,
		"words_found":     stats.WordsFound,
		"words_not_found": stats.WordsNotFound,
		"duration_ms":     stats.Duration.Milliseconds(),
		"files":           files,
	}

	if len(stats.ErrorMessages) > 0 {
		// Include first few errors
		errorCount := len(stats.ErrorMessages)
		if errorCount > maxReportedErrors {
			response["errors"] = stats.ErrorMessages[:maxReportedErrors]
			response["error_count"] = errorCount
		} else {
			response["errors"] = stats.ErrorMessages
		}
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := getArguments(request); err != nil {
		return nil, err
	}

	srch := s.solver.Searcher()

	response := map[string]interface{}{
		"server":  ServerName,
		"version": ServerVersion,
		"settings": map[string]interface{}{
			"workers":     srch.Workers(),
			"offset":      s.config.Offset,
			"all_matches": s.config.AllMatches,
		},
		"cache": map[string]interface{}{
			"entries":  srch.CacheLen(),
			"capacity": cacheCapacity(s.config.CacheSize),
		},
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleClearCache handles the clear_cache tool invocation
func (s *Server) handleClearCache(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := getArguments(request); err != nil {
		return nil, err
	}

	srch := s.solver.Searcher()
	cleared := srch.CacheLen()
	srch.InvalidateCache()
	s.logger.Info("cleared result cache", "entries", cleared)

	response := map[string]interface{}{
		"cleared": cleared,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// parseError maps a parser failure to an MCP error
func parseError(err error) error {
	if errors.Is(err, types.ErrMalformedPuzzle) {
		return newMCPError(ErrorCodeMalformedPuzzle, "malformed puzzle", map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return newMCPError(ErrorCodeInternalError, "failed to read puzzle", map[string]interface{}{
		"error": err.Error(),
	})
}

// pathError maps a validatePath failure to an MCP error
func pathError(err error) error {
	code := ErrorCodeInvalidParams
	if errors.Is(err, ErrPathNotFound) {
		code = ErrorCodePuzzleNotFound
	}
	return newMCPError(code, "invalid path", map[string]interface{}{
		"param":  "path",
		"reason": err.Error(),
	})
}

// validatePath checks that a path names a readable regular file
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}

	// Check if path is absolute
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	// Check if path exists
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}

	if info.IsDir() {
		return ErrIsDirectory
	}

	// Check if file is readable
	f, err := os.Open(path)
	if err != nil {
		return ErrPathNotReadable
	}
	_ = f.Close()

	return nil
}

// cacheCapacity reports the effective cache size for a configured value
func cacheCapacity(configured int) int {
	if configured <= 0 {
		return searcher.DefaultCacheSize
	}
	return configured
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getArguments returns the argument map of a request. Missing arguments are
// an empty map.
func getArguments(request mcp.CallToolRequest) (map[string]interface{}, error) {
	if request.Params.Arguments == nil {
		return map[string]interface{}{}, nil
	}
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}
	return args, nil
}

// getOffset extracts a non-negative offset parameter
func getOffset(args map[string]interface{}, defaultValue int) (int, error) {
	offset := getIntDefault(args, "offset", defaultValue)
	if offset < 0 {
		return 0, newMCPError(ErrorCodeInvalidParams, "offset must be >= 0", map[string]interface{}{
			"param": "offset",
			"value": offset,
		})
	}
	return offset, nil
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts a list of strings. JSON arrays arrive as
// []interface{}.
func getStringSlice(args map[string]interface{}, key string) ([]string, bool) {
	switch val := args[key].(type) {
	case []string:
		return val, true
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrIsDirectory     = errors.New("path is a directory")
)
