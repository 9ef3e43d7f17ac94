package mcp

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/wordsearch/internal/config"
	"github.com/dshills/wordsearch/internal/searcher"
	"github.com/dshills/wordsearch/internal/solver"
)

const (
	// ServerName is the MCP server name
	ServerName = "wordsearch"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	solver *solver.Solver
	config *config.Config
	logger *log.Logger
}

// NewServer creates a new MCP server instance. A nil config uses the
// defaults; a nil logger discards output.
func NewServer(cfg *config.Config, logger *log.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Create searcher shared by every tool so the result cache is shared too
	srch := searcher.NewSearcher(&searcher.Config{
		Workers:   cfg.Workers,
		CacheSize: cfg.CacheSize,
	})

	// Create MCP server
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:    mcpServer,
		solver: solver.New(srch, logger),
		config: cfg,
		logger: logger,
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown or until
// ctx is cancelled
func (s *Server) Serve(ctx context.Context) error {
	return s.Listen(ctx, os.Stdin, os.Stdout)
}

// Listen serves the MCP protocol on the given streams
func (s *Server) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(s.logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}))

	s.logger.Info("MCP server started", "name", ServerName, "version", ServerVersion)
	return stdio.Listen(ctx, in, out)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	// Register solve_puzzle tool
	s.mcp.AddTool(solvePuzzleTool(), s.handleSolvePuzzle)

	// Register find_word tool
	s.mcp.AddTool(findWordTool(), s.handleFindWord)

	// Register solve_files tool
	s.mcp.AddTool(solveFilesTool(), s.handleSolveFiles)

	// Register get_status tool
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)

	// Register clear_cache tool
	s.mcp.AddTool(clearCacheTool(), s.handleClearCache)

	return nil
}
