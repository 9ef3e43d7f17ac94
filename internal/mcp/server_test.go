package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wordsearch/internal/config"
)

func TestNewServer(t *testing.T) {
	t.Run("defaults when config is nil", func(t *testing.T) {
		server, err := NewServer(nil, nil)
		require.NoError(t, err)

		assert.NotNil(t, server.mcp, "MCP server should be initialized")
		assert.NotNil(t, server.solver, "Solver should be initialized")
		assert.Equal(t, config.DefaultConfig(), server.config)
	})

	t.Run("workers and cache size reach the searcher", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Workers = 3
		cfg.CacheSize = 8

		server, err := NewServer(cfg, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, server.solver.Searcher().Workers())
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Offset = -1

		_, err := NewServer(cfg, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestServer_RegistersTools(t *testing.T) {
	server, err := NewServer(nil, nil)
	require.NoError(t, err)

	resp := server.mcp.HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	require.NotNil(t, resp)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	for _, name := range []string{"solve_puzzle", "find_word", "solve_files", "get_status", "clear_cache"} {
		assert.Contains(t, string(raw), `"`+name+`"`)
	}
}
