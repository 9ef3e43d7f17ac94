// Package mcp implements the Model Context Protocol (MCP) server for wordsearch.
//
// The MCP server exposes five tools:
//   - solve_puzzle: Solve a puzzle given as a file path or as text
//   - find_word: Find one word in a grid
//   - solve_files: Solve several puzzle files and write their .out files
//   - get_status: Report settings and cache usage
//   - clear_cache: Drop all cached results
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// # Basic Usage
//
// The MCP server is started via the serve command:
//
//	wordsearch serve
//
// It then listens on stdin for MCP protocol messages and writes responses to
// stdout. Logs go to stderr.
//
// # Tool: solve_puzzle
//
//	Request:
//	{
//	  "name": "solve_puzzle",
//	  "arguments": {
//	    "content": "CATX\nOXTA\nWOLF\n\ncat\nflow\n",
//	    "all_matches": false,
//	    "offset": 1
//	  }
//	}
//
//	Response:
//	{
//	  "text": "CAT (1, 1) (3, 1)\nFLOW (4, 3) (1, 3)\n",
//	  "words": [
//	    {"word": "CAT", "found": true, "matches": [
//	      {"start": {"x": 1, "y": 1}, "end": {"x": 3, "y": 1}, "direction": "right"}
//	    ]},
//	    ...
//	  ],
//	  "words_found": 2,
//	  "words_not_found": 0,
//	  "cache_hit": false
//	}
//
// With "path" instead of "content" the puzzle is read from an absolute file
// path, and "write_output": true also writes the text next to it, as the
// command line does.
//
// The "words" list always holds every match; "all_matches" only changes
// "text".
//
// # Tool: find_word
//
// Search one word in a grid. The content needs no word list, so a bare grid
// can be queried:
//
//	{"name": "find_word", "arguments": {"content": "CATX\nOXTA\nWOLF\n", "word": "flow"}}
//
// Coordinates here are zero-based unless "offset" is given.
//
// # Tool: solve_files
//
// Runs the batch solver over absolute paths. Files that fail are listed with
// their error; the rest are still solved. Only one batch runs at a time.
//
// # Error Handling
//
// Handlers return *MCPError values:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error (I/O, cancelled search)
//   - -32001: Malformed puzzle (no grid, no words, ragged rows)
//   - -32002: A solve_files batch is in progress
//   - -32003: Puzzle file not found
//
// # Caching
//
// All tools share one searcher, so solving the same puzzle again is served
// from its result cache. get_status reports the number of cached puzzles and
// clear_cache empties the cache, returning how many entries it dropped.
package mcp
