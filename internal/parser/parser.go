package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/wordsearch/pkg/types"
)

// zone is the parser state: which section of the file lines are going to
type zone int

const (
	zoneGrid  zone = iota // before the first blank line that follows a row
	zoneWords             // after it
)

// Parser reads word search puzzle files
type Parser struct {
	// Maximum length of a single line, in bytes
	maxLineBytes int
}

// New creates a new Parser instance
func New() *Parser {
	return &Parser{
		maxLineBytes: 1 << 20,
	}
}

// ParseFile reads and parses a puzzle file
func (p *Parser) ParseFile(filePath string) (*types.Puzzle, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return p.Parse(f)
}

// ParseString parses puzzle text held in memory
func (p *Parser) ParseString(content string) (*types.Puzzle, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse reads a puzzle from r and validates it.
// Structural problems are returned as *types.MalformedPuzzleError.
func (p *Parser) Parse(r io.Reader) (*types.Puzzle, error) {
	rows, words, err := p.split(r)
	if err != nil {
		return nil, err
	}

	return types.NewPuzzle(rows, words)
}

// ParseGrid parses only the grid section. A word section may be present but
// is not required.
func (p *Parser) ParseGrid(r io.Reader) (*types.Puzzle, error) {
	rows, words, err := p.split(r)
	if err != nil {
		return nil, err
	}

	if err := types.ValidateGrid(rows); err != nil {
		return nil, err
	}

	grid := &types.Puzzle{Rows: rows, Words: words}
	grid.Columns = types.DeriveColumns(rows)
	return grid, nil
}

// split runs the line state machine and returns the raw grid rows and words
func (p *Parser) split(r io.Reader) (rows, words []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, p.maxLineBytes)), p.maxLineBytes)

	state := zoneGrid
	for scanner.Scan() {
		// Surrounding whitespace (including a CRLF's \r) is not grid content
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			// Blank lines before any row are ignored
			if len(rows) > 0 {
				state = zoneWords
			}
			continue
		}

		switch state {
		case zoneGrid:
			rows = append(rows, line)
		case zoneWords:
			words = append(words, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to scan puzzle: %w", err)
	}

	return rows, words, nil
}
