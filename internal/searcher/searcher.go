package searcher

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/wordsearch/pkg/types"
)

const (
	// DefaultCacheSize is the number of puzzles whose results are kept
	DefaultCacheSize = 256
)

// Config contains configuration for the searcher
type Config struct {
	Workers   int // Number of words searched concurrently (default: runtime.NumCPU())
	CacheSize int // Maximum cached puzzles (default: DefaultCacheSize)
}

// SearchRequest contains parameters for a search operation
type SearchRequest struct {
	Puzzle   *types.Puzzle
	UseCache bool // Whether to use the result cache
}

// SearchResponse contains search results and metadata
type SearchResponse struct {
	Results  types.ResultSet
	Duration time.Duration
	CacheHit bool
}

// Searcher runs every word of a puzzle through the grid scanner
type Searcher struct {
	workers int
	cache   *lru.Cache[[32]byte, types.ResultSet]
	cacheMu sync.RWMutex
}

// NewSearcher creates a new Searcher instance
func NewSearcher(config *Config) *Searcher {
	if config == nil {
		config = &Config{}
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	size := config.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[[32]byte, types.ResultSet](size)
	if err != nil {
		// This should never happen with valid size parameter
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}

	return &Searcher{
		workers: workers,
		cache:   cache,
	}
}

// Workers returns the number of concurrent word searches
func (s *Searcher) Workers() int {
	return s.workers
}

// Search looks up every word of the puzzle. Results are in word-list order
// regardless of the order in which the workers finish.
func (s *Searcher) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	startTime := time.Now()

	if err := validateRequest(&req); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	var hash [32]byte
	if req.UseCache {
		hash = computePuzzleHash(req.Puzzle)
		if cached, ok := s.checkCache(hash); ok {
			return &SearchResponse{
				Results:  cached,
				Duration: time.Since(startTime),
				CacheHit: true,
			}, nil
		}
	}

	results, err := s.searchWords(ctx, req.Puzzle)
	if err != nil {
		return nil, err
	}

	if req.UseCache {
		s.storeInCache(hash, results)
	}

	return &SearchResponse{
		Results:  results,
		Duration: time.Since(startTime),
	}, nil
}

// searchWords scans the grid for each word on a bounded worker pool
func (s *Searcher) searchWords(ctx context.Context, puzzle *types.Puzzle) (types.ResultSet, error) {
	results := make(types.ResultSet, len(puzzle.Words))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, word := range puzzle.Words {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns exactly one slot
			results[i] = types.WordResult{
				Word:    word,
				Matches: Scan(word, puzzle.Rows, puzzle.Columns),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// validateRequest ensures search request is valid
func validateRequest(req *SearchRequest) error {
	if req.Puzzle == nil {
		return fmt.Errorf("puzzle cannot be nil")
	}

	return req.Puzzle.Validate()
}

// checkCache looks up cached results and returns a deep copy
func (s *Searcher) checkCache(hash [32]byte) (types.ResultSet, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	entry, found := s.cache.Get(hash)
	if !found {
		return nil, false
	}

	return entry.Clone(), true
}

// storeInCache saves a deep copy of results
func (s *Searcher) storeInCache(hash [32]byte, results types.ResultSet) {
	s.cacheMu.Lock()
	s.cache.Add(hash, results.Clone())
	s.cacheMu.Unlock()
}

// CacheLen returns the number of cached puzzles
func (s *Searcher) CacheLen() int {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	return s.cache.Len()
}

// InvalidateCache removes all cached results
func (s *Searcher) InvalidateCache() {
	s.cacheMu.Lock()
	s.cache.Purge()
	s.cacheMu.Unlock()
}

// computePuzzleHash computes a unique hash for a puzzle's rows and words.
// Every section and string is length-prefixed so no two puzzles share an
// encoding.
func computePuzzleHash(p *types.Puzzle) [32]byte {
	h := sha256.New()
	writeStrings(h, p.Rows)
	writeStrings(h, p.Words)

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

func writeStrings(w io.Writer, items []string) {
	_ = binary.Write(w, binary.BigEndian, uint64(len(items)))
	for _, item := range items {
		_ = binary.Write(w, binary.BigEndian, uint64(len(item)))
		_, _ = io.WriteString(w, item)
	}
}
