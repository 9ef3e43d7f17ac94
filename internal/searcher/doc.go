// Package searcher locates the words of a puzzle in its grid.
//
// Searching is built from three layers, each usable on its own:
//   - Locate: non-overlapping occurrences of a substring, left to right
//   - MatchLine: forward and backward matches of one word in one row or column
//   - Scan: MatchLine over every row, then every column
//
// # Basic Usage
//
//	s := searcher.NewSearcher(&searcher.Config{Workers: 4})
//
//	resp, err := s.Search(ctx, searcher.SearchRequest{
//	    Puzzle:   puzzle,
//	    UseCache: true,
//	})
//
//	for _, wr := range resp.Results {
//	    if m, ok := wr.First(); ok {
//	        fmt.Printf("%s starts at %v\n", m.Word, m.Start)
//	    }
//	}
//
// # Matching Rules
//
// Comparison is case-insensitive; the Word recorded in a match is upper case.
// Grids and words are expected to be ASCII: positions are byte offsets, so
// non-ASCII text can report shifted coordinates.
//
// Occurrences never overlap within one scan direction: after a hit the
// search resumes on the cell following it, so "aa" is found once in "aaa".
//
// A backward match is found by searching for the reversed word and reported
// with Start at the higher index:
//
//	MatchLine("match", "hctam", 0, types.AxisHorizontal)
//	// Start {4 0}, End {0 0}
//
// Palindromes (including single letters) are searched forwards only, so the
// same cells are never reported twice.
//
// # Result Order
//
// Scan returns horizontal matches row by row, then vertical matches column
// by column. Within a line, backward matches come before forward ones. The
// first match of a word in this order is its preferred match: a hit in any
// row always wins over a hit in a column.
//
// # Concurrency
//
// Search runs one goroutine per word on an errgroup limited to
// Config.Workers. Each goroutine writes only its own slot of the result
// slice, so results stay in word-list order. Cancelling the context stops
// the search.
//
// # Caching
//
// With UseCache set, results are kept in an LRU cache keyed by the SHA-256 of
// the puzzle's rows and words. Cached results are deep-copied on the way in
// and out, so callers may modify what they receive.
package searcher
