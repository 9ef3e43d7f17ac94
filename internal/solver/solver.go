package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/wordsearch/internal/formatter"
	"github.com/dshills/wordsearch/internal/output"
	"github.com/dshills/wordsearch/internal/parser"
	"github.com/dshills/wordsearch/internal/searcher"
	"github.com/dshills/wordsearch/pkg/types"
)

// ErrBatchInProgress is returned when SolveFiles is called while another
// batch is running on the same Solver
var ErrBatchInProgress = errors.New("a batch is already in progress")

// Solver coordinates the solving pipeline: parse -> search -> format -> write
type Solver struct {
	parser   *parser.Parser
	searcher *searcher.Searcher
	logger   *log.Logger

	batch BatchLock
}

// Config contains configuration for a batch
type Config struct {
	Workers  int  // Number of files solved concurrently (default: runtime.NumCPU())
	Offset   int  // Added to every printed coordinate
	UseCache bool // Whether to use the searcher's result cache
}

// Job is one puzzle file to solve
type Job struct {
	Path       string
	AllMatches bool // Print every match instead of the first
}

// Outcome is the result of one Job
type Outcome struct {
	Path          string
	OutputPath    string // Empty when the job failed
	WordsFound    int
	WordsNotFound int
	Err           error
}

// Statistics contains statistics about a batch
type Statistics struct {
	FilesSolved   int
	FilesFailed   int
	WordsFound    int
	WordsNotFound int
	Duration      time.Duration
	Outcomes      []Outcome // In job order
	ErrorMessages []string
}

// Solution is a solved puzzle held in memory
type Solution struct {
	Puzzle   *types.Puzzle
	Results  types.ResultSet
	Text     string
	CacheHit bool
}

// New creates a new Solver. A nil searcher gets a default one; a nil logger
// discards output.
func New(srch *searcher.Searcher, logger *log.Logger) *Solver {
	if srch == nil {
		srch = searcher.NewSearcher(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Solver{
		parser:   parser.New(),
		searcher: srch,
		logger:   logger,
	}
}

// Parser returns the solver's puzzle parser
func (sv *Solver) Parser() *parser.Parser {
	return sv.parser
}

// Searcher returns the solver's searcher
func (sv *Solver) Searcher() *searcher.Searcher {
	return sv.searcher
}

// Solve searches a parsed puzzle and renders the result text
func (sv *Solver) Solve(ctx context.Context, puzzle *types.Puzzle, opts formatter.Options, useCache bool) (*Solution, error) {
	resp, err := sv.searcher.Search(ctx, searcher.SearchRequest{
		Puzzle:   puzzle,
		UseCache: useCache,
	})
	if err != nil {
		return nil, err
	}

	return &Solution{
		Puzzle:   puzzle,
		Results:  resp.Results,
		Text:     formatter.Format(resp.Results, opts),
		CacheHit: resp.CacheHit,
	}, nil
}

// SolveFile parses, searches and writes the result file for one job
func (sv *Solver) SolveFile(ctx context.Context, job Job, config *Config) (*Outcome, error) {
	config = normalizeConfig(config)

	sv.logger.Debug("solving puzzle", "path", job.Path, "all_matches", job.AllMatches)

	puzzle, err := sv.parser.ParseFile(job.Path)
	if err != nil {
		return nil, err
	}

	sol, err := sv.Solve(ctx, puzzle, formatter.Options{
		AllMatches: job.AllMatches,
		Offset:     config.Offset,
	}, config.UseCache)
	if err != nil {
		return nil, err
	}

	written, err := output.WriteFile(output.DerivePath(job.Path), []byte(sol.Text))
	if err != nil {
		return nil, err
	}

	missing := len(sol.Results.NotFound())
	outcome := &Outcome{
		Path:          job.Path,
		OutputPath:    written,
		WordsFound:    len(sol.Results) - missing,
		WordsNotFound: missing,
	}

	sv.logger.Info("solved puzzle", "path", job.Path, "output", written,
		"found", outcome.WordsFound, "not_found", outcome.WordsNotFound)

	return outcome, nil
}

// SolveFiles solves every job on a bounded worker pool. A failing file does
// not stop the others; its error is recorded in the statistics. Only context
// cancellation aborts the batch.
func (sv *Solver) SolveFiles(ctx context.Context, jobs []Job, config *Config) (*Statistics, error) {
	if !sv.batch.TryAcquire() {
		return nil, ErrBatchInProgress
	}
	defer sv.batch.Release()

	config = normalizeConfig(config)
	startTime := time.Now()

	outcomes := make([]Outcome, len(jobs))
	semaphore := make(chan struct{}, config.Workers)

	var (
		solved atomic.Int32
		failed atomic.Int32
	)

	g, gctx := errgroup.WithContext(ctx)

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
				// Acquire semaphore
			}
			defer func() { <-semaphore }()

			outcome, err := sv.SolveFile(gctx, job, config)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				failed.Add(1)
				sv.logger.Warn("failed to solve puzzle", "path", job.Path, "err", err)
				// Each goroutine owns exactly one slot
				outcomes[i] = Outcome{Path: job.Path, Err: err}
				return nil
			}

			solved.Add(1)
			outcomes[i] = *outcome
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to solve files: %w", err)
	}

	stats := &Statistics{
		FilesSolved:   int(solved.Load()),
		FilesFailed:   int(failed.Load()),
		Outcomes:      outcomes,
		ErrorMessages: make([]string, 0),
	}
	for _, o := range outcomes {
		stats.WordsFound += o.WordsFound
		stats.WordsNotFound += o.WordsNotFound
		if o.Err != nil {
			stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", o.Path, o.Err))
		}
	}
	stats.Duration = time.Since(startTime)

	return stats, nil
}

func normalizeConfig(config *Config) *Config {
	if config == nil {
		config = &Config{Offset: formatter.DefaultOffset}
	}
	if config.Workers <= 0 {
		c := *config
		c.Workers = runtime.NumCPU()
		config = &c
	}
	return config
}
