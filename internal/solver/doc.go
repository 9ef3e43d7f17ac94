// Package solver runs the end-to-end pipeline for puzzle files.
//
// For each file the solver parses the puzzle, searches every word, renders
// the result text and writes it next to the input with a .out extension.
//
// # Basic Usage
//
//	sv := solver.New(searcher.NewSearcher(nil), logger)
//
//	stats, err := sv.SolveFiles(ctx, []solver.Job{
//	    {Path: "puzzle.txt"},
//	    {Path: "other.txt", AllMatches: true},
//	}, &solver.Config{Offset: 1})
//
//	fmt.Printf("Solved %d files, %d failed\n", stats.FilesSolved, stats.FilesFailed)
//
// # Concurrent Processing
//
// Files are processed on an errgroup bounded by a channel semaphore of
// Config.Workers slots. A file that cannot be read, parsed or written is
// recorded in Statistics.Outcomes and Statistics.ErrorMessages and the batch
// continues. Cancelling the context stops the batch and SolveFiles returns
// the context error.
//
// Outcomes are stored by job index, so they are reported in job order.
//
// # Output Files
//
// Result files are created through package output, which never overwrites:
// when puzzle.out exists the result goes to puzzle_1.out, then puzzle_2.out.
// Two jobs for the same input in one batch therefore get separate files.
//
// # Batch Lock
//
// Only one SolveFiles call may run on a Solver at a time. A second
// concurrent call fails fast with ErrBatchInProgress rather than queueing.
package solver
