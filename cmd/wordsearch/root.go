package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/wordsearch/internal/config"
	"github.com/dshills/wordsearch/internal/searcher"
	"github.com/dshills/wordsearch/internal/solver"
)

// options holds the persistent flag values
type options struct {
	cfgFile string
	verbose bool
	all     bool
	offset  int
	workers int

	// searchDirs overrides where config files are looked up (nil = defaults)
	searchDirs []string
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordsearch [flags] FILE [true|false] [FILE [true|false] ...]",
		Short: "Find the words of word search puzzles",
		Long: TitleStyle.Render("wordsearch") + SubtitleStyle.Render(" - find the words of word search puzzles") + `

A puzzle file holds the letter grid, one row per line, then a blank line,
then one word per line. Words are searched along rows and columns, forwards
and backwards. Results are written next to each puzzle with a .out extension;
existing files are never overwritten (puzzle_1.out, puzzle_2.out, ...).

` + SubtitleStyle.Render("Examples:") + `
  wordsearch puzzle.txt              First match of each word
  wordsearch puzzle.txt true         Every match of each word
  wordsearch a.txt b.txt false       Several puzzles at once
  wordsearch serve                   Run the MCP server on stdio`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./wordsearch.{yaml,toml,json} or $XDG_CONFIG_HOME/wordsearch/)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&opts.all, "all", "a", false, "print every match for files without a true/false toggle")
	flags.IntVar(&opts.offset, "offset", 1, "added to every printed coordinate")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "puzzles and words solved concurrently (0 = one per CPU)")

	rootCmd.AddCommand(newServeCmd(opts))

	return rootCmd
}

// loadSettings loads the config and applies flags that were set explicitly.
// It also returns the config file read, if any.
func loadSettings(cmd *cobra.Command, opts *options) (*config.Config, string, error) {
	cfg, path, err := config.Load(config.LoadOptions{
		ConfigFilePath: opts.cfgFile,
		SearchDirs:     opts.searchDirs,
	})
	if err != nil {
		return nil, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("all") {
		cfg.AllMatches = opts.all
	}
	if flags.Changed("offset") {
		cfg.Offset = opts.offset
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

// newLogger creates the stderr logger. Verbose mode logs everything;
// otherwise only messages at level or above are shown.
func newLogger(w io.Writer, verbose bool, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "wordsearch",
		Level:  level,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// runSolve solves every puzzle file named in args and prints a summary
func runSolve(cmd *cobra.Command, opts *options, args []string) error {
	cfg, cfgPath, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	logger := newLogger(stderr, cfg.Verbose, log.ErrorLevel)
	if cfgPath != "" {
		logger.Debug("loaded config", "path", cfgPath)
	}

	jobs, warnings := parseJobs(args, cfg.AllMatches, isRegularFile)
	for _, w := range warnings {
		fmt.Fprintln(stderr, WarningStyle.Render("Warning: ")+w)
	}
	if len(jobs) == 0 {
		return &ExitError{Code: ExitUsage, Err: errors.New("no puzzle files to solve")}
	}

	srch := searcher.NewSearcher(&searcher.Config{
		Workers:   cfg.Workers,
		CacheSize: cfg.CacheSize,
	})
	sv := solver.New(srch, logger)

	stats, err := sv.SolveFiles(cmd.Context(), jobs, &solver.Config{
		Workers: cfg.Workers,
		Offset:  cfg.Offset,
	})
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), stats)

	if stats.FilesFailed > 0 {
		return &ExitError{
			Code: ExitFilesFailed,
			Err:  fmt.Errorf("%d of %d puzzle files failed", stats.FilesFailed, len(jobs)),
		}
	}

	return nil
}

// printSummary writes one line per job and a closing total
func printSummary(w io.Writer, stats *solver.Statistics) {
	for _, o := range stats.Outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", ErrorStyle.Render("✗"), o.Path, o.Err)
			continue
		}
		fmt.Fprintf(w, "%s %s -> %s (%d found, %d not found)\n",
			SuccessStyle.Render("✓"), o.Path, o.OutputPath, o.WordsFound, o.WordsNotFound)
	}

	fmt.Fprintf(w, "Solved %d of %d puzzles in %v\n",
		stats.FilesSolved, len(stats.Outcomes), stats.Duration.Round(time.Millisecond))
}
