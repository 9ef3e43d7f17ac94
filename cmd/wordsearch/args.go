package main

import (
	"fmt"
	"os"

	"github.com/dshills/wordsearch/internal/solver"
)

// parseJobs turns positional arguments into solver jobs. Each existing file
// starts a job; a literal true or false right after it sets that job's
// all-matches mode. Anything else is reported in warnings and skipped.
func parseJobs(args []string, defaultAll bool, isFile func(string) bool) ([]solver.Job, []string) {
	var (
		jobs     []solver.Job
		warnings []string
		toggled  bool // last job already has an explicit mode
	)

	for _, arg := range args {
		if isFile(arg) {
			jobs = append(jobs, solver.Job{Path: arg, AllMatches: defaultAll})
			toggled = false
			continue
		}

		mode, isBool := parseToggle(arg)
		switch {
		case isBool && len(jobs) > 0 && !toggled:
			jobs[len(jobs)-1].AllMatches = mode
			toggled = true
		case isBool:
			warnings = append(warnings, fmt.Sprintf("%q does not follow a puzzle file, skipping", arg))
		default:
			warnings = append(warnings, fmt.Sprintf("%q is not a file or true/false, skipping", arg))
		}
	}

	return jobs, warnings
}

// parseToggle recognizes the exact lowercase words true and false
func parseToggle(arg string) (value, ok bool) {
	switch arg {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// isRegularFile reports whether path names an existing regular file
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
