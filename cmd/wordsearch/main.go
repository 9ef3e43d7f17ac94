package main

import (
	"context"
	"errors"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:]))
}

// execute runs the root command and returns the process exit code
func execute(ctx context.Context, args []string) int {
	rootCmd := newRootCmd(&options{})
	rootCmd.SetArgs(args)

	// fang overrides rootCmd.Version, so the version goes through WithVersion
	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}

	return 0
}

// versionString returns the version shown by --version
func versionString() string {
	if version == "dev" {
		return "dev (built from source)"
	}
	return version + " (built: " + buildTime + ")"
}
