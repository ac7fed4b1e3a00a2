// Moviedb is a terminal editor for a small list of movies.
//
// It keeps an ordered list of records (title, year, rating) in memory and
// lets the user add, edit and delete entries through a form. Nothing is
// written back to disk; the list starts from the configured seed every run.
//
// Usage:
//
//	moviedb [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'moviedb --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/muurk/moviedb/internal/logging"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	err := newRootCmd().Execute()
	logging.Sync()
	if err != nil {
		if !isReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// loadDotEnv exports the variables in path unless they are already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}
