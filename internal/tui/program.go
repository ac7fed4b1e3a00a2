package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/moviedb/internal/movies"
)

// Options controls how the editor program runs.
type Options struct {
	AltScreen bool
}

// Run starts the editor and blocks until the user quits. It returns the
// final state so callers can report on the session.
func Run(state movies.State, opts Options) (movies.State, error) {
	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(New(state), programOpts...).Run()
	if err != nil {
		return state, fmt.Errorf("editor failed: %w", err)
	}

	if m, ok := final.(Model); ok {
		return m.State, nil
	}
	return state, nil
}
