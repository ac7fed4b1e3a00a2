package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/moviedb/internal/config"
	"github.com/muurk/moviedb/internal/logging"
	"github.com/muurk/moviedb/internal/movies"
	"github.com/muurk/moviedb/internal/tui"
	"github.com/muurk/moviedb/internal/ui"
	"github.com/muurk/moviedb/internal/version"
)

// annotationOwnsTerminal marks commands that draw a full-screen program, so
// logs must not go to stderr.
const annotationOwnsTerminal = "owns-terminal"

// defaultLogFile is used when logging is enabled for the editor without an
// explicit --log-file.
const defaultLogFile = "moviedb.log"

// List output formats
const (
	formatDetailed = "detailed"
	formatCompact  = "compact"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

// app holds the persistent flags and what PersistentPreRunE derives from
// them.
type app struct {
	configPath string
	logLevel   string
	logFile    string
	strict     bool

	// Set by setup
	path   string
	cfg    *config.Config
	cfgErr error

	// interactive reports whether prompts may be shown.
	interactive func() bool
	// runEditor starts the full-screen editor.
	runEditor func(movies.State, tui.Options) (movies.State, error)
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{
		interactive: ui.IsTerminal,
		runEditor:   tui.Run,
	})
}

func newRootCmdFor(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "moviedb",
		Short: "Movie list editor",
		Long: `A terminal editor for a small list of movies.

Records have a title, a year and a rating. Add them through the form, pick a
row to edit it, or delete it. The list lives in memory only and starts from
the seed records in the config file every run.

If no command is specified, the editor launches automatically.`,
		Version:           version.Version,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Annotations:       map[string]string{annotationOwnsTerminal: "true"},
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/moviedb/config.yaml, or $"+config.PathEnvVar+")")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default $"+logging.LogLevelEnvVar+", silent when unset)")
	flags.StringVar(&a.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVar(&a.strict, "strict", false, "Require year and rating to be numbers")

	rootCmd.AddCommand(
		newTUICmd(a),
		newListCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup resolves the config file and initializes logging. A broken config
// file is remembered rather than returned, so "config init --force" can
// still repair it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, err := config.GetConfigPath(a.configPath)
	if err != nil {
		return err
	}
	a.path = path
	a.cfg, a.cfgErr = config.LoadFile(path)

	level, logFile := a.logLevel, a.logFile
	if prefs := a.preferences(); prefs != nil {
		if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
			level = prefs.LogLevel
		}
		if logFile == "" {
			logFile = prefs.LogFile
		}
	}
	if logFile == "" && ownsTerminal(cmd) && (level != "" || os.Getenv(logging.LogLevelEnvVar) != "") {
		if dir, err := config.GetConfigDir(); err == nil {
			logFile = filepath.Join(dir, defaultLogFile)
			if err := os.MkdirAll(dir, 0700); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
		}
	}

	if err := logging.Initialize(level, logFile); err != nil {
		return err
	}

	logging.Debug("Configuration resolved",
		zap.String("command", cmd.CommandPath()),
		zap.String("config", path),
		zap.Bool("config_ok", a.cfgErr == nil),
	)
	return nil
}

func ownsTerminal(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationOwnsTerminal] == "true"
}

// config returns the loaded configuration. When the file could not be
// loaded it prints a failure box to w and returns the error marked as
// reported.
func (a *app) config(w io.Writer) (*config.Config, error) {
	if a.cfgErr == nil {
		return a.cfg, nil
	}

	err := fmt.Errorf("%s: %w", a.path, a.cfgErr)
	logging.Error("Config load failed", zap.String("path", a.path), zap.Error(a.cfgErr))
	ui.NewPrinter(w).PrintError("Could not load config", err,
		"Fix the file at "+a.path,
		"Run `moviedb config init --force` to replace it with the defaults",
		"Pass --config to use a different file",
	)
	return nil, reported(err)
}

func (a *app) preferences() *config.Preferences {
	if a.cfg == nil {
		return nil
	}
	return a.cfg.Preferences
}

// validator picks the submit validator. --strict forces numeric checks on
// regardless of the config file.
func (a *app) validator(cfg *config.Config) movies.Validator {
	if a.strict {
		return movies.ValidatorFor(true)
	}
	return cfg.Validator()
}

// tuiCmd launches the editor; the root command does the same.
func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive editor",
		Long: `Launch the interactive movie list editor.

Keys:
  tab / shift+tab   move between the inputs, the buttons and the list
  ctrl+s            add the form as a new record, or save the edited record
  ctrl+r            clear the form
  e / enter         edit the selected record (list)
  d / x / delete    delete the selected record (list)
  ?                 toggle help
  ctrl+c            quit`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOwnsTerminal: "true"},
		RunE:        a.runTUI,
	}
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := a.config(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	state := movies.New(cfg.SeedMovies(), movies.WithValidator(a.validator(cfg)))
	altScreen := cfg.Preferences == nil || cfg.Preferences.AltScreen

	logging.Info("Starting editor",
		zap.Int("records", state.Len()),
		zap.Bool("strict", a.strict || (cfg.Preferences != nil && cfg.Preferences.StrictValidation)),
		zap.Bool("alt_screen", altScreen),
	)

	final, err := a.runEditor(state, tui.Options{AltScreen: altScreen})
	if err != nil {
		return err
	}

	logging.Info("Editor closed", zap.Int("records", final.Len()))
	return nil
}

// reportedError is an error whose failure box has already been printed.
// main exits non-zero without printing it again.
type reportedError struct {
	err error
}

func reported(err error) error { return &reportedError{err: err} }

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// listEntry is the machine-readable form of one record.
type listEntry struct {
	Position int    `json:"position" yaml:"position"`
	Title    string `json:"title" yaml:"title"`
	Year     string `json:"year" yaml:"year"`
	Rating   string `json:"rating" yaml:"rating"`
}

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the records the editor starts with",
		Long: `Print the seed records from the config file, or the built-in list when the
config file names none.`,
		Example: `  # Bordered table (default)
  moviedb list

  # One line per record
  moviedb list --format compact

  # JSON output for scripting
  moviedb list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), format, a.path, cfg.SeedMovies())
		},
	}

	cmd.Flags().StringVar(&format, "format", formatDetailed, "Output format (detailed, compact, json, yaml)")
	return cmd
}

func writeList(w io.Writer, format, path string, records []movies.Movie) error {
	switch format {
	case formatDetailed:
		p := ui.NewPrinter(w)
		p.PrintHeader("Movie list", "moviedb list",
			ui.Param{Key: "Config", Value: path},
			ui.Param{Key: "Records", Value: strconv.Itoa(len(records))},
		)
		p.PrintTable(records, ui.TableDetailed)
		return nil

	case formatCompact:
		ui.NewPrinter(w).PrintTable(records, ui.TableCompact)
		return nil

	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(listEntries(records)); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(listEntries(records)); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown format %q (want %s, %s, %s or %s)",
			format, formatDetailed, formatCompact, formatJSON, formatYAML)
	}
}

func listEntries(records []movies.Movie) []listEntry {
	out := make([]listEntry, len(records))
	for i, m := range records {
		out[i] = listEntry{Position: i + 1, Title: m.Title, Year: m.Year, Rating: m.Rating}
	}
	return out
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(newConfigInitCmd(a), newConfigPathCmd(a))
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file listing the built-in seed records and the default
preferences. Edit the seed list to change what the editor starts with.

An existing file is only replaced with --force, or after confirming at the
prompt when running in a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd.InOrStdin(), cmd.OutOrStdout(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func (a *app) initConfig(in io.Reader, out io.Writer, force bool) error {
	p := ui.NewPrinter(out)

	err := config.CreateDefaultConfig(a.path, force)
	if errors.Is(err, config.ErrConfigExists) {
		if !a.interactive() || !ui.ConfirmOverwrite(in, out, a.path) {
			p.PrintWarning("Config file left unchanged",
				ui.Param{Key: "Path", Value: a.path},
				ui.Param{Key: "Hint", Value: "use --force to overwrite"},
			)
			return err
		}
		err = config.CreateDefaultConfig(a.path, true)
	}
	if err != nil {
		err = fmt.Errorf("failed to write config: %w", err)
		logging.Error("Config init failed", zap.String("path", a.path), zap.Error(err))
		p.PrintError("Could not write config", err,
			"Check that "+filepath.Dir(a.path)+" is writable",
			"Pass --config to write the file somewhere else",
		)
		return reported(err)
	}

	logging.Info("Config file written", zap.String("path", a.path))
	p.PrintSuccess("Config file written",
		ui.Param{Key: "Path", Value: a.path},
		ui.Param{Key: "Records", Value: strconv.Itoa(len(movies.Seed()))},
	)
	return nil
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.path)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moviedb %s\n", version.Full())
		},
	}
}
