// Package ui provides run-once terminal output for the non-interactive
// moviedb commands.
//
// The interactive editor lives in internal/tui. The components here render
// a block of styled text and return; they never read keys except for the
// overwrite confirmation used by "config init".
//
// # Components
//
//   - Header: command banner showing the command name and its parameters
//   - Table: the record list in detailed or compact form
//   - Result: success, failure and warning boxes
//
// Commands normally go through a Printer, which binds the components to an
// io.Writer and the detected terminal width:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Movie list", "moviedb list", ui.Param{Key: "Records", Value: "6"})
//	p.PrintTable(records, ui.TableDetailed)
//
// # Logging Integration
//
// Logging is controlled via MOVIEDB_LOG_LEVEL. When unset, zap logging is
// silent so the styled output stays clean.
package ui
