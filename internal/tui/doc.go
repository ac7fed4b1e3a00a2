// Package tui implements the terminal user interface for the movie list editor.
//
// Built using the Bubble Tea framework, it follows the Elm architecture: the
// Model holds a movies.State, Update turns key presses into movies actions,
// and View is a pure function of the model.
//
// # Layout
//
//	Title   [                    ]
//	Year    [2026                ]
//	Rating  [                    ]
//	( Add )  ( Clear )
//	──────────────────────────────
//	1. Hero (2012) Rating: 201        [Edit] [Delete]
//	2. Hello (1956) Rating: 109       [Edit] [Delete]
//
// The primary button reads "Save" while a record is being edited and the row
// under edit is marked with ✎.
//
// # Key Bindings
//
//   - tab / shift+tab: move focus title → year → rating → Add → Clear → list
//   - enter in an input: next control; on a button: press it
//   - ctrl+s anywhere: Add/Save; ctrl+r anywhere: Clear
//   - list: ↑/↓ or k/j select, e or enter edit, d or x delete, q quit
//   - ?: toggle full help (outside the inputs)
//   - ctrl+c: quit
//
// # Errors
//
// A rejected Add/Save opens a blocking "Fill out form" notice that lists the
// offending fields. Any key closes it and nothing else is processed while it
// is open. Other errors appear on the status line.
package tui
