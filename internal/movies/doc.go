// Package movies holds the state of the movie list editor.
//
// The editor keeps an ordered, in-memory list of movie records and a single
// form used both to add new records and to edit existing ones. Everything the
// user can do is expressed as an Action and applied to an immutable State:
//
//	state := movies.New(movies.Seed())
//
//	state, err := state.Apply(movies.BeginEditAction{Index: 2})
//	state, err = state.Apply(movies.SetFieldAction{Field: movies.FieldTitle, Value: "Farewell"})
//	state, err = state.Apply(movies.SubmitAction{})
//	if movies.IsValidationError(err) {
//	    // show "Fill out form", state is unchanged
//	}
//
// # Form Modes
//
// The form is either Idle (the primary button adds a record) or Editing a
// record (the primary button saves it). Records are addressed by position in
// the UI, but the edit target is tracked by the record's ID so that deleting
// other records never redirects a save to the wrong row. Deleting the record
// being edited returns the form to Idle.
//
// A save leaves the draft on screen while an add resets it to blank title and
// rating with the current year. Clear resets the draft but keeps the edit
// target.
//
// # Thread Safety
//
// State is a value. Apply never mutates its receiver, so a State may be read
// from any goroutine; callers that share one must serialize replacement.
package movies
