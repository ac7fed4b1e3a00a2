package movies

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Mode is the form mode derived from the edit target.
type Mode int

const (
	ModeIdle Mode = iota
	ModeEditing
)

// String returns a human-readable name for the mode
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeEditing:
		return "editing"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Primary button labels
const (
	LabelAdd  = "Add"
	LabelSave = "Save"
)

// Option configures a State.
type Option func(*env)

// env holds the collaborators a State needs to run its operations.
type env struct {
	now       func() time.Time
	newID     func() string
	validator Validator
}

// WithClock sets the clock used for the default year of a blank draft.
func WithClock(now func() time.Time) Option {
	return func(e *env) { e.now = now }
}

// WithIDGenerator sets the function that assigns IDs to new records.
func WithIDGenerator(newID func() string) Option {
	return func(e *env) { e.newID = newID }
}

// WithValidator sets the submit validator. RequiredFields is the default.
func WithValidator(v Validator) Option {
	return func(e *env) { e.validator = v }
}

func defaultEnv() *env {
	return &env{
		now:       time.Now,
		newID:     uuid.NewString,
		validator: RequiredFields{},
	}
}

// State is the whole editor: the record store and the form.
type State struct {
	store Store
	form  Form
	env   *env
}

// New creates an idle State holding the given records. Records without an ID
// are assigned one. IDs must be unique for edits to resolve to the right
// record, so a record repeating an earlier ID gets a fresh one.
func New(records []Movie, opts ...Option) State {
	e := defaultEnv()
	for _, opt := range opts {
		opt(e)
	}

	seen := make(map[string]bool, len(records))
	seeded := make([]Movie, len(records))
	for i, m := range records {
		for m.ID == "" || seen[m.ID] {
			m.ID = e.newID()
		}
		seen[m.ID] = true
		seeded[i] = m
	}

	return State{
		store: NewStore(seeded),
		form:  NewForm(e.now()),
		env:   e,
	}
}

// environment returns the state's collaborators, falling back to the
// defaults for a zero State.
func (s State) environment() *env {
	if s.env == nil {
		return defaultEnv()
	}
	return s.env
}

// Store returns the record store.
func (s State) Store() Store { return s.store }

// Form returns the form state.
func (s State) Form() Form { return s.form }

// Movies returns the records in display order.
func (s State) Movies() []Movie { return s.store.Movies() }

// Len returns the number of records.
func (s State) Len() int { return s.store.Len() }

// Draft returns the staged record.
func (s State) Draft() Draft { return s.form.Draft }

// Mode reports whether the form is idle or editing.
func (s State) Mode() Mode {
	if s.form.Editing() {
		return ModeEditing
	}
	return ModeIdle
}

// Editing reports whether the form targets an existing record.
func (s State) Editing() bool { return s.form.Editing() }

// EditIndex returns the current position of the record being edited.
func (s State) EditIndex() (int, bool) {
	id, ok := s.form.Target()
	if !ok {
		return -1, false
	}
	i := s.store.IndexOf(id)
	return i, i >= 0
}

// PrimaryLabel returns "Save" while editing and "Add" otherwise.
func (s State) PrimaryLabel() string {
	if s.form.Editing() {
		return LabelSave
	}
	return LabelAdd
}

// SetField replaces one field of the draft.
func (s State) SetField(field Field, value string) (State, error) {
	f, err := s.form.SetField(field, value)
	if err != nil {
		return s, err
	}
	s.form = f
	return s, nil
}

// Submit adds the draft as a new record, or saves it over the record being
// edited. A rejected draft leaves the state unchanged and returns a
// *ValidationError.
//
// Adding resets the draft. Saving keeps the draft as it is and only ends the
// edit.
func (s State) Submit() (State, error) {
	if err := s.environment().validator.Validate(s.form.Draft); err != nil {
		return s, err
	}

	if id, ok := s.form.Target(); ok {
		i := s.store.IndexOf(id)
		if i < 0 {
			return s, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		store, err := s.store.ReplaceAt(i, s.form.Draft.Movie(id))
		if err != nil {
			return s, err
		}
		s.store = store
		s.form = s.form.ClearEditTarget()
		return s, nil
	}

	s.store = s.store.Append(s.form.Draft.Movie(s.environment().newID()))
	s.form = s.form.Reset(s.environment().now())
	return s, nil
}

// Clear blanks the draft. An edit in progress stays targeted.
func (s State) Clear() State {
	s.form = s.form.Reset(s.environment().now())
	return s
}

// Delete removes the record at position i. Deleting the record being edited
// ends the edit; the draft is kept.
func (s State) Delete(i int) (State, error) {
	m, err := s.store.At(i)
	if err != nil {
		return s, err
	}
	store, err := s.store.RemoveAt(i)
	if err != nil {
		return s, err
	}
	s.store = store
	if id, ok := s.form.Target(); ok && id == m.ID {
		s.form = s.form.ClearEditTarget()
	}
	return s, nil
}

// BeginEdit stages the record at position i in the form. Any unsaved edit of
// another record is discarded.
func (s State) BeginEdit(i int) (State, error) {
	m, err := s.store.At(i)
	if err != nil {
		return s, err
	}
	s.form = s.form.BeginEdit(m)
	return s, nil
}
