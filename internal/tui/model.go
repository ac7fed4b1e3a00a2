package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/moviedb/internal/logging"
	"github.com/muurk/moviedb/internal/movies"
)

// Focus is the control that receives keyboard input.
type Focus int

const (
	FocusTitle Focus = iota
	FocusYear
	FocusRating
	FocusPrimary
	FocusClear
	FocusList

	focusCount
)

// inputFocus maps the three input controls to their form fields.
var inputFocus = map[Focus]movies.Field{
	FocusTitle:  movies.FieldTitle,
	FocusYear:   movies.FieldYear,
	FocusRating: movies.FieldRating,
}

// Model is the Bubble Tea model for the movie list editor.
type Model struct {
	// Editor state; the only source of truth for records and the draft
	State movies.State

	// Input controls, in movies.Fields order
	Inputs []textinput.Model

	// Navigation
	Focus  Focus
	Cursor int // Selected row in the record list

	// Blocking notice for a rejected submit. While set, keys only dismiss it.
	Notice *movies.ValidationError

	// Status line
	Status      string
	StatusIsErr bool

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys keyMap
}

// New creates the editor model around an initial state.
func New(state movies.State) Model {
	inputs := make([]textinput.Model, len(movies.Fields))
	for i, f := range movies.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Width = InputWidth
		// Record values are free text of any length; a limit would make
		// SetValue truncate what the draft holds.
		in.CharLimit = 0
		switch f {
		case movies.FieldTitle:
			in.Placeholder = "Title"
		case movies.FieldYear:
			in.Placeholder = "Year"
		case movies.FieldRating:
			in.Placeholder = "Rating"
		}
		inputs[i] = in
	}

	m := Model{
		State:  state,
		Inputs: inputs,
		Focus:  FocusTitle,
		Help:   help.New(),
		Keys:   newKeyMap(),
	}
	m.syncInputs()
	m.Inputs[0].Focus()
	return m
}

// Init initializes the editor
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.Notice != nil {
			// Any key acknowledges the notice
			m.Notice = nil
			return m, nil
		}
		return m.handleKey(msg)
	}

	// Non-key messages (cursor blink) go to the focused input
	if i, ok := m.focusedInput(); ok {
		var cmd tea.Cmd
		m.Inputs[i], cmd = m.Inputs[i].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key press by focus
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Next):
		return m.setFocus((m.Focus + 1) % focusCount)
	case key.Matches(msg, m.Keys.Prev):
		return m.setFocus((m.Focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.Keys.Submit):
		return m.dispatch(movies.SubmitAction{})
	case key.Matches(msg, m.Keys.Clear):
		return m.dispatch(movies.ClearAction{})
	}

	switch m.Focus {
	case FocusTitle, FocusYear, FocusRating:
		return m.updateInput(msg)
	case FocusPrimary:
		if key.Matches(msg, m.Keys.Press) {
			return m.dispatch(movies.SubmitAction{})
		}
	case FocusClear:
		if key.Matches(msg, m.Keys.Press) {
			return m.dispatch(movies.ClearAction{})
		}
	case FocusList:
		return m.updateList(msg)
	}

	if key.Matches(msg, m.Keys.Help) {
		m.Help.ShowAll = !m.Help.ShowAll
	}
	return m, nil
}

// updateInput passes a key to the focused input and mirrors the new value
// into the draft.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.setFocus(m.Focus + 1)
	}

	i, _ := m.focusedInput()
	before := m.Inputs[i].Value()

	var cmd tea.Cmd
	m.Inputs[i], cmd = m.Inputs[i].Update(msg)

	if value := m.Inputs[i].Value(); value != before {
		updated, actionCmd := m.dispatch(movies.SetFieldAction{Field: inputFocus[m.Focus], Value: value})
		return updated, tea.Batch(cmd, actionCmd)
	}
	return m, cmd
}

// updateList handles keys while the record list has focus
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < m.State.Len()-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Edit):
		if m.State.Len() > 0 {
			return m.dispatch(movies.BeginEditAction{Index: m.Cursor})
		}
	case key.Matches(msg, m.Keys.Delete):
		if m.State.Len() > 0 {
			return m.dispatch(movies.DeleteAction{Index: m.Cursor})
		}
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// dispatch applies an action to the editor state and updates the controls
// to match the result.
func (m Model) dispatch(a movies.Action) (Model, tea.Cmd) {
	before := m.State
	next, err := m.State.Apply(a)
	if err != nil {
		logging.LogRejected(a.Name(), err)
		var vErr *movies.ValidationError
		if errors.As(err, &vErr) {
			m.Notice = vErr
		} else {
			m.Status = err.Error()
			m.StatusIsErr = true
		}
		return m, nil
	}

	m.State = next
	m.StatusIsErr = false
	logging.LogAction(a.Name(), next.Len(), next.Mode().String(), actionFields(a)...)

	switch a := a.(type) {
	case movies.SetFieldAction:
		// The input already shows the value
		return m, nil

	case movies.SubmitAction:
		if before.Editing() {
			i, _ := before.EditIndex()
			m.Status = fmt.Sprintf("Saved %q", next.Movies()[i].Title)
		} else {
			m.Status = fmt.Sprintf("Added %q", before.Draft().Title)
		}

	case movies.ClearAction:
		m.Status = "Form cleared"

	case movies.DeleteAction:
		removed, _ := before.Store().At(a.Index)
		m.Status = fmt.Sprintf("Deleted %q", removed.Title)
		if m.Cursor >= next.Len() && m.Cursor > 0 {
			m.Cursor = next.Len() - 1
		}

	case movies.BeginEditAction:
		m.Status = fmt.Sprintf("Editing %q", next.Draft().Title)
		m.syncInputs()
		return m.setFocus(FocusTitle)
	}

	m.syncInputs()
	return m, nil
}

// setFocus moves keyboard focus, focusing or blurring inputs as needed
func (m Model) setFocus(f Focus) (Model, tea.Cmd) {
	m.Focus = f
	var cmd tea.Cmd
	for i := range m.Inputs {
		if Focus(i) == f {
			cmd = m.Inputs[i].Focus()
		} else {
			m.Inputs[i].Blur()
		}
	}
	return m, cmd
}

// syncInputs copies the draft into the input controls
func (m *Model) syncInputs() {
	d := m.State.Draft()
	for i, f := range movies.Fields {
		if m.Inputs[i].Value() != d.Get(f) {
			m.Inputs[i].SetValue(d.Get(f))
			m.Inputs[i].CursorEnd()
		}
	}
}

// focusedInput returns the index of the focused input control
func (m Model) focusedInput() (int, bool) {
	if _, ok := inputFocus[m.Focus]; ok {
		return int(m.Focus), true
	}
	return -1, false
}

// PrimaryLabel returns the label of the Add/Save button
func (m Model) PrimaryLabel() string {
	return m.State.PrimaryLabel()
}

func actionFields(a movies.Action) []zap.Field {
	switch a := a.(type) {
	case movies.SetFieldAction:
		return []zap.Field{zap.String("field", string(a.Field))}
	case movies.DeleteAction:
		return []zap.Field{zap.Int("index", a.Index)}
	case movies.BeginEditAction:
		return []zap.Field{zap.Int("index", a.Index)}
	}
	return nil
}
