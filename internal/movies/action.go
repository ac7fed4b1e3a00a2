package movies

import "fmt"

// Action is a user intent applied to a State.
type Action interface {
	// Name identifies the action in logs.
	Name() string
}

// SetFieldAction carries one keystroke's worth of change to a form field.
type SetFieldAction struct {
	Field Field
	Value string
}

// SubmitAction is the Add/Save button.
type SubmitAction struct{}

// ClearAction is the Clear button.
type ClearAction struct{}

// DeleteAction is a row's Delete button.
type DeleteAction struct {
	Index int
}

// BeginEditAction is a row's Edit button.
type BeginEditAction struct {
	Index int
}

func (SetFieldAction) Name() string  { return "set_field" }
func (SubmitAction) Name() string    { return "submit" }
func (ClearAction) Name() string     { return "clear" }
func (DeleteAction) Name() string    { return "delete" }
func (BeginEditAction) Name() string { return "begin_edit" }

// Apply runs an action and returns the resulting state. On error the
// returned state equals the receiver.
func (s State) Apply(a Action) (State, error) {
	switch a := a.(type) {
	case SetFieldAction:
		return s.SetField(a.Field, a.Value)
	case SubmitAction:
		return s.Submit()
	case ClearAction:
		return s.Clear(), nil
	case DeleteAction:
		return s.Delete(a.Index)
	case BeginEditAction:
		return s.BeginEdit(a.Index)
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}
