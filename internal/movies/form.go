package movies

import "time"

// Form is the staged record plus the ID of the record being edited, if any.
type Form struct {
	Draft  Draft
	target string
}

// NewForm creates an idle form with a blank draft.
func NewForm(now time.Time) Form {
	return Form{Draft: BlankDraft(now)}
}

// SetField replaces one field of the draft, keeping the others.
func (f Form) SetField(field Field, value string) (Form, error) {
	d, err := f.Draft.With(field, value)
	if err != nil {
		return f, err
	}
	f.Draft = d
	return f, nil
}

// Reset blanks the draft. The edit target is left alone.
func (f Form) Reset(now time.Time) Form {
	f.Draft = BlankDraft(now)
	return f
}

// BeginEdit stages a copy of m and targets it for the next save.
func (f Form) BeginEdit(m Movie) Form {
	f.Draft = m.Draft()
	f.target = m.ID
	return f
}

// ClearEditTarget returns the form to idle without touching the draft.
func (f Form) ClearEditTarget() Form {
	f.target = ""
	return f
}

// Editing reports whether a save would overwrite an existing record.
func (f Form) Editing() bool {
	return f.target != ""
}

// Target returns the ID of the record being edited.
func (f Form) Target() (string, bool) {
	return f.target, f.target != ""
}
