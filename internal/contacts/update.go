package contacts

import (
	"fmt"

	"github.com/gopak/contactbook/internal/logging"
)

// UpdateState is a step of the field-editing loop run by Manager.Update.
type UpdateState int

const (
	SelectingField UpdateState = iota
	EditingName
	EditingPhone
	EditingEmail
	Done
)

func (s UpdateState) String() string {
	switch s {
	case SelectingField:
		return "selecting-field"
	case EditingName:
		return "editing-name"
	case EditingPhone:
		return "editing-phone"
	case EditingEmail:
		return "editing-email"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Menu choices accepted in SelectingField.
const (
	ChoiceName   = "1"
	ChoicePhone  = "2"
	ChoiceEmail  = "3"
	ChoiceFinish = "0"
)

// Editor supplies input to the update loop and receives its feedback.
type Editor interface {
	Choose() (string, error)
	Value(f Field) (string, error)
	Invalid(choice string)
	Rejected(f Field, err error)
	Changed(f Field, value string)
}

// NextState maps a menu choice to the state it leads to. Unknown choices keep
// the loop in SelectingField.
func NextState(choice string) (UpdateState, bool) {
	switch choice {
	case ChoiceName:
		return EditingName, true
	case ChoicePhone:
		return EditingPhone, true
	case ChoiceEmail:
		return EditingEmail, true
	case ChoiceFinish:
		return Done, true
	}
	return SelectingField, false
}

func (s UpdateState) field() Field {
	switch s {
	case EditingName:
		return FieldName
	case EditingPhone:
		return FieldPhone
	case EditingEmail:
		return FieldEmail
	}
	return 0
}

// runUpdate drives the loop on a copy of c until Done. An Editor error aborts
// the loop and the copy is discarded.
func runUpdate(c Contact, ed Editor) (Contact, error) {
	work := c
	state := SelectingField
	for state != Done {
		logging.Debug("update: " + state.String())
		switch state {
		case SelectingField:
			choice, err := ed.Choose()
			if err != nil {
				return Contact{}, err
			}
			next, ok := NextState(choice)
			if !ok {
				ed.Invalid(choice)
			}
			state = next
		case EditingName, EditingPhone, EditingEmail:
			f := state.field()
			v, err := ed.Value(f)
			if err != nil {
				return Contact{}, err
			}
			if err := ValidateField(f, v); err != nil {
				ed.Rejected(f, err)
			} else {
				work.Set(f, v)
				ed.Changed(f, v)
			}
			state = SelectingField
		}
	}
	return work, nil
}

// ScriptedEditor replays fixed field values and then finishes. It backs
// non-interactive updates.
type ScriptedEditor struct {
	Values  map[Field]string
	pending []Field
	started bool
	Errs    []error
}

func NewScriptedEditor(values map[Field]string) *ScriptedEditor {
	return &ScriptedEditor{Values: values}
}

func (e *ScriptedEditor) Choose() (string, error) {
	if !e.started {
		e.started = true
		for _, f := range []Field{FieldName, FieldPhone, FieldEmail} {
			if _, ok := e.Values[f]; ok {
				e.pending = append(e.pending, f)
			}
		}
	}
	if len(e.pending) == 0 {
		return ChoiceFinish, nil
	}
	f := e.pending[0]
	e.pending = e.pending[1:]
	return fmt.Sprint(int(f)), nil
}

func (e *ScriptedEditor) Value(f Field) (string, error) { return e.Values[f], nil }

func (e *ScriptedEditor) Invalid(choice string) {
	e.Errs = append(e.Errs, fmt.Errorf("invalid choice %q", choice))
}

func (e *ScriptedEditor) Rejected(_ Field, err error) { e.Errs = append(e.Errs, err) }

func (e *ScriptedEditor) Changed(Field, string) {}

// Err reports the first rejected value, if any.
func (e *ScriptedEditor) Err() error {
	if len(e.Errs) == 0 {
		return nil
	}
	return e.Errs[0]
}
