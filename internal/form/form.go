// Package form models the note edit form as a small state machine.
// The zero value is an idle form ready for a new note.
package form

import (
	"strings"

	"github.com/marcomarassi/note-keeper-service/pkg/code"
)

type State int

const (
	// StateIdle means the form targets a new note.
	StateIdle State = iota
	// StateEditing means the form targets an existing note.
	StateEditing
)

// Form tracks what a submit should do: create a new note, or update
// the note selected with BeginEdit. A pending image selection rides
// along until submit or cancel.
type Form struct {
	state     State
	editID    int64
	imageName string
}

func New() *Form {
	return &Form{}
}

func (f *Form) State() State {
	return f.state
}

// EditID returns the target note id, 0 when creating.
func (f *Form) EditID() int64 {
	if f.state != StateEditing {
		return 0
	}
	return f.editID
}

func (f *Form) IsEditing() bool {
	return f.state == StateEditing
}

// ImageName returns the pending image selection, empty when none.
func (f *Form) ImageName() string {
	return f.imageName
}

// BeginCreate resets the form to target a new note.
func (f *Form) BeginCreate() {
	f.state = StateIdle
	f.editID = 0
	f.imageName = ""
}

// BeginEdit points the form at an existing note. Any pending image
// selection is discarded.
func (f *Form) BeginEdit(id int64) {
	f.state = StateEditing
	f.editID = id
	f.imageName = ""
}

// Cancel abandons the edit and returns to idle.
func (f *Form) Cancel() {
	f.BeginCreate()
}

// SelectImage records a pending image pick.
func (f *Form) SelectImage(name string) {
	f.imageName = name
}

// Validate trims title and text and enforces that both are present.
// The trimmed values are what gets stored. A failed submit leaves the
// form state untouched.
func (f *Form) Validate(title, text string) (string, string, error) {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)
	if title == "" || text == "" {
		return title, text, code.ErrorNoteValidation
	}
	return title, text, nil
}

// Complete acknowledges a successful submit: whatever the target was,
// the form returns to idle for the next note.
func (f *Form) Complete() {
	f.BeginCreate()
}
