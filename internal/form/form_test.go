package form

import (
	"testing"

	"github.com/marcomarassi/note-keeper-service/pkg/code"

	"github.com/stretchr/testify/assert"
)

func TestNewFormIsIdle(t *testing.T) {
	f := New()

	assert.Equal(t, StateIdle, f.State())
	assert.False(t, f.IsEditing())
	assert.Equal(t, int64(0), f.EditID())
	assert.Empty(t, f.ImageName())
}

func TestBeginEditAndCancel(t *testing.T) {
	f := New()
	f.SelectImage("foto.png")

	f.BeginEdit(42)
	assert.True(t, f.IsEditing())
	assert.Equal(t, int64(42), f.EditID())
	// Switching target discards the pending image pick.
	assert.Empty(t, f.ImageName())

	f.Cancel()
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, int64(0), f.EditID())
}

func TestValidate(t *testing.T) {
	f := New()

	title, text, err := f.Validate("titolo", "testo")
	assert.NoError(t, err)
	assert.Equal(t, "titolo", title)
	assert.Equal(t, "testo", text)

	tests := []struct {
		name  string
		title string
		text  string
	}{
		{"empty title", "", "testo"},
		{"empty text", "titolo", ""},
		{"both empty", "", ""},
		{"whitespace title", "   ", "testo"},
		{"whitespace text", "titolo", "\t\n"},
		{"whitespace both", "  ", " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.Validate(tt.title, tt.text)
			assert.ErrorIs(t, err, code.ErrorNoteValidation)
		})
	}
}

func TestValidateTrims(t *testing.T) {
	f := New()

	title, text, err := f.Validate("  Lista della Spesa ", "\tpane e latte\n")
	assert.NoError(t, err)
	assert.Equal(t, "Lista della Spesa", title)
	assert.Equal(t, "pane e latte", text)
}

func TestValidateFailureKeepsState(t *testing.T) {
	f := New()
	f.BeginEdit(7)
	f.SelectImage("x.png")

	_, _, err := f.Validate("", "")
	assert.ErrorIs(t, err, code.ErrorNoteValidation)

	assert.True(t, f.IsEditing())
	assert.Equal(t, int64(7), f.EditID())
	assert.Equal(t, "x.png", f.ImageName())
}

func TestCompleteResetsToIdle(t *testing.T) {
	f := New()
	f.BeginEdit(9)
	f.SelectImage("y.jpg")

	f.Complete()

	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, int64(0), f.EditID())
	assert.Empty(t, f.ImageName())
}

func TestEditIDOnlyWhileEditing(t *testing.T) {
	f := New()
	f.BeginEdit(5)
	f.Cancel()

	assert.Equal(t, int64(0), f.EditID())
}
