package contacts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepEditor replays a fixed sequence of answers: choices and values are
// consumed from the same queue in the order the loop asks for them.
type stepEditor struct {
	answers  []string
	invalid  []string
	rejected []Field
	changed  []Field
}

func (e *stepEditor) next() (string, error) {
	if len(e.answers) == 0 {
		return "", errors.New("input closed")
	}
	a := e.answers[0]
	e.answers = e.answers[1:]
	return a, nil
}

func (e *stepEditor) Choose() (string, error)     { return e.next() }
func (e *stepEditor) Value(Field) (string, error) { return e.next() }
func (e *stepEditor) Invalid(c string)            { e.invalid = append(e.invalid, c) }
func (e *stepEditor) Rejected(f Field, _ error)   { e.rejected = append(e.rejected, f) }
func (e *stepEditor) Changed(f Field, _ string)   { e.changed = append(e.changed, f) }

func TestNextState(t *testing.T) {
	cases := map[string]UpdateState{
		"1": EditingName,
		"2": EditingPhone,
		"3": EditingEmail,
		"0": Done,
	}
	for in, want := range cases {
		got, ok := NextState(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	got, ok := NextState("9")
	assert.False(t, ok)
	assert.Equal(t, SelectingField, got)
	assert.Equal(t, "editing-phone", EditingPhone.String())
}

func TestUpdate_ChangesSelectedFieldOnly(t *testing.T) {
	m, p := newManager(t, "Alice,1,a@x\nBob,2,b@x\n")
	ed := &stepEditor{answers: []string{"2", "555", "0"}}

	got, err := m.Update("alice", ed)
	require.NoError(t, err)
	assert.Equal(t, New("Alice", "555", "a@x"), got)
	assert.Equal(t, []Field{FieldPhone}, ed.changed)
	assert.Equal(t, []string{"Alice,555,a@x", "Bob,2,b@x"}, fileLines(t, p))
}

func TestUpdate_MultipleEditsAndInvalidChoice(t *testing.T) {
	m, p := newManager(t, "Alice,1,a@x\n")
	ed := &stepEditor{answers: []string{"7", "1", "Alicia", "3", "alicia@x", "0"}}

	got, err := m.Update("ALICE", ed)
	require.NoError(t, err)
	assert.Equal(t, New("Alicia", "1", "alicia@x"), got)
	assert.Equal(t, []string{"7"}, ed.invalid)
	assert.Equal(t, []string{"Alicia,1,alicia@x"}, fileLines(t, p))
}

func TestUpdate_FirstMatchOnly(t *testing.T) {
	m, p := newManager(t, "Alice,1,a@x\nalice,2,b@x\n")
	_, err := m.Update("Alice", &stepEditor{answers: []string{"2", "9", "0"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice,9,a@x", "alice,2,b@x"}, fileLines(t, p))
}

func TestUpdate_RejectsDelimiterAndKeepsLooping(t *testing.T) {
	m, p := newManager(t, "Alice,1,a@x\n")
	ed := &stepEditor{answers: []string{"1", "Smith, Alice", "2", "5", "0"}}
	got, err := m.Update("Alice", ed)
	require.NoError(t, err)
	assert.Equal(t, []Field{FieldName}, ed.rejected)
	assert.Equal(t, New("Alice", "5", "a@x"), got)
	assert.Equal(t, []string{"Alice,5,a@x"}, fileLines(t, p))
}

func TestUpdate_AbsentName(t *testing.T) {
	content := "Alice,1,a@x\n"
	m, p := newManager(t, content)
	ed := &stepEditor{answers: []string{"1", "x", "0"}}
	_, err := m.Update("Zed", ed)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, ed.answers, 3, "editor must not be consulted")
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, content, string(b))
}

func TestUpdate_EditorErrorDiscardsChanges(t *testing.T) {
	content := "Alice,1,a@x\n"
	m, p := newManager(t, content)
	_, err := m.Update("Alice", &stepEditor{answers: []string{"1", "Alicia"}})
	assert.Error(t, err)

	cs, _ := m.List()
	assert.Equal(t, "Alice", cs[0].Name)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, content, string(b))
}

func TestUpdate_FinishWithoutChangesRewritesSameContent(t *testing.T) {
	m, p := newManager(t, "Alice,1,a@x\n")
	_, err := m.Update("alice", &stepEditor{answers: []string{"0"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice,1,a@x"}, fileLines(t, p))
}

func TestScriptedEditor(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.txt")
	m, err := Open(p)
	require.NoError(t, err)
	_, err = m.Add("Alice", "1", "a@x")
	require.NoError(t, err)

	ed := NewScriptedEditor(map[Field]string{FieldEmail: "new@x", FieldName: "Al"})
	got, err := m.Update("alice", ed)
	require.NoError(t, err)
	require.NoError(t, ed.Err())
	assert.Equal(t, New("Al", "1", "new@x"), got)
}

func TestScriptedEditor_ReportsRejected(t *testing.T) {
	m, _ := newManager(t, "Alice,1,a@x\n")
	ed := NewScriptedEditor(map[Field]string{FieldPhone: "1,2"})
	got, err := m.Update("Alice", ed)
	require.NoError(t, err)
	assert.ErrorIs(t, ed.Err(), ErrInvalidField)
	assert.Equal(t, "1", got.Phone)
}
