package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField_StartsBlurred(t *testing.T) {
	f := NewField(nil, "Revision", "B")

	assert.Equal(t, "Revision", f.Label())
	assert.False(t, f.Focused())
	assert.Empty(t, f.Value())
}

func TestField_FocusAndBlur(t *testing.T) {
	f := NewField(nil, "Revision", "B")

	f.Focus()
	assert.True(t, f.Focused())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_TypingUpdatesValue(t *testing.T) {
	f := NewField(nil, "Revision", "B")
	f.Focus()

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("C")})

	assert.Equal(t, "C", f.Value())
}

func TestField_SetValueAndReset(t *testing.T) {
	f := NewField(nil, "Revision", "B")

	f.SetValue("D")
	require.Equal(t, "D", f.Value())

	f.Reset()
	assert.Empty(t, f.Value())
}

func TestField_ViewContainsLabel(t *testing.T) {
	f := NewField(nil, "Checked by", "JD")
	assert.Contains(t, f.View(), "Checked by")
}
