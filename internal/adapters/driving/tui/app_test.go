package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui/messages"
	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(validPorts())
	require.NoError(t, err)
	return app
}

func TestNewApp_RequiresPorts(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingStampService)
}

func TestNewApp_StartsOnForm(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, messages.ViewForm, app.CurrentView())
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)
	assert.NotNil(t, app.Init())
}

func TestApp_QuitOnCtrlC(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_WindowSizeForwarded(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Same(t, app, model)
	assert.True(t, app.ready)
}

func TestApp_HelpToggles(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	assert.Equal(t, messages.ViewForm, app.CurrentView())
}

func TestApp_EscLeavesHelp(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	require.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewForm, app.CurrentView())
}

func TestApp_ForwardsMetadataExtracted(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.MetadataExtracted{
		Meta: domain.SheetMetadata{Name: "A-101", Revision: "B"},
	})

	meta := app.Form().Metadata()
	assert.Equal(t, "A-101", meta.Name)
	assert.Equal(t, "B", meta.Revision)
}

func TestApp_ViewRendersForm(t *testing.T) {
	app := newTestApp(t)

	view := app.View()

	assert.Contains(t, view, "QR Stamp")
}

func TestApp_ViewRendersHelp(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	view := app.View()

	assert.Contains(t, view, "Keybindings")
}
