package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui/keymap"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui/messages"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui/styles"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui/views/form"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the active keybindings.
	keys *keymap.KeyMap

	// formView is the metadata form and preview.
	formView *form.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		formView:    form.NewView(s, ports.Stamp, ports.Sheet, ports.Settings),
		currentView: messages.ViewForm,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("qrstamp"),
		a.formView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.formView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		keyStr := msg.String()

		// Global quit with ctrl+c.
		if keymap.Matches(keyStr, a.keys.Quit) {
			return a, tea.Quit
		}

		if keymap.Matches(keyStr, a.keys.Help) {
			if a.currentView == messages.ViewHelp {
				a.currentView = messages.ViewForm
			} else {
				a.currentView = messages.ViewHelp
			}
			return a, nil
		}

		if a.currentView == messages.ViewHelp {
			// Esc from help goes back to the form.
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewForm
			}
			return a, nil
		}

		a.formView, cmd = a.formView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.MetadataExtracted, messages.PreviewReady, messages.StampPlaced, messages.FileSaved:
		a.formView, cmd = a.formView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.currentView {
	case messages.ViewHelp:
		body = a.helpView()
	default:
		body = a.formView.View()
	}

	return body + "\n\n" + a.statusLine()
}

// helpView renders the full keybinding reference.
func (a *App) helpView() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Keybindings"))
	b.WriteString("\n\n")

	for _, group := range a.keys.FullHelp() {
		for _, binding := range group {
			help := binding.Help()
			b.WriteString(fmt.Sprintf("  %-14s %s\n",
				a.styles.Subtitle.Render(help.Key),
				a.styles.Normal.Render(help.Desc)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// statusLine renders the short help footer.
func (a *App) statusLine() string {
	parts := make([]string, 0, 6)
	for _, binding := range a.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return a.styles.Help.Render(strings.Join(parts, " · "))
}

// CurrentView returns the active view type, for tests.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Form returns the form view, for tests.
func (a *App) Form() *form.View {
	return a.formView
}
