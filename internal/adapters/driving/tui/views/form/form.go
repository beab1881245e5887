// Package form provides the metadata form view: five metadata fields, an
// inline QR preview, and the autofill/preview/stamp/save actions.
package form

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui/components/input"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui/keymap"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui/messages"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui/styles"
	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driving"
)

// Field indices, in schema order.
const (
	fieldName = iota
	fieldSheetName
	fieldRevision
	fieldDate
	fieldCheckedBy
	fieldCount
)

// View is the metadata form view.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	stamp    driving.StampService
	sheet    driving.SheetService
	settings driving.SettingsService

	fields [fieldCount]*input.Field
	focus  int

	// sheetInfo describes the active sheet after an autofill or stamp.
	sheetInfo string

	// preview holds the block rendering of the QR code, if requested.
	preview string

	status string
	err    error

	width  int
	height int
}

// NewView creates the form view with focus on the first field.
func NewView(s *styles.Styles, stamp driving.StampService, sheet driving.SheetService, settings driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:   s,
		keys:     keymap.DefaultKeyMap(),
		stamp:    stamp,
		sheet:    sheet,
		settings: settings,
	}

	v.fields[fieldName] = input.NewField(s, "Number", "A-101")
	v.fields[fieldSheetName] = input.NewField(s, "Sheet name", "Ground Floor Plan")
	v.fields[fieldRevision] = input.NewField(s, "Revision", "B")
	v.fields[fieldDate] = input.NewField(s, "Date", "dd/MM/yy")
	v.fields[fieldCheckedBy] = input.NewField(s, "Checked by", "JD")
	v.fields[fieldName].Focus()

	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.fields[v.focus].Init()
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.MetadataExtracted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.setMetadata(msg.Meta)
		if msg.Sheet != nil {
			v.sheetInfo = fmt.Sprintf("%s (%s)", msg.Sheet.Name, msg.Sheet.ID)
		}
		v.status = "Filled from active sheet"
		return v, nil

	case messages.PreviewReady:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.preview = msg.Blocks
		v.status = "Preview updated"
		return v, nil

	case messages.StampPlaced:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.status = fmt.Sprintf("Placed stamp %s on sheet %s at (%.2f, %.2f) ft",
			msg.Result.Instance, msg.SheetID, msg.Result.Spec.Anchor.X, msg.Result.Spec.Anchor.Y)
		return v, nil

	case messages.FileSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.status = "Wrote " + msg.Path
		return v, nil
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.NextField):
		v.setFocus((v.focus + 1) % fieldCount)
		return v, nil

	case keymap.Matches(keyStr, v.keys.PrevField):
		v.setFocus((v.focus + fieldCount - 1) % fieldCount)
		return v, nil

	case keymap.Matches(keyStr, v.keys.Autofill):
		return v, v.autofillCmd()

	case keymap.Matches(keyStr, v.keys.Preview):
		return v, v.previewCmd()

	case keymap.Matches(keyStr, v.keys.Stamp):
		return v, v.stampCmd()

	case keymap.Matches(keyStr, v.keys.Save):
		return v, v.saveCmd()

	case keymap.Matches(keyStr, v.keys.Back):
		v.err = nil
		v.status = ""
		return v, nil
	}

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) setFocus(index int) {
	v.fields[v.focus].Blur()
	v.focus = index
	v.fields[v.focus].Focus()
}

// Metadata builds the metadata record from the current field values.
func (v *View) Metadata() domain.SheetMetadata {
	return domain.SheetMetadata{
		Name:      v.fields[fieldName].Value(),
		SheetName: v.fields[fieldSheetName].Value(),
		Revision:  v.fields[fieldRevision].Value(),
		Date:      v.fields[fieldDate].Value(),
		CheckedBy: v.fields[fieldCheckedBy].Value(),
	}
}

func (v *View) setMetadata(meta domain.SheetMetadata) {
	v.fields[fieldName].SetValue(meta.Name)
	v.fields[fieldSheetName].SetValue(meta.SheetName)
	v.fields[fieldRevision].SetValue(meta.Revision)
	v.fields[fieldDate].SetValue(meta.Date)
	v.fields[fieldCheckedBy].SetValue(meta.CheckedBy)
}

// autofillCmd reads metadata from the active sheet's attributes.
func (v *View) autofillCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sheet, err := v.sheet.Active(ctx)
		if err != nil {
			return messages.MetadataExtracted{Err: err}
		}
		meta, err := v.sheet.Extract(ctx, sheet.ID)
		return messages.MetadataExtracted{Sheet: sheet, Meta: meta, Err: err}
	}
}

// previewCmd renders the QR code as terminal blocks.
func (v *View) previewCmd() tea.Cmd {
	meta := v.Metadata()
	return func() tea.Msg {
		blocks, err := v.stamp.Preview(context.Background(), meta)
		return messages.PreviewReady{Blocks: blocks, Err: err}
	}
}

// stampCmd places the stamp on the active sheet under the configured
// policy.
func (v *View) stampCmd() tea.Cmd {
	meta := v.Metadata()
	return func() tea.Msg {
		ctx := context.Background()
		sheet, err := v.sheet.Active(ctx)
		if err != nil {
			return messages.StampPlaced{Err: err}
		}

		policy := domain.PolicyQuadrantOffset
		if v.settings != nil {
			if settings, err := v.settings.Get(); err == nil && settings != nil {
				policy = settings.Placement.Policy
			}
		}

		result, err := v.stamp.Stamp(ctx, meta, sheet.ID, policy)
		return messages.StampPlaced{SheetID: sheet.ID, Result: result, Err: err}
	}
}

// saveCmd writes the stamp PNG to the configured output directory.
func (v *View) saveCmd() tea.Cmd {
	meta := v.Metadata()
	return func() tea.Msg {
		path := meta.Name + ".png"
		if v.settings != nil {
			if settings, err := v.settings.Get(); err == nil && settings != nil && settings.Output.Dir != "" {
				path = filepath.Join(settings.Output.Dir, path)
			}
		}

		if err := v.stamp.SaveTo(context.Background(), meta, path); err != nil {
			return messages.FileSaved{Err: err}
		}
		return messages.FileSaved{Path: path}
	}
}

// View renders the form.
func (v *View) View() string {
	title := v.styles.Title.Render("QR Stamp")

	header := title
	if v.sheetInfo != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Center,
			title, v.styles.Muted.Render("  active sheet: "+v.sheetInfo))
	}

	rows := make([]string, 0, fieldCount+4)
	rows = append(rows, header, "")
	for _, field := range v.fields {
		rows = append(rows, field.View())
	}

	if v.preview != "" {
		rows = append(rows, "", v.styles.Preview.Render(v.preview))
	}

	switch {
	case v.err != nil:
		rows = append(rows, "", v.styles.Error.Render("Error: "+v.err.Error()))
	case v.status != "":
		rows = append(rows, "", v.styles.Success.Render(v.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetDimensions updates the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Reset clears the form back to its initial state.
func (v *View) Reset() {
	for _, field := range v.fields {
		field.Reset()
	}
	v.setFocus(fieldName)
	v.sheetInfo = ""
	v.preview = ""
	v.status = ""
	v.err = nil
}

// Err returns the last error, for tests and the app status bar.
func (v *View) Err() error {
	return v.err
}

// Status returns the last status line.
func (v *View) Status() string {
	return v.status
}

// Preview returns the current block rendering, if any.
func (v *View) Preview() string {
	return v.preview
}

// FocusedField returns the index of the focused field.
func (v *View) FocusedField() int {
	return v.focus
}
