// internal/ui/views/manual.go

package views

import (
	_ "embed"
	"os"
	"strings"

	"shawl/internal/ui"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

//go:embed manual.md
var defaultManual string

type manualView struct {
	model    *ui.Model
	viewport viewport.Model
	source   string
}

// NewManualView renders the brand manual, or the built-in one when the
// brand has none or its file cannot be read.
func NewManualView(model *ui.Model) *manualView {
	v := &manualView{
		model:  model,
		source: loadManual(model),
	}
	v.resize(model.GetTerminalWidth(), model.GetTerminalHeight())
	return v
}

func loadManual(model *ui.Model) string {
	path := model.Brand().ManualFile
	if path == "" {
		return defaultManual
	}
	data, err := os.ReadFile(path)
	if err != nil {
		model.Logger().Debug("failed to read manual", "path", path, "error", err)
		return defaultManual
	}
	return string(data)
}

func renderMarkdown(md string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		// Stały styl, WithAutoStyle potrafi blokować na zapytaniach terminala
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (v *manualView) resize(width, height int) {
	w := width - 4
	h := height - 6
	if h < 3 {
		h = 3
	}
	v.viewport = viewport.New(w, h)
	v.viewport.SetContent(renderMarkdown(v.source, w-4))
}

func (v *manualView) Init() tea.Cmd {
	return nil
}

func (v *manualView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.model.SetTerminalSize(msg.Width, msg.Height)
		v.resize(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		keys := v.model.Keys()
		switch {
		case key.Matches(msg, keys.Quit):
			v.model.Quit()
			return v, tea.Quit
		case key.Matches(msg, keys.Back), key.Matches(msg, keys.Manual), msg.String() == "q":
			v.model.SetActiveView(ui.ViewForm)
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *manualView) View() string {
	title := ui.TitleStyle.Render(v.model.Brand().AppName + " manual")
	footer := ui.DescriptionStyle.Render("↑/↓ scroll · esc close")
	return ui.WindowStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, v.viewport.View(), footer),
	)
}
