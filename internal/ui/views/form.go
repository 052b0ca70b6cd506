// internal/ui/views/form.go

package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shawl/internal/dispatch"
	"shawl/internal/formstate"
	"shawl/internal/models"
	"shawl/internal/ui"
	"shawl/internal/ui/components"
	"shawl/internal/ui/messages"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formView struct {
	model    *ui.Model
	inputs   []textinput.Model // kolejność jak models.FieldKeys
	focus    int               // pola, potem przyciski
	sync     *formstate.Synchronizer
	inFlight int
	popup    *components.Popup
}

// NewFormView builds the credentials form, fills it from storage and
// restores the highlighted button.
func NewFormView(model *ui.Model) *formView {
	brand := model.Brand()
	v := &formView{
		model:  model,
		inputs: make([]textinput.Model, len(models.FieldKeys)),
	}

	for i, k := range models.FieldKeys {
		t := textinput.New()
		t.CharLimit = 0
		t.Prompt = ""
		t.Placeholder = brand.Label(k)
		t.TextStyle = ui.InputStyle
		if k == models.KeyPassword {
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}
		if k == models.KeyHostname {
			t.SetValue(brand.HostnameValue)
		}
		v.inputs[i] = t
	}
	v.inputs[0].Focus()

	v.sync = formstate.NewSynchronizer(model.Store(), v, model.Highlighter(), model.Logger())
	v.sync.Load()

	return v
}

// Values implementuje formstate.Form
func (v *formView) Values() models.Fields {
	var f models.Fields
	for i, k := range models.FieldKeys {
		f.Set(k, v.inputs[i].Value())
	}
	return f
}

// SetValues implementuje formstate.Form
func (v *formView) SetValues(f models.Fields) {
	for i, k := range models.FieldKeys {
		v.inputs[i].SetValue(f.Get(k))
	}
}

func (v *formView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.model.SetTerminalSize(msg.Width, msg.Height)
		return v, nil

	case messages.DispatchResultMsg:
		v.handleResult(msg.Result)
		return v, nil

	case tea.KeyMsg:
		cmd := v.handleKey(msg)
		// Każde naciśnięcie klawisza zapisuje formularz
		v.sync.Save()
		return v, cmd
	}

	return v, v.updateFocusedInput(msg)
}

func (v *formView) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := v.model.Keys()

	if v.popup != nil {
		switch msg.String() {
		case "esc", "enter":
			v.popup = nil
		case "ctrl+c":
			v.model.Quit()
			return tea.Quit
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		v.model.Quit()
		return tea.Quit

	case key.Matches(msg, keys.Next):
		return v.setFocus(v.focus + 1)

	case key.Matches(msg, keys.Prev):
		return v.setFocus(v.focus - 1)

	case key.Matches(msg, keys.Press):
		if a, ok := v.focusedAction(); ok {
			return v.press(a)
		}
		return v.setFocus(v.focus + 1)

	case key.Matches(msg, keys.Manual):
		v.model.SetActiveView(ui.ViewManual)
		return nil

	case key.Matches(msg, keys.Help):
		v.popup = components.NewPopup(components.PopupHelp, "Keys", v.helpText(),
			48, v.model.GetTerminalWidth(), v.model.GetTerminalHeight())
		return nil

	case key.Matches(msg, keys.CancelAll):
		if d := v.model.Dispatcher(); d != nil {
			d.CancelAll()
		}
		v.model.SetStatus("Cancelled in-flight requests", false)
		return nil

	case key.Matches(msg, keys.Theme):
		ui.SwitchTheme()
		v.model.SetStatus("Theme: "+ui.CurrentTheme().Name, false)
		return nil
	}

	for i, a := range v.model.Actions() {
		if msg.String() == ui.ShortcutKey(i) {
			return v.press(a)
		}
	}

	return v.updateFocusedInput(msg)
}

// press zapisuje formularz, podświetla przycisk i wysyła żądanie
func (v *formView) press(a models.Action) tea.Cmd {
	v.sync.Save()
	v.model.Highlighter().Highlight(string(a))

	d := v.model.Dispatcher()
	if d == nil {
		v.model.SetStatus("No control panel configured", true)
		return nil
	}

	task := d.Dispatch(context.Background(), a, v.Values())
	v.inFlight++
	v.model.SetStatus(fmt.Sprintf("%s: sent", v.model.Brand().ButtonText(a)), false)
	return waitForTask(task)
}

func waitForTask(task *dispatch.Task) tea.Cmd {
	return func() tea.Msg {
		<-task.Done()
		return messages.DispatchResultMsg{Result: task.Result()}
	}
}

func (v *formView) handleResult(r dispatch.Result) {
	if v.inFlight > 0 {
		v.inFlight--
	}
	text := v.model.Brand().ButtonText(r.Action)
	if r.Err != nil {
		v.model.SetStatus(fmt.Sprintf("%s failed: %v", text, r.Err), true)
		return
	}
	v.model.SetStatus(fmt.Sprintf("%s: %d (%s)", text, r.StatusCode, r.Duration.Round(time.Millisecond)), false)
}

func (v *formView) focusedAction() (models.Action, bool) {
	i := v.focus - len(v.inputs)
	actions := v.model.Actions()
	if i < 0 || i >= len(actions) {
		return "", false
	}
	return actions[i], true
}

func (v *formView) setFocus(i int) tea.Cmd {
	total := len(v.inputs) + len(v.model.Actions())
	v.focus = (i%total + total) % total

	var cmd tea.Cmd
	for j := range v.inputs {
		if j == v.focus {
			cmd = v.inputs[j].Focus()
		} else {
			v.inputs[j].Blur()
		}
	}
	return cmd
}

func (v *formView) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if v.focus >= len(v.inputs) {
		return nil
	}
	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return cmd
}

func (v *formView) helpText() string {
	keys := v.model.Keys()
	lines := []string{}
	for _, b := range []key.Binding{keys.Next, keys.Prev, keys.Press, keys.Manual, keys.CancelAll, keys.Theme, keys.Quit} {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-10s %s", h.Key, h.Desc))
	}
	for i, a := range v.model.Actions() {
		lines = append(lines, fmt.Sprintf("%-10s %s", ui.ShortcutKey(i), v.model.Brand().ButtonText(a)))
	}
	return strings.Join(lines, "\n")
}

func (v *formView) View() string {
	if v.popup != nil {
		return v.popup.Render()
	}

	brand := v.model.Brand()
	width := v.model.GetTerminalWidth()
	height := v.model.GetTerminalHeight()
	layout := ui.NewBaseLayout(width, height)

	header := layout.Header().Render(ui.TitleStyle.Render(brand.PageTitle))

	labels := make([]string, len(models.FieldKeys))
	for i, k := range models.FieldKeys {
		labels[i] = brand.Label(k)
	}
	labelWidth := ui.GetMaxWidth(labels) + 2

	var content strings.Builder
	for i := range v.inputs {
		style := ui.LabelStyle
		if i == v.focus {
			style = ui.FocusedLabelStyle
		}
		content.WriteString(style.Width(labelWidth).Render(labels[i]))
		content.WriteString(v.inputs[i].View() + "\n")
	}
	content.WriteString("\n" + v.renderButtons() + "\n")

	status := v.model.GetStatus()
	statusLine := ui.DescriptionStyle.Render("f1 manual · f2 keys · ctrl+c quit")
	if status.Message != "" {
		if status.IsError {
			statusLine = ui.ErrorStyle.Render(status.Message)
		} else {
			statusLine = ui.SuccessStyle.Render(status.Message)
		}
	}
	if v.inFlight > 0 {
		statusLine += ui.StatusBarStyle.Render(fmt.Sprintf("[%d in flight]", v.inFlight))
	}
	footer := layout.Footer().Render(statusLine)

	return lipgloss.JoinVertical(lipgloss.Left, header, content.String(), footer)
}

func (v *formView) renderButtons() string {
	h := v.model.Highlighter()
	buttons := make([]string, 0, len(v.model.Actions()))
	for i, a := range v.model.Actions() {
		focused := v.focus == len(v.inputs)+i
		buttons = append(buttons, ui.RenderButton(v.model.Brand().ButtonText(a), focused, h.IsMarked(string(a)), v.model.Marker()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, buttons...)
}
