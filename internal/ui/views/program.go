// internal/ui/views/program.go

package views

import (
	"shawl/internal/ui"
	"shawl/internal/ui/messages"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramModel przełącza widoki i trzyma formularz przez cały czas działania
type ProgramModel struct {
	uiModel     *ui.Model
	form        *formView
	currentView tea.Model
}

func NewProgramModel(uiModel *ui.Model) *ProgramModel {
	form := NewFormView(uiModel)
	return &ProgramModel{
		uiModel:     uiModel,
		form:        form,
		currentView: form,
	}
}

func (m *ProgramModel) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m *ProgramModel) updateCurrentView() {
	switch m.uiModel.GetActiveView() {
	case ui.ViewManual:
		m.currentView = NewManualView(m.uiModel)
	default:
		// Formularz nie jest odtwarzany, Load wykonuje się raz
		m.currentView = m.form
		m.uiModel.SetActiveView(ui.ViewForm)
	}
}

func (m *ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.uiModel.IsQuitting() {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case messages.DispatchResultMsg:
		// Wyniki trafiają do formularza niezależnie od aktywnego widoku
		_, cmd := m.form.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.uiModel.SetTerminalSize(msg.Width, msg.Height)
	}

	currentActiveView := m.uiModel.GetActiveView()

	var cmd tea.Cmd
	m.currentView, cmd = m.currentView.Update(msg)

	if currentActiveView != m.uiModel.GetActiveView() {
		m.updateCurrentView()
	}

	// Formularz zapisuje się przy każdym klawiszu, także poza swoim widokiem
	if _, ok := msg.(tea.KeyMsg); ok && currentActiveView != ui.ViewForm {
		m.form.sync.Save()
	}

	return m, cmd
}

func (m *ProgramModel) View() string {
	if m.uiModel.IsQuitting() {
		return "Goodbye!\n"
	}
	return m.currentView.View()
}
