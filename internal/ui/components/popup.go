// internal/ui/components/popup.go

package components

import (
	"strings"

	"shawl/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

type PopupType int

const (
	PopupNone PopupType = iota
	PopupMessage
	PopupHelp
	PopupError
)

type Popup struct {
	Type         PopupType
	Title        string
	Message      string
	Width        int
	ScreenWidth  int
	ScreenHeight int
}

func NewPopup(popupType PopupType, title, message string, width, screenWidth, screenHeight int) *Popup {
	return &Popup{
		Type:         popupType,
		Title:        title,
		Message:      message,
		Width:        width,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (p *Popup) Render() string {
	style := ui.DialogStyle.Width(p.Width)
	if p.Type == PopupError {
		style = style.BorderForeground(ui.Error)
	}

	titleStyle := ui.TitleStyle.
		MarginLeft(0).
		Align(lipgloss.Center).
		Width(p.Width - 4)

	var content strings.Builder
	content.WriteString(titleStyle.Render(p.Title) + "\n\n")
	content.WriteString(p.Message + "\n")
	content.WriteString("\n" + ui.DescriptionStyle.MarginLeft(0).Render("ESC/ENTER - Close"))

	popupContent := style.Render(content.String())

	if p.ScreenWidth <= 0 || p.ScreenHeight <= 0 {
		return popupContent
	}

	// Wyśrodkowanie popupu na ekranie
	return lipgloss.Place(
		p.ScreenWidth,
		p.ScreenHeight,
		lipgloss.Center,
		lipgloss.Center,
		popupContent,
	)
}
