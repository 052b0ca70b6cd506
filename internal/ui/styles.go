// internal/ui/styles.go

package ui

import (
	"shawl/internal/formstate"

	"github.com/charmbracelet/lipgloss"
)

// Kolory i style są ustawiane przez updateStyles z aktywnego motywu
var (
	Subtle    lipgloss.Color
	Highlight lipgloss.Color
	Special   lipgloss.Color
	Error     lipgloss.Color
	StatusBar lipgloss.Color
	Border    lipgloss.Color
	Marker    lipgloss.Color
	Bright    lipgloss.Color

	BaseStyle          lipgloss.Style
	TitleStyle         lipgloss.Style
	DescriptionStyle   lipgloss.Style
	LabelStyle         lipgloss.Style
	FocusedLabelStyle  lipgloss.Style
	InputStyle         lipgloss.Style
	ButtonStyle        lipgloss.Style
	FocusedButtonStyle lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	WindowStyle        lipgloss.Style
	DialogStyle        lipgloss.Style
	StatusBarStyle     lipgloss.Style
)

// RenderButton renders an action button. A marked button gets a thick
// bottom border; with the border+filter marker its text is also brightened.
func RenderButton(text string, focused, marked bool, marker string) string {
	style := ButtonStyle
	if focused {
		style = FocusedButtonStyle
	}
	if marked {
		style = style.
			BorderStyle(lipgloss.ThickBorder()).
			BorderBottom(true).
			BorderForeground(Marker)
		if marker == formstate.MarkerBorderFilter {
			style = style.Foreground(Bright).Bold(true)
		}
	}
	return style.Render(text)
}

// GetMaxWidth zwraca maksymalną szerokość tekstu w slice'u
func GetMaxWidth(items []string) int {
	maxWidth := 0
	for _, item := range items {
		if w := lipgloss.Width(item); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

