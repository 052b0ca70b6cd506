// internal/ui/themes.go

package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name string

	// Podstawowe kolory
	Subtle    lipgloss.Color
	Highlight lipgloss.Color
	Special   lipgloss.Color
	Error     lipgloss.Color
	StatusBar lipgloss.Color
	Border    lipgloss.Color

	// Formularz i przyciski
	LabelColor  lipgloss.Color
	InputColor  lipgloss.Color
	ButtonColor lipgloss.Color
	MarkerColor lipgloss.Color
	BrightColor lipgloss.Color
}

var (
	currentThemeIndex = 0

	themes = []Theme{
		{
			// Domyślny motyw
			Name:      "default",
			Subtle:    lipgloss.Color("#6C7086"),
			Highlight: lipgloss.Color("#7DC4E4"),
			Special:   lipgloss.Color("#FF9E64"),
			Error:     lipgloss.Color("#F38BA8"),
			StatusBar: lipgloss.Color("#E7E7E7"),
			Border:    lipgloss.Color("#33B2FF"),

			LabelColor:  lipgloss.Color("#A6ADC8"),
			InputColor:  lipgloss.Color("#FFFFFF"),
			ButtonColor: lipgloss.Color("#CDD6F4"),
			MarkerColor: lipgloss.Color("#000000"),
			BrightColor: lipgloss.Color("#FFFFFF"),
		},
		{
			// Dracula Classic
			Name:      "dracula",
			Subtle:    lipgloss.Color("#6272A4"),
			Highlight: lipgloss.Color("#BD93F9"),
			Special:   lipgloss.Color("#50FA7B"),
			Error:     lipgloss.Color("#FF5555"),
			StatusBar: lipgloss.Color("#F8F8F2"),
			Border:    lipgloss.Color("#FF79C6"),

			LabelColor:  lipgloss.Color("#8BE9FD"),
			InputColor:  lipgloss.Color("#F8F8F2"),
			ButtonColor: lipgloss.Color("#F8F8F2"),
			MarkerColor: lipgloss.Color("#282A36"),
			BrightColor: lipgloss.Color("#F1FA8C"),
		},
		{
			// VS Code Dark
			Name:      "vscode-dark",
			Subtle:    lipgloss.Color("#858585"),
			Highlight: lipgloss.Color("#569CD6"),
			Special:   lipgloss.Color("#CE9178"),
			Error:     lipgloss.Color("#F44747"),
			StatusBar: lipgloss.Color("#D4D4D4"),
			Border:    lipgloss.Color("#007ACC"),

			LabelColor:  lipgloss.Color("#9CDCFE"),
			InputColor:  lipgloss.Color("#D4D4D4"),
			ButtonColor: lipgloss.Color("#D4D4D4"),
			MarkerColor: lipgloss.Color("#1E1E1E"),
			BrightColor: lipgloss.Color("#FFFFFF"),
		},
	}
)

func init() {
	updateStyles(themes[currentThemeIndex])
}

// SwitchTheme przełącza na kolejny motyw
func SwitchTheme() {
	currentThemeIndex = (currentThemeIndex + 1) % len(themes)
	updateStyles(themes[currentThemeIndex])
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return themes[currentThemeIndex]
}

func updateStyles(theme Theme) {
	// Aktualizacja kolorów
	Subtle = theme.Subtle
	Highlight = theme.Highlight
	Special = theme.Special
	Error = theme.Error
	StatusBar = theme.StatusBar
	Border = theme.Border
	Marker = theme.MarkerColor
	Bright = theme.BrightColor

	BaseStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Subtle)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Highlight).
		MarginLeft(2)

	DescriptionStyle = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		MarginLeft(2)

	LabelStyle = lipgloss.NewStyle().
		Foreground(theme.LabelColor)

	FocusedLabelStyle = lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)

	InputStyle = lipgloss.NewStyle().
		Foreground(theme.InputColor)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(theme.ButtonColor).
		Padding(0, 2).
		MarginRight(1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Subtle)

	FocusedButtonStyle = ButtonStyle.
		Foreground(theme.Highlight).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(theme.Special).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true)

	WindowStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2)

	DialogStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(theme.StatusBar).
		Padding(0, 1)
}
