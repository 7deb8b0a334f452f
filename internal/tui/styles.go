package tui

import "github.com/charmbracelet/lipgloss"

// --- Styles ---
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63"))
	menuBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")) // Mauve
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))  // Green
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("197")) // Red
	faintStyle    = lipgloss.NewStyle().Faint(true)
	dialogStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 2)
)

type fontChoice struct {
	name  string
	style func(lipgloss.Style) lipgloss.Style
}

var fonts = []fontChoice{
	{name: "Regular", style: func(s lipgloss.Style) lipgloss.Style { return s }},
	{name: "Bold", style: func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) }},
	{name: "Italic", style: func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) }},
	{name: "Underline", style: func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) }},
	{name: "Faint", style: func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) }},
}

type colorChoice struct {
	name  string
	color lipgloss.TerminalColor
}

var palette = []colorChoice{
	{name: "Default", color: lipgloss.NoColor{}},
	{name: "Black", color: lipgloss.Color("0")},
	{name: "Red", color: lipgloss.Color("1")},
	{name: "Green", color: lipgloss.Color("2")},
	{name: "Yellow", color: lipgloss.Color("3")},
	{name: "Blue", color: lipgloss.Color("4")},
	{name: "Magenta", color: lipgloss.Color("5")},
	{name: "Cyan", color: lipgloss.Color("6")},
	{name: "White", color: lipgloss.Color("7")},
	{name: "Grey", color: lipgloss.Color("8")},
}

// textStyle combines the chosen font with the chosen colours.
func textStyle(font, background, foreground int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(palette[foreground].color).
		Background(palette[background].color)
	return fonts[font].style(s)
}
