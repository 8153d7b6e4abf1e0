package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic aliases.
const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	statusBarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 2)
	listBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	searchBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFocus).Padding(0, 1)

	cursorStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Background(colorSurface0).Bold(true)
	nameStyle      = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	descStyle      = lipgloss.NewStyle().Foreground(colorSubtext0)
	tagStyle       = lipgloss.NewStyle().Foreground(colorMauve)
	urlStyle       = lipgloss.NewStyle().Foreground(colorSubtext0).Faint(true)
	hintStyle      = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)
	searchQStyle   = lipgloss.NewStyle().Foreground(colorText)
	searchCurStyle = lipgloss.NewStyle().Foreground(colorFocus)
	labelStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	focusLblStyle  = lipgloss.NewStyle().Foreground(colorFocus)
	dangerStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	okStyle        = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)

	// Footer help styling; the footer background is layered on at render time.
	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorText)
)
