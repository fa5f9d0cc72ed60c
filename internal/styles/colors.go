package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors, danger
	Yellow  = "#FFD866" // Highlights, selection
	Green   = "#A9DC76" // Success, labels
	Magenta = "#FF6188" // Titles, emphasis

	// UI colors
	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, separators
)

// Common styles
var (
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(Border))
)
