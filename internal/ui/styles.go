package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/seastate/internal/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for extreme seas
	colorWarning = lipgloss.Color("#FFD93D") // Yellow for warnings
	colorSuccess = lipgloss.Color("#6BCF7F") // Green
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// Sea severity styles
	seaExtremeStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	seaSevereStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8C42")).
			Bold(true)

	seaModerateStyle = lipgloss.NewStyle().
				Foreground(colorWarning).
				Bold(true)

	seaMinorStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginTop(1)
)

// Heightmap shades from trough to crest
var depthColors = []lipgloss.Color{
	"#03045E", "#023E8A", "#0077B6", "#0096C7",
	"#00B4D8", "#48CAE4", "#90E0EF", "#CAF0F8",
}

// severityStyle picks the style for a sea severity
func severityStyle(s models.SeaSeverity) lipgloss.Style {
	switch s {
	case models.SeverityExtreme:
		return seaExtremeStyle
	case models.SeveritySevere:
		return seaSevereStyle
	case models.SeverityModerate:
		return seaModerateStyle
	default:
		return seaMinorStyle
	}
}
