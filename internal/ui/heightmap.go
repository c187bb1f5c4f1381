package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const heightCell = "██"

var depthStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(depthColors))
	for i, c := range depthColors {
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}
	return styles
}()

// shadeIndex maps z in [-scale, scale] onto the depth palette
func shadeIndex(z, scale float64) int {
	n := len(depthColors)
	if scale <= 0 {
		return n / 2
	}
	idx := int((z/scale + 1) / 2 * float64(n))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// renderHeightmap draws a [row][col] height grid with North up.
func renderHeightmap(heights [][]float64, scale float64) string {
	var b strings.Builder
	for i := len(heights) - 1; i >= 0; i-- {
		for _, z := range heights[i] {
			b.WriteString(depthStyles[shadeIndex(z, scale)].Render(heightCell))
		}
		if i > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
