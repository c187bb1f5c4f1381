package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/seastate/internal/models"
	"github.com/ngmaloney/seastate/internal/presets"
	"github.com/ngmaloney/seastate/internal/seasurface"
)

// Message types for async operations

// presetsFoundMsg is sent when a preset search completes
type presetsFoundMsg struct {
	presets []models.Preset
	err     error
}

// fieldBuiltMsg is sent when the sea surface for a preset is ready
type fieldBuiltMsg struct {
	field *seasurface.Field
	err   error
}

// frameMsg advances the animation by one frame
type frameMsg time.Time

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// searchPresets looks up presets in the background
func searchPresets(src presets.Source, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		found, err := src.Search(ctx, query)
		return presetsFoundMsg{presets: found, err: err}
	}
}

// buildField creates the sea surface in the background
func buildField(cfg seasurface.Config) tea.Cmd {
	return func() tea.Msg {
		f, err := seasurface.New(cfg)
		if err == nil {
			err = f.AdvanceTo(0)
		}
		return fieldBuiltMsg{field: f, err: err}
	}
}

// nextFrame schedules the next animation frame
func nextFrame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
