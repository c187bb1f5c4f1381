package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ngmaloney/seastate/internal/models"
)

// presetItem wraps a Preset for use in a list
type presetItem struct {
	preset models.Preset
}

// FilterValue implements list.Item
func (p presetItem) FilterValue() string {
	return p.preset.Name + " " + p.preset.Description
}

// Title implements list.DefaultItem
func (p presetItem) Title() string {
	return p.preset.Name
}

// Description implements list.DefaultItem
func (p presetItem) Description() string {
	desc := fmt.Sprintf("%.0f m/s toward %03.0f° over %.1f km",
		p.preset.WindSpeed, p.preset.WindDirection, p.preset.WindFetch/1000)
	if p.preset.Description != "" {
		desc = p.preset.Description + " • " + desc
	}
	return desc
}

// createPresetList creates a list.Model from presets
func createPresetList(presets []models.Preset, width, height int) list.Model {
	items := make([]list.Item, len(presets))
	for i, p := range presets {
		items[i] = presetItem{preset: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a Sea State"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}
