package ui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ngmaloney/seastate/internal/models"
	"github.com/ngmaloney/seastate/internal/presets"
	"github.com/ngmaloney/seastate/internal/seasurface"
	"github.com/ngmaloney/seastate/internal/wave"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch     AppState = iota // Search for a sea state preset
	StatePresetList                 // Show matching presets
	StateLoading                    // Building the sea surface
	StateDisplay                    // Animate the selected sea
	StateError                      // Error state
)

const (
	defaultFrameInterval = 100 * time.Millisecond
	defaultGridPoints    = 32
	probeHistory         = 600
	windStep             = 1.0  // m/s
	headingStep          = 15.0 // degrees
	minWindSpeed         = 0.5
)

// Options configures the sea shown by the TUI
type Options struct {
	Spectrum      wave.Config
	ControlPoints int
	Workers       int
	FrameInterval time.Duration
	// TimeScale multiplies simulated time per frame.
	TimeScale float64
	// Preset loads this preset directly instead of starting at search.
	Preset string
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	opts Options

	// Search
	searchInput textinput.Model
	searchQuery string
	source      presets.Source

	// Presets
	found      []models.Preset
	presetList list.Model
	selected   *models.Preset

	// Sea
	field    *seasurface.Field
	simTime  float64
	paused   bool
	probe    models.ElevationSeries
	spark    sparkline.Model
	fieldErr error

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(src presets.Source, opts Options) Model {
	if opts.ControlPoints <= 0 {
		opts.ControlPoints = defaultGridPoints
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaultFrameInterval
	}
	if opts.TimeScale <= 0 {
		opts.TimeScale = 1
	}
	if opts.Spectrum.FrequencyCount == 0 {
		opts.Spectrum = wave.DefaultConfig()
	}

	ti := textinput.New()
	ti.Placeholder = "Search presets (e.g. rough, storm, breeze)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		state:       StateSearch,
		opts:        opts,
		searchInput: ti,
		source:      src,
		spinner:     s,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.opts.Preset != "" {
		return tea.Batch(m.spinner.Tick, loadPreset(m.source, m.opts.Preset))
	}
	return textinput.Blink
}

// loadPreset fetches a preset by name and selects it
func loadPreset(src presets.Source, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		p, err := src.Get(ctx, name)
		if err != nil {
			return errMsg{err: err}
		}
		return presetsFoundMsg{presets: []models.Preset{*p}}
	}
}

// fieldConfig builds the sea surface parameters for a preset
func (m Model) fieldConfig(p models.Preset) seasurface.Config {
	return seasurface.Config{
		Spectrum:      m.opts.Spectrum,
		WindFetch:     p.WindFetch,
		WindSpeed:     p.WindSpeed,
		WindDirection: wave.Deg2Rad(p.WindDirection),
		Seed:          p.Seed,
		FieldLength:   p.FieldLength,
		ControlPoints: m.opts.ControlPoints,
		Workers:       m.opts.Workers,
	}
}

func (m Model) selectPreset(p models.Preset) (Model, tea.Cmd) {
	m.selected = &p
	m.state = StateLoading
	m.field = nil
	return m, tea.Batch(m.spinner.Tick, buildField(m.fieldConfig(p)))
}

// newSparkline sizes the probe chart for the current sea. Elevations are
// offset by Hs so troughs stay above the baseline.
func (m Model) newSparkline() sparkline.Model {
	w := m.width - 8
	if w < 20 {
		w = 20
	}
	hs := 1.0
	if m.field != nil {
		hs = m.field.Spectrum().SignificantWaveHeight()
	}
	return sparkline.New(w, 5, sparkline.WithMaxValue(2*hs))
}

func (m *Model) sampleProbe() {
	hs := m.field.Spectrum().SignificantWaveHeight()
	c := m.field.FieldLength() / 2
	z := m.field.Spectrum().Elevation(c, c, m.simTime)
	m.probe.Add(m.simTime, z)
	if n := len(m.probe.Samples); n > probeHistory {
		m.probe.Samples = m.probe.Samples[n-probeHistory:]
	}
	m.spark.Push(math.Max(z+hs, 0))
	m.spark.Draw()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StatePresetList {
			m.presetList.SetSize(msg.Width-4, msg.Height-10)
		}
		if m.field != nil {
			m.spark = m.newSparkline()
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case presetsFoundMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("searching presets failed: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		if len(msg.presets) == 1 {
			return m.selectPreset(msg.presets[0])
		}
		m.found = msg.presets
		m.presetList = createPresetList(msg.presets, m.width-4, m.height-10)
		m.state = StatePresetList
		return m, nil

	case fieldBuiltMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("building sea surface failed: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.field = msg.field
		m.simTime = 0
		m.paused = false
		m.fieldErr = nil
		m.probe = models.ElevationSeries{X: m.field.FieldLength() / 2, Y: m.field.FieldLength() / 2}
		m.spark = m.newSparkline()
		m.sampleProbe()
		m.state = StateDisplay
		return m, nextFrame(m.opts.FrameInterval)

	case frameMsg:
		if m.state != StateDisplay || m.field == nil {
			return m, nil
		}
		if !m.paused {
			m.simTime += m.opts.FrameInterval.Seconds() * m.opts.TimeScale
			if err := m.field.AdvanceTo(m.simTime); err != nil {
				m.err = err
				m.state = StateError
				return m, nil
			}
			m.sampleProbe()
		}
		return m, nextFrame(m.opts.FrameInterval)
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// State-specific handling
		switch m.state {
		case StateSearch:
			return m.handleSearchInput(keyMsg)

		case StatePresetList:
			return m.handlePresetList(msg)

		case StateDisplay:
			return m.handleDisplay(keyMsg)

		case StateError:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key returns to search
			m.state = StateSearch
			m.err = nil
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	// Update appropriate component based on state
	switch m.state {
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StatePresetList:
		m.presetList, cmd = m.presetList.Update(msg)
	}

	return m, cmd
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Clear error when typing
	if m.err != nil && msg.Type != tea.KeyEnter {
		m.err = nil
	}

	if msg.Type == tea.KeyEnter {
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.searchQuery = query
		m.err = nil
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, searchPresets(m.source, query))
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handlePresetList handles keyboard input in preset list state
func (m Model) handlePresetList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.presetList.FilterState() != list.Filtering {
		if keyMsg.Type == tea.KeyEnter {
			if item, ok := m.presetList.SelectedItem().(presetItem); ok {
				return m.selectPreset(item.preset)
			}
		}
		if keyMsg.String() == "s" || keyMsg.Type == tea.KeyEsc {
			m.state = StateSearch
			m.searchInput.Focus()
			return m, textinput.Blink
		}
		if keyMsg.String() == "q" {
			return m, tea.Quit
		}
	}

	m.presetList, cmd = m.presetList.Update(msg)
	return m, cmd
}

// handleDisplay handles the animation controls
func (m Model) handleDisplay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s", "esc":
		m.state = StateSearch
		m.field = nil
		m.selected = nil
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case " ", "p":
		m.paused = !m.paused
		return m, nil

	case "+", "=":
		m.fieldErr = m.changeWind(m.field.WindSpeed()+windStep, m.field.WindDirection())

	case "-", "_":
		m.fieldErr = m.changeWind(math.Max(m.field.WindSpeed()-windStep, minWindSpeed), m.field.WindDirection())

	case "left", "h":
		m.fieldErr = m.changeWind(m.field.WindSpeed(), m.field.WindDirection()-wave.Deg2Rad(headingStep))

	case "right", "l":
		m.fieldErr = m.changeWind(m.field.WindSpeed(), m.field.WindDirection()+wave.Deg2Rad(headingStep))

	case "r":
		m.simTime = 0
		m.probe.Samples = nil
		m.spark = m.newSparkline()
		m.fieldErr = m.field.AdvanceTo(0)
	}
	return m, nil
}

// changeWind rebuilds the sea for a new wind and redraws the current frame
func (m *Model) changeWind(speed, direction float64) error {
	if speed != m.field.WindSpeed() {
		if err := m.field.SetWindSpeed(speed); err != nil {
			return err
		}
		m.spark = m.newSparkline()
	}
	if direction != m.field.WindDirection() {
		if err := m.field.SetWindDirection(wave.NormalizeAngle(direction)); err != nil {
			return err
		}
	}
	return m.field.AdvanceTo(m.simTime)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StatePresetList:
		return m.viewPresetList()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	errorMsg := "An unknown error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	help := helpStyle.Render("Press any key to return to search • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}

// viewSearch renders the search view
func (m Model) viewSearch() string {
	title := titleStyle.Render("≈ Sea State")
	subtitle := mutedStyle.Render("Wind-driven irregular sea simulator")

	searchBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(64).
		Render(m.searchInput.View())

	sections := []string{title, subtitle, "", searchBox}
	if m.err != nil {
		sections = append(sections, "", errorStyle.Padding(0, 2).Render("✗ "+m.err.Error()))
	}
	sections = append(sections,
		"",
		mutedStyle.Render("Built-in: calm | moderate | rough | storm"),
		"",
		helpStyle.Render("Press Enter to search • Ctrl+C to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewPresetList renders the preset selection list
func (m Model) viewPresetList() string {
	title := titleStyle.Render("≈ Presets")
	subtitle := mutedStyle.Render(fmt.Sprintf("Found %d presets matching %q", len(m.found), m.searchQuery))
	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • S/Esc: Back to search • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", m.presetList.View(), "", help)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	s := "Searching presets"
	if m.selected != nil {
		s = fmt.Sprintf("Building sea surface for %s", m.selected.Name)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), s)
}

// viewDisplay renders the animated sea
func (m Model) viewDisplay() string {
	if m.field == nil {
		return "No sea selected"
	}
	spec := m.field.Spectrum()
	hs := spec.SignificantWaveHeight()
	scale := models.ClassifySeaState(hs)

	name := "custom"
	if m.selected != nil {
		name = m.selected.Name
	}
	header := titleStyle.Padding(0, 1).Render(fmt.Sprintf("≈ %s", name))

	stats := []string{
		sectionHeaderStyle.Render("SEA STATE"),
		m.stat("Hs", fmt.Sprintf("%.2f m (%.1f ft)", hs, models.MetersToFeet(hs))),
		m.stat("Scale", severityStyle(scale.Severity()).Render(scale.String())),
		m.stat("Peak period", fmt.Sprintf("%.1f s", spec.Summary().PeakPeriod())),
		m.stat("Components", humanize.Comma(int64(spec.Len()))),
		m.stat("Energy", fmt.Sprintf("%s/m²", humanize.SIWithDigits(spec.EnergyDensity(), 1, "J"))),
		sectionHeaderStyle.Render("WIND"),
		m.stat("Speed", fmt.Sprintf("%.1f m/s", m.field.WindSpeed())),
		m.stat("Heading", fmt.Sprintf("%03.0f°", wave.Rad2Deg(m.field.WindDirection()))),
		m.stat("Fetch", humanize.SIWithDigits(m.field.WindFetch(), 1, "m")),
		sectionHeaderStyle.Render("FIELD"),
		m.stat("Length", humanize.SIWithDigits(m.field.FieldLength(), 1, "m")),
		m.stat("Time", fmt.Sprintf("%.1f s", m.simTime)),
	}
	if m.paused {
		stats = append(stats, seaModerateStyle.Render("PAUSED"))
	}
	if m.fieldErr != nil {
		stats = append(stats, errorStyle.Render("✗ "+m.fieldErr.Error()))
	}

	grid := paneStyle.Render(renderHeightmap(m.field.Heights(), hs))
	info := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, stats...))
	top := lipgloss.JoinHorizontal(lipgloss.Top, grid, info)

	probeTitle := fmt.Sprintf("PROBE (%.0f, %.0f)", m.probe.X, m.probe.Y)
	if st := m.probe.Stats(); st.Count > 0 {
		probeTitle += mutedStyle.Render(fmt.Sprintf("  now %+.2f m  min %+.2f  max %+.2f",
			m.probe.Samples[st.Count-1].Elevation, st.Min, st.Max))
	}
	probe := lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render(probeTitle),
		m.spark.View(),
	)

	help := helpStyle.Render("Space: Pause • +/-: Wind speed • ←/→: Wind direction • R: Restart • S: New search • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, top, probe, help)
}

func (m Model) stat(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value)
}
