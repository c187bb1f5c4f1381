package presets

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ngmaloney/seastate/internal/models"
)

var _ Source = (*Service)(nil)

// Service merges the built-in presets with those saved in the database.
// A saved preset shadows a built-in one of the same name.
type Service struct {
	repo *Repository
}

// NewService creates a preset service backed by the database at dbPath
func NewService(dbPath string) *Service {
	return &Service{repo: NewRepository(dbPath)}
}

// All returns built-in and saved presets ordered by name
func (s *Service) All(ctx context.Context) ([]models.Preset, error) {
	saved, err := s.repo.ListPresets()
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}

	byName := make(map[string]models.Preset)
	for _, p := range builtins() {
		byName[strings.ToLower(p.Name)] = p
	}
	for _, p := range saved {
		byName[strings.ToLower(p.Name)] = p
	}

	out := make([]models.Preset, 0, len(byName))
	for _, p := range byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// Search returns presets whose name or description contains query, ignoring case
func (s *Service) Search(ctx context.Context, query string) ([]models.Preset, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	var results []models.Preset
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			results = append(results, p)
		}
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no presets found matching: %s", query)
	}
	return results, nil
}

// Get returns the preset with the given name
func (s *Service) Get(ctx context.Context, name string) (*models.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("preset name cannot be empty")
	}

	saved, err := s.repo.GetPreset(name)
	if err != nil {
		return nil, err
	}
	if saved != nil {
		return saved, nil
	}
	for _, p := range builtins() {
		if strings.EqualFold(p.Name, name) {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("preset not found: %s", name)
}

// Save validates and stores a user preset
func (s *Service) Save(ctx context.Context, p *models.Preset) error {
	if err := Validate(p); err != nil {
		return err
	}
	return s.repo.SavePreset(p)
}

// Delete removes a saved preset. Built-in presets cannot be deleted.
func (s *Service) Delete(ctx context.Context, name string) error {
	return s.repo.DeletePreset(name)
}

// Validate checks that a preset describes a buildable sea
func Validate(p *models.Preset) error {
	p.Name = strings.TrimSpace(p.Name)
	switch {
	case p.Name == "":
		return fmt.Errorf("preset name cannot be empty")
	case !finitePositive(p.WindSpeed):
		return fmt.Errorf("preset %s: wind speed must be positive, got %v", p.Name, p.WindSpeed)
	case !finitePositive(p.WindFetch):
		return fmt.Errorf("preset %s: wind fetch must be positive, got %v", p.Name, p.WindFetch)
	case math.IsNaN(p.WindDirection) || math.IsInf(p.WindDirection, 0):
		return fmt.Errorf("preset %s: wind direction must be finite", p.Name)
	case !(p.FieldLength >= 0 && p.FieldLength <= p.WindFetch):
		return fmt.Errorf("preset %s: field length %v outside [0, %v]", p.Name, p.FieldLength, p.WindFetch)
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
