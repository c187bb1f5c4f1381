package presets

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ngmaloney/seastate/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(filepath.Join(t.TempDir(), "presets.db"))
}

func TestBuiltins(t *testing.T) {
	presets := builtins()

	if len(presets) < 4 {
		t.Errorf("builtins() returned %d presets, want at least 4", len(presets))
	}

	// Verify all presets are buildable
	for i := range presets {
		if err := Validate(&presets[i]); err != nil {
			t.Errorf("builtin %q invalid: %v", presets[i].Name, err)
		}
		if presets[i].ID != 0 {
			t.Errorf("builtin %q has ID %d", presets[i].Name, presets[i].ID)
		}
	}
}

func TestService_Search(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Save(ctx, &models.Preset{
		Name:        "Harbour chop",
		Description: "Short fetch inside the breakwater",
		WindSpeed:   6,
		WindFetch:   800,
		Seed:        3,
	}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tests := []struct {
		name      string
		query     string
		wantCount int
		wantErr   bool
	}{
		{"by name", "storm", 1, false},
		{"case insensitive", "ROUGH", 1, false},
		{"by description", "open water", 1, false},
		{"saved preset", "harbour", 1, false},
		{"shared word", "breeze", 2, false},
		{"no results", "tsunami", 0, true},
		{"empty query", "", 0, true},
		{"whitespace query", "   ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.Search(ctx, tt.query)

			if (err != nil) != tt.wantErr {
				t.Errorf("Search() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && len(results) != tt.wantCount {
				t.Errorf("Search() returned %d results, want %d", len(results), tt.wantCount)
			}
		})
	}
}

func TestService_Get(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		wantSeed int64
		wantErr  bool
	}{
		{"builtin", "rough", 42, false},
		{"builtin any case", "Storm", 1999, false},
		{"unknown", "doldrums", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.Get(ctx, tt.query)

			if (err != nil) != tt.wantErr {
				t.Errorf("Get() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && p.Seed != tt.wantSeed {
				t.Errorf("Get() seed = %d, want %d", p.Seed, tt.wantSeed)
			}
		})
	}
}

func TestService_SavedShadowsBuiltin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	custom := &models.Preset{Name: "rough", WindSpeed: 15, WindFetch: 5000, Seed: 77}
	if err := svc.Save(ctx, custom); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if custom.ID == 0 {
		t.Error("Save() did not set ID")
	}

	p, err := svc.Get(ctx, "rough")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.Seed != 77 {
		t.Errorf("Get() seed = %d, want saved 77", p.Seed)
	}

	all, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != len(builtins()) {
		t.Errorf("All() returned %d presets, want %d", len(all), len(builtins()))
	}
	for i := 1; i < len(all); i++ {
		if strings.ToLower(all[i-1].Name) > strings.ToLower(all[i].Name) {
			t.Errorf("All() not sorted: %q before %q", all[i-1].Name, all[i].Name)
		}
	}

	if err := svc.Delete(ctx, "rough"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	p, err = svc.Get(ctx, "rough")
	if err != nil {
		t.Fatalf("Get() after delete error = %v", err)
	}
	if p.Seed != 42 {
		t.Errorf("Get() after delete seed = %d, want builtin 42", p.Seed)
	}
}

func TestRepository_NamesIgnoreCase(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "presets.db"))

	first := &models.Preset{Name: "Rough", WindSpeed: 15, WindFetch: 5000, Seed: 1}
	if err := repo.SavePreset(first); err != nil {
		t.Fatalf("SavePreset(Rough) error = %v", err)
	}
	second := &models.Preset{Name: "rough", WindSpeed: 16, WindFetch: 5000, Seed: 2}
	if err := repo.SavePreset(second); err != nil {
		t.Fatalf("SavePreset(rough) error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second save ID = %d, want %d", second.ID, first.ID)
	}

	list, err := repo.ListPresets()
	if err != nil {
		t.Fatalf("ListPresets() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListPresets() returned %d presets, want 1", len(list))
	}
	if list[0].Name != "rough" || list[0].Seed != 2 {
		t.Errorf("ListPresets()[0] = %+v, want the latest save", list[0])
	}

	if err := repo.DeletePreset("ROUGH"); err != nil {
		t.Fatalf("DeletePreset(ROUGH) error = %v", err)
	}
	if list, _ := repo.ListPresets(); len(list) != 0 {
		t.Errorf("ListPresets() after delete returned %d presets", len(list))
	}
	if err := repo.DeletePreset("rough"); err == nil {
		t.Error("DeletePreset() of a missing preset succeeded")
	}
}

func TestService_DeleteBuiltin(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Delete(context.Background(), "storm"); err == nil {
		t.Error("Delete() of an unsaved built-in succeeded")
	}
}

func TestRepository_Upsert(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "presets.db"))

	p := &models.Preset{Name: "gulf", Description: "first", WindSpeed: 9, WindFetch: 3000, Seed: 1}
	if err := repo.SavePreset(p); err != nil {
		t.Fatalf("SavePreset() error = %v", err)
	}
	firstID := p.ID

	p2 := &models.Preset{Name: "gulf", Description: "second", WindSpeed: 11, WindFetch: 3000, Seed: 2}
	if err := repo.SavePreset(p2); err != nil {
		t.Fatalf("SavePreset() error = %v", err)
	}
	if p2.ID != firstID {
		t.Errorf("upsert ID = %d, want %d", p2.ID, firstID)
	}

	list, err := repo.ListPresets()
	if err != nil {
		t.Fatalf("ListPresets() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListPresets() returned %d presets, want 1", len(list))
	}
	if list[0].Description != "second" || list[0].WindSpeed != 11 {
		t.Errorf("ListPresets()[0] = %+v", list[0])
	}

	missing, err := repo.GetPreset("nope")
	if err != nil || missing != nil {
		t.Errorf("GetPreset(nope) = %v, %v; want nil, nil", missing, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		preset  models.Preset
		wantErr bool
	}{
		{"valid", models.Preset{Name: "ok", WindSpeed: 5, WindFetch: 100}, false},
		{"trimmed name", models.Preset{Name: "  ok  ", WindSpeed: 5, WindFetch: 100}, false},
		{"blank name", models.Preset{Name: " ", WindSpeed: 5, WindFetch: 100}, true},
		{"no wind", models.Preset{Name: "x", WindFetch: 100}, true},
		{"no fetch", models.Preset{Name: "x", WindSpeed: 5}, true},
		{"field longer than fetch", models.Preset{Name: "x", WindSpeed: 5, WindFetch: 100, FieldLength: 200}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.preset)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
