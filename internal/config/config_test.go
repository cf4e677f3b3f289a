package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var crawl CrawlConfig
	if err := yaml.Unmarshal(GetDefaultYAML("crawl"), &crawl); err != nil {
		t.Fatalf("embedded crawl.yaml: %v", err)
	}
	if crawl != DefaultCrawlConfig() {
		t.Errorf("crawl.yaml = %+v, expected %+v", crawl, DefaultCrawlConfig())
	}

	var maze MazeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("maze"), &maze); err != nil {
		t.Fatalf("embedded maze.yaml: %v", err)
	}
	if maze != DefaultMazeConfig() {
		t.Errorf("maze.yaml = %+v, expected %+v", maze, DefaultMazeConfig())
	}

	if GetDefaultYAML("sokoban") != nil {
		t.Error("unknown game should have no default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crawl.yaml")
	data := []byte("sight:\n  radius: 11\n  min_radius: 3\nscoring:\n  points_per_cell: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrawl(path)
	if err != nil {
		t.Fatalf("LoadCrawl: %v", err)
	}
	if cfg.Sight.Radius != 11 || cfg.Sight.MinRadius != 3 || cfg.Scoring.PointsPerCell != 2 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadMaze(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("view: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMaze(bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestApplyPresets(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		radiusDelta int
	}{
		{DifficultyEasy, true, 0.0, 2},
		{DifficultyNormal, true, 0.3, 0},
		{DifficultyHard, true, 0.7, -2},
		{DifficultyFixed, false, 0.0, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCrawlConfig()
			ApplyCrawlPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
			if got := cfg.Sight.Radius - DefaultCrawlConfig().Sight.Radius; got != tc.radiusDelta {
				t.Errorf("radius changed by %d, expected %d", got, tc.radiusDelta)
			}
		})
	}

	maze := DefaultMazeConfig()
	ApplyMazePreset(&maze, DifficultyHard)
	if maze.Scoring.ParSeconds >= DefaultMazeConfig().Scoring.ParSeconds {
		t.Error("hard preset should shorten par time")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{RadiusReduction: 4, ParReduction: 0.5},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		ticks      int
		level      float64
		radius     int
		parSeconds float64
	}{
		{0, 0.0, 8, 60},
		{50, 0.5, 6, 45},
		{100, 1.0, 4, 30},
		{500, 1.0, 4, 30}, // progress clamps at max
	}
	for _, tc := range tests {
		if got := d.Level(0, tc.ticks); got != tc.level {
			t.Errorf("Level(ticks=%d) = %f, expected %f", tc.ticks, got, tc.level)
		}
		if got := d.Radius(8, 2, 0, tc.ticks); got != tc.radius {
			t.Errorf("Radius(ticks=%d) = %d, expected %d", tc.ticks, got, tc.radius)
		}
		if got := d.ParTime(60, 0, tc.ticks); got != tc.parSeconds {
			t.Errorf("ParTime(ticks=%d) = %f, expected %f", tc.ticks, got, tc.parSeconds)
		}
	}

	// The radius never drops below the floor
	if got := d.Radius(3, 2, 0, 100); got != 2 {
		t.Errorf("Radius should floor at 2, got %d", got)
	}

	d.SetEnabled(false)
	d.SetInitialLevel(0.4)
	if d.IsEnabled() || d.Level(0, 100) != 0.4 {
		t.Error("disabled manager should stay at the initial level")
	}
}
