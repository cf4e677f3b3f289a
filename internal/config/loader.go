package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrawl loads Crawl configuration.
// Search order: customPath -> ~/.arcade/configs/crawl.yaml -> ./configs/crawl.yaml -> embedded default
func LoadCrawl(customPath string) (CrawlConfig, error) {
	return load("crawl", customPath, DefaultCrawlConfig)
}

// LoadMaze loads Maze configuration.
// Search order: customPath -> ~/.arcade/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	return load("maze", customPath, DefaultMazeConfig)
}

func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	var cfg T
	filename := gameID + ".yaml"

	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fromFile T
		if err := yaml.Unmarshal(data, &fromFile); err == nil {
			return fromFile, nil
		}
	}

	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyCrawlPreset modifies the config based on a difficulty preset.
func ApplyCrawlPreset(cfg *CrawlConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Sight.Radius += 2
	case DifficultyHard:
		cfg.Sight.Radius = max(cfg.Sight.MinRadius, cfg.Sight.Radius-2)
	}
}

// ApplyMazePreset modifies the config based on a difficulty preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Scoring.ParSeconds *= 1.5
	case DifficultyHard:
		cfg.Scoring.ParSeconds *= 0.75
	}
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
