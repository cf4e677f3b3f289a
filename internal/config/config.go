// Package config provides YAML-based game configuration loading and
// difficulty management for the crawl games.
package config

// CrawlConfig contains all configuration for the Crawl game.
type CrawlConfig struct {
	Sight      CrawlSight       `yaml:"sight"`
	Scoring    CrawlScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrawlSight defines the torch that lights the dungeon.
type CrawlSight struct {
	Radius    int `yaml:"radius"`
	MinRadius int `yaml:"min_radius"`
}

// CrawlScoring defines how Crawl awards points.
type CrawlScoring struct {
	PointsPerCell int `yaml:"points_per_cell"`
	ExitBonus     int `yaml:"exit_bonus"`
}

// MazeConfig contains all configuration for the Maze game.
type MazeConfig struct {
	View       MazeView         `yaml:"view"`
	Movement   MazeMovement     `yaml:"movement"`
	Automap    MazeAutomap      `yaml:"automap"`
	Scoring    MazeScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MazeView defines the first-person projection.
type MazeView struct {
	FOVDegrees  float64 `yaml:"fov_degrees"`
	MaxDistance float64 `yaml:"max_distance"`
	Columns     int     `yaml:"columns"` // 0 = one ray per screen column
}

// MazeMovement defines how far one key press moves or turns the camera.
type MazeMovement struct {
	MoveSpeed float64 `yaml:"move_speed"`
	TurnSpeed float64 `yaml:"turn_speed"`
}

// MazeAutomap defines how much of the maze the automap reveals around the player.
type MazeAutomap struct {
	Radius int `yaml:"radius"`
}

// MazeScoring defines how Maze awards points.
type MazeScoring struct {
	ClearBonus       int     `yaml:"clear_bonus"`
	ParSeconds       float64 `yaml:"par_seconds"`
	PenaltyPerSecond int     `yaml:"penalty_per_second"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	RadiusReduction int     `yaml:"radius_reduction"` // Sight radius lost at max difficulty
	ParReduction    float64 `yaml:"par_reduction"`    // Fraction of par time lost at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
