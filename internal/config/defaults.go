package config

import (
	_ "embed"
)

//go:embed defaults/crawl.yaml
var defaultCrawlYAML []byte

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultCrawlConfig returns the default Crawl configuration.
func DefaultCrawlConfig() CrawlConfig {
	return CrawlConfig{
		Sight: CrawlSight{
			Radius:    8,
			MinRadius: 2,
		},
		Scoring: CrawlScoring{
			PointsPerCell: 1,
			ExitBonus:     100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 5400,
			},
			Scaling: ScalingConfig{
				RadiusReduction: 4,
			},
		},
	}
}

// DefaultMazeConfig returns the default Maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		View: MazeView{
			FOVDegrees:  66,
			MaxDistance: 16,
		},
		Movement: MazeMovement{
			MoveSpeed: 0.25,
			TurnSpeed: 0.15,
		},
		Automap: MazeAutomap{
			Radius: 6,
		},
		Scoring: MazeScoring{
			ClearBonus:       1000,
			ParSeconds:       90,
			PenaltyPerSecond: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				RadiusReduction: 2,
				ParReduction:    0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crawl":
		return defaultCrawlYAML
	case "maze":
		return defaultMazeYAML
	default:
		return nil
	}
}
