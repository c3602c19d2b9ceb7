package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the built-in Gem Crossing configuration.
// It mirrors defaults/crossing.yaml and is used if the embedded file is unreadable.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Grid: CrossingGrid{
			Cols:       5,
			Rows:       6,
			TileWidth:  101,
			TileHeight: 83,
		},
		Enemies: CrossingEnemies{
			Lanes:           3,
			LaneOffsetY:     60,
			StartX:          -101,
			ExitX:           1000,
			BaseSpeed:       300,
			SpeedStep:       50,
			SpeedTiers:      2,
			SpawnIntervalMS: 1000,
			Hitbox:          50,
			Eviction:        EvictFront,
		},
		Player: CrossingPlayer{
			Lives:       3,
			StartCol:    2,
			StartRow:    5,
			OffsetY:     -40,
			FinishBonus: 100,
			MaxX:        400,
			FinishY:     45,
			MaxY:        375,
		},
		Gems: CrossingGems{
			BatchSize: 4,
			MinRow:    1,
			MaxRow:    3,
			Offset:    18,
			Kinds: []GemKind{
				{Name: "Blue", Value: 25},
				{Name: "Green", Value: 50},
				{Name: "Orange", Value: 100},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing":
		return defaultCrossingYAML
	default:
		return nil
	}
}
