// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Enemy eviction policies.
const (
	// EvictFront removes the oldest enemy whenever any enemy passes the exit line.
	EvictFront = "front"
	// EvictSelf removes exactly the enemies that passed the exit line.
	EvictSelf = "self"
)

// CrossingConfig contains all configuration for the Gem Crossing game.
type CrossingConfig struct {
	Grid       CrossingGrid     `yaml:"grid"`
	Enemies    CrossingEnemies  `yaml:"enemies"`
	Player     CrossingPlayer   `yaml:"player"`
	Gems       CrossingGems     `yaml:"gems"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrossingGrid defines the board layout in world pixels.
type CrossingGrid struct {
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
}

// CrossingEnemies defines enemy spawning and movement.
type CrossingEnemies struct {
	Lanes           int     `yaml:"lanes"`
	LaneOffsetY     float64 `yaml:"lane_offset_y"`
	StartX          float64 `yaml:"start_x"`
	ExitX           float64 `yaml:"exit_x"`
	BaseSpeed       float64 `yaml:"base_speed"`  // pixels per second
	SpeedStep       float64 `yaml:"speed_step"`  // size of one jitter tier
	SpeedTiers      int     `yaml:"speed_tiers"` // jitter drawn from [-tiers, tiers]
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	Hitbox          float64 `yaml:"hitbox"`
	Eviction        string  `yaml:"eviction"` // "front" or "self"
}

// CrossingPlayer defines the player's start state and movement bounds.
type CrossingPlayer struct {
	Lives       int     `yaml:"lives"`
	StartCol    int     `yaml:"start_col"`
	StartRow    int     `yaml:"start_row"`
	OffsetY     float64 `yaml:"offset_y"`
	FinishBonus int     `yaml:"finish_bonus"`
	MaxX        float64 `yaml:"max_x"`    // right moves allowed while x < max_x
	FinishY     float64 `yaml:"finish_y"` // up scores while y < finish_y
	MaxY        float64 `yaml:"max_y"`    // down moves allowed while y < max_y
}

// CrossingGems defines collectible batches.
type CrossingGems struct {
	BatchSize int       `yaml:"batch_size"`
	MinRow    int       `yaml:"min_row"`
	MaxRow    int       `yaml:"max_row"`
	Offset    float64   `yaml:"offset"`
	Kinds     []GemKind `yaml:"kinds"`
}

// GemKind is one entry of the collectible type table.
type GemKind struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// SlowestSpeed is the speed of an enemy drawn with the lowest jitter tier.
func (e CrossingEnemies) SlowestSpeed() float64 {
	return e.BaseSpeed - float64(e.SpeedTiers)*math.Abs(e.SpeedStep)
}

// DifficultyConfig defines difficulty progression settings.
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports configuration values the game cannot run with.
func (c CrossingConfig) Validate() error {
	var errs []error

	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}
	if c.Grid.TileWidth <= 0 || c.Grid.TileHeight <= 0 {
		errs = append(errs, errors.New("tile size must be positive"))
	}
	if c.Enemies.Lanes <= 0 {
		errs = append(errs, errors.New("enemies.lanes must be positive"))
	}
	if c.Enemies.SpawnIntervalMS <= 0 {
		errs = append(errs, errors.New("enemies.spawn_interval_ms must be positive"))
	}
	if c.Enemies.SpeedTiers < 0 {
		errs = append(errs, errors.New("enemies.speed_tiers must not be negative"))
	}
	if slowest := c.Enemies.SlowestSpeed(); slowest <= 0 {
		errs = append(errs, fmt.Errorf("enemies.base_speed minus speed_tiers*speed_step must be positive, got %g", slowest))
	}
	if c.Enemies.Eviction != EvictFront && c.Enemies.Eviction != EvictSelf {
		errs = append(errs, fmt.Errorf("enemies.eviction must be %q or %q, got %q", EvictFront, EvictSelf, c.Enemies.Eviction))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player.lives must be positive"))
	}
	if c.Player.StartCol < 0 || c.Player.StartCol >= c.Grid.Cols || c.Player.StartRow < 0 || c.Player.StartRow >= c.Grid.Rows {
		errs = append(errs, fmt.Errorf("player start (%d,%d) is outside the grid", c.Player.StartCol, c.Player.StartRow))
	}
	if c.Gems.BatchSize < 0 {
		errs = append(errs, errors.New("gems.batch_size must not be negative"))
	}
	if c.Gems.MinRow > c.Gems.MaxRow {
		errs = append(errs, fmt.Errorf("gems.min_row %d exceeds max_row %d", c.Gems.MinRow, c.Gems.MaxRow))
	}
	if c.Gems.MinRow < 0 || c.Gems.MaxRow >= c.Grid.Rows {
		errs = append(errs, fmt.Errorf("gems rows %d..%d are outside the grid", c.Gems.MinRow, c.Gems.MaxRow))
	}
	if len(c.Gems.Kinds) == 0 {
		errs = append(errs, errors.New("gems.kinds must not be empty"))
	}
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		errs = append(errs, errors.New("difficulty.scaling.speed_multiplier must not be negative"))
	}

	return errors.Join(errs...)
}
