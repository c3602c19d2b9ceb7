package crossing

import (
	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
)

// Enemy is a hazard moving left to right along one lane.
// Y and Speed are fixed when the enemy is created.
type Enemy struct {
	X     float64
	Y     float64
	Lane  int
	Speed float64
}

// NewEnemy places an enemy just off the left edge on a random lane with a
// speed of baseSpeed plus a random number of jitter tiers.
func NewEnemy(rng *core.RNG, cfg config.CrossingEnemies, tileHeight, baseSpeed float64) Enemy {
	lane := rng.Between(0, cfg.Lanes-1)
	tier := rng.Between(-cfg.SpeedTiers, cfg.SpeedTiers)
	return Enemy{
		X:     cfg.StartX,
		Y:     float64(lane)*tileHeight + cfg.LaneOffsetY,
		Lane:  lane,
		Speed: baseSpeed + float64(tier)*cfg.SpeedStep,
	}
}

// Update advances the enemy by dt seconds. It returns true instead of moving
// once the enemy is past exitX; the caller decides what to evict.
func (e *Enemy) Update(dt, exitX float64) (exited bool) {
	if e.X > exitX {
		return true
	}
	e.X += e.Speed * dt
	return false
}

// Hitbox returns the collision box anchored at the enemy's top-left corner.
func (e Enemy) Hitbox(size float64) core.RectF {
	return core.NewRectF(e.X, e.Y, size, size)
}

// Render draws the enemy.
func (e Enemy) Render(dst Sink) {
	dst.DrawSprite(SpriteEnemy, e.X, e.Y, 0, 0)
}
