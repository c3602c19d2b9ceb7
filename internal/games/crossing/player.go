package crossing

import (
	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
)

// PlayerState is the player's life state.
type PlayerState int

const (
	PlayerAlive PlayerState = iota
	// PlayerDead is terminal; only a restart (a new Player) leaves it.
	PlayerDead
)

// String returns a human-readable state name.
func (s PlayerState) String() string {
	if s == PlayerDead {
		return "dead"
	}
	return "alive"
}

// InputOutcome tells the session what a handled input requires of it.
type InputOutcome int

const (
	InputIgnored  InputOutcome = iota
	InputMoved                 // position changed
	InputFinished              // crossed the finish line: bonus added, position reset
	InputRestart               // caller must restart the whole round
)

// DeathResult describes what a Die call did.
type DeathResult int

const (
	DeathIgnored   DeathResult = iota // player was already dead
	DeathRespawned                    // a life was lost, position reset
	DeathFinal                        // last life lost, player is now dead
)

// Player is the controlled actor. Only its own methods mutate its state.
type Player struct {
	cell   Cell
	start  Cell
	health int
	score  int
	state  PlayerState
	sprite Sprite
	grid   Grid
	cfg    config.CrossingPlayer
}

// NewPlayer creates a player at the start cell with full health and no score.
func NewPlayer(grid Grid, cfg config.CrossingPlayer) *Player {
	start := Cell{Col: cfg.StartCol, Row: cfg.StartRow}
	return &Player{
		cell:   start,
		start:  start,
		health: cfg.Lives,
		state:  PlayerAlive,
		sprite: SpritePlayer,
		grid:   grid,
		cfg:    cfg,
	}
}

// Cell returns the player's grid position.
func (p *Player) Cell() Cell { return p.cell }

// Pos returns the player's pixel position derived from its cell.
func (p *Player) Pos() Point {
	return p.grid.ToPixel(p.cell, Point{Y: p.cfg.OffsetY})
}

// Health returns the remaining lives.
func (p *Player) Health() int { return p.health }

// Score returns the current score.
func (p *Player) Score() int { return p.score }

// State returns the life state.
func (p *Player) State() PlayerState { return p.state }

// Alive reports whether the player still has lives left.
func (p *Player) Alive() bool { return p.state == PlayerAlive }

// Sprite returns the image currently representing the player.
func (p *Player) Sprite() Sprite { return p.sprite }

// Hitbox returns the collision box anchored at the player's pixel position.
func (p *Player) Hitbox(size float64) core.RectF {
	pos := p.Pos()
	return core.NewRectF(pos.X, pos.Y, size, size)
}

// Reset moves the player back to the start cell. Health, score and state are
// left alone.
func (p *Player) Reset() {
	p.cell = p.start
}

// ScoreUp adds points to the score.
func (p *Player) ScoreUp(points int) {
	p.score += points
}

// Die takes one life. With lives left the player returns to the start;
// otherwise it becomes dead for good.
func (p *Player) Die() DeathResult {
	if p.state == PlayerDead {
		return DeathIgnored
	}

	p.health--
	if p.health > 0 {
		p.Reset()
		return DeathRespawned
	}

	p.health = 0
	p.state = PlayerDead
	p.sprite = SpriteDefeated
	return DeathFinal
}

// HandleInput applies one action. Movement bounds are tested on the pixel
// position; "up" from the top lane crosses the finish line instead of moving.
// Restart is reported regardless of state; movement needs a living player.
func (p *Player) HandleInput(a core.Action) InputOutcome {
	if a == core.ActionRestart {
		return InputRestart
	}
	if !p.Alive() {
		return InputIgnored
	}

	pos := p.Pos()
	switch a {
	case core.ActionLeft:
		if pos.X > 0 {
			p.cell.Col--
			return InputMoved
		}
	case core.ActionRight:
		if pos.X < p.cfg.MaxX {
			p.cell.Col++
			return InputMoved
		}
	case core.ActionUp:
		if pos.Y < p.cfg.FinishY {
			p.ScoreUp(p.cfg.FinishBonus)
			p.Reset()
			return InputFinished
		}
		p.cell.Row--
		return InputMoved
	case core.ActionDown:
		if pos.Y < p.cfg.MaxY {
			p.cell.Row++
			return InputMoved
		}
	}
	return InputIgnored
}

// Render draws the player.
func (p *Player) Render(dst Sink) {
	pos := p.Pos()
	dst.DrawSprite(p.sprite, pos.X, pos.Y, 0, 0)
}
