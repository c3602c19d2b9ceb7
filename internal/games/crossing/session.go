package crossing

import (
	"time"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
)

// HighScores persists the single best score.
// A missing value (ok == false) counts as zero. Set keeps the larger of the
// stored and given values.
type HighScores interface {
	Get() (score int, ok bool, err error)
	Set(score int) error
}

// Session owns the world: the player, the enemy, gem and heart collections,
// and the enemy spawn timer. It is advanced by Tick and fed by HandleInput;
// nothing else mutates it.
type Session struct {
	cfg        config.CrossingConfig
	grid       Grid
	rng        *core.RNG
	difficulty *config.DifficultyManager
	highScores HighScores

	player  *Player
	enemies []Enemy // spawn order
	exited  []bool  // scratch, parallel to enemies during a tick
	gems    *Arena[Gem]
	hearts  []Heart
	spawner *Timer

	highScore int
	ticks     int
	roundOver bool
}

// NewSession creates a session and starts the first round: one enemy right
// away with the spawn timer armed, a gem batch and a fresh player.
// highScores may be nil.
func NewSession(cfg config.CrossingConfig, seed int64, highScores HighScores) *Session {
	s := &Session{
		cfg:        cfg,
		grid:       NewGrid(cfg.Grid),
		rng:        core.NewRNG(seed),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		highScores: highScores,
		gems:       NewArena[Gem](cfg.Gems.BatchSize),
		spawner:    NewTimer(time.Duration(cfg.Enemies.SpawnIntervalMS) * time.Millisecond),
	}
	s.highScore = s.storedHighScore()

	s.SpawnEnemies()
	s.SpawnCollectibles()
	s.SpawnPlayer()
	return s
}

// SpawnEnemies adds one enemy immediately and arms the repeating spawn timer.
func (s *Session) SpawnEnemies() {
	s.pushEnemy()
	s.spawner.Arm()
}

// ResetEnemies cancels the spawn timer and removes every enemy.
func (s *Session) ResetEnemies() {
	s.spawner.Cancel()
	clear(s.enemies)
	s.enemies = s.enemies[:0]
}

// SpawnCollectibles replaces the gem batch with a new one.
func (s *Session) SpawnCollectibles() {
	s.gems.Clear()
	for i := 0; i < s.cfg.Gems.BatchSize; i++ {
		s.gems.Insert(NewGem(i, s.rng, s.grid, s.cfg.Gems))
	}
}

// SpawnPlayer replaces the player with a new one and rebuilds the hearts.
func (s *Session) SpawnPlayer() {
	s.player = NewPlayer(s.grid, s.cfg.Player)
	s.hearts = Hearts(s.player.Health())
}

// Restart starts the round over from scratch.
func (s *Session) Restart() {
	s.ResetEnemies()
	s.SpawnEnemies()
	s.SpawnCollectibles()
	s.SpawnPlayer()
}

// HandleInput forwards an action to the player and carries out what the
// outcome requires.
func (s *Session) HandleInput(a core.Action) InputOutcome {
	outcome := s.player.HandleInput(a)
	switch outcome {
	case InputFinished:
		s.SpawnCollectibles()
	case InputRestart:
		s.Restart()
	}
	return outcome
}

// Tick advances the world by dt seconds: due enemies spawn, enemies move and
// collide with the player, departed enemies are evicted, and gems under the
// player are collected.
func (s *Session) Tick(dt float64) {
	for n := s.spawner.Advance(dt); n > 0; n-- {
		s.pushEnemy()
	}

	s.updateEnemies(dt)
	s.updateGems()
	s.ticks++
}

func (s *Session) updateEnemies(dt float64) {
	exitX := s.cfg.Enemies.ExitX
	size := s.cfg.Enemies.Hitbox

	s.exited = s.exited[:0]
	exits := 0
	for i := range s.enemies {
		e := &s.enemies[i]
		out := e.Update(dt, exitX)
		s.exited = append(s.exited, out)
		if out {
			exits++
		}

		// Leaving the board and hitting the player are independent.
		if e.Hitbox(size).Intersects(s.player.Hitbox(size)) {
			s.killPlayer()
		}
	}

	if exits == 0 {
		return
	}

	switch s.cfg.Enemies.Eviction {
	case config.EvictSelf:
		kept := s.enemies[:0]
		for i, e := range s.enemies {
			if !s.exited[i] {
				kept = append(kept, e)
			}
		}
		clear(s.enemies[len(kept):])
		s.enemies = kept
	default:
		// One eviction from the front per departing enemy. This assumes
		// enemies leave in spawn order, which speed jitter can violate.
		n := min(exits, len(s.enemies))
		s.enemies = append(s.enemies[:0], s.enemies[n:]...)
	}
}

func (s *Session) updateGems() {
	if !s.player.Alive() {
		return
	}

	at := s.player.Cell()
	items := s.gems.Items()
	handles := s.gems.Handles()

	var taken []Handle
	for i := range items {
		if items[i].Touches(at) {
			taken = append(taken, handles[i])
		}
	}

	for _, h := range taken {
		gem, ok := s.gems.Get(h)
		if !ok {
			continue
		}
		s.gems.Remove(h)
		s.player.ScoreUp(gem.Type.Value)
	}
}

func (s *Session) pushEnemy() {
	base := s.difficulty.Speed(s.cfg.Enemies.BaseSpeed, s.currentScore(), s.ticks)
	s.enemies = append(s.enemies, NewEnemy(s.rng, s.cfg.Enemies, s.grid.TileHeight, base))
}

// currentScore is the score driving difficulty; zero before the first player.
func (s *Session) currentScore() int {
	if s.player == nil {
		return 0
	}
	return s.player.Score()
}

// killPlayer takes a life, drops a heart and on the last life records the
// high score if it was beaten.
func (s *Session) killPlayer() {
	result := s.player.Die()
	if result == DeathIgnored {
		return
	}

	if n := len(s.hearts); n > 0 {
		s.hearts = s.hearts[:n-1]
	}

	if result == DeathFinal {
		s.roundOver = true
		s.recordHighScore(s.player.Score())
	}
}

func (s *Session) recordHighScore(score int) {
	stored := s.storedHighScore()
	if score <= stored {
		s.highScore = stored
		return
	}
	s.highScore = score
	if s.highScores == nil {
		return
	}
	// Best-effort: the round is over either way.
	if err := s.highScores.Set(score); err != nil {
		return
	}
	// Another session may have stored a higher score since the read.
	s.highScore = max(score, s.storedHighScore())
}

// storedHighScore reads the persisted high score, falling back to the last
// known value when the store is missing or fails.
func (s *Session) storedHighScore() int {
	if s.highScores == nil {
		return s.highScore
	}
	v, ok, err := s.highScores.Get()
	if err != nil {
		return s.highScore
	}
	if !ok {
		return 0
	}
	return v
}

// Render draws every entity once and updates the HUD values.
func (s *Session) Render(dst Sink) {
	for _, h := range s.hearts {
		h.Render(dst)
	}
	for _, g := range s.gems.Items() {
		g.Render(dst)
	}
	for _, e := range s.enemies {
		e.Render(dst)
	}
	s.player.Render(dst)

	dst.SetText(HUDScore, s.player.Score())
	dst.SetText(HUDLives, s.player.Health())
	dst.SetText(HUDHighScore, s.highScore)
}

// Player returns the active player.
func (s *Session) Player() *Player { return s.player }

// Enemies returns the live enemies in spawn order.
func (s *Session) Enemies() []Enemy { return s.enemies }

// Gems returns the live gems.
func (s *Session) Gems() []Gem { return s.gems.Items() }

// Hearts returns the life indicators.
func (s *Session) Hearts() []Heart { return s.hearts }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// Ticks returns the number of ticks simulated since the session was created.
func (s *Session) Ticks() int { return s.ticks }

// Grid returns the board geometry.
func (s *Session) Grid() Grid { return s.grid }

// Lanes returns the number of enemy lanes, which start at row 1.
func (s *Session) Lanes() int { return s.cfg.Enemies.Lanes }

// SpawnArmed reports whether the enemy spawn timer is running.
func (s *Session) SpawnArmed() bool { return s.spawner.Armed() }

// TakeRoundOver reports whether the round ended since the last call.
func (s *Session) TakeRoundOver() bool {
	over := s.roundOver
	s.roundOver = false
	return over
}

// Snapshot is a copy of the observable world, used to compare runs.
type Snapshot struct {
	Player  Cell
	Health  int
	Score   int
	State   PlayerState
	Enemies []Enemy
	Gems    []Gem
	Ticks   int
}

// Snapshot copies the current world state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Player:  s.player.Cell(),
		Health:  s.player.Health(),
		Score:   s.player.Score(),
		State:   s.player.State(),
		Enemies: append([]Enemy(nil), s.enemies...),
		Gems:    append([]Gem(nil), s.gems.Items()...),
		Ticks:   s.ticks,
	}
}
