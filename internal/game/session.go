package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/caveleap/internal/core"
	"github.com/vovakirdan/caveleap/internal/level"
)

// Session owns every live entity and drives the start -> playing ->
// game-over flow. All collections are mutated only inside Step, one entity
// class at a time, so no locking is ever needed.
type Session struct {
	rng    *rand.Rand
	levels level.Table

	state  State
	paused bool

	player  Player
	walls   []WallPair
	enemies []Enemy
	coins   []Coin

	score int
	bonus int
	best  int

	graceFrames int
	enemyTimer  int
	levelIndex  int
	tick        uint64
	bgOffset    float64
}

// NewSession creates a session on the start screen. The best score comes
// from the persistence layer; the session only raises it, never lowers it.
func NewSession(seed int64, table level.Table, best int) *Session {
	return &Session{
		rng:    rand.New(rand.NewSource(seed)),
		levels: table,
		state:  StateStart,
		player: NewPlayer(),
		best:   best,
	}
}

// Reseed replaces the random source. Used by the platform when restarting
// with a fresh seed.
func (s *Session) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// StartButton is the start-screen hot zone, in virtual units.
func StartButton() core.Rect {
	return core.NewRect(FieldW/2-105, 410-27.5, 210, 55)
}

// RestartButton is the game-over hot zone, in virtual units.
func RestartButton() core.Rect {
	return core.NewRect(FieldW/2-110, FieldH/2+80-27.5, 220, 55)
}

// Step advances the session by one tick, applying this frame's polled
// input first. It returns the events that fired so the platform can play
// cues and persist scores without reaching into session internals.
func (s *Session) Step(in core.InputFrame) Events {
	s.tick++

	switch s.state {
	case StateStart:
		if in.Has(core.ActionStart) || in.Has(core.ActionFlap) || clicked(in, StartButton()) {
			s.startRound()
			return EventStarted
		}
		s.player.Bob()
		s.drift(bgDriftStart)
		return 0

	case StatePlaying:
		if in.Has(core.ActionPause) {
			s.paused = !s.paused
		}
		if s.paused {
			return 0
		}
		return s.stepPlaying(in)

	case StateGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) || in.Has(core.ActionFlap) || clicked(in, RestartButton()) {
			s.startRound()
			return EventStarted
		}
		s.drift(bgDriftGameOver)
		return 0
	}

	return 0
}

// stepPlaying runs one full simulation frame. The phase order is strict:
// level resolve, player physics, walls, enemies, coins. A death inside any
// phase ends the frame immediately; later phases don't run.
func (s *Session) stepPlaying(in core.InputFrame) Events {
	var ev Events

	// (1) Resolve the active tier from the current score. Never cached
	// across frames, so a score change lands on the very next update.
	lv, idx := s.levels.ForScore(s.score)
	s.levelIndex = idx

	// Input applies before physics. A click during play is a flap.
	if in.Has(core.ActionFlap) || in.Has(core.ActionClick) {
		impulse := DefaultFlapImpulse
		if lv.FlapImpulse != 0 {
			impulse = lv.FlapImpulse
		}
		s.player.Flap(impulse)
		if s.graceFrames > 0 {
			s.graceFrames = 0 // First flap cancels the hover
		}
		ev |= EventFlapped
	}

	// (2) Player physics.
	grace := s.graceFrames > 0
	if grace {
		s.graceFrames--
	}
	s.player.Advance(lv.Gravity, grace)
	if !s.player.Alive {
		s.endRound()
		return ev | EventDied
	}

	s.drift(lv.WallSpeed * bgDriftPlayFactor)

	hitbox := s.player.HitBox()

	// (3) Walls: spawn, advance, score once per wall, collide, compact.
	gapSize := lv.GapSize
	if floor := PlayerH + GapFloorPad; gapSize < floor {
		gapSize = floor
	}
	wallSpawned := false
	if len(s.walls) == 0 || s.walls[len(s.walls)-1].X < FieldW-lv.WallSpacing {
		s.walls = append(s.walls, NewWallPair(FieldW+SpawnOffset, gapSize, lv.WallSpeed, s.rng))
		wallSpawned = true
	}

	for i := range s.walls {
		s.walls[i].Advance()
		if !s.walls[i].Scored && s.walls[i].X+WallW < PlayerX {
			s.walls[i].Scored = true
			s.score++
			ev |= EventScored
		}
		if s.walls[i].Collides(hitbox) {
			s.endRound()
			return ev | EventDied
		}
	}
	liveWalls := s.walls[:0]
	for _, w := range s.walls {
		if !w.OffScreen() {
			liveWalls = append(liveWalls, w)
		}
	}
	s.walls = liveWalls

	// (4) Enemies: cadence spawn, advance, collide, compact.
	s.enemyTimer++
	if s.enemyTimer >= lv.EnemySpawnFrames {
		s.enemies = append(s.enemies, NewEnemy(lv.EnemySpeed, s.rng))
		s.enemyTimer = 0
		ev |= EventEnemySpawned
	}

	for i := range s.enemies {
		s.enemies[i].Advance()
		if s.enemies[i].HitBox().Intersects(hitbox) {
			s.endRound()
			return ev | EventDied
		}
	}
	liveEnemies := s.enemies[:0]
	for _, e := range s.enemies {
		if !e.OffScreen() {
			liveEnemies = append(liveEnemies, e)
		}
	}
	s.enemies = liveEnemies

	// (5) Coins: spawn only alongside a wall spawn so placement anchors to
	// the fresh gap, then advance, pick up exactly once, compact.
	if wallSpawned && s.rng.Float64() < lv.CoinSpawnChance && len(s.coins) < lv.MaxCoinsOnScreen {
		s.coins = append(s.coins, s.newAnchoredCoin(lv, s.walls[len(s.walls)-1]))
	}

	for i := range s.coins {
		s.coins[i].Advance()
	}
	liveCoins := s.coins[:0]
	for _, c := range s.coins {
		if c.HitBox().Intersects(hitbox) {
			s.bonus += c.Value
			ev |= EventCoinTaken
			continue
		}
		if c.OffScreen() {
			continue
		}
		liveCoins = append(liveCoins, c)
	}
	s.coins = liveCoins

	return ev
}

// newAnchoredCoin centers a coin in the open space between the freshly
// spawned wall and the next expected spawn point, with jitter, and places
// it vertically on the wall's gap center.
func (s *Session) newAnchoredCoin(lv level.Level, anchor WallPair) Coin {
	space := lv.WallSpacing + SpawnOffset - WallW

	x := anchor.X + WallW + space/2 - CoinW/2 + (s.rng.Float64()*2-1)*coinXJitter
	if min := anchor.X + WallW + lv.CoinMinGapFromWalls; x < min {
		x = min
	}

	y := anchor.GapY + (s.rng.Float64()*2-1)*anchor.GapSize/3 - CoinH/2
	y = core.ClampF(y, lv.CoinYPadding, FieldH-lv.CoinYPadding-CoinH)

	return NewCoin(x, y, lv.WallSpeed*lv.CoinSpeedMultiplier, lv.CoinValue, s.rng.Float64()*2*math.Pi)
}

// startRound moves to PLAYING with everything reset: score, bonus, entity
// collections, timers, level index, and the gravity-suspending grace
// window.
func (s *Session) startRound() {
	s.state = StatePlaying
	s.paused = false
	s.player.Reset()
	s.walls = s.walls[:0]
	s.enemies = s.enemies[:0]
	s.coins = s.coins[:0]
	s.score = 0
	s.bonus = 0
	s.graceFrames = GraceFrames
	s.enemyTimer = 0
	s.levelIndex = 0
}

// endRound is the one-way PLAYING -> GAME_OVER transition. It fires at
// most once per life; the session-held best score rises here while the
// platform layer owns durable persistence.
func (s *Session) endRound() {
	s.state = StateGameOver
	s.player.Alive = false
	if s.score > s.best {
		s.best = s.score
	}
}

// drift scrolls the background offset, wrapping at one field width.
func (s *Session) drift(d float64) {
	s.bgOffset -= d
	if s.bgOffset <= -FieldW {
		s.bgOffset += FieldW
	}
}

// clicked reports whether this frame's click landed inside the rect.
func clicked(in core.InputFrame, r core.Rect) bool {
	return in.Has(core.ActionClick) && r.Contains(in.ClickX, in.ClickY)
}

// State returns the current flow state.
func (s *Session) State() State {
	return s.state
}

// Score returns the obstacle-passing score.
func (s *Session) Score() int {
	return s.score
}

// Bonus returns the accumulated collectible total.
func (s *Session) Bonus() int {
	return s.bonus
}

// Best returns the best score the session knows of.
func (s *Session) Best() int {
	return s.best
}

// Paused reports whether the playing state is paused.
func (s *Session) Paused() bool {
	return s.paused
}
