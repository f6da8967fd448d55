package game

// Snapshot is the read-only view the presentation layer renders from.
// It copies everything it needs out of the session so rendering never
// touches live simulation state.
type Snapshot struct {
	State  State
	Paused bool

	Score     int
	Bonus     int
	Best      int
	NewRecord bool

	LevelIndex int
	LevelName  string
	LevelCount int

	GraceActive bool
	BGOffset    float64
	Tick        uint64

	Player  PlayerView
	Walls   []WallView
	Enemies []EnemyView
	Coins   []CoinView
}

// PlayerView carries the player pose plus the velocity-derived tilt so the
// renderer never recomputes physics.
type PlayerView struct {
	X, Y  float64
	Vel   float64
	Tilt  float64
	Alive bool
}

// WallView is the drawable geometry of one stalactite/stalagmite pair.
type WallView struct {
	X           float64
	GapY        float64
	GapSize     float64
	TopHeight   float64
	BottomStart float64
	Scored      bool
}

// EnemyView is a drawable enemy position.
type EnemyView struct {
	X, Y float64
}

// CoinView is a drawable coin position and its pickup value.
type CoinView struct {
	X, Y  float64
	Value int
}

// Snapshot builds a point-in-time copy of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:       s.state,
		Paused:      s.paused,
		Score:       s.score,
		Bonus:       s.bonus,
		Best:        s.best,
		NewRecord:   s.state == StateGameOver && s.score >= s.best && s.score > 0,
		LevelIndex:  s.levelIndex,
		LevelCount:  s.levels.Len(),
		GraceActive: s.graceFrames > 0,
		BGOffset:    s.bgOffset,
		Tick:        s.tick,
		Player: PlayerView{
			X:     PlayerX,
			Y:     s.player.Y,
			Vel:   s.player.Vel,
			Tilt:  s.player.TiltAngle(),
			Alive: s.player.Alive,
		},
	}
	if s.levelIndex >= 0 && s.levelIndex < s.levels.Len() {
		snap.LevelName = s.levels.Levels[s.levelIndex].Name
	}

	snap.Walls = make([]WallView, len(s.walls))
	for i, w := range s.walls {
		snap.Walls[i] = WallView{
			X:           w.X,
			GapY:        w.GapY,
			GapSize:     w.GapSize,
			TopHeight:   w.TopHeight(),
			BottomStart: w.BottomStart(),
			Scored:      w.Scored,
		}
	}

	snap.Enemies = make([]EnemyView, len(s.enemies))
	for i, e := range s.enemies {
		snap.Enemies[i] = EnemyView{X: e.X, Y: e.Y}
	}

	snap.Coins = make([]CoinView, len(s.coins))
	for i, c := range s.coins {
		snap.Coins[i] = CoinView{X: c.X, Y: c.Y, Value: c.Value}
	}

	return snap
}
