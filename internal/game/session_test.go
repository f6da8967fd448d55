package game

import (
	"testing"

	"github.com/vovakirdan/caveleap/internal/core"
	"github.com/vovakirdan/caveleap/internal/level"
)

// quietTable is a single-tier table with coins and enemies effectively
// disabled, so tests can reason about walls and the player in isolation.
func quietTable() level.Table {
	return level.Table{Levels: []level.Level{{
		Name:                "test",
		ScoreThreshold:      1000,
		Gravity:             DefaultGravity,
		WallSpeed:           3.0,
		GapSize:             170,
		WallSpacing:         320,
		EnemySpeed:          3.0,
		EnemySpawnFrames:    100000,
		CoinSpawnChance:     0,
		MaxCoinsOnScreen:    3,
		CoinSpeedMultiplier: 1.0,
		CoinValue:           1,
		CoinMinGapFromWalls: 90,
		CoinYPadding:        60,
	}}}
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestSessionStartsOnStartScreen(t *testing.T) {
	s := NewSession(1, quietTable(), 0)
	if s.State() != StateStart {
		t.Fatalf("new session state = %v, want %v", s.State(), StateStart)
	}

	// Idle frames on the start screen must not begin a round.
	for i := 0; i < 10; i++ {
		if ev := s.Step(core.NewInputFrame()); ev != 0 {
			t.Fatalf("idle start-screen frame fired events %b", ev)
		}
	}
	if s.State() != StateStart {
		t.Fatalf("idle frames left start screen, state = %v", s.State())
	}
}

func TestSessionStartAction(t *testing.T) {
	s := NewSession(1, quietTable(), 0)

	ev := s.Step(frameWith(core.ActionStart))
	if !ev.Has(EventStarted) {
		t.Error("start action did not fire EventStarted")
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v, want %v", s.State(), StatePlaying)
	}
	if s.graceFrames != GraceFrames {
		t.Errorf("grace frames = %d, want %d", s.graceFrames, GraceFrames)
	}
}

func TestSessionStartClick(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		wantsStart bool
	}{
		{"button center", 400, 410, true},
		{"button corner", StartButton().X + 1, StartButton().Y + 1, true},
		{"top of field", 400, 50, false},
		{"left of button", StartButton().X - 5, 410, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(1, quietTable(), 0)
			in := core.NewInputFrame()
			in.SetClick(tc.x, tc.y)
			s.Step(in)
			got := s.State() == StatePlaying
			if got != tc.wantsStart {
				t.Errorf("click at (%v, %v): started = %v, want %v", tc.x, tc.y, got, tc.wantsStart)
			}
		})
	}
}

func TestSessionGraceCancelledByFlap(t *testing.T) {
	s := NewSession(1, quietTable(), 0)
	s.Step(frameWith(core.ActionStart))

	// Idle frames burn grace one at a time and hold position.
	startY := s.player.Y
	s.Step(core.NewInputFrame())
	if s.player.Y != startY {
		t.Fatalf("player moved during grace: %v -> %v", startY, s.player.Y)
	}
	if s.graceFrames != GraceFrames-1 {
		t.Fatalf("grace frames = %d, want %d", s.graceFrames, GraceFrames-1)
	}

	// The first flap ends the hover immediately.
	ev := s.Step(frameWith(core.ActionFlap))
	if !ev.Has(EventFlapped) {
		t.Error("flap did not fire EventFlapped")
	}
	if s.graceFrames != 0 {
		t.Errorf("grace frames after flap = %d, want 0", s.graceFrames)
	}
}

func TestSessionScoresOncePerWall(t *testing.T) {
	s := NewSession(1, quietTable(), 0)
	s.Step(frameWith(core.ActionStart))

	// Park a stationary, already-passed wall with a gap wide enough that
	// the hovering player can't touch it.
	s.walls = []WallPair{{
		X: PlayerX - WallW - 1, Speed: 0,
		GapY: 300, GapSize: 400, topH: 100, bottomStart: 500,
	}}

	ev := s.Step(core.NewInputFrame())
	if !ev.Has(EventScored) {
		t.Fatal("passed wall did not fire EventScored")
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1", s.Score())
	}

	ev = s.Step(core.NewInputFrame())
	if ev.Has(EventScored) {
		t.Error("same wall scored twice")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d after second frame, want 1", s.Score())
	}
}

func TestSessionDiesOnWallCollision(t *testing.T) {
	s := NewSession(1, quietTable(), 0)
	s.Step(frameWith(core.ActionStart))

	// Stalactite body reaches well past the hovering player's hit-box.
	s.walls = []WallPair{{
		X: PlayerX, Speed: 0,
		GapY: 450, GapSize: 100, topH: 400, bottomStart: 500,
	}}

	ev := s.Step(core.NewInputFrame())
	if !ev.Has(EventDied) {
		t.Fatal("collision did not fire EventDied")
	}
	if s.State() != StateGameOver {
		t.Fatalf("state = %v, want %v", s.State(), StateGameOver)
	}
	if s.player.Alive {
		t.Error("player still alive after fatal collision")
	}

	// Game-over frames are inert until a restart intent arrives.
	y := s.player.Y
	s.Step(core.NewInputFrame())
	if s.player.Y != y || s.State() != StateGameOver {
		t.Error("game-over frame mutated the frozen round")
	}
}

func TestSessionDiesOnEnemyContact(t *testing.T) {
	s := NewSession(1, quietTable(), 0)
	s.Step(frameWith(core.ActionStart))

	s.enemies = []Enemy{{X: PlayerX, Y: s.player.Y, Speed: 0, baseY: s.player.Y}}
	ev := s.Step(core.NewInputFrame())
	if !ev.Has(EventDied) {
		t.Fatal("enemy overlap did not fire EventDied")
	}
	if s.State() != StateGameOver {
		t.Fatalf("state = %v, want %v", s.State(), StateGameOver)
	}
}

func TestSessionCoinPickupOnce(t *testing.T) {
	s := NewSession(1, quietTable(), 0)
	s.Step(frameWith(core.ActionStart))

	s.coins = []Coin{NewCoin(PlayerX, s.player.Y, 0, 5, 0)}
	ev := s.Step(core.NewInputFrame())
	if !ev.Has(EventCoinTaken) {
		t.Fatal("overlapping coin did not fire EventCoinTaken")
	}
	if s.Bonus() != 5 {
		t.Errorf("bonus = %d, want 5", s.Bonus())
	}
	if len(s.coins) != 0 {
		t.Errorf("picked-up coin still live, %d coins remain", len(s.coins))
	}

	// Coins never end the round.
	if s.State() != StatePlaying {
		t.Errorf("coin pickup changed state to %v", s.State())
	}
}

func TestSessionEnemySpawnCadence(t *testing.T) {
	table := quietTable()
	table.Levels[0].EnemySpawnFrames = 10

	s := NewSession(1, table, 0)
	s.Step(frameWith(core.ActionStart))

	for i := 1; i <= 10; i++ {
		ev := s.Step(core.NewInputFrame())
		spawned := ev.Has(EventEnemySpawned)
		if want := i == 10; spawned != want {
			t.Fatalf("frame %d: spawned = %v, want %v", i, spawned, want)
		}
	}
	if len(s.enemies) != 1 {
		t.Fatalf("enemy count = %d, want 1", len(s.enemies))
	}
	if s.enemyTimer != 0 {
		t.Errorf("spawn did not reset cadence timer, timer = %d", s.enemyTimer)
	}
}

func TestSessionBestScore(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		best       int
		wantBest   int
		wantRecord bool
	}{
		{"beats best", 7, 5, 7, true},
		{"ties best", 5, 5, 5, true},
		{"under best", 3, 5, 5, false},
		{"zero score", 0, 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(1, quietTable(), tc.best)
			s.Step(frameWith(core.ActionStart))
			s.score = tc.score
			s.endRound()

			if s.Best() != tc.wantBest {
				t.Errorf("best = %d, want %d", s.Best(), tc.wantBest)
			}
			if got := s.Snapshot().NewRecord; got != tc.wantRecord {
				t.Errorf("NewRecord = %v, want %v", got, tc.wantRecord)
			}
		})
	}
}

func TestSessionRestartResets(t *testing.T) {
	s := NewSession(1, quietTable(), 0)
	s.Step(frameWith(core.ActionStart))
	s.score = 9
	s.bonus = 4
	s.endRound()

	ev := s.Step(frameWith(core.ActionRestart))
	if !ev.Has(EventStarted) {
		t.Fatal("restart did not fire EventStarted")
	}
	if s.State() != StatePlaying {
		t.Fatalf("state = %v, want %v", s.State(), StatePlaying)
	}
	if s.Score() != 0 || s.Bonus() != 0 {
		t.Errorf("score/bonus = %d/%d after restart, want 0/0", s.Score(), s.Bonus())
	}
	if len(s.walls) != 0 || len(s.enemies) != 0 || len(s.coins) != 0 {
		t.Error("entity collections survived restart")
	}
	if s.graceFrames != GraceFrames {
		t.Errorf("grace frames = %d after restart, want %d", s.graceFrames, GraceFrames)
	}
	if !s.player.Alive {
		t.Error("player not revived on restart")
	}
	if s.Best() != 9 {
		t.Errorf("best = %d after restart, want 9 carried over", s.Best())
	}
}

func TestSessionRestartTriggers(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
	}{
		{"restart key", core.ActionRestart},
		{"enter", core.ActionStart},
		{"flap", core.ActionFlap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(1, quietTable(), 0)
			s.Step(frameWith(core.ActionStart))
			s.endRound()

			ev := s.Step(frameWith(tt.action))
			if !ev.Has(EventStarted) {
				t.Fatal("restart did not fire EventStarted")
			}
			if s.State() != StatePlaying {
				t.Fatalf("state = %v after %s, want %v", s.State(), tt.name, StatePlaying)
			}
		})
	}
}

func TestSessionRestartClick(t *testing.T) {
	s := NewSession(1, quietTable(), 0)
	s.Step(frameWith(core.ActionStart))
	s.endRound()

	in := core.NewInputFrame()
	in.SetClick(400, RestartButton().Y+10)
	s.Step(in)
	if s.State() != StatePlaying {
		t.Fatalf("restart click ignored, state = %v", s.State())
	}
}

func TestSessionPauseFreezes(t *testing.T) {
	s := NewSession(1, quietTable(), 0)
	s.Step(frameWith(core.ActionStart))

	// Run past grace so gravity is live.
	for i := 0; i < GraceFrames; i++ {
		s.Step(frameWith(core.ActionFlap))
	}

	s.Step(frameWith(core.ActionPause))
	if !s.Paused() {
		t.Fatal("pause action did not pause")
	}

	y, vel := s.player.Y, s.player.Vel
	for i := 0; i < 30; i++ {
		s.Step(core.NewInputFrame())
	}
	if s.player.Y != y || s.player.Vel != vel {
		t.Error("paused frames advanced the simulation")
	}

	s.Step(frameWith(core.ActionPause))
	if s.Paused() {
		t.Fatal("second pause action did not resume")
	}
}

func TestSessionLevelProgression(t *testing.T) {
	table := level.Table{Levels: []level.Level{
		{Name: "first", ScoreThreshold: 2, Gravity: 0.3, WallSpeed: 3, GapSize: 170,
			WallSpacing: 320, EnemySpeed: 3, EnemySpawnFrames: 100000,
			MaxCoinsOnScreen: 3, CoinSpeedMultiplier: 1, CoinValue: 1,
			CoinMinGapFromWalls: 90, CoinYPadding: 60},
		{Name: "second", ScoreThreshold: 1000, Gravity: 0.35, WallSpeed: 4, GapSize: 150,
			WallSpacing: 300, EnemySpeed: 4, EnemySpawnFrames: 100000,
			MaxCoinsOnScreen: 3, CoinSpeedMultiplier: 1, CoinValue: 1,
			CoinMinGapFromWalls: 90, CoinYPadding: 60},
	}}

	s := NewSession(1, table, 0)
	s.Step(frameWith(core.ActionStart))

	s.Step(core.NewInputFrame())
	if got := s.Snapshot().LevelName; got != "first" {
		t.Fatalf("level at score 0 = %q, want %q", got, "first")
	}

	// A score equal to the first threshold belongs to the next tier.
	s.score = 2
	s.Step(core.NewInputFrame())
	if got := s.Snapshot().LevelName; got != "second" {
		t.Fatalf("level at score 2 = %q, want %q", got, "second")
	}
}

func TestSessionDeterminism(t *testing.T) {
	table := quietTable()
	table.Levels[0].EnemySpawnFrames = 40
	table.Levels[0].CoinSpawnChance = 0.8

	script := func(s *Session) {
		s.Step(frameWith(core.ActionStart))
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%25 == 0 {
				in.Set(core.ActionFlap)
			}
			s.Step(in)
			if s.State() == StateGameOver {
				s.Step(frameWith(core.ActionRestart))
			}
		}
	}

	a := NewSession(42, table, 0)
	b := NewSession(42, table, 0)
	script(a)
	script(b)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Score != sb.Score || sa.Bonus != sb.Bonus || sa.State != sb.State {
		t.Fatalf("diverged: %d/%d/%v vs %d/%d/%v",
			sa.Score, sa.Bonus, sa.State, sb.Score, sb.Bonus, sb.State)
	}
	if len(sa.Walls) != len(sb.Walls) {
		t.Fatalf("wall counts diverged: %d vs %d", len(sa.Walls), len(sb.Walls))
	}
	for i := range sa.Walls {
		if sa.Walls[i] != sb.Walls[i] {
			t.Fatalf("wall %d diverged: %+v vs %+v", i, sa.Walls[i], sb.Walls[i])
		}
	}
	if sa.Player != sb.Player {
		t.Fatalf("player diverged: %+v vs %+v", sa.Player, sb.Player)
	}
}

func TestSessionRenderSmoke(t *testing.T) {
	s := NewSession(3, quietTable(), 10)
	screen := core.NewScreen(80, 24)

	Render(s.Snapshot(), screen)

	s.Step(frameWith(core.ActionStart))
	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		if i%20 == 0 {
			in.Set(core.ActionFlap)
		}
		s.Step(in)
		Render(s.Snapshot(), screen)
	}

	s.endRound()
	Render(s.Snapshot(), screen)
}
