// Package game implements the Cave Leap core: a side-scrolling cave run
// where the player flaps through gaps in rock pillars while dodging raptors
// and collecting coins. The simulation runs in a fixed virtual playfield of
// 800x600 float units at 60 ticks per second; the presentation layer owns
// the mapping to terminal cells.
//
// The package carries no external dependencies so the logic stays pure and
// deterministic under a seeded RNG.
package game

// Virtual playfield dimensions.
const (
	FieldW = 800.0
	FieldH = 600.0
)

// Player tunables not owned by the level table.
const (
	PlayerW     = 70.0
	PlayerH     = 70.0
	PlayerX     = 150.0 // Fixed horizontal position of the player
	PlayerInset = 8.0   // Hit-box inset from sprite bounds

	DefaultGravity     = 0.3
	DefaultFlapImpulse = -6.0
	MaxFallSpeed       = 7.0

	TiltMin = -25.0 // Steepest nose-down angle, degrees
	TiltMax = 20.0  // Steepest nose-up angle, degrees
)

// Wall geometry.
const (
	WallW     = 72.0
	WallTip   = 22.0 // Jagged tip length; cosmetic, excluded from collision
	GapMargin = 70.0 // Minimum pillar body height at either screen edge
	MinBodyH  = 10.0
	// GapFloorPad keeps every gap traversable: gap >= PlayerH + GapFloorPad.
	GapFloorPad = 80.0
	// SpawnOffset places new walls past the right edge.
	SpawnOffset = 40.0
	// DespawnSlack is how far past the left edge an entity must travel
	// before removal.
	DespawnSlack = 10.0
)

// Enemy geometry and waveform bounds.
const (
	EnemyW     = 70.0
	EnemyH     = 70.0
	EnemyInset = 10.0

	enemyEdgePad    = 40.0 // Keep the oscillation base line away from the edges
	enemyMinWaveAmp = 25.0
	enemyMaxWaveAmp = 55.0
	enemyMinWaveSpd = 0.025
	enemyMaxWaveSpd = 0.055
)

// Coin geometry and bob motion.
const (
	CoinW     = 32.0
	CoinH     = 32.0
	CoinInset = 4.0

	coinBobStep = 0.08
	coinBobAmp  = 6.0
	coinXJitter = 20.0
)

// GraceFrames is the no-gravity hover at round start, giving the player
// time to react. The first flap cancels it.
const GraceFrames = 50

// Background drift per state, virtual units per tick. The playing drift is
// WallSpeed * bgDriftPlayFactor.
const (
	bgDriftStart      = 0.3
	bgDriftPlayFactor = 0.25
	bgDriftGameOver   = 0.15
)

// State is the game flow state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Events is a bitset of things that happened during one Step. The platform
// layer maps events to fire-and-forget side effects (audio cues, score
// persistence) without reaching into session state.
type Events uint8

const (
	EventStarted Events = 1 << iota
	EventFlapped
	EventScored
	EventCoinTaken
	EventEnemySpawned
	EventDied
)

// Has reports whether the given event fired.
func (e Events) Has(f Events) bool {
	return e&f != 0
}
