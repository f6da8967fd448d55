// Package level provides the score-indexed difficulty table.
// A Table is an ordered list of tiers; the tier whose score_threshold
// strictly exceeds the current score is the active one. Lookup is a pure
// function recomputed every frame, so a score change takes effect on the
// very next update.
package level

import "fmt"

// Level is one difficulty tier. All distances and speeds are in virtual
// playfield units (800x600 field) per tick at 60 ticks per second.
type Level struct {
	Name           string `yaml:"name"`
	ScoreThreshold int    `yaml:"score_threshold"` // Exclusive upper bound activating this tier

	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse,omitempty"` // Optional; 0 inherits the player default

	WallSpeed   float64 `yaml:"wall_speed"`
	GapSize     float64 `yaml:"gap_size"`
	WallSpacing float64 `yaml:"wall_spacing"`

	EnemySpeed       float64 `yaml:"enemy_speed"`
	EnemySpawnFrames int     `yaml:"enemy_spawn_frames"`

	CoinSpawnChance     float64 `yaml:"coin_spawn_chance"`
	MaxCoinsOnScreen    int     `yaml:"max_coins_on_screen"`
	CoinSpeedMultiplier float64 `yaml:"coin_speed_multiplier"`
	CoinValue           int     `yaml:"coin_value"`
	CoinMinGapFromWalls float64 `yaml:"coin_min_gap_from_walls"`
	CoinYPadding        float64 `yaml:"coin_y_padding"`
}

// Table is an ordered collection of difficulty tiers.
// Immutable after load.
type Table struct {
	Levels []Level `yaml:"levels"`
}

// Len returns the number of tiers.
func (t Table) Len() int {
	return len(t.Levels)
}

// ForScore returns the active tier for the given score and its index:
// the first entry whose ScoreThreshold strictly exceeds the score, or the
// last entry when every threshold has been passed (sustained maximum
// difficulty).
func (t Table) ForScore(score int) (Level, int) {
	for i, lv := range t.Levels {
		if score < lv.ScoreThreshold {
			return lv, i
		}
	}
	last := len(t.Levels) - 1
	return t.Levels[last], last
}

// Validate checks the table against the startup contract: running with
// undefined tunables is worse than refusing to start.
func (t Table) Validate() error {
	if len(t.Levels) == 0 {
		return fmt.Errorf("level: table has no entries")
	}

	prevThreshold := 0
	for i, lv := range t.Levels {
		where := fmt.Sprintf("level: entry %d (%q)", i, lv.Name)

		if lv.ScoreThreshold <= prevThreshold {
			return fmt.Errorf("%s: score_threshold %d must exceed previous threshold %d", where, lv.ScoreThreshold, prevThreshold)
		}
		prevThreshold = lv.ScoreThreshold

		if lv.Gravity <= 0 {
			return fmt.Errorf("%s: gravity must be positive, got %v", where, lv.Gravity)
		}
		if lv.FlapImpulse > 0 {
			return fmt.Errorf("%s: flap_impulse must be negative (upward) or omitted, got %v", where, lv.FlapImpulse)
		}
		if lv.WallSpeed <= 0 {
			return fmt.Errorf("%s: wall_speed must be positive, got %v", where, lv.WallSpeed)
		}
		if lv.GapSize <= 0 {
			return fmt.Errorf("%s: gap_size must be positive, got %v", where, lv.GapSize)
		}
		if lv.WallSpacing <= 0 {
			return fmt.Errorf("%s: wall_spacing must be positive, got %v", where, lv.WallSpacing)
		}
		if lv.EnemySpeed <= 0 {
			return fmt.Errorf("%s: enemy_speed must be positive, got %v", where, lv.EnemySpeed)
		}
		if lv.EnemySpawnFrames <= 0 {
			return fmt.Errorf("%s: enemy_spawn_frames must be positive, got %d", where, lv.EnemySpawnFrames)
		}
		if lv.CoinSpawnChance < 0 || lv.CoinSpawnChance > 1 {
			return fmt.Errorf("%s: coin_spawn_chance must be in [0, 1], got %v", where, lv.CoinSpawnChance)
		}
		if lv.MaxCoinsOnScreen < 0 {
			return fmt.Errorf("%s: max_coins_on_screen must not be negative, got %d", where, lv.MaxCoinsOnScreen)
		}
		if lv.CoinSpeedMultiplier <= 0 {
			return fmt.Errorf("%s: coin_speed_multiplier must be positive, got %v", where, lv.CoinSpeedMultiplier)
		}
		if lv.CoinValue <= 0 {
			return fmt.Errorf("%s: coin_value must be positive, got %d", where, lv.CoinValue)
		}
		if lv.CoinMinGapFromWalls < 0 {
			return fmt.Errorf("%s: coin_min_gap_from_walls must not be negative, got %v", where, lv.CoinMinGapFromWalls)
		}
		if lv.CoinYPadding < 0 {
			return fmt.Errorf("%s: coin_y_padding must not be negative, got %v", where, lv.CoinYPadding)
		}
	}
	return nil
}
