package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/caveleap/internal/core"
)

// Enemy is a raptor gliding in from the right on a sinusoidal path around
// a random base line.
type Enemy struct {
	X, Y  float64
	Speed float64

	baseY   float64
	waveT   float64
	waveAmp float64
	waveSpd float64
}

// NewEnemy spawns an enemy just off the right edge with randomized
// waveform parameters.
func NewEnemy(speed float64, rng *rand.Rand) Enemy {
	baseY := enemyEdgePad + rng.Float64()*(FieldH-EnemyH-2*enemyEdgePad)
	return Enemy{
		X:       FieldW + 20 + rng.Float64()*100,
		Y:       baseY,
		Speed:   speed,
		baseY:   baseY,
		waveT:   rng.Float64() * 2 * math.Pi,
		waveAmp: enemyMinWaveAmp + rng.Float64()*(enemyMaxWaveAmp-enemyMinWaveAmp),
		waveSpd: enemyMinWaveSpd + rng.Float64()*(enemyMaxWaveSpd-enemyMinWaveSpd),
	}
}

// Advance moves left and re-derives the vertical position from the wave.
func (e *Enemy) Advance() {
	e.X -= e.Speed
	e.waveT += e.waveSpd
	e.Y = e.baseY + math.Sin(e.waveT)*e.waveAmp
}

// OffScreen reports whether the enemy has fully left the playfield.
func (e Enemy) OffScreen() bool {
	return e.X+EnemyW < -DespawnSlack
}

// Bounds returns the visual sprite rectangle.
func (e Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, EnemyW, EnemyH)
}

// HitBox returns the collision rectangle, inset for forgiving hits.
func (e Enemy) HitBox() core.Rect {
	return e.Bounds().Inset(EnemyInset)
}
