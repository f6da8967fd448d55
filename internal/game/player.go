package game

import (
	"math"

	"github.com/vovakirdan/caveleap/internal/core"
)

// Player is the flapping cave dweller. X is fixed at PlayerX; only Y and
// vertical velocity evolve.
type Player struct {
	Y     float64
	Vel   float64
	Alive bool

	bobT float64 // Start-screen bobbing timer
}

// NewPlayer returns a player centered vertically, alive, at rest.
func NewPlayer() Player {
	p := Player{}
	p.Reset()
	return p
}

// Reset restores the spawn pose.
func (p *Player) Reset() {
	p.Y = FieldH/2 - PlayerH/2
	p.Vel = 0
	p.Alive = true
	p.bobT = 0
}

// Flap sets the upward impulse. Dead players don't flap.
func (p *Player) Flap(impulse float64) {
	if p.Alive {
		p.Vel = impulse
	}
}

// Advance applies one tick of physics. While grace is active, velocity is
// held at zero so the player hovers. Otherwise gravity accumulates, clamped
// to MaxFallSpeed, and position integrates velocity. The top edge clamps
// position and zeroes velocity; falling past the floor clamps position and
// kills the player.
func (p *Player) Advance(gravity float64, grace bool) {
	if grace {
		p.Vel = 0
	} else {
		p.Vel += gravity
		if p.Vel > MaxFallSpeed {
			p.Vel = MaxFallSpeed
		}
	}

	p.Y += p.Vel

	if p.Y < 0 {
		p.Y = 0
		p.Vel = 0
	}

	if p.Y > FieldH-PlayerH {
		p.Y = FieldH - PlayerH
		p.Alive = false
	}
}

// Bob floats the player gently on the start screen.
func (p *Player) Bob() {
	p.bobT += 0.04
	p.Y = FieldH/2 - PlayerH/2 + math.Sin(p.bobT)*18
}

// TiltAngle derives the visual pitch from velocity: rising tilts up,
// diving tilts down, clamped to [TiltMin, TiltMax] degrees. Pure
// presentation data; it never feeds back into physics.
func (p Player) TiltAngle() float64 {
	return core.ClampF(-p.Vel*3, TiltMin, TiltMax)
}

// Bounds returns the visual sprite rectangle.
func (p Player) Bounds() core.Rect {
	return core.NewRect(PlayerX, p.Y, PlayerW, PlayerH)
}

// HitBox returns the collision rectangle, inset for forgiving hits.
func (p Player) HitBox() core.Rect {
	return p.Bounds().Inset(PlayerInset)
}
