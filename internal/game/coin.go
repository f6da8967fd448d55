package game

import (
	"math"

	"github.com/vovakirdan/caveleap/internal/core"
)

// Coin is a collectible that scrolls left with a gentle bob. Picking it up
// credits Value to the bonus total; there is no failure case.
type Coin struct {
	X, Y  float64
	Speed float64
	Value int

	baseY float64
	bobT  float64
}

// NewCoin places a coin at (x, y) moving left at the given speed.
// The bob phase comes from the session RNG so coins don't bounce in
// lockstep.
func NewCoin(x, y, speed float64, value int, phase float64) Coin {
	return Coin{
		X:     x,
		Y:     y,
		Speed: speed,
		Value: value,
		baseY: y,
		bobT:  phase,
	}
}

// Advance moves left and bobs around the base line.
func (c *Coin) Advance() {
	c.X -= c.Speed
	c.bobT += coinBobStep
	c.Y = c.baseY + math.Sin(c.bobT)*coinBobAmp
}

// OffScreen reports whether the coin has fully left the playfield.
func (c Coin) OffScreen() bool {
	return c.X+CoinW < -DespawnSlack
}

// Bounds returns the visual sprite rectangle.
func (c Coin) Bounds() core.Rect {
	return core.NewRect(c.X, c.Y, CoinW, CoinH)
}

// HitBox returns the collision rectangle, inset for forgiving pickups.
func (c Coin) HitBox() core.Rect {
	return c.Bounds().Inset(CoinInset)
}
