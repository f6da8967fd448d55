package game

import (
	"math/rand"

	"github.com/vovakirdan/caveleap/internal/core"
)

// WallPair is a linked stalactite/stalagmite with one traversable gap.
// The jagged rocky tips are drawn by the renderer but excluded from the
// collision rectangles: only the rectangular pillar bodies can kill.
type WallPair struct {
	X       float64
	Speed   float64
	GapY    float64 // Gap center
	GapSize float64
	Scored  bool

	topH        float64 // Stalactite body height
	bottomStart float64 // Stalagmite body top edge
}

// NewWallPair builds a pair at x with a uniformly random gap center.
// The center is clamped so both pillar bodies keep at least GapMargin of
// height; the caller is responsible for floor-clamping gapSize.
func NewWallPair(x, gapSize, speed float64, rng *rand.Rand) WallPair {
	minGapY := GapMargin + gapSize/2
	maxGapY := FieldH - GapMargin - gapSize/2
	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + rng.Float64()*(maxGapY-minGapY)
	}

	topH := gapY - gapSize/2
	if topH < MinBodyH {
		topH = MinBodyH
	}

	return WallPair{
		X:           x,
		Speed:       speed,
		GapY:        gapY,
		GapSize:     gapSize,
		topH:        topH,
		bottomStart: gapY + gapSize/2,
	}
}

// TopHeight returns the stalactite body height.
func (w WallPair) TopHeight() float64 {
	return w.topH
}

// BottomStart returns the y-coordinate where the stalagmite body begins.
func (w WallPair) BottomStart() float64 {
	return w.bottomStart
}

// TopRect returns the collision rectangle for the stalactite body.
func (w WallPair) TopRect() core.Rect {
	return core.NewRect(w.X, 0, WallW, w.topH)
}

// BottomRect returns the collision rectangle for the stalagmite body.
func (w WallPair) BottomRect() core.Rect {
	return core.NewRect(w.X, w.bottomStart, WallW, FieldH-w.bottomStart)
}

// Advance moves the pair left by its speed.
func (w *WallPair) Advance() {
	w.X -= w.Speed
}

// OffScreen reports whether the pair has fully left the playfield.
func (w WallPair) OffScreen() bool {
	return w.X+WallW < -DespawnSlack
}

// Collides tests the given hit-box against both pillar bodies.
func (w WallPair) Collides(r core.Rect) bool {
	return w.TopRect().Intersects(r) || w.BottomRect().Intersects(r)
}
