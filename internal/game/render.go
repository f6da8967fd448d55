package game

import (
	"fmt"

	"github.com/vovakirdan/caveleap/internal/core"
)

// Render draws a snapshot onto the screen buffer. The simulation runs in
// virtual field units; everything here scales down to whatever cell grid
// the terminal gave us, so the game looks the same at 80x24 and 200x60.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / FieldW
	sy := float64(dst.Height()) / FieldH

	drawBackground(snap, dst, sx, sy)

	for _, w := range snap.Walls {
		drawWall(w, dst, sx, sy)
	}
	for _, c := range snap.Coins {
		drawCoin(c, dst, sx, sy)
	}
	for _, e := range snap.Enemies {
		drawEnemy(e, dst, sx, sy)
	}
	drawPlayer(snap.Player, dst, sx, sy)

	switch snap.State {
	case StateStart:
		drawStartOverlay(snap, dst, sx, sy)
	case StatePlaying:
		drawHUD(snap, dst)
		if snap.Paused {
			drawPausedOverlay(dst)
		}
	case StateGameOver:
		drawHUD(snap, dst)
		drawGameOverOverlay(snap, dst, sx, sy)
	}
}

// drawBackground scatters drifting cave speckles. Positions are fixed in
// virtual space and slide with the background offset, wrapping at one
// field width, which reads as slow parallax.
func drawBackground(snap Snapshot, dst *core.Screen, sx, sy float64) {
	for i := 0; i < 14; i++ {
		vx := float64(i*157%int(FieldW)) + snap.BGOffset
		for vx < 0 {
			vx += FieldW
		}
		for vx >= FieldW {
			vx -= FieldW
		}
		vy := float64((i*211 + 53) % int(FieldH))
		r := '·'
		if i%3 == 0 {
			r = '∙'
		}
		dst.SetColor(int(vx*sx), int(vy*sy), r, core.ColorGray)
	}
}

// drawWall renders one stalactite/stalagmite pair: solid bodies with one
// cosmetic jagged row at each gap-facing mouth.
func drawWall(w WallView, dst *core.Screen, sx, sy float64) {
	x0 := int(w.X * sx)
	x1 := int((w.X + WallW) * sx)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	width := x1 - x0

	topRows := int(w.TopHeight * sy)
	if topRows > 0 {
		dst.DrawRect(x0, 0, width, topRows-1, '█', core.ColorOrange)
		for x := x0; x < x1; x++ {
			tip := '▼'
			if (x-x0)%2 == 1 {
				tip = '▿'
			}
			dst.SetColor(x, topRows-1, tip, core.ColorOrange)
		}
	}

	bottomTop := int(w.BottomStart * sy)
	bottomRows := dst.Height() - bottomTop
	if bottomRows > 0 {
		dst.DrawRect(x0, bottomTop+1, width, bottomRows-1, '█', core.ColorOrange)
		for x := x0; x < x1; x++ {
			tip := '▲'
			if (x-x0)%2 == 1 {
				tip = '▵'
			}
			dst.SetColor(x, bottomTop, tip, core.ColorOrange)
		}
	}
}

func drawCoin(c CoinView, dst *core.Screen, sx, sy float64) {
	cx := int((c.X + CoinW/2) * sx)
	cy := int((c.Y + CoinH/2) * sy)
	dst.SetColor(cx, cy, '◉', core.ColorBrightYellow)
}

func drawEnemy(e EnemyView, dst *core.Screen, sx, sy float64) {
	x0 := int(e.X * sx)
	y0 := int(e.Y * sy)
	w := int(EnemyW * sx)
	h := int(EnemyH * sy)
	if w < 2 {
		w = 2
	}
	if h < 1 {
		h = 1
	}
	dst.DrawRect(x0, y0, w, h, '▓', core.ColorRed)
	// Beak on the leading (left) edge since enemies fly right to left.
	dst.SetColor(x0, y0+h/2, '◀', core.ColorBrightRed)
}

// drawPlayer fills the scaled sprite box and points the beak up, forward,
// or down from the tilt angle.
func drawPlayer(p PlayerView, dst *core.Screen, sx, sy float64) {
	x0 := int(p.X * sx)
	y0 := int(p.Y * sy)
	w := int(PlayerW * sx)
	h := int(PlayerH * sy)
	if w < 2 {
		w = 2
	}
	if h < 1 {
		h = 1
	}

	body := '●'
	color := core.ColorBrightYellow
	if !p.Alive {
		body = '○'
		color = core.ColorGray
	}
	dst.DrawRect(x0, y0, w, h, body, color)

	beakY := y0 + h/2
	beak := '▶'
	if p.Tilt > 8 {
		beakY = y0
		beak = '◥'
	} else if p.Tilt < -8 {
		beakY = y0 + h - 1
		beak = '◢'
	}
	dst.SetColor(x0+w-1, beakY, beak, core.ColorOrange)
}

func drawHUD(snap Snapshot, dst *core.Screen) {
	dst.DrawTextCenteredColor(0, fmt.Sprintf(" %d ", snap.Score), core.ColorBrightWhite)
	if snap.LevelName != "" {
		dst.DrawTextCenteredColor(1, snap.LevelName, core.ColorYellow)
	}
	dst.DrawTextColor(1, 0, fmt.Sprintf("◉ %d", snap.Bonus), core.ColorBrightYellow)

	best := fmt.Sprintf("Best %d", snap.Best)
	dst.DrawTextColor(dst.Width()-len(best)-1, 0, best, core.ColorGray)

	if snap.GraceActive && snap.State == StatePlaying {
		dst.DrawTextCenteredColor(dst.Height()/3, "get ready...", core.ColorGray)
	}
}

// drawButton renders a clickable zone as a box with a centered label. The
// same virtual rect the session hit-tests against is what gets drawn, so
// what you see is exactly what you can click.
func drawButton(r core.Rect, label string, dst *core.Screen, sx, sy float64) {
	x0 := int(r.X * sx)
	y0 := int(r.Y * sy)
	w := int(r.W * sx)
	h := int(r.H * sy)
	if h < 3 {
		h = 3
	}
	if w < len(label)+4 {
		w = len(label) + 4
	}
	dst.DrawBox(x0, y0, w, h, core.ColorGreen)
	dst.DrawTextColor(x0+(w-len(label))/2, y0+h/2, label, core.ColorBrightWhite)
}

func drawStartOverlay(snap Snapshot, dst *core.Screen, sx, sy float64) {
	dst.DrawTextCenteredColor(int(120*sy), "C A V E   L E A P", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(int(160*sy), "flap through the caverns, dodge the swarm", core.ColorGray)

	drawButton(StartButton(), "START", dst, sx, sy)
	dst.DrawTextCenteredColor(int(490*sy), "space/enter or click to start · q quits", core.ColorGray)

	if snap.Best > 0 {
		dst.DrawTextCenteredColor(int(200*sy), fmt.Sprintf("High Score: %d", snap.Best), core.ColorYellow)
	}
	if snap.LevelCount > 0 {
		dst.DrawTextCenteredColor(int(540*sy), fmt.Sprintf("%d tiers loaded", snap.LevelCount), core.ColorGray)
	}
}

func drawGameOverOverlay(snap Snapshot, dst *core.Screen, sx, sy float64) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Clamp(w*2/3, 24, w)
	boxH := core.Clamp(h/2, 7, h)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 3
	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorRed)

	dst.DrawTextCenteredColor(boxY+1, "G A M E   O V E R", core.ColorBrightRed)
	dst.DrawTextCenteredColor(boxY+3, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	dst.DrawTextCenteredColor(boxY+4, fmt.Sprintf("Coins: %d", snap.Bonus), core.ColorBrightYellow)
	if snap.NewRecord {
		dst.DrawTextCenteredColor(boxY+5, "NEW HIGH SCORE!", core.ColorBrightYellow)
	} else {
		dst.DrawTextCenteredColor(boxY+5, fmt.Sprintf("High Score: %d", snap.Best), core.ColorGray)
	}

	drawButton(RestartButton(), "RESTART", dst, sx, sy)
	dst.DrawTextCenteredColor(h-2, "space, r or click to restart · q quits", core.ColorGray)
}

func drawPausedOverlay(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCenteredColor(y, " P A U S E D ", core.ColorBrightWhite)
	dst.DrawTextCenteredColor(y+1, "p resumes", core.ColorGray)
}
