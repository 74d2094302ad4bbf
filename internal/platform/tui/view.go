package tui

import (
	"fmt"

	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/game"
)

// cellHeightRatio compensates for terminal cells being roughly twice as tall
// as they are wide, so the world keeps square proportions on screen.
const cellHeightRatio = 2.0

// hudRows is the number of screen rows reserved for the status line.
const hudRows = 1

var (
	hudColor     = core.NewRGBA(0.7, 0.7, 0.7)
	overlayColor = core.NewRGBA(1, 1, 1)
)

// WorldAspect converts a terminal size in cells to the world aspect ratio
// the simulation should use.
func WorldAspect(width, height int) float64 {
	usable := height - hudRows
	if width <= 0 || usable <= 0 {
		return 1
	}
	return float64(width) / (float64(usable) * cellHeightRatio)
}

// viewport maps world coordinates onto the playfield region of the screen.
type viewport struct {
	bounds core.Bounds
	width  int
	height int
}

func newViewport(bounds core.Bounds, screen *core.Screen) viewport {
	return viewport{
		bounds: bounds,
		width:  screen.Width(),
		height: screen.Height() - hudRows,
	}
}

// toCell converts a world point to a screen cell. World y points up; screen
// rows grow downward, offset by the HUD.
func (v viewport) toCell(x, y float64) (int, int) {
	cx := int((x + v.bounds.X) / (2 * v.bounds.X) * float64(v.width))
	cy := int((v.bounds.Y - y) / (2 * v.bounds.Y) * float64(v.height))
	return cx, cy + hudRows
}

// fillRect paints a world rectangle with the given rune, covering at least
// one cell so thin entities stay visible.
func (v viewport) fillRect(s *core.Screen, r core.Rect, ch rune, c core.RGBA) {
	x0, y0 := v.toCell(r.Left(), r.Top())
	x1, y1 := v.toCell(r.Right(), r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetCell(x, y, ch, c)
		}
	}
}

// DrawFrame renders one snapshot onto the screen buffer.
func DrawFrame(s *core.Screen, snap game.Snapshot, highScore int) {
	s.Clear()

	switch snap.State {
	case game.StateMenu:
		drawMenu(s, highScore)
		return
	case game.StatePlaying, game.StateGameOver:
		drawHUD(s, snap)
		drawWorld(s, snap)
		if snap.State == game.StateGameOver {
			drawGameOver(s, snap)
		}
	}
}

func drawHUD(s *core.Screen, snap game.Snapshot) {
	left := fmt.Sprintf(" score %d", snap.Score)
	center := fmt.Sprintf("level %d", snap.Level)
	right := fmt.Sprintf("lives %d ", snap.Lives)
	s.DrawTextColored(0, 0, left, hudColor)
	s.DrawTextColored((s.Width()-len(center))/2, 0, center, hudColor)
	s.DrawTextColored(s.Width()-len(right), 0, right, hudColor)
}

func drawWorld(s *core.Screen, snap game.Snapshot) {
	v := newViewport(snap.Bounds, s)

	for i := range snap.Targets {
		t := &snap.Targets[i]
		if !t.Active {
			continue
		}
		v.fillRect(s, t.Rect, '█', t.Color)
	}

	for i := range snap.Pickups {
		p := &snap.Pickups[i]
		if !p.Active {
			continue
		}
		x, y := v.toCell(p.CenterX(), p.CenterY())
		s.SetCell(x, y, '◆', p.Color)
	}

	v.fillRect(s, snap.Paddle.Rect, '▀', snap.Paddle.Color)

	bx, by := v.toCell(snap.Ball.CenterX(), snap.Ball.CenterY())
	s.SetCell(bx, by, '●', snap.Ball.Color)
}

func drawMenu(s *core.Screen, highScore int) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-3, "B R I C K O U T")
	if highScore > 0 {
		s.DrawTextCentered(mid-1, fmt.Sprintf("high score: %d", highScore))
	}
	s.DrawTextCentered(mid+1, "enter to play")
	s.DrawTextCentered(mid+2, "a/d or arrows to move, space to launch")
	s.DrawTextCentered(mid+3, "q to quit")
}

func drawGameOver(s *core.Screen, snap game.Snapshot) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d  level %d", snap.Score, snap.Level),
		"enter to continue",
	}

	boxW := 0
	for _, l := range lines {
		if len(l)+4 > boxW {
			boxW = len(l) + 4
		}
	}
	boxH := len(lines) + 2
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2

	s.FillRect(x, y, boxW, boxH, ' ', overlayColor)
	s.DrawBox(x, y, boxW, boxH)
	for i, l := range lines {
		s.DrawTextColored(x+(boxW-len(l))/2, y+1+i, l, overlayColor)
	}
}
