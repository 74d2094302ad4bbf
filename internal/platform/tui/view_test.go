package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/game"
)

func TestWorldAspect(t *testing.T) {
	// A square-looking window (cells twice as tall as wide)
	if got := WorldAspect(48, 25); got != 1.0 {
		t.Errorf("WorldAspect(48, 25) = %f, want 1.0", got)
	}
	// Degenerate sizes fall back to square
	if got := WorldAspect(0, 0); got != 1.0 {
		t.Errorf("WorldAspect(0, 0) = %f, want 1.0", got)
	}
	// Wider windows stretch horizontally
	if got := WorldAspect(160, 25); got <= 1.0 {
		t.Errorf("WorldAspect(160, 25) = %f, want > 1.0", got)
	}
}

func TestViewportMapsCorners(t *testing.T) {
	s := core.NewScreen(80, 25)
	v := newViewport(core.Bounds{X: 1.5, Y: 1}, s)

	x, y := v.toCell(-1.5, 1)
	if x != 0 || y != hudRows {
		t.Errorf("Top-left corner mapped to (%d, %d), want (0, %d)", x, y, hudRows)
	}

	x, y = v.toCell(1.5, -1)
	if x != 80 || y != 24+hudRows {
		t.Errorf("Bottom-right corner mapped to (%d, %d), want (80, %d)", x, y, 24+hudRows)
	}
}

func TestDrawFrameMenu(t *testing.T) {
	s := core.NewScreen(80, 24)
	g := game.New(config.Default(), WorldAspect(80, 24), 1)

	DrawFrame(s, g.Snapshot(), 250)

	out := s.String()
	if !strings.Contains(out, "B R I C K O U T") {
		t.Error("Menu frame should contain the title")
	}
	if !strings.Contains(out, "high score: 250") {
		t.Error("Menu frame should show the high score")
	}
}

func TestDrawFramePlaying(t *testing.T) {
	s := core.NewScreen(80, 24)
	g := game.New(config.Default(), WorldAspect(80, 24), 1)
	g.Start()

	DrawFrame(s, g.Snapshot(), 0)

	out := s.String()
	if !strings.Contains(out, "score 0") {
		t.Error("Playing frame should contain the HUD score")
	}
	if !strings.Contains(out, "lives") {
		t.Error("Playing frame should contain the HUD lives")
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("Playing frame should draw targets")
	}
	if !strings.ContainsRune(out, '●') {
		t.Error("Playing frame should draw the ball")
	}
	if !strings.ContainsRune(out, '▀') {
		t.Error("Playing frame should draw the paddle")
	}
}

func TestDrawFrameGameOverOverlay(t *testing.T) {
	s := core.NewScreen(80, 24)
	g := game.New(config.Default(), WorldAspect(80, 24), 1)
	g.Start()

	// End the session: single life, ball dropped out
	snap := g.Snapshot()
	snap.State = game.StateGameOver
	snap.Score = 77

	DrawFrame(s, snap, 0)

	out := s.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("Game-over frame should contain the overlay title")
	}
	if !strings.Contains(out, "score 77") {
		t.Error("Game-over overlay should show the final score")
	}
}

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "hello")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "hello") {
		t.Errorf("First line should contain the text, got %q", lines[0])
	}
}
