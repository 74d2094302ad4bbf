package game

import (
	"math"
	"time"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
)

// State is the top-level phase of a brickout session.
type State string

const (
	StateMenu     State = "menu"
	StatePlaying  State = "playing"
	StateGameOver State = "gameover"
)

// Hit-count milestones within a level that each bump the ball speed once.
const (
	speedMilestoneFirst  = 4
	speedMilestoneSecond = 12
)

// Session holds the score/lives/level counters plus the per-level one-shot
// flags. All flags reset when a new level or a new game begins; a life loss
// keeps them as-is.
type Session struct {
	Score int
	Lives int
	Level int

	FirstTopTier    bool // Top-tier target contacted this level
	FirstSecondTier bool // Second-tier target contacted this level
	PaddleShrunk    bool // Ceiling-contact paddle shrink already applied
}

// Game is the complete brickout simulation. It is single-threaded by
// contract: Step, Resize, and the accessors must all be called from the same
// goroutine that owns the frame loop.
type Game struct {
	cfg    config.Config
	bounds core.Bounds
	state  State

	session Session
	paddle  Paddle
	ball    Ball
	targets []Target
	pickups []Pickup

	// layoutRNG is reseeded with the fixed layout seed before every arena
	// build so the special-target placement never depends on gameplay
	// draws. playRNG drives launch angles and is session-seeded.
	layoutRNG *RNG
	playRNG   *RNG

	// baseSpeed is the configured initial ball speed, rescaled on resize.
	// Bonus speed caps and floors are expressed relative to it.
	baseSpeed float64
}

// New creates a game in the menu state for the given arena aspect ratio.
// A zero seed picks one from the wall clock.
func New(cfg config.Config, aspect float64, seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:       cfg,
		bounds:    core.BoundsForAspect(aspect),
		state:     StateMenu,
		layoutRNG: NewRNG(cfg.Layout.Seed),
		playRNG:   NewRNG(seed),
		baseSpeed: cfg.Physics.BallSpeed,
	}
	return g
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Score returns the session score.
func (g *Game) Score() int { return g.session.Score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.session.Lives }

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.session.Level }

// Bounds returns the current arena half-extents.
func (g *Game) Bounds() core.Bounds { return g.bounds }

// Paddle returns the current paddle.
func (g *Game) Paddle() Paddle { return g.paddle }

// Ball returns the current ball.
func (g *Game) Ball() Ball { return g.ball }

// Targets returns the live target slice. Callers must not mutate it.
func (g *Game) Targets() []Target { return g.targets }

// Pickups returns the active falling pickups. Callers must not mutate it.
func (g *Game) Pickups() []Pickup { return g.pickups }

// Start begins a new game: full lives, level 1, fresh arena, ball stuck to a
// centered paddle. Valid from the menu only.
func (g *Game) Start() {
	if g.state != StateMenu {
		return
	}
	g.session = Session{
		Lives: g.cfg.Gameplay.Lives,
		Level: 1,
	}
	g.buildLevel()
	g.state = StatePlaying
}

// Acknowledge dismisses the game-over screen and returns to the menu.
func (g *Game) Acknowledge() {
	if g.state != StateGameOver {
		return
	}
	g.state = StateMenu
}

// Step advances the simulation by dt seconds under the given input snapshot.
// It is total: every call produces a valid next state.
func (g *Game) Step(dt float64, in core.InputFrame) {
	switch g.state {
	case StateMenu:
		if in.Has(core.ActionStart) {
			g.Start()
		}
	case StatePlaying:
		g.stepPlaying(dt, in)
	case StateGameOver:
		if in.Has(core.ActionAcknowledge) {
			g.Acknowledge()
		}
	}
}

func (g *Game) stepPlaying(dt float64, in core.InputFrame) {
	// Paddle movement from held actions
	if in.Has(core.ActionLeft) {
		g.paddle.Pos.X -= g.cfg.Physics.PaddleSpeed * dt
	}
	if in.Has(core.ActionRight) {
		g.paddle.Pos.X += g.cfg.Physics.PaddleSpeed * dt
	}
	g.paddle.ClampX(g.bounds.X)

	if g.ball.StuckToPaddle {
		g.ball.PlaceOnPaddle(&g.paddle)
		if in.Has(core.ActionLaunch) {
			LaunchBall(&g.ball, g.playRNG)
		}
	} else {
		g.ball.Pos = g.ball.Pos.Add(g.ball.Velocity.Scale(dt))

		if ResolveBounds(&g.ball, g.bounds) {
			g.shrinkPaddleOnce()
		}
		ResolvePaddle(&g.ball, &g.paddle)
		g.handleTargetCollision()

		if g.ball.Top() < -g.bounds.Y {
			g.loseLife()
			if g.state != StatePlaying {
				return
			}
		}
	}

	g.updatePickups(dt)

	if g.levelCleared() {
		g.advanceLevel()
	}
}

// handleTargetCollision resolves at most one ball-target collision per step.
// Targets are tested in grid order and the first overlapping one wins; any
// others wait for subsequent steps.
func (g *Game) handleTargetCollision() {
	for i := range g.targets {
		t := &g.targets[i]
		if !t.Active || !g.ball.Rect.Overlaps(t.Rect) {
			continue
		}

		hit := ResolveTarget(&g.ball, t)
		if hit.Destructible {
			if hit.Destroyed {
				g.session.Score += t.Points
				if t.IsBonus {
					g.spawnPickup(*t)
				}
			}
			g.ball.HitCount++
			g.applySpeedBoosts(t.Tier)
		}
		break
	}
}

// applySpeedBoosts fires the per-level speed-up triggers after a destructible
// hit: the two hit-count milestones and the first contact with each of the
// top two tiers. Each trigger fires at most once per level.
func (g *Game) applySpeedBoosts(tier Tier) {
	boosted := false

	if g.ball.HitCount == speedMilestoneFirst || g.ball.HitCount == speedMilestoneSecond {
		g.ball.SpeedMagnitude *= g.cfg.Physics.SpeedIncrement
		boosted = true
	}
	if tier == TierTop && !g.session.FirstTopTier {
		g.session.FirstTopTier = true
		g.ball.SpeedMagnitude *= g.cfg.Physics.SpeedIncrement
		boosted = true
	}
	if tier == TierSecond && !g.session.FirstSecondTier {
		g.session.FirstSecondTier = true
		g.ball.SpeedMagnitude *= g.cfg.Physics.SpeedIncrement
		boosted = true
	}

	if boosted {
		NormalizeVelocity(&g.ball)
	}
}

// shrinkPaddleOnce halves the paddle width on the first ceiling contact of a
// level. Repeat contacts are no-ops until the flag resets.
func (g *Game) shrinkPaddleOnce() {
	if g.session.PaddleShrunk {
		return
	}
	g.session.PaddleShrunk = true
	g.paddle.Size.X /= 2
	g.paddle.ClampX(g.bounds.X)
}

// loseLife handles the ball crossing the bottom boundary. Score, level,
// target layout, pickups, and one-shot flags are all kept; only the paddle
// and ball reset. At zero lives the session ends.
func (g *Game) loseLife() {
	g.session.Lives--
	if g.session.Lives <= 0 {
		g.state = StateGameOver
		return
	}
	g.resetPaddleAndBall()
}

// levelCleared reports whether every non-wall target is inactive.
func (g *Game) levelCleared() bool {
	for i := range g.targets {
		if g.targets[i].IsWall {
			continue
		}
		if g.targets[i].Active {
			return false
		}
	}
	return len(g.targets) > 0
}

// advanceLevel rebuilds the arena for the next level. Score and lives carry
// over; one-shot flags, hit count, and pickups do not.
func (g *Game) advanceLevel() {
	g.session.Level++
	g.buildLevel()
}

// buildLevel constructs a fresh arena and resets the per-level state. The
// layout RNG is reseeded with the fixed layout seed first so the grid is
// reproducible no matter how many gameplay draws preceded it.
func (g *Game) buildLevel() {
	g.session.FirstTopTier = false
	g.session.FirstSecondTier = false
	g.session.PaddleShrunk = false
	g.pickups = nil

	g.layoutRNG.Seed(g.cfg.Layout.Seed)
	g.targets = BuildArena(g.cfg.Layout, g.bounds.X, g.layoutRNG)

	g.resetPaddleAndBall()
}

// resetPaddleAndBall centers the paddle at the bottom and sticks a fresh ball
// on top of it at the base speed. The ceiling-shrink penalty persists across
// life losses: while the flag is set the paddle comes back at half width.
func (g *Game) resetPaddleAndBall() {
	width := g.cfg.Paddle.Width
	if g.session.PaddleShrunk {
		width /= 2
	}
	g.paddle = Paddle{
		Rect: core.NewRect(
			-width/2,
			g.cfg.Paddle.Y,
			width,
			g.cfg.Paddle.Height,
		),
		Color: core.NewRGBA(0.8, 0.8, 0.9),
	}
	g.ball = Ball{
		Rect: core.Rect{
			Size: core.Vec2{X: 2 * g.cfg.Ball.Radius, Y: 2 * g.cfg.Ball.Radius},
		},
		Color:          core.NewRGBA(1, 1, 1),
		SpeedMagnitude: g.baseSpeed,
		StuckToPaddle:  true,
	}
	g.ball.PlaceOnPaddle(&g.paddle)
}

// Resize adapts the simulation to a new arena aspect ratio. Target and
// paddle geometry re-derive from the new bounds; ball speeds rescale by the
// mean bound change so gameplay pace tracks the visible arena size.
func (g *Game) Resize(aspect float64) {
	next := core.BoundsForAspect(aspect)
	if next == g.bounds {
		return
	}
	old := g.bounds
	g.bounds = next

	scale := (g.bounds.X/old.X + g.bounds.Y/old.Y) / 2
	g.baseSpeed *= scale
	g.ball.SpeedMagnitude *= scale
	g.ball.Velocity = g.ball.Velocity.Scale(scale)

	Relayout(g.targets, g.cfg.Layout, g.bounds.X)

	widthFrac := g.paddle.Size.X / old.X
	g.paddle.Size.X = widthFrac * g.bounds.X
	g.paddle.ClampX(g.bounds.X)

	if !g.ball.StuckToPaddle {
		g.ball.Pos.X = core.ClampF(g.ball.Pos.X, -g.bounds.X, g.bounds.X-g.ball.Size.X)
		g.ball.Pos.Y = math.Min(g.ball.Pos.Y, g.bounds.Y-g.ball.Size.Y)
	}
}
