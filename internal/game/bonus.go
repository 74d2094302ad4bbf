package game

import (
	"math"

	"github.com/vovakirdan/brickout/internal/core"
)

// BonusKind identifies one of the eight falling-pickup modifiers.
type BonusKind int

const (
	BonusLifeAdd BonusKind = iota
	BonusLifeRemove
	BonusPaddleWiden
	BonusPaddleShrink
	BonusBallSlow
	BonusBallFast
	BonusStraighten
	BonusWidenAngle

	// BonusKindCount is the number of bonus kinds.
	BonusKindCount = 8
)

// String returns a short display name for the bonus kind.
func (k BonusKind) String() string {
	switch k {
	case BonusLifeAdd:
		return "life+"
	case BonusLifeRemove:
		return "life-"
	case BonusPaddleWiden:
		return "widen"
	case BonusPaddleShrink:
		return "shrink"
	case BonusBallSlow:
		return "slow"
	case BonusBallFast:
		return "fast"
	case BonusStraighten:
		return "straight"
	case BonusWidenAngle:
		return "angle"
	default:
		return "?"
	}
}

// Color returns the kind-distinctive color a falling pickup is drawn with.
func (k BonusKind) Color() core.RGBA {
	switch k {
	case BonusLifeAdd:
		return core.NewRGBA(0.2, 1, 0.2)
	case BonusLifeRemove:
		return core.NewRGBA(1, 0.2, 0.2)
	case BonusPaddleWiden:
		return core.NewRGBA(0.2, 0.8, 1)
	case BonusPaddleShrink:
		return core.NewRGBA(1, 0.5, 0)
	case BonusBallSlow:
		return core.NewRGBA(1, 1, 0.2)
	case BonusBallFast:
		return core.NewRGBA(0.8, 0.2, 1)
	case BonusStraighten:
		return core.NewRGBA(1, 1, 1)
	default:
		return core.NewRGBA(0.5, 0.5, 0.5)
	}
}

// Bonus effect tuning. Caps and floors are enforced by clamping at the point
// of mutation, never by rejecting the pickup.
const (
	paddleWidenFactor  = 1.25
	paddleShrinkFactor = 0.75
	paddleMaxBoundFrac = 0.75 // Max paddle width as a fraction of boundX
	paddleMinBaseFrac  = 0.5  // Min paddle width as a fraction of the base width

	ballSlowFactor   = 0.8
	ballFastFactor   = 1.2
	ballMinSpeedFrac = 0.5 // Floor as a fraction of the initial speed
	ballMaxSpeedFrac = 3.0 // Cap as a fraction of the initial speed

	straightenFrac = 0.2 // Horizontal fraction of speed after straighten
	widenAngleFrac = 0.8 // Horizontal fraction of speed after widen-angle

	// angleGuardEpsilon is the minimum component magnitude the angle bonuses
	// need to read an unambiguous sign from; below it they are no-ops.
	angleGuardEpsilon = 0.01
)

// spawnPickup creates a falling pickup at a destroyed bonus target's
// position, sized like the ball.
func (g *Game) spawnPickup(t Target) {
	g.pickups = append(g.pickups, Pickup{
		Rect:      core.Rect{Pos: t.Pos, Size: g.ball.Size},
		Color:     t.BonusKind.Color(),
		Kind:      t.BonusKind,
		FallSpeed: g.cfg.Physics.BonusFallSpeed,
		Active:    true,
	})
}

// updatePickups advances all falling pickups, expires the ones that left the
// arena, applies the ones collected by the paddle, and removes inactive
// entries. Unlike target resolution, every active pickup is evaluated each
// frame.
func (g *Game) updatePickups(dt float64) {
	for i := range g.pickups {
		p := &g.pickups[i]
		if !p.Active {
			continue
		}

		p.Pos.Y -= p.FallSpeed * dt

		if p.Top() < -g.bounds.Y {
			p.Active = false
			continue
		}

		if p.Rect.Overlaps(g.paddle.Rect) {
			g.applyBonus(p.Kind)
			p.Active = false
		}
	}

	// Cleanup pass
	active := g.pickups[:0]
	for _, p := range g.pickups {
		if p.Active {
			active = append(active, p)
		}
	}
	g.pickups = active
}

// applyBonus applies a collected modifier to the paddle/ball/lives state.
func (g *Game) applyBonus(kind BonusKind) {
	switch kind {
	case BonusLifeAdd:
		g.session.Lives = core.Min(g.session.Lives+1, g.cfg.Gameplay.LifeCap)

	case BonusLifeRemove:
		g.session.Lives = core.Max(g.session.Lives-1, 1)

	case BonusPaddleWiden:
		g.paddle.Size.X = math.Min(g.paddle.Size.X*paddleWidenFactor, g.bounds.X*paddleMaxBoundFrac)
		g.paddle.ClampX(g.bounds.X)

	case BonusPaddleShrink:
		g.paddle.Size.X = math.Max(g.paddle.Size.X*paddleShrinkFactor, g.cfg.Paddle.Width*paddleMinBaseFrac)

	case BonusBallSlow:
		g.ball.SpeedMagnitude = math.Max(g.ball.SpeedMagnitude*ballSlowFactor, g.baseSpeed*ballMinSpeedFrac)
		NormalizeVelocity(&g.ball)

	case BonusBallFast:
		g.ball.SpeedMagnitude = math.Min(g.ball.SpeedMagnitude*ballFastFactor, g.baseSpeed*ballMaxSpeedFrac)
		NormalizeVelocity(&g.ball)

	case BonusStraighten:
		// Needs an unambiguous horizontal sign to steer toward
		if math.Abs(g.ball.Velocity.X) > angleGuardEpsilon {
			setHorizontalFraction(&g.ball, straightenFrac)
		}

	case BonusWidenAngle:
		// Needs an unambiguous vertical sign to preserve
		if math.Abs(g.ball.Velocity.Y) > angleGuardEpsilon {
			setHorizontalFraction(&g.ball, widenAngleFrac)
		}
	}
}

// setHorizontalFraction rewrites the velocity so the horizontal component is
// the given fraction of the speed magnitude, preserving both component signs
// and the overall magnitude.
func setHorizontalFraction(b *Ball, frac float64) {
	if b.StuckToPaddle {
		return
	}

	signX := 1.0
	if b.Velocity.X < 0 {
		signX = -1
	}
	signY := 1.0
	if b.Velocity.Y < 0 {
		signY = -1
	}

	b.Velocity.X = signX * frac * b.SpeedMagnitude
	vy := b.SpeedMagnitude*b.SpeedMagnitude - b.Velocity.X*b.Velocity.X
	if vy < 0 {
		vy = 0
	}
	b.Velocity.Y = signY * math.Sqrt(vy)
}
