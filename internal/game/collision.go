package game

import (
	"math"

	"github.com/vovakirdan/brickout/internal/core"
)

// Paddle deflection steering. Hits near the edges deflect much more steeply
// than hits near the center.
const (
	steeringEdgeThreshold = 0.5 // |offset| at which steering switches to the edge factor
	steeringCenterFactor  = 0.2
	steeringEdgeFactor    = 0.8
	minUpwardFrac         = 0.1 // Minimum vy after a paddle bounce, as a fraction of speed
)

// targetNudge is the epsilon a destructible target pushes the ball out by to
// avoid an immediate re-trigger on the next step.
const targetNudge = 0.001

// ResolveBounds reflects and clamps the ball against the left, right, and top
// arena edges. Each axis is handled independently. The bottom edge is not
// reflected: crossing it is a life-loss event owned by the state machine.
// Returns true if the ball contacted the ceiling this step.
func ResolveBounds(ball *Ball, bounds core.Bounds) (ceiling bool) {
	if ball.Left() <= -bounds.X {
		ball.Velocity.X = math.Abs(ball.Velocity.X)
		ball.Pos.X = -bounds.X
	} else if ball.Right() >= bounds.X {
		ball.Velocity.X = -math.Abs(ball.Velocity.X)
		ball.Pos.X = bounds.X - ball.Size.X
	}

	if ball.Top() >= bounds.Y {
		ball.Velocity.Y = -math.Abs(ball.Velocity.Y)
		ball.Pos.Y = bounds.Y - ball.Size.Y
		ceiling = true
	}
	return ceiling
}

// ResolvePaddle deflects the ball off the paddle. It triggers only when the
// ball overlaps the paddle while its vertical velocity is non-positive: an
// upward-moving ball already above the paddle must not re-trigger.
//
// The deflection angle is driven by the normalized impact offset: the ball's
// bottom edge is snapped onto the paddle's top edge, the horizontal component
// is set from the offset and the steering factor, and the vertical component
// is recomputed so |velocity| stays equal to the speed magnitude. A guard
// keeps the ball leaving with a minimum upward component.
func ResolvePaddle(ball *Ball, paddle *Paddle) bool {
	if ball.Velocity.Y > 0 {
		return false
	}
	if !ball.Rect.Overlaps(paddle.Rect) {
		return false
	}

	ball.Pos.Y = paddle.Top()

	offset := (ball.CenterX() - paddle.CenterX()) / (paddle.Size.X / 2)
	offset = core.ClampF(offset, -1, 1)

	factor := steeringCenterFactor
	if math.Abs(offset) >= steeringEdgeThreshold {
		factor = steeringEdgeFactor
	}
	speed := ball.SpeedMagnitude
	ball.Velocity.X = offset * factor * speed

	vySquared := speed*speed - ball.Velocity.X*ball.Velocity.X
	minVy := minUpwardFrac * speed
	if vySquared <= minVy*minVy {
		// Deflection would be near-horizontal; clamp vx so the ball
		// still leaves the paddle moving upward.
		signX := 1.0
		if ball.Velocity.X < 0 {
			signX = -1
		}
		ball.Velocity.Y = minVy
		ball.Velocity.X = signX * math.Sqrt(speed*speed-minVy*minVy)
		return true
	}

	ball.Velocity.Y = math.Sqrt(vySquared)
	return true
}

// TargetHit describes the outcome of a single ball-target resolution.
type TargetHit struct {
	Destructible bool // The hit consumed durability (non-wall target)
	Destroyed    bool // The target was deactivated by this hit
}

// ResolveTarget reflects the ball off a target and mutates the target's
// durability state. The caller has already established overlap.
//
// Side selection compares the center-to-center offset normalized by each
// axis's half-extent; the larger normalized offset picks a horizontal flip,
// otherwise the vertical component is flipped (i.e. reflect on the
// shallower-penetration axis). Reflective walls reverse both components
// regardless of side.
func ResolveTarget(ball *Ball, t *Target) TargetHit {
	if t.IsWall {
		if t.IsReflective {
			ball.Velocity.X = -ball.Velocity.X
			ball.Velocity.Y = -ball.Velocity.Y
			return TargetHit{}
		}
		if reflectOffTarget(ball, t) {
			// Horizontal flip: clamp outward to prevent sinking
			if ball.Velocity.X > 0 {
				ball.Pos.X = t.Right()
			} else {
				ball.Pos.X = t.Left() - ball.Size.X
			}
		} else {
			if ball.Velocity.Y > 0 {
				ball.Pos.Y = t.Top()
			} else {
				ball.Pos.Y = t.Bottom() - ball.Size.Y
			}
		}
		return TargetHit{}
	}

	if reflectOffTarget(ball, t) {
		if ball.Velocity.X > 0 {
			ball.Pos.X = t.Right() + targetNudge
		} else {
			ball.Pos.X = t.Left() - ball.Size.X - targetNudge
		}
	} else {
		if ball.Velocity.Y > 0 {
			ball.Pos.Y = t.Top() + targetNudge
		} else {
			ball.Pos.Y = t.Bottom() - ball.Size.Y - targetNudge
		}
	}

	t.Durability--
	if t.Durability <= 0 {
		t.Active = false
		return TargetHit{Destructible: true, Destroyed: true}
	}

	// Surviving hit: recolor to the darker variant
	t.Color = t.Tier.Color().Darken(0.7)
	return TargetHit{Destructible: true}
}

// reflectOffTarget flips the ball's velocity on the axis selected by the
// normalized center offset. Returns true for a horizontal flip.
func reflectOffTarget(ball *Ball, t *Target) bool {
	diffX := ball.CenterX() - t.CenterX()
	diffY := ball.CenterY() - t.CenterY()

	if math.Abs(diffX)/t.Size.X > math.Abs(diffY)/t.Size.Y {
		ball.Velocity.X = -ball.Velocity.X
		return true
	}
	ball.Velocity.Y = -ball.Velocity.Y
	return false
}
