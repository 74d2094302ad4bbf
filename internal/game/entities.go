// Package game implements the brickout simulation engine: entities, arena
// generation, collision resolution, the velocity/speed model, the falling
// bonus system, and the menu/playing/game-over state machine.
package game

import (
	"github.com/vovakirdan/brickout/internal/core"
)

// Tier is a row-band of targets sharing a point value and base color.
type Tier int

const (
	TierTop    Tier = iota // Rows 0-1, highest value
	TierSecond             // Rows 2-3
	TierThird              // Rows 4-5
	TierLow                // Rows 6-7, lowest value
)

// Points returns the score value for a target of this tier.
func (t Tier) Points() int {
	switch t {
	case TierTop:
		return 7
	case TierSecond:
		return 5
	case TierThird:
		return 3
	default:
		return 1
	}
}

// Color returns the base color for a target of this tier.
func (t Tier) Color() core.RGBA {
	switch t {
	case TierTop:
		return core.NewRGBA(1, 0.2, 0.2)
	case TierSecond:
		return core.NewRGBA(1, 0.6, 0.2)
	case TierThird:
		return core.NewRGBA(0.2, 1, 0.2)
	default:
		return core.NewRGBA(1, 1, 0.2)
	}
}

// TierForRow maps a grid row to its scoring tier. Rows beyond the classic
// eight fall into the lowest band.
func TierForRow(row int) Tier {
	switch {
	case row < 2:
		return TierTop
	case row < 4:
		return TierSecond
	case row < 6:
		return TierThird
	default:
		return TierLow
	}
}

// DurabilityIndestructible marks a target that never deactivates.
const DurabilityIndestructible = -1

// Paddle is the player-controlled deflector at the bottom of the arena.
type Paddle struct {
	core.Rect
	Color core.RGBA
}

// ClampX keeps the paddle inside [-boundX, boundX - width].
func (p *Paddle) ClampX(boundX float64) {
	p.Pos.X = core.ClampF(p.Pos.X, -boundX, boundX-p.Size.X)
}

// Ball is the bouncing projectile. Whenever it is in flight, |Velocity| is
// kept equal to SpeedMagnitude by explicit renormalization after every
// speed-affecting event.
type Ball struct {
	core.Rect
	Color          core.RGBA
	Velocity       core.Vec2
	SpeedMagnitude float64
	StuckToPaddle  bool
	HitCount       int // Destructible hits this level, drives speed-up milestones
}

// PlaceOnPaddle centers the ball on top of the paddle.
func (b *Ball) PlaceOnPaddle(p *Paddle) {
	b.Pos.X = p.CenterX() - b.Size.X/2
	b.Pos.Y = p.Top()
}

// Target is a destructible or indestructible rectangle the ball can strike.
type Target struct {
	core.Rect
	Color        core.RGBA
	Tier         Tier
	Active       bool
	Points       int
	Durability   int // Remaining hits; DurabilityIndestructible for walls
	IsWall       bool
	IsReflective bool
	IsBonus      bool
	BonusKind    BonusKind
}

// Pickup is a falling modifier spawned from a destroyed bonus target.
type Pickup struct {
	core.Rect
	Color     core.RGBA
	Kind      BonusKind
	FallSpeed float64
	Active    bool
}
