package game

import "math"

// Launch angle envelope: the horizontal component of a fresh launch is drawn
// uniformly in [launchMinFrac, launchMaxFrac] of the speed magnitude, which
// keeps the initial trajectory steep enough to reach the grid quickly.
const (
	launchMinFrac = 0.2
	launchMaxFrac = 0.8
)

// LaunchBall releases a stuck ball with a randomized upward trajectory.
// Horizontal direction is a fair coin flip; the vertical component is derived
// so the resulting velocity has exactly the ball's speed magnitude.
func LaunchBall(ball *Ball, rng *RNG) {
	sign := 1.0
	if rng.Intn(2) == 0 {
		sign = -1
	}
	frac := launchMinFrac + (launchMaxFrac-launchMinFrac)*rng.Float64()

	speed := ball.SpeedMagnitude
	ball.Velocity.X = sign * frac * speed
	ball.Velocity.Y = math.Sqrt(speed*speed - ball.Velocity.X*ball.Velocity.X)
	ball.StuckToPaddle = false
}

// NormalizeVelocity rescales the velocity so its magnitude equals the ball's
// speed magnitude while preserving direction. A ball in flight with zero
// velocity is degenerate; it is recovered by sending it straight up.
func NormalizeVelocity(ball *Ball) {
	if ball.StuckToPaddle {
		return
	}

	mag := math.Hypot(ball.Velocity.X, ball.Velocity.Y)
	if mag == 0 {
		ball.Velocity.X = 0
		ball.Velocity.Y = ball.SpeedMagnitude
		return
	}

	scale := ball.SpeedMagnitude / mag
	ball.Velocity.X *= scale
	ball.Velocity.Y *= scale
}
