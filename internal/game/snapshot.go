package game

import (
	"hash/fnv"
	"math"

	"github.com/vovakirdan/brickout/internal/core"
)

// Snapshot is a read-only view of the simulation at one frame, taken for
// rendering and for determinism checks. Targets and pickups are copied, so a
// snapshot stays valid after further Step calls.
type Snapshot struct {
	State  State
	Score  int
	Lives  int
	Level  int
	Bounds core.Bounds

	Paddle  Paddle
	Ball    Ball
	Targets []Target
	Pickups []Pickup
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:   g.state,
		Score:   g.session.Score,
		Lives:   g.session.Lives,
		Level:   g.session.Level,
		Bounds:  g.bounds,
		Paddle:  g.paddle,
		Ball:    g.ball,
		Targets: make([]Target, len(g.targets)),
		Pickups: make([]Pickup, len(g.pickups)),
	}
	copy(s.Targets, g.targets)
	copy(s.Pickups, g.pickups)
	return s
}

// Hash folds the snapshot's dynamic state into a 64-bit digest. Two runs fed
// identical seeds, inputs, and deltas produce identical hashes frame by
// frame, which is how replay divergence is detected in tests.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()

	writeU64 := func(v uint64) {
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeF := func(f float64) { writeU64(math.Float64bits(f)) }
	writeInt := func(n int) { writeU64(uint64(int64(n))) } //#nosec G115 -- hashing only
	writeBool := func(b bool) {
		if b {
			writeU64(1)
		} else {
			writeU64(0)
		}
	}

	h.Write([]byte(s.State))
	writeInt(s.Score)
	writeInt(s.Lives)
	writeInt(s.Level)
	writeF(s.Bounds.X)
	writeF(s.Bounds.Y)

	writeF(s.Paddle.Pos.X)
	writeF(s.Paddle.Size.X)

	writeF(s.Ball.Pos.X)
	writeF(s.Ball.Pos.Y)
	writeF(s.Ball.Velocity.X)
	writeF(s.Ball.Velocity.Y)
	writeF(s.Ball.SpeedMagnitude)
	writeBool(s.Ball.StuckToPaddle)
	writeInt(s.Ball.HitCount)

	for i := range s.Targets {
		t := &s.Targets[i]
		writeBool(t.Active)
		writeInt(t.Durability)
	}
	for i := range s.Pickups {
		p := &s.Pickups[i]
		writeInt(int(p.Kind))
		writeF(p.Pos.X)
		writeF(p.Pos.Y)
	}

	return h.Sum64()
}
