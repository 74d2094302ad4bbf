package game

import (
	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
)

var (
	wallColor       = core.NewRGBA(0.5, 0.5, 0.5)
	reflectiveColor = core.NewRGBA(1, 1, 1)
)

// targetWidth computes the per-target width so the grid spans the full
// horizontal extent of the arena.
func targetWidth(lay config.Layout, boundX float64) float64 {
	totalGridWidth := 2 * boundX
	totalGapWidth := float64(lay.Columns-1) * lay.BrickGap
	return (totalGridWidth - totalGapWidth) / float64(lay.Columns)
}

// BuildArena generates the target grid for a level.
//
// The caller passes a freshly seeded layout RNG so the special-target
// placement (one durability-2 target and one bonus carrier per row) is
// reproducible regardless of any gameplay draws made earlier in the session.
// Row 0 carries the border walls: indestructible targets in the outermost
// columns and reflective ones just inside them.
func BuildArena(lay config.Layout, boundX float64, rng *RNG) []Target {
	width := targetWidth(lay, boundX)
	startX := -boundX

	// Per-row special columns, borders excluded. Bonus is drawn first,
	// then the durability-2 column is resampled until the picks differ.
	bonusCols := make([]int, lay.Rows)
	counterCols := make([]int, lay.Rows)
	bonusKinds := make([]BonusKind, lay.Rows)
	for i := 0; i < lay.Rows; i++ {
		bonusCols[i] = 1 + rng.Intn(lay.Columns-2)
		counterCols[i] = bonusCols[i]
		for counterCols[i] == bonusCols[i] {
			counterCols[i] = 1 + rng.Intn(lay.Columns-2)
		}
		bonusKinds[i] = BonusKind(rng.Intn(BonusKindCount))
	}

	targets := make([]Target, 0, lay.Rows*lay.Columns)
	for i := 0; i < lay.Rows; i++ {
		tier := TierForRow(i)
		for j := 0; j < lay.Columns; j++ {
			t := Target{
				Rect: core.NewRect(
					startX+float64(j)*(width+lay.BrickGap),
					lay.StartY-float64(i)*(lay.BrickHeight+lay.BrickGap),
					width,
					lay.BrickHeight,
				),
				Color:      tier.Color(),
				Tier:       tier,
				Active:     true,
				Points:     tier.Points(),
				Durability: 1,
			}

			switch {
			case i == 0 && (j == 0 || j == lay.Columns-1):
				t.IsWall = true
				t.Durability = DurabilityIndestructible
				t.Points = 0
				t.Color = wallColor
			case i == 0 && (j == 1 || j == lay.Columns-2):
				t.IsWall = true
				t.IsReflective = true
				t.Durability = DurabilityIndestructible
				t.Points = 0
				t.Color = reflectiveColor
			case j == counterCols[i]:
				t.Durability = 2
			case j == bonusCols[i]:
				t.IsBonus = true
				t.BonusKind = bonusKinds[i]
			}

			targets = append(targets, t)
		}
	}
	return targets
}

// Relayout recomputes target positions and sizes for a new horizontal bound.
// Only geometry changes; active/durability/type state is preserved exactly.
func Relayout(targets []Target, lay config.Layout, boundX float64) {
	width := targetWidth(lay, boundX)
	startX := -boundX

	i := 0
	for row := 0; row < lay.Rows; row++ {
		for col := 0; col < lay.Columns; col++ {
			if i >= len(targets) {
				return
			}
			t := &targets[i]
			t.Size.X = width
			t.Size.Y = lay.BrickHeight
			t.Pos.X = startX + float64(col)*(width+lay.BrickGap)
			t.Pos.Y = lay.StartY - float64(row)*(lay.BrickHeight+lay.BrickGap)
			i++
		}
	}
}
