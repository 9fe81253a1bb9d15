// Package board generates the static Plinko pyramid: peg obstacles and the
// multiplier zones under the last row. Generation is pure and deterministic.
package board

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/plinko/vmath"
)

// ErrInvalidLayout is returned for layouts that cannot produce a playable board
var ErrInvalidLayout = errors.New("invalid board layout")

// Layout holds the generator inputs
type Layout struct {
	Rows           int     // Number of peg rows
	FirstRowPegs   int     // Pegs in the top row; row a has FirstRowPegs + a
	SpacingX       float64 // Horizontal peg spacing
	SpacingY       float64 // Vertical row spacing
	TopY           float64 // Y of the top row
	PegRadius      float64
	PowerScale     float64 // c in round((slot*c)^2)
	CenterSlot     int     // Slot counter start; negative selects (gaps-1)/2
	ZoneHalfExtent float64
	ZoneOffsetY    float64 // Zone centers sit this far below the last row
}

// Peg is a static circular obstacle
type Peg struct {
	Row      int
	Index    int
	Position vmath.Vec2
	Radius   float64
}

// Zone is a static scoring trigger
type Zone struct {
	Index      int // Left-to-right gap index in the last row
	Slot       int // Slot counter value the power was derived from
	Position   vmath.Vec2
	HalfExtent float64
	Power      float64
}

// Board is the generated geometry, produced once at startup
type Board struct {
	Layout Layout
	Pegs   []Peg
	Zones  []Zone
}

// Validate checks the layout preconditions
func (l Layout) Validate() error {
	switch {
	case l.Rows < 1:
		return fmt.Errorf("%w: rows %d < 1", ErrInvalidLayout, l.Rows)
	case l.FirstRowPegs < 2:
		return fmt.Errorf("%w: first row needs at least 2 pegs, got %d", ErrInvalidLayout, l.FirstRowPegs)
	case l.SpacingX <= 0 || l.SpacingY <= 0:
		return fmt.Errorf("%w: spacing must be positive (%g, %g)", ErrInvalidLayout, l.SpacingX, l.SpacingY)
	case l.PegRadius <= 0:
		return fmt.Errorf("%w: peg radius must be positive", ErrInvalidLayout)
	case l.PowerScale < 0 || math.IsNaN(l.PowerScale):
		return fmt.Errorf("%w: power scale must be non-negative", ErrInvalidLayout)
	case l.ZoneHalfExtent <= 0:
		return fmt.Errorf("%w: zone half extent must be positive", ErrInvalidLayout)
	}
	if l.CenterSlot >= l.ZoneCount() {
		return fmt.Errorf("%w: center slot %d outside %d zones", ErrInvalidLayout, l.CenterSlot, l.ZoneCount())
	}
	return nil
}

// RowPegs returns the peg count of row a
func (l Layout) RowPegs(a int) int {
	return l.FirstRowPegs + a
}

// ZoneCount returns the number of zones: one per gap in the last row
func (l Layout) ZoneCount() int {
	return l.RowPegs(l.Rows-1) - 1
}

// RowY returns the y coordinate of row a
func (l Layout) RowY(a int) float64 {
	return l.TopY - float64(a)*l.SpacingY
}

// RowStartX returns the x of the leftmost peg, keeping the row centered
func (l Layout) RowStartX(count int) float64 {
	return -(float64(count-1) * l.SpacingX) / 2
}

// centerSlot resolves the slot counter start
func (l Layout) centerSlot() int {
	if l.CenterSlot >= 0 {
		return l.CenterSlot
	}
	return (l.ZoneCount() - 1) / 2
}

// Power computes round((slot*c)^2)
func Power(slot int, scale float64) float64 {
	v := float64(slot) * scale
	return math.Round(v * v)
}

// Generate lays out the pyramid and the last row's multiplier zones
func Generate(l Layout) (*Board, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	b := &Board{Layout: l}
	b.Pegs = make([]Peg, 0, l.Rows*l.FirstRowPegs+l.Rows*(l.Rows-1)/2)
	b.Zones = make([]Zone, 0, l.ZoneCount())

	center := l.centerSlot()
	last := l.Rows - 1

	for a := 0; a < l.Rows; a++ {
		count := l.RowPegs(a)
		y := l.RowY(a)
		x0 := l.RowStartX(count)

		// Counter walks down to the center slot, then back up; resets per row
		slot := center
		for i := 0; i < count; i++ {
			x := x0 + float64(i)*l.SpacingX
			b.Pegs = append(b.Pegs, Peg{
				Row:      a,
				Index:    i,
				Position: vmath.V2(x, y),
				Radius:   l.PegRadius,
			})

			if a != last || i >= count-1 {
				continue
			}

			b.Zones = append(b.Zones, Zone{
				Index:      i,
				Slot:       slot,
				Position:   vmath.V2(x+l.SpacingX/2, y-l.ZoneOffsetY),
				HalfExtent: l.ZoneHalfExtent,
				Power:      Power(slot, l.PowerScale),
			})

			if i >= center {
				slot++
			} else {
				slot--
			}
		}
	}

	if len(b.Zones) == 0 {
		return nil, fmt.Errorf("%w: no multiplier zones generated", ErrInvalidLayout)
	}

	return b, nil
}

// Powers returns zone powers left to right
func (b *Board) Powers() []float64 {
	out := make([]float64, len(b.Zones))
	for i, z := range b.Zones {
		out[i] = z.Power
	}
	return out
}

// Bounds returns the axis-aligned box enclosing all pegs and zones
func (b *Board) Bounds() (minP, maxP vmath.Vec2) {
	minP = vmath.V2(math.Inf(1), math.Inf(1))
	maxP = vmath.V2(math.Inf(-1), math.Inf(-1))
	grow := func(p vmath.Vec2, r float64) {
		minP.X = math.Min(minP.X, p.X-r)
		minP.Y = math.Min(minP.Y, p.Y-r)
		maxP.X = math.Max(maxP.X, p.X+r)
		maxP.Y = math.Max(maxP.Y, p.Y+r)
	}
	for _, p := range b.Pegs {
		grow(p.Position, p.Radius)
	}
	for _, z := range b.Zones {
		grow(z.Position, z.HalfExtent)
	}
	return minP, maxP
}
