package render

import (
	"math"

	"github.com/lixenwraith/plinko/vmath"
)

// Viewport maps world space (y up, origin at board center) onto a cell rectangle
type Viewport struct {
	X, Y          int // Top-left cell of the area
	Width, Height int

	// World units covered by one cell on each axis
	UnitsPerCol float64
	UnitsPerRow float64

	// World point drawn at the area's top-left cell
	Left, Top float64
}

// Fit scales the world box [minP, maxP] to fill the cell area
// Axes are scaled independently since terminal cells are not square
func Fit(x, y, width, height int, minP, maxP vmath.Vec2) Viewport {
	v := Viewport{X: x, Y: y, Width: max(width, 1), Height: max(height, 1)}
	v.UnitsPerCol = span(maxP.X-minP.X, v.Width)
	v.UnitsPerRow = span(maxP.Y-minP.Y, v.Height)
	v.Left = minP.X
	v.Top = maxP.Y
	return v
}

func span(extent float64, cells int) float64 {
	if cells <= 1 || extent <= 0 {
		return 1
	}
	return extent / float64(cells-1)
}

// ToCell returns the cell for a world point and whether it lies inside the area
func (v Viewport) ToCell(p vmath.Vec2) (int, int, bool) {
	cx := int(math.Round((p.X - v.Left) / v.UnitsPerCol))
	cy := int(math.Round((v.Top - p.Y) / v.UnitsPerRow))
	if cx < 0 || cy < 0 || cx >= v.Width || cy >= v.Height {
		return 0, 0, false
	}
	return v.X + cx, v.Y + cy, true
}
