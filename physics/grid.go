package physics

import (
	"math"
	"slices"

	"github.com/lixenwraith/plinko/core"
)

type gridCell struct {
	X, Y int
}

// pairKey is an unordered body pair normalized to a < b
type pairKey struct {
	a, b core.Entity
}

func makePair(a, b core.Entity) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

func comparePairs(x, y pairKey) int {
	if x.a != y.a {
		if x.a < y.a {
			return -1
		}
		return 1
	}
	if x.b < y.b {
		return -1
	}
	if x.b > y.b {
		return 1
	}
	return 0
}

// spatialGrid is a uniform-grid broadphase rebuilt every substep
// Cells are reused across rebuilds to avoid per-substep allocation
type spatialGrid struct {
	cellSize float64
	cells    map[gridCell][]*body
	seen     map[pairKey]struct{}
	pairs    [][2]*body
}

func newSpatialGrid(cellSize float64) *spatialGrid {
	return &spatialGrid{
		cellSize: cellSize,
		cells:    make(map[gridCell][]*body),
		seen:     make(map[pairKey]struct{}),
	}
}

func (g *spatialGrid) clear() {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	clear(g.seen)
	g.pairs = g.pairs[:0]
}

func (g *spatialGrid) cellOf(x, y float64) gridCell {
	return gridCell{
		X: int(math.Floor(x / g.cellSize)),
		Y: int(math.Floor(y / g.cellSize)),
	}
}

func (g *spatialGrid) insert(b *body) {
	minP, maxP := b.bounds()
	lo := g.cellOf(minP.X, minP.Y)
	hi := g.cellOf(maxP.X, maxP.Y)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			c := gridCell{X: x, Y: y}
			g.cells[c] = append(g.cells[c], b)
		}
	}
}

// candidates returns pairs sharing a cell with at least one dynamic side,
// sorted by entity so narrowphase order is independent of map iteration
func (g *spatialGrid) candidates() [][2]*body {
	for _, bodies := range g.cells {
		for i := 0; i < len(bodies); i++ {
			for j := i + 1; j < len(bodies); j++ {
				a, b := bodies[i], bodies[j]
				if a.kind == Fixed && b.kind == Fixed {
					continue
				}
				k := makePair(a.entity, b.entity)
				if _, dup := g.seen[k]; dup {
					continue
				}
				g.seen[k] = struct{}{}
				if a.entity > b.entity {
					a, b = b, a
				}
				g.pairs = append(g.pairs, [2]*body{a, b})
			}
		}
	}
	slices.SortFunc(g.pairs, func(x, y [2]*body) int {
		return comparePairs(makePair(x[0].entity, x[1].entity), makePair(y[0].entity, y[1].entity))
	})
	return g.pairs
}
