package vmath

import "math"

// Vec2 is a 2D vector in world units, y axis pointing up
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2  { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64    { return v.X*o.X + v.Y*o.Y }
func (v Vec2) LenSq() float64        { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64          { return math.Sqrt(v.LenSq()) }
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }
func (v Vec2) Dist(o Vec2) float64   { return math.Sqrt(v.DistSq(o)) }
func (v Vec2) IsZero() bool          { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector, or zero for a zero-length input
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen scales v down so its length does not exceed maxLen
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	if maxLen <= 0 {
		return v
	}
	lsq := v.LenSq()
	if lsq <= maxLen*maxLen {
		return v
	}
	return v.Scale(maxLen / math.Sqrt(lsq))
}
