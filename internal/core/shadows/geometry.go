package shadows

import "math"

// Length returns the length of the wall
func (w Wall) Length() float64 {
	return Distance(w.A, w.B)
}

// Length returns the distance from the observer to the ray end point
func (r Ray) Length() float64 {
	return Distance(r.Origin, r.End)
}

// Contains reports whether p lies inside b, edges excluded.
func (b Bounds) Contains(p Point) bool {
	return p.X > 0 && p.X < b.Width && p.Y > 0 && p.Y < b.Height
}

// PointInTriangle tests if a point is inside triangle abc or on one of its
// edges. Works for either winding.
func PointInTriangle(p, a, b, c Point) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// cross is the z component of (b-a) x (p-a)
func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
