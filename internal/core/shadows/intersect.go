package shadows

import "math"

// Direction returns the sweep direction for an angle in whole degrees.
// Angle 0 points down the screen (+Y) and angles grow towards +X.
func Direction(degrees int) Vector {
	radians := float64(degrees) * math.Pi / 180
	return Vector{
		X: math.Sin(radians),
		Y: math.Cos(radians),
	}
}

// Intersect checks whether the ray from origin along dir crosses the wall.
//
// The wall is parameterised by t in [0,1] and the ray by u along dir, and the
// 2x2 system is solved with the determinant form. A crossing only counts when
// it lies strictly inside the wall (0 < t < 1) and strictly ahead of the
// origin (u > 0). Parallel rays and rejected crossings return false.
func Intersect(origin Point, dir Vector, w Wall) (Hit, bool) {
	x1, y1 := w.A.X, w.A.Y
	x2, y2 := w.B.X, w.B.Y
	x3, y3 := origin.X, origin.Y
	x4, y4 := origin.X+dir.X, origin.Y+dir.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		// Ray and wall are parallel
		return Hit{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den

	if !canCast(t, u) {
		return Hit{}, false
	}

	return Hit{
		Point: Point{
			X: x1 + t*(x2-x1),
			Y: y1 + t*(y2-y1),
		},
		Distance: u,
		T:        t,
	}, true
}

// canCast applies the open-interval policy: wall endpoints and the origin
// itself never count as hits.
func canCast(t, u float64) bool {
	return t > 0 && t < 1 && u > 0
}
