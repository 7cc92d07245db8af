package shadows

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Vector is a 2D direction. Rays only use it transiently, it is never stored.
type Vector struct {
	X, Y float64
}

// WallKind tags whether a wall belongs to the resizable screen boundary or
// to the fixed interior obstacle set.
type WallKind int

const (
	Interior WallKind = iota
	Boundary
)

// String returns the lowercase name used in logs and snapshots
func (k WallKind) String() string {
	switch k {
	case Boundary:
		return "boundary"
	case Interior:
		return "interior"
	default:
		return "unknown"
	}
}

// Wall is an immutable line segment that blocks rays
type Wall struct {
	A, B Point
	Kind WallKind
}

// Hit describes where a ray crosses a wall.
type Hit struct {
	Point    Point
	Distance float64 // ray parameter u; with a unit direction this is the euclidean distance
	T        float64 // position along the wall, strictly inside (0, 1)
}

// Ray is a visible ray from the observer to the nearest wall crossing along
// one sweep direction.
type Ray struct {
	Origin   Point
	End      Point
	Angle    int // sweep direction in whole degrees
	Distance float64
}
