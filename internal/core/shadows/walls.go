package shadows

import (
	"math"
	"math/rand"
)

// Bounds is the size of the area walls live in, with the origin at the top-left.
type Bounds struct {
	Width, Height float64
}

// NewWall creates a wall between (x1, y1) and (x2, y2)
func NewWall(x1, y1, x2, y2 float64, kind WallKind) Wall {
	return Wall{
		A:    Point{X: x1, Y: y1},
		B:    Point{X: x2, Y: y2},
		Kind: kind,
	}
}

// BoundaryWalls returns the four walls enclosing a w x h screen:
// top, bottom, left and right.
func BoundaryWalls(w, h float64) [4]Wall {
	return [4]Wall{
		NewWall(0, 0, w, 0, Boundary),
		NewWall(0, h, w, h, Boundary),
		NewWall(0, 0, 0, h, Boundary),
		NewWall(w, 0, w, h, Boundary),
	}
}

// RandomWall places an interior wall whose endpoints are drawn independently
// from [margin, size-margin) on each axis. Coordinates are whole pixels.
func RandomWall(rng *rand.Rand, b Bounds, margin float64) Wall {
	x1 := randomCoord(rng, margin, b.Width-margin)
	y1 := randomCoord(rng, margin, b.Height-margin)
	x2 := randomCoord(rng, margin, b.Width-margin)
	y2 := randomCoord(rng, margin, b.Height-margin)
	return NewWall(x1, y1, x2, y2, Interior)
}

// randomCoord returns a whole number in [lo, hi). A range holding no whole
// number yields lo rounded up.
func randomCoord(rng *rand.Rand, lo, hi float64) float64 {
	l, h := int(math.Ceil(lo)), int(math.Ceil(hi))
	if h <= l {
		return float64(l)
	}
	return float64(l + rng.Intn(h-l))
}
