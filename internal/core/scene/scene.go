// Package scene owns the observer, the obstacle set and the ray fan derived
// from them. It has no graphics dependencies so it can run headless.
package scene

import (
	"math/rand"
	"time"

	"chosenoffset.com/raycaster/internal/core/shadows"
)

// DefaultMargin is how far random interior walls stay from the screen edges.
const DefaultMargin = 50

// Config describes the initial scene.
type Config struct {
	Width, Height float64

	// Observer is the starting position. Nil places it at the centre.
	Observer *shadows.Point

	// InteriorWalls is the number of randomly placed obstacles.
	InteriorWalls int
	Margin        float64 // inset from each screen edge, DefaultMargin in the stock setup

	// FixedWalls are extra interior obstacles placed as given.
	FixedWalls []shadows.Wall
}

// Scene holds one observer and the walls it looks at.
//
// Boundary walls live in their own fixed-size array so Resize can replace
// them without touching the interior set.
type Scene struct {
	width, height float64
	observer      shadows.Point
	boundary      [4]shadows.Wall
	interior      []shadows.Wall
	fan           shadows.Fan
	frame         uint64
}

// New builds a scene and its initial fan. rng drives interior wall placement;
// nil falls back to a time-seeded source.
func New(cfg Config, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	observer := shadows.Point{X: cfg.Width / 2, Y: cfg.Height / 2}
	if cfg.Observer != nil {
		observer = *cfg.Observer
	}

	s := &Scene{
		width:    cfg.Width,
		height:   cfg.Height,
		observer: observer,
		boundary: shadows.BoundaryWalls(cfg.Width, cfg.Height),
		interior: make([]shadows.Wall, 0, len(cfg.FixedWalls)+cfg.InteriorWalls),
	}

	for _, w := range cfg.FixedWalls {
		w.Kind = shadows.Interior
		s.interior = append(s.interior, w)
	}

	bounds := shadows.Bounds{Width: cfg.Width, Height: cfg.Height}
	for i := 0; i < cfg.InteriorWalls; i++ {
		s.interior = append(s.interior, shadows.RandomWall(rng, bounds, cfg.Margin))
	}

	s.fan = shadows.BuildFan(s.observer, s.Walls())
	return s
}

// SetObserverPosition moves the observer. Any position is accepted,
// including points on or outside walls.
func (s *Scene) SetObserverPosition(x, y float64) {
	s.observer = shadows.Point{X: x, Y: y}
}

// Resize replaces the boundary walls to match a new screen size.
// Interior walls are left untouched.
func (s *Scene) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.boundary = shadows.BoundaryWalls(width, height)
}

// Tick recomputes the ray fan from the current observer and walls.
func (s *Scene) Tick() {
	s.fan = shadows.BuildFan(s.observer, s.Walls())
	s.frame++
}

// Observer returns the current observer position.
func (s *Scene) Observer() shadows.Point {
	return s.observer
}

// Size returns the current screen size the boundary walls enclose.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// Frame returns how many times Tick has run.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Walls returns every wall, boundary walls first. The slice is a copy.
func (s *Scene) Walls() []shadows.Wall {
	walls := make([]shadows.Wall, 0, len(s.boundary)+len(s.interior))
	walls = append(walls, s.boundary[:]...)
	walls = append(walls, s.interior...)
	return walls
}

// Boundary returns the four walls enclosing the screen.
func (s *Scene) Boundary() [4]shadows.Wall {
	return s.boundary
}

// Interior returns a copy of the interior obstacles.
func (s *Scene) Interior() []shadows.Wall {
	interior := make([]shadows.Wall, len(s.interior))
	copy(interior, s.interior)
	return interior
}

// Rays returns a copy of the fan computed by the last Tick (or New).
func (s *Scene) Rays() shadows.Fan {
	rays := make(shadows.Fan, len(s.fan))
	copy(rays, s.fan)
	return rays
}

// Visible reports whether p lies inside the lit region of the current fan,
// the same triangles the renderer fills.
func (s *Scene) Visible(p shadows.Point) bool {
	return s.fan.Covers(p)
}
