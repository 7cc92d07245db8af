package scene

import "chosenoffset.com/raycaster/internal/core/shadows"

// Snapshot is an immutable copy of one frame, safe to hand to other goroutines.
type Snapshot struct {
	Frame    uint64
	Width    float64
	Height   float64
	Observer shadows.Point
	Walls    []shadows.Wall
	Rays     []shadows.Ray
}

// Snapshot copies the current state.
func (s *Scene) Snapshot() Snapshot {
	rays := make([]shadows.Ray, len(s.fan))
	copy(rays, s.fan)

	return Snapshot{
		Frame:    s.frame,
		Width:    s.width,
		Height:   s.height,
		Observer: s.observer,
		Walls:    s.Walls(),
		Rays:     rays,
	}
}
