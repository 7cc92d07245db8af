package scene

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/raycaster/internal/core/shadows"
)

func newTestScene(interior int) *Scene {
	return New(Config{
		Width:         960,
		Height:        640,
		InteriorWalls: interior,
		Margin:        50,
	}, rand.New(rand.NewSource(1)))
}

func TestNewScene(t *testing.T) {
	s := newTestScene(6)

	if got := s.Observer(); got != (shadows.Point{X: 480, Y: 320}) {
		t.Errorf("Expected observer at centre, got %v", got)
	}
	if len(s.Walls()) != 10 {
		t.Fatalf("Expected 10 walls, got %d", len(s.Walls()))
	}
	for i, w := range s.Walls() {
		want := shadows.Interior
		if i < 4 {
			want = shadows.Boundary
		}
		if w.Kind != want {
			t.Errorf("Wall %d: expected %s, got %s", i, want, w.Kind)
		}
	}
	for _, w := range s.Interior() {
		for _, p := range []shadows.Point{w.A, w.B} {
			if p.X < 50 || p.X >= 910 || p.Y < 50 || p.Y >= 590 {
				t.Errorf("Interior endpoint %v outside inset bounds", p)
			}
		}
	}
	if len(s.Rays()) == 0 {
		t.Error("Expected the initial fan to be built")
	}
	if s.Frame() != 0 {
		t.Errorf("Expected frame 0 before any tick, got %d", s.Frame())
	}
}

func TestNewSceneObserverAndFixedWalls(t *testing.T) {
	obs := shadows.Point{X: 10, Y: 20}
	fixed := shadows.NewWall(100, 100, 200, 200, shadows.Boundary)

	s := New(Config{
		Width:      300,
		Height:     300,
		Observer:   &obs,
		FixedWalls: []shadows.Wall{fixed},
	}, rand.New(rand.NewSource(1)))

	if s.Observer() != obs {
		t.Errorf("Expected observer %v, got %v", obs, s.Observer())
	}
	interior := s.Interior()
	if len(interior) != 1 {
		t.Fatalf("Expected 1 interior wall, got %d", len(interior))
	}
	if interior[0].Kind != shadows.Interior || interior[0].A != fixed.A || interior[0].B != fixed.B {
		t.Errorf("Expected fixed wall retagged as interior, got %+v", interior[0])
	}
}

func TestEnclosureFan(t *testing.T) {
	s := newTestScene(0)
	s.Tick()

	rays := s.Rays()
	if len(rays) != shadows.FanDirections {
		t.Fatalf("Expected %d rays, got %d", shadows.FanDirections, len(rays))
	}

	down, up := rays[0], rays[180]
	if math.Abs(down.End.X-480) > 1e-9 || math.Abs(down.End.Y-640) > 1e-9 || math.Abs(down.Distance-320) > 1e-9 {
		t.Errorf("Expected 0 degrees to hit (480, 640) at 320, got %v at %f", down.End, down.Distance)
	}
	if math.Abs(up.End.X-480) > 1e-9 || math.Abs(up.End.Y) > 1e-9 || math.Abs(up.Distance-320) > 1e-9 {
		t.Errorf("Expected 180 degrees to hit (480, 0) at 320, got %v at %f", up.End, up.Distance)
	}
}

func TestSetObserverPosition(t *testing.T) {
	s := newTestScene(0)

	s.SetObserverPosition(-100, 5000)
	if got := s.Observer(); got != (shadows.Point{X: -100, Y: 5000}) {
		t.Errorf("Expected unclamped observer, got %v", got)
	}

	// The fan only changes on Tick
	if s.Rays()[0].Origin != (shadows.Point{X: 480, Y: 320}) {
		t.Error("Expected the fan to stay stale until Tick")
	}
	s.Tick()
	for _, r := range s.Rays() {
		if r.Origin != s.Observer() {
			t.Fatalf("Expected rays from the new observer, got origin %v", r.Origin)
		}
	}
	if len(s.Rays()) >= shadows.FanDirections {
		t.Errorf("Expected an outside observer to miss some directions, got %d rays", len(s.Rays()))
	}
}

func TestResizePreservesInterior(t *testing.T) {
	s := newTestScene(6)
	before := s.Interior()

	s.Resize(1280, 800)

	after := s.Interior()
	if len(after) != len(before) {
		t.Fatalf("Expected %d interior walls, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Interior wall %d changed from %v to %v", i, before[i], after[i])
		}
	}

	if s.Boundary() != shadows.BoundaryWalls(1280, 800) {
		t.Errorf("Expected boundary for 1280x800, got %v", s.Boundary())
	}
	if w, h := s.Size(); w != 1280 || h != 800 {
		t.Errorf("Expected size 1280x800, got %fx%f", w, h)
	}
	if len(s.Walls()) != 10 {
		t.Errorf("Expected 10 walls after resize, got %d", len(s.Walls()))
	}
}

func TestRepeatedResize(t *testing.T) {
	s := newTestScene(3)
	interior := s.Interior()

	sizes := [][2]float64{{100, 100}, {2000, 50}, {960, 640}}
	for _, sz := range sizes {
		s.Resize(sz[0], sz[1])
	}

	walls := s.Walls()
	boundary := 0
	for _, w := range walls {
		if w.Kind == shadows.Boundary {
			boundary++
		}
	}
	if boundary != 4 {
		t.Errorf("Expected exactly 4 boundary walls, got %d", boundary)
	}
	for i, w := range s.Interior() {
		if w != interior[i] {
			t.Errorf("Interior wall %d changed", i)
		}
	}
}

func TestTickCountsFrames(t *testing.T) {
	s := newTestScene(0)
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if s.Frame() != 3 {
		t.Errorf("Expected frame 3, got %d", s.Frame())
	}
}

func TestVisible(t *testing.T) {
	s := New(Config{
		Width:      960,
		Height:     640,
		FixedWalls: []shadows.Wall{shadows.NewWall(400, 100, 400, 540, shadows.Interior)},
	}, rand.New(rand.NewSource(1)))
	s.SetObserverPosition(200, 320)
	s.Tick()

	if !s.Visible(shadows.Point{X: 300, Y: 320}) {
		t.Error("Expected a point in front of the wall to be visible")
	}
	if s.Visible(shadows.Point{X: 600, Y: 320}) {
		t.Error("Expected a point behind the wall to be hidden")
	}

	empty := New(Config{Width: 10, Height: 10}, rand.New(rand.NewSource(1)))
	empty.SetObserverPosition(5000, 5000)
	empty.Tick()
	if empty.Visible(shadows.Point{X: 5, Y: 5}) {
		t.Error("Expected nothing visible without a fan")
	}
}

func TestVisibleFromOutsideEnclosure(t *testing.T) {
	s := newTestScene(0)
	s.SetObserverPosition(-100, 320)
	s.Tick()

	if n := len(s.Rays()); n == 0 || n == shadows.FanDirections {
		t.Fatalf("Expected a partial fan, got %d rays", n)
	}
	if !s.Visible(shadows.Point{X: -50, Y: 320}) {
		t.Error("Expected a point on a lit ray to be visible")
	}
	if s.Visible(shadows.Point{X: 100, Y: 320}) {
		t.Error("Expected a point past the left wall to be hidden")
	}
}

func TestRaysIsCopy(t *testing.T) {
	s := newTestScene(0)
	rays := s.Rays()
	rays[0].End = shadows.Point{X: -1, Y: -1}
	if s.Rays()[0].End == rays[0].End {
		t.Error("Expected Rays to return a copy")
	}
}

func TestNewWithoutSource(t *testing.T) {
	s := New(Config{Width: 960, Height: 640, InteriorWalls: 3, Margin: 50}, nil)
	if len(s.Interior()) != 3 {
		t.Errorf("Expected 3 interior walls, got %d", len(s.Interior()))
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newTestScene(2)
	s.Tick()

	snap := s.Snapshot()
	if snap.Frame != 1 || snap.Width != 960 || snap.Height != 640 {
		t.Errorf("Unexpected snapshot header %+v", snap)
	}
	if len(snap.Walls) != 6 || len(snap.Rays) != len(s.Rays()) {
		t.Fatalf("Expected 6 walls and %d rays, got %d and %d", len(s.Rays()), len(snap.Walls), len(snap.Rays))
	}

	snap.Rays[0].End = shadows.Point{X: -1, Y: -1}
	snap.Walls[0].A = shadows.Point{X: -1, Y: -1}
	if s.Rays()[0].End == snap.Rays[0].End {
		t.Error("Expected snapshot rays to be independent of the scene")
	}
	if s.Walls()[0].A == snap.Walls[0].A {
		t.Error("Expected snapshot walls to be independent of the scene")
	}
}
