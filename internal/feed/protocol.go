package feed

import "chosenoffset.com/raycaster/internal/core/scene"

// Message is one frame as sent to feed subscribers.
type Message struct {
	Type     string     `json:"type"` // always "FRAME"
	Frame    uint64     `json:"frame"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Observer PointView  `json:"observer"`
	Walls    []WallView `json:"walls"`
	Rays     []RayView  `json:"rays"`
}

type PointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type WallView struct {
	A    PointView `json:"a"`
	B    PointView `json:"b"`
	Kind string    `json:"kind"`
}

// RayView omits the origin since every ray starts at the observer.
type RayView struct {
	Angle    int       `json:"angle"`
	End      PointView `json:"end"`
	Distance float64   `json:"distance"`
}

// NewMessage converts a scene snapshot to its wire form.
func NewMessage(s scene.Snapshot) Message {
	msg := Message{
		Type:     "FRAME",
		Frame:    s.Frame,
		Width:    s.Width,
		Height:   s.Height,
		Observer: PointView{X: s.Observer.X, Y: s.Observer.Y},
		Walls:    make([]WallView, len(s.Walls)),
		Rays:     make([]RayView, len(s.Rays)),
	}

	for i, w := range s.Walls {
		msg.Walls[i] = WallView{
			A:    PointView{X: w.A.X, Y: w.A.Y},
			B:    PointView{X: w.B.X, Y: w.B.Y},
			Kind: w.Kind.String(),
		}
	}
	for i, r := range s.Rays {
		msg.Rays[i] = RayView{
			Angle:    r.Angle,
			End:      PointView{X: r.End.X, Y: r.End.Y},
			Distance: r.Distance,
		}
	}

	return msg
}
