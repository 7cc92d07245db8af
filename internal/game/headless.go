package game

import (
	"math"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/core/scene"
	"chosenoffset.com/raycaster/pkg/logger"
)

// Stats summarises a headless run.
type Stats struct {
	Frames    int
	MinRays   int
	MaxRays   int
	TotalRays int
}

// MeanRays returns the average fan size per frame.
func (s Stats) MeanRays() float64 {
	if s.Frames == 0 {
		return 0
	}
	return float64(s.TotalRays) / float64(s.Frames)
}

// Simulate runs frames ticks without a window, walking the observer once
// around a circle centred on the viewport. Each frame goes to pub when it is
// not nil.
func Simulate(s *scene.Scene, frames int, pub Publisher) Stats {
	w, h := s.Size()
	cx, cy := w/2, h/2
	radius := math.Min(w, h) / 3

	stats := Stats{MinRays: math.MaxInt}
	for i := 0; i < frames; i++ {
		angle := 2 * math.Pi * float64(i) / float64(frames)
		s.SetObserverPosition(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
		s.Tick()

		n := len(s.Rays())
		stats.Frames++
		stats.TotalRays += n
		stats.MinRays = min(stats.MinRays, n)
		stats.MaxRays = max(stats.MaxRays, n)

		if pub != nil {
			pub.Broadcast(s.Snapshot())
		}

		if s.Frame()%statsInterval == 0 {
			logger.Log.WithFields(logrus.Fields{
				"frame": s.Frame(),
				"rays":  n,
			}).Debug("headless frame")
		}
	}

	if stats.Frames == 0 {
		stats.MinRays = 0
	}
	return stats
}
