package shadows

import "math"

// FanDirections is the fixed sweep resolution: one ray per whole degree.
const FanDirections = 360

// Fan is the set of visible rays for one frame, in sweep order.
type Fan []Ray

// BuildFan casts one ray per whole degree from the observer and keeps, for
// each direction, the nearest wall crossing. Directions that hit nothing are
// left out, so the fan holds between 0 and FanDirections rays.
func BuildFan(observer Point, walls []Wall) Fan {
	fan := make(Fan, 0, FanDirections)

	for a := 0; a < FanDirections; a++ {
		dir := Direction(a)

		// Find closest intersection. Exact ties keep the first wall seen.
		var closest Hit
		found := false
		record := math.MaxFloat64
		for _, wall := range walls {
			hit, ok := Intersect(observer, dir, wall)
			if !ok {
				continue
			}
			if hit.Distance < record {
				record = hit.Distance
				closest = hit
				found = true
			}
		}

		if found {
			fan = append(fan, Ray{
				Origin:   observer,
				End:      closest.Point,
				Angle:    a,
				Distance: closest.Distance,
			})
		}
	}

	return fan
}

// Wedges returns index pairs of rays exactly one degree apart, in sweep order,
// including the wrap from 359 to 0. Each pair and the observer bound one lit
// triangle. Gaps in a sparse fan produce no wedge.
func (f Fan) Wedges() [][2]int {
	var wedges [][2]int
	for i := range f {
		next := (i + 1) % len(f)
		if next == i {
			break
		}
		gap := (f[next].Angle - f[i].Angle + FanDirections) % FanDirections
		if gap != 1 {
			continue
		}
		wedges = append(wedges, [2]int{i, next})
	}
	return wedges
}

// Covers reports whether p lies in one of the fan's lit triangles, edges
// included.
func (f Fan) Covers(p Point) bool {
	for _, w := range f.Wedges() {
		a, b := f[w[0]], f[w[1]]
		if PointInTriangle(p, a.Origin, a.End, b.End) {
			return true
		}
	}
	return false
}

// Nearest returns the shortest ray in the fan.
func (f Fan) Nearest() (Ray, bool) {
	if len(f) == 0 {
		return Ray{}, false
	}
	best := f[0]
	for _, r := range f[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best, true
}

// Farthest returns the longest ray in the fan.
func (f Fan) Farthest() (Ray, bool) {
	if len(f) == 0 {
		return Ray{}, false
	}
	best := f[0]
	for _, r := range f[1:] {
		if r.Distance > best.Distance {
			best = r
		}
	}
	return best, true
}
