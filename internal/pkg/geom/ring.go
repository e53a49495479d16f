package geom

// Position classifies a point relative to a ring.
type Position int

const (
	Outside Position = iota
	OnBoundary
	Inside
)

func (p Position) String() string {
	switch p {
	case OnBoundary:
		return "on_boundary"
	case Inside:
		return "inside"
	default:
		return "outside"
	}
}

// RingPosition classifies p against the ring. Points on an edge or vertex
// report OnBoundary; otherwise the winding number decides Inside vs Outside.
// Crossing tests use Orient2D and treat edges half-open in y, so a ray
// passing through a shared vertex is counted exactly once. The duplicate
// closing vertex of a well-formed ring is ignored; an unclosed ring is
// treated as if its closing edge were present.
func RingPosition(p Point, ring Ring) Position {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	if n < 3 {
		return Outside
	}

	winding := 0
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]

		if onSegment(p, a, b) {
			return OnBoundary
		}

		if a[1] <= p[1] {
			if b[1] > p[1] && Orient2D(a, b, p) > 0 {
				winding++
			}
		} else {
			if b[1] <= p[1] && Orient2D(a, b, p) < 0 {
				winding--
			}
		}
	}

	if winding != 0 {
		return Inside
	}
	return Outside
}

func onSegment(p, a, b Point) bool {
	if Orient2D(a, b, p) != 0 {
		return false
	}
	return within(a[0], p[0], b[0]) && within(a[1], p[1], b[1])
}

func within(lo, x, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo <= x && x <= hi
}
