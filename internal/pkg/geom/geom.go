// Package geom contains pure planar geometry helpers for service-area
// checks. Coordinates follow GeoJSON axis order throughout: index 0 is
// longitude (x), index 1 is latitude (y).
package geom

// Point is a GeoJSON position, [longitude, latitude].
type Point [2]float64

func (p Point) Lng() float64 {
	return p[0]
}

func (p Point) Lat() float64 {
	return p[1]
}

// Ring is a sequence of positions forming one boundary of a polygon. A
// well-formed GeoJSON ring repeats its first position as its last.
type Ring []Point

// Closed reports whether the ring explicitly repeats its first position.
func (r Ring) Closed() bool {
	return len(r) >= 4 && r[0] == r[len(r)-1]
}
