package serviceability

import (
	"fmt"

	"rolloff-core/internal/pkg/config"
	"rolloff-core/internal/pkg/geom"
)

// DefaultRegionLabel is the fallback coverage wording when no Checker is
// configured; deployments override it via SERVICE_REGION_LABEL.
const DefaultRegionLabel = "the greater metro area"

const msgNoActiveAreas = "Service is temporarily unavailable: no active service areas are configured."

// IsPointInPolygon reports whether p is inside the ring or exactly on its
// boundary. The test is inclusive: addresses on a coverage edge are
// serviceable.
func IsPointInPolygon(p geom.Point, ring geom.Ring) bool {
	return geom.RingPosition(p, ring) != geom.Outside
}

// IsPointInGeoJSONPolygon reports whether p is inside-or-on the exterior
// ring and not strictly inside any hole. It short-circuits when the point
// fails the exterior test. A point on a hole's boundary is on the polygon's
// boundary and so counts as inside.
//
// Callers must validate geometry first; malformed polygons are undefined
// behavior here.
func IsPointInGeoJSONPolygon(p geom.Point, poly Polygon) bool {
	if geom.RingPosition(p, poly.Exterior()) == geom.Outside {
		return false
	}
	for _, hole := range poly.Holes() {
		if geom.RingPosition(p, hole) == geom.Inside {
			return false
		}
	}
	return true
}

// Checker carries the customer-facing region wording for miss messages.
type Checker struct {
	regionLabel string
}

func NewChecker(cfg config.ServiceConfig) *Checker {
	label := cfg.RegionLabel
	if label == "" {
		label = DefaultRegionLabel
	}
	return &Checker{regionLabel: label}
}

// Check converts the caller's lat/lng to GeoJSON [lng, lat] order and scans
// the active areas in input order. First match wins; overlapping areas
// resolve by list order, not by size or specificity.
func (c *Checker) Check(lat, lng float64, areas []ServiceArea) Result {
	point := geom.Point{lng, lat}

	anyActive := false
	for _, area := range areas {
		if !area.Active {
			continue
		}
		anyActive = true
		if IsPointInGeoJSONPolygon(point, area.Polygon) {
			id := area.ID
			return Result{
				IsServiceable:   true,
				MatchedAreaID:   &id,
				MatchedAreaName: area.Name,
				Message:         fmt.Sprintf("Good news! That address is in our %s service area.", area.Name),
			}
		}
	}

	if !anyActive {
		return Result{Message: msgNoActiveAreas}
	}
	return Result{
		Message: fmt.Sprintf(
			"Sorry, that address is outside our current service area. We currently serve %s.",
			c.regionLabel,
		),
	}
}

var defaultChecker = &Checker{regionLabel: DefaultRegionLabel}

// CheckServiceability runs Check with the default region wording.
func CheckServiceability(lat, lng float64, areas []ServiceArea) Result {
	return defaultChecker.Check(lat, lng, areas)
}
