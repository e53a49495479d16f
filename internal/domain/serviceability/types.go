package serviceability

import (
	"github.com/google/uuid"

	"rolloff-core/internal/pkg/errs"
	"rolloff-core/internal/pkg/geom"
)

const PolygonType = "Polygon"

// Polygon is a GeoJSON Polygon: Coordinates[0] is the exterior ring, any
// further rings are holes.
type Polygon struct {
	Type        string      `json:"type"`
	Coordinates []geom.Ring `json:"coordinates"`
}

func (p Polygon) Exterior() geom.Ring {
	if len(p.Coordinates) == 0 {
		return nil
	}
	return p.Coordinates[0]
}

func (p Polygon) Holes() []geom.Ring {
	if len(p.Coordinates) < 2 {
		return nil
	}
	return p.Coordinates[1:]
}

// Validate checks the typed polygon the same way IsValidPolygon checks raw
// JSON. Ring closure and winding order are deliberately not enforced.
func (p Polygon) Validate() error {
	if p.Type != PolygonType {
		return errs.Wrapf(errs.ErrInvalidPolygon, "unexpected geometry type %q", p.Type)
	}
	if len(p.Coordinates) == 0 {
		return errs.Wrap(errs.ErrInvalidPolygon, "polygon has no rings")
	}
	for i, ring := range p.Coordinates {
		if len(ring) < 4 {
			return errs.Wrapf(errs.ErrInvalidPolygon,
				"ring %d has %d positions, need at least 4", i, len(ring))
		}
	}
	return nil
}

// ServiceArea is an admin-defined coverage polygon. Only active areas
// participate in serviceability checks; this core reads areas, never edits
// them.
type ServiceArea struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Polygon Polygon   `json:"polygon"`
	Active  bool      `json:"active"`
}

// Result is the verdict for one address check. Message is customer-facing
// wording for both hits and misses.
type Result struct {
	IsServiceable   bool       `json:"is_serviceable"`
	MatchedAreaID   *uuid.UUID `json:"matched_area_id,omitempty"`
	MatchedAreaName string     `json:"matched_area_name,omitempty"`
	Message         string     `json:"message"`
}
