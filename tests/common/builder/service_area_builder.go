//go:build unit

package builder

import (
	"github.com/google/uuid"

	"rolloff-core/internal/domain/serviceability"
	"rolloff-core/internal/pkg/geom"
)

// SquareRing returns a closed CCW square ring with the given lower-left
// corner and side length.
func SquareRing(minLng, minLat, side float64) geom.Ring {
	return geom.Ring{
		{minLng, minLat},
		{minLng + side, minLat},
		{minLng + side, minLat + side},
		{minLng, minLat + side},
		{minLng, minLat},
	}
}

type ServiceAreaBuilder struct {
	ID     uuid.UUID
	Name   string
	Rings  []geom.Ring
	Active bool
}

func NewServiceAreaBuilder() *ServiceAreaBuilder {
	return &ServiceAreaBuilder{
		ID:     uuid.New(),
		Name:   "Metro North",
		Rings:  []geom.Ring{SquareRing(0, 0, 10)},
		Active: true,
	}
}

func (b *ServiceAreaBuilder) With(mutate func(*ServiceAreaBuilder)) *ServiceAreaBuilder {
	mutate(b)
	return b
}

func (b *ServiceAreaBuilder) Build() serviceability.ServiceArea {
	return serviceability.ServiceArea{
		ID:   b.ID,
		Name: b.Name,
		Polygon: serviceability.Polygon{
			Type:        serviceability.PolygonType,
			Coordinates: b.Rings,
		},
		Active: b.Active,
	}
}
