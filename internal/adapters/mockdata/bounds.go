package mockdata

import (
	"math"

	"nearby-fitness-service/internal/domain"
)

// Bounding box of Bangladesh; every generated entity lands inside it.
const (
	MinLat = 20.7433
	MaxLat = 26.634
	MinLon = 88.0283
	MaxLon = 92.6737
)

func (g *Generator) coordinate() *domain.Coordinate {
	return &domain.Coordinate{
		Lat: round(g.faker.Float64Range(MinLat, MaxLat), 4),
		Lon: round(g.faker.Float64Range(MinLon, MaxLon), 4),
	}
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
