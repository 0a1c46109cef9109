package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"nearby-fitness-service/internal/domain"
)

var (
	dhakaUniversity = domain.Coordinate{Lat: 23.8103, Lon: 90.4125}
	dhanmondi       = domain.Coordinate{Lat: 23.7937, Lon: 90.4066}
	mirpur          = domain.Coordinate{Lat: 23.7467, Lon: 90.3717}
)

func TestDistanceSamePointIsZero(t *testing.T) {
	points := []domain.Coordinate{
		dhakaUniversity,
		{Lat: 0, Lon: 0},
		{Lat: -90, Lon: 180},
		{Lat: 45.5, Lon: -122.6},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p, p), "distance(%v, %v)", p, p)
	}
}

func TestDistanceDhakaUniversityToDhanmondi(t *testing.T) {
	d := Distance(dhakaUniversity, dhanmondi)
	assert.InDelta(t, 1.94, d, 0.05)
}

func TestDistanceIsSymmetric(t *testing.T) {
	pairs := [][2]domain.Coordinate{
		{dhakaUniversity, dhanmondi},
		{dhakaUniversity, mirpur},
		{{Lat: 51.5074, Lon: -0.1278}, {Lat: 40.7128, Lon: -74.006}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 35.6762, Lon: 139.6503}},
		{{Lat: 0, Lon: 179.9}, {Lat: 0, Lon: -179.9}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-9, "%v <-> %v", p[0], p[1])
		assert.GreaterOrEqual(t, ab, 0.0)
	}
}

func TestDistanceKnownRange(t *testing.T) {
	// London to New York is roughly 5570 km.
	d := Distance(domain.Coordinate{Lat: 51.5074, Lon: -0.1278}, domain.Coordinate{Lat: 40.7128, Lon: -74.006})
	if d < 5500 || d > 5650 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestDistanceAntipodesIsHalfCircumference(t *testing.T) {
	d := Distance(domain.Coordinate{Lat: 0, Lon: 0}, domain.Coordinate{Lat: 0, Lon: 180})
	assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
}

func TestDistanceNaNPropagates(t *testing.T) {
	assert.NotPanics(t, func() {
		d := Distance(domain.Coordinate{Lat: math.NaN(), Lon: 0}, dhakaUniversity)
		assert.True(t, math.IsNaN(d))
	})
}

func TestDistanceAntipodalPairsAreFinite(t *testing.T) {
	want := math.Pi * EarthRadiusKm

	for lat := -89.0; lat <= 89; lat++ {
		for lon := -180.0; lon <= 0; lon += 7 {
			a := domain.Coordinate{Lat: lat, Lon: lon}
			b := domain.Coordinate{Lat: -lat, Lon: lon + 180}

			d := Distance(a, b)
			if math.IsNaN(d) {
				t.Fatalf("distance(%v, %v) is NaN", a, b)
			}
			assert.InDelta(t, want, d, 1e-3, "%v -> %v", a, b)
		}
	}

	d := Distance(domain.Coordinate{Lat: -84, Lon: -180}, domain.Coordinate{Lat: 84, Lon: 0})
	assert.InDelta(t, want, d, 1e-3)
}
