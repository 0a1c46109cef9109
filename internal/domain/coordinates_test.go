package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateEqual(t *testing.T) {
	a := Coordinate{Lat: 23.8103, Lon: 90.4125}

	assert.True(t, a.Equal(Coordinate{Lat: 23.8103, Lon: 90.4125}))
	assert.False(t, a.Equal(Coordinate{Lat: 23.8103, Lon: 90.4126}))
	assert.False(t, a.Equal(Coordinate{Lat: 23.8104, Lon: 90.4125}))
}

func TestEntitiesExposePosition(t *testing.T) {
	c := &Coordinate{Lat: 1, Lon: 2}

	entities := []GeoEntity{
		Marathon{Coordinates: c},
		Gym{Coordinates: c},
		GymBuddy{Coordinates: c},
	}
	for _, e := range entities {
		assert.Same(t, c, e.Position())
	}

	assert.Nil(t, Gym{}.Position())
}

func TestGymJSONShape(t *testing.T) {
	g := Gym{
		ID:          4,
		Name:        "Banani Strength Club",
		MonthlyFee:  4500,
		Coordinates: &Coordinate{Lat: 23.7937, Lon: 90.4066},
		SocialMedia: GymSocialMedia{Website: "https://example.com"},
	}

	b, err := json.Marshal(g)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, map[string]any{"lat": 23.7937, "lon": 90.4066}, got["coordinates"])
	assert.Equal(t, float64(4500), got["monthlyFee"])
	assert.Equal(t, "https://example.com", got["socialMedia"].(map[string]any)["website"])
}

func TestMissingCoordinatesDecodeAsNil(t *testing.T) {
	var b GymBuddy
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Tanvir","coordinates":null}`), &b))
	assert.Nil(t, b.Position())

	var m Marathon
	require.NoError(t, json.Unmarshal([]byte(`{"id":2}`), &m))
	assert.Nil(t, m.Position())
}
