package handlers

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"nearby-fitness-service/internal/api/dto"
)

var (
	errMissingCoordinates = errors.New("Latitude and longitude are required")
	errInvalidCoordinates = errors.New("Latitude and longitude must be numbers")
	errInvalidRadius      = errors.New("radius must be a positive number")
)

var validate = validator.New()

// parseNearbyQuery reads lat, lon and the optional radius (km). Presence is
// checked before parsing. The returned error message is safe to show to the client.
func parseNearbyQuery(values url.Values) (dto.NearbyQuery, error) {
	var q dto.NearbyQuery

	rawLat := strings.TrimSpace(values.Get("lat"))
	rawLon := strings.TrimSpace(values.Get("lon"))
	if rawLat == "" || rawLon == "" {
		return q, errMissingCoordinates
	}

	var err error
	if q.Lat, err = parseFloat(rawLat); err != nil {
		return q, errInvalidCoordinates
	}
	if q.Lon, err = parseFloat(rawLon); err != nil {
		return q, errInvalidCoordinates
	}
	if q.Radius, err = parseFloat(values.Get("radius")); err != nil {
		return q, errInvalidRadius
	}

	if err := validate.Struct(q); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && fieldErrs[0].Field() == "Radius" {
			return q, errInvalidRadius
		}
		return q, errMissingCoordinates
	}

	return q, nil
}

// parseFloat returns nil for an empty value and rejects non-finite numbers.
func parseFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, strconv.ErrRange
	}

	return &v, nil
}
