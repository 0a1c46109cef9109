package services

import (
	"context"
	"errors"
	"fmt"

	"nearby-fitness-service/internal/domain"
	"nearby-fitness-service/internal/geo"
	"nearby-fitness-service/internal/platform/obs"
)

// DefaultRadiusKm is the search radius used when the caller does not pick one.
const DefaultRadiusKm = 10.0

// FilterWithinRadius returns the entities whose distance to origin is at most
// radiusKm, keeping their input order. The input slice and its elements are
// never modified.
//
// A radius of zero or less only matches entities located exactly at origin.
// An entity without coordinates aborts the whole query with *InvalidEntityError.
func FilterWithinRadius[E domain.GeoEntity](entities []E, origin domain.Coordinate, radiusKm float64) ([]E, error) {
	out := make([]E, 0)

	for i, e := range entities {
		pos := e.Position()
		if pos == nil {
			return nil, &InvalidEntityError{Index: i}
		}

		if withinRadius(*pos, origin, radiusKm) {
			out = append(out, e)
		}
	}

	return out, nil
}

// FilterNearby is FilterWithinRadius with DefaultRadiusKm.
func FilterNearby[E domain.GeoEntity](entities []E, origin domain.Coordinate) ([]E, error) {
	return FilterWithinRadius(entities, origin, DefaultRadiusKm)
}

func withinRadius(pos, origin domain.Coordinate, radiusKm float64) bool {
	if radiusKm <= 0 {
		return pos.Equal(origin)
	}
	// NaN distances compare false and are never matched.
	return geo.Distance(origin, pos) <= radiusKm
}

// NearbyRequest describes one proximity query. A nil RadiusKm selects the
// service default radius.
type NearbyRequest struct {
	Origin   domain.Coordinate
	RadiusKm *float64
}

// ProximityService answers proximity queries against an injected snapshot.
// It is safe for concurrent use as long as nobody mutates the snapshot.
type ProximityService struct {
	snapshot        *domain.Snapshot
	defaultRadiusKm float64
}

type Option func(*ProximityService) error

// WithDefaultRadius overrides DefaultRadiusKm for requests without a radius.
func WithDefaultRadius(km float64) Option {
	return func(s *ProximityService) error {
		if !(km > 0) {
			return fmt.Errorf("default radius must be positive, got %v", km)
		}
		s.defaultRadiusKm = km
		return nil
	}
}

func NewProximityService(snapshot *domain.Snapshot, opts ...Option) (*ProximityService, error) {
	if snapshot == nil {
		return nil, errors.New("new proximity service: snapshot is nil")
	}

	s := &ProximityService{
		snapshot:        snapshot,
		defaultRadiusKm: DefaultRadiusKm,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("new proximity service: %w", err)
		}
	}

	return s, nil
}

// DefaultRadiusKm returns the radius applied when a request carries none.
func (s *ProximityService) DefaultRadiusKm() float64 { return s.defaultRadiusKm }

func (s *ProximityService) NearbyMarathons(ctx context.Context, req NearbyRequest) (_ []domain.Marathon, err error) {
	defer obs.Time(ctx, "proximity.marathons")(&err)

	out, err := FilterWithinRadius(s.snapshot.Marathons, req.Origin, s.radius(req))
	if err != nil {
		return nil, fmt.Errorf("nearby marathons: %w", err)
	}
	return out, nil
}

func (s *ProximityService) NearbyGyms(ctx context.Context, req NearbyRequest) (_ []domain.Gym, err error) {
	defer obs.Time(ctx, "proximity.gyms")(&err)

	out, err := FilterWithinRadius(s.snapshot.Gyms, req.Origin, s.radius(req))
	if err != nil {
		return nil, fmt.Errorf("nearby gyms: %w", err)
	}
	return out, nil
}

func (s *ProximityService) NearbyGymBuddies(ctx context.Context, req NearbyRequest) (_ []domain.GymBuddy, err error) {
	defer obs.Time(ctx, "proximity.gym_buddies")(&err)

	out, err := FilterWithinRadius(s.snapshot.GymBuddies, req.Origin, s.radius(req))
	if err != nil {
		return nil, fmt.Errorf("nearby gym buddies: %w", err)
	}
	return out, nil
}

func (s *ProximityService) radius(req NearbyRequest) float64 {
	if req.RadiusKm == nil {
		return s.defaultRadiusKm
	}
	return *req.RadiusKm
}
