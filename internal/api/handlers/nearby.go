package handlers

import (
	"context"
	"net/http"

	"nearby-fitness-service/internal/api/dto"
	"nearby-fitness-service/internal/domain"
	"nearby-fitness-service/internal/services"
)

// NearbyHandler exposes the read-only proximity endpoints.
type NearbyHandler struct {
	Service *services.ProximityService
}

func (h *NearbyHandler) Marathons(w http.ResponseWriter, r *http.Request) {
	serveNearby(w, r, h.Service.NearbyMarathons)
}

func (h *NearbyHandler) Gyms(w http.ResponseWriter, r *http.Request) {
	serveNearby(w, r, h.Service.NearbyGyms)
}

func (h *NearbyHandler) GymBuddies(w http.ResponseWriter, r *http.Request) {
	serveNearby(w, r, h.Service.NearbyGymBuddies)
}

// serveNearby validates the query point before the service is called, so a
// bad request never reaches the filter.
func serveNearby[E domain.GeoEntity](
	w http.ResponseWriter,
	r *http.Request,
	find func(context.Context, services.NearbyRequest) ([]E, error),
) {
	q, err := parseNearbyQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	found, err := find(r.Context(), services.NearbyRequest{
		Origin:   domain.Coordinate{Lat: *q.Lat, Lon: *q.Lon},
		RadiusKm: q.Radius,
	})
	if err != nil {
		WriteInternalError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NearbyResponse[E]{Success: true, Data: found})
}
