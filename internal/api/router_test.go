package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"nearby-fitness-service/internal/domain"
	"nearby-fitness-service/internal/services"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	c := domain.Coordinate{Lat: 23.8103, Lon: 90.4125}
	svc, err := services.NewProximityService(&domain.Snapshot{
		Marathons:  []domain.Marathon{{ID: 1, Coordinates: &c}},
		Gyms:       []domain.Gym{{ID: 1, Coordinates: &c}},
		GymBuddies: []domain.GymBuddy{{ID: 1, Coordinates: &c}},
	})
	require.NoError(t, err)

	return NewRouter(svc)
}

func do(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouterResources(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/v1/marathon", "/api/v1/gyms", "/api/v1/gymbros"} {
		rec := do(router, http.MethodGet, path+"?lat=23.8103&lon=90.4125", nil)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body struct {
			Success bool             `json:"success"`
			Data    []map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Len(t, body.Data, 1, path)
	}
}

func TestRouterHealthAndDocs(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = do(router, http.MethodGet, "/api-docs/openapi.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc["paths"], "/api/v1/gymbros")

	for _, path := range []string{"/api-docs", "/api-docs/"} {
		rec = do(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/api-docs/openapi.json", rec.Header().Get("Location"), path)
	}
}

func TestRouterFallbacks(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/api/v1/stadiums", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())

	rec = do(router, http.MethodPost, "/api/v1/gyms?lat=1&lon=1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodOptions, "/api/v1/gyms", http.Header{
		"Origin":                        {"http://localhost:5173"},
		"Access-Control-Request-Method": {"GET"},
	})

	assert.Less(t, rec.Code, 300)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/health", nil)
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)

	rec = do(router, http.MethodGet, "/health", http.Header{requestIDHeader: {"trace-123"}})
	assert.Equal(t, "trace-123", rec.Header().Get(requestIDHeader))
}

func TestRecoverMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	t.Cleanup(zap.ReplaceGlobals(zap.New(core)))

	h := requestIDMiddleware(loggingMiddleware(recoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("generator bug")
	}))))

	rec := do(h, http.MethodGet, "/api/v1/gyms", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Something went wrong!"}`, rec.Body.String())

	access := logs.FilterMessage("request").All()
	require.Len(t, access, 1)
	assert.Equal(t, int64(http.StatusInternalServerError), access[0].ContextMap()["status"])
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}
