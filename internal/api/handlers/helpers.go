package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"nearby-fitness-service/internal/api/dto"
	"nearby-fitness-service/internal/platform/obs"
)

const msgInternal = "Something went wrong!"

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// WriteInternalError answers with the generic failure envelope. The cause
// only goes to the log.
func WriteInternalError(w http.ResponseWriter, r *http.Request, cause any) {
	zap.L().Error("request failed",
		zap.String("req_id", obs.RequestID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Any("cause", cause),
	)
	writeJSON(w, r, http.StatusInternalServerError, dto.FailureResponse{Success: false, Error: msgInternal})
}

// NotFound and MethodNotAllowed keep router fallbacks in JSON.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
