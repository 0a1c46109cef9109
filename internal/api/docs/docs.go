// Package docs serves the OpenAPI description of the public endpoints.
package docs

import (
	_ "embed"
	"net/http"
)

// Path is where the OpenAPI document is served.
const Path = "/api-docs/openapi.json"

//go:embed openapi.json
var openAPI []byte

// Serve writes the embedded OpenAPI document.
func Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPI)
}

// Redirect sends documentation index requests to the OpenAPI document.
func Redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, Path, http.StatusFound)
}
