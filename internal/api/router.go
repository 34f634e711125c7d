package api

import (
	"net/http"
	"traverse-adjustment-service/internal/api/handlers"
	"traverse-adjustment-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(adjuster handlers.TraverseAdjuster, defaults services.AdjustOptions) http.Handler {
	mux := http.NewServeMux()

	adjHandler := &handlers.AdjustmentHandler{
		Adjuster: adjuster,
		Defaults: defaults,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/adjustments", adjHandler.Adjust)
	mux.HandleFunc("/adjustments/geojson", adjHandler.GeoJSON)

	return requestIDMiddleware(loggingMiddleware(mux))
}
