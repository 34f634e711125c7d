package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"traverse-adjustment-service/internal/api/dto"
	"traverse-adjustment-service/internal/domain"
)

var internalErrorBody = []byte(`{"error":"internal server error"}` + "\n")

// writeJSON encodes v before touching the status line so an unencodable
// value becomes a 500 instead of a truncated 2xx.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		status, body = http.StatusInternalServerError, internalErrorBody
	} else {
		body = append(body, '\n')
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Printf("write failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// writeDomainError maps the traverse error taxonomy to 422 responses with a
// stable code; anything else is an internal error.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	code := ""
	switch {
	case errors.Is(err, domain.ErrInsufficientStations):
		code = "insufficient_stations"
	case errors.Is(err, domain.ErrZeroTotalDistance):
		code = "zero_total_distance"
	case errors.Is(err, domain.ErrDegenerateControlPoints):
		code = "degenerate_control_points"
	case errors.Is(err, domain.ErrInvalidInput):
		code = "invalid_input"
	}

	if code == "" {
		log.Printf("adjust traverse failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Code: code})
}
