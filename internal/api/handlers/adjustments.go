package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"traverse-adjustment-service/internal/api/dto"
	"traverse-adjustment-service/internal/domain"
	"traverse-adjustment-service/internal/services"
)

const maxBodyBytes = 1 << 20

// TraverseAdjuster computes an adjustment for one traverse.
type TraverseAdjuster interface {
	Adjust(ctx context.Context, t domain.Traverse, opts services.AdjustOptions) (*domain.Adjustment, error)
}

// Defaults fills the options a request leaves unset.
type AdjustmentHandler struct {
	Adjuster TraverseAdjuster
	Defaults services.AdjustOptions
}

// Adjust runs the traverse adjustment and returns every stage's output.
func (h *AdjustmentHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	req, t, opts, ok := h.decode(w, r)
	if !ok {
		return
	}

	adj, err := h.Adjuster.Adjust(r.Context(), t, opts)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toAdjustmentResponse(adj, opts, req.NormalizeBearings))
}

// GeoJSON runs the traverse adjustment and returns the adjusted stations as a
// GeoJSON FeatureCollection. Positions are plane [easting, northing] in meters,
// not WGS84 lon/lat; each feature is tagged with coordinate_frame.
func (h *AdjustmentHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	_, t, opts, ok := h.decode(w, r)
	if !ok {
		return
	}

	adj, err := h.Adjuster.Adjust(r.Context(), t, opts)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	b, err := toFeatureCollection(t, adj).MarshalJSON()
	if err != nil {
		writeDomainError(w, r, fmt.Errorf("encode geojson: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// decode validates method and body and converts the request into domain input.
// It writes the error response itself and reports ok=false on failure.
func (h *AdjustmentHandler) decode(w http.ResponseWriter, r *http.Request) (dto.AdjustmentRequest, domain.Traverse, services.AdjustOptions, bool) {
	var req dto.AdjustmentRequest

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return req, domain.Traverse{}, services.AdjustOptions{}, false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return req, domain.Traverse{}, services.AdjustOptions{}, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return req, domain.Traverse{}, services.AdjustOptions{}, false
	}

	t, err := toTraverse(req)
	if err != nil {
		writeDomainError(w, r, err)
		return req, domain.Traverse{}, services.AdjustOptions{}, false
	}

	opts := h.Defaults
	if req.LengthMode != "" {
		opts.LengthMode, err = services.ParseLengthMode(req.LengthMode)
		if err != nil {
			writeDomainError(w, r, err)
			return req, domain.Traverse{}, services.AdjustOptions{}, false
		}
	}
	if req.PropagationMode != "" {
		opts.PropagationMode, err = services.ParsePropagationMode(req.PropagationMode)
		if err != nil {
			writeDomainError(w, r, err)
			return req, domain.Traverse{}, services.AdjustOptions{}, false
		}
	}

	return req, t, opts, true
}

func toTraverse(req dto.AdjustmentRequest) (domain.Traverse, error) {
	s1, err := toPoint("station1", req.Station1)
	if err != nil {
		return domain.Traverse{}, err
	}
	s2, err := toPoint("station2", req.Station2)
	if err != nil {
		return domain.Traverse{}, err
	}

	legs := make([]domain.Leg, 0, len(req.Legs))
	for i, l := range req.Legs {
		if l.Angle == nil {
			return domain.Traverse{}, fmt.Errorf("legs[%d].angle is required: %w", i, domain.ErrInvalidInput)
		}
		if l.Distance == nil {
			return domain.Traverse{}, fmt.Errorf("legs[%d].distance is required: %w", i, domain.ErrInvalidInput)
		}
		legs = append(legs, domain.Leg{Angle: *l.Angle, Distance: *l.Distance})
	}

	return domain.Traverse{Station1: s1, Station2: s2, Legs: legs}, nil
}

func toPoint(name string, p *dto.PointRequest) (domain.Point, error) {
	if p == nil {
		return domain.Point{}, fmt.Errorf("%s is required: %w", name, domain.ErrInvalidInput)
	}
	if p.Easting == nil || p.Northing == nil {
		return domain.Point{}, fmt.Errorf("%s requires easting and northing: %w", name, domain.ErrInvalidInput)
	}
	return domain.Point{Easting: *p.Easting, Northing: *p.Northing}, nil
}

func toAdjustmentResponse(adj *domain.Adjustment, opts services.AdjustOptions, normalize bool) dto.AdjustmentResponse {
	if opts.LengthMode == "" {
		opts.LengthMode = services.LengthByDistance
	}
	if opts.PropagationMode == "" {
		opts.PropagationMode = services.PropagateCumulative
	}

	legs := make([]dto.LegResponse, 0, len(adj.Legs))
	for i, l := range adj.Legs {
		bearing := l.Bearing
		if normalize {
			bearing = services.NormalizeBearing(bearing)
		}

		legs = append(legs, dto.LegResponse{
			Station:            i + 1,
			Angle:              l.Angle,
			Distance:           l.Distance,
			CorrectedAngle:     l.CorrectedAngle,
			Bearing:            bearing,
			Latitude:           l.Latitude,
			Departure:          l.Departure,
			CorrectedLatitude:  l.CorrectedLatitude,
			CorrectedDeparture: l.CorrectedDeparture,
		})
	}

	coords := make([]dto.CoordinateResponse, 0, len(adj.Coordinates))
	for i, c := range adj.Coordinates {
		coords = append(coords, dto.CoordinateResponse{
			Station:  i + 1,
			Easting:  c.Easting,
			Northing: c.Northing,
		})
	}

	acc := dto.AccuracyResponse{
		ClosingErrorEasting:  adj.Accuracy.ClosingErrorEasting,
		ClosingErrorNorthing: adj.Accuracy.ClosingErrorNorthing,
		ClosingError:         adj.Accuracy.ClosingError,
		TraverseLength:       adj.TraverseLength,
		LengthMode:           string(opts.LengthMode),
		RatioText:            adj.Accuracy.Ratio(),
		PerfectClosure:       adj.Accuracy.PerfectClosure(),
	}
	if !acc.PerfectClosure {
		ratio := adj.Accuracy.RatioValue
		acc.Ratio = &ratio
	}

	return dto.AdjustmentResponse{
		PropagationMode:     string(opts.PropagationMode),
		InitialBearing:      adj.InitialBearing,
		AngleSum:            adj.AngleSum,
		ExpectedAngleSum:    adj.ExpectedAngleSum,
		AngularClosingError: adj.AngularClosingError,
		Legs:                legs,
		LatitudeMisclosure:  adj.LatitudeMisclosure,
		DepartureMisclosure: adj.DepartureMisclosure,
		TotalDistance:       adj.TotalDistance,
		Coordinates:         coords,
		Accuracy:            acc,
	}
}
