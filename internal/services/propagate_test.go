package services

import (
	"errors"
	"math"
	"testing"
	"traverse-adjustment-service/internal/domain"
)

func TestPropagateSquare(t *testing.T) {
	res, err := Propagate(0, []float64{90, 90, 90, 90}, []float64{50, 50, 50, 50}, PropagateCumulative)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantBearings := []float64{90, 180, 270, 360}
	wantLat := []float64{0, -50, 0, 50}
	wantDep := []float64{50, 0, -50, 0}

	for i := range wantBearings {
		if res.Bearings[i] != wantBearings[i] {
			t.Errorf("bearing[%d] = %v, want %v", i, res.Bearings[i], wantBearings[i])
		}
		assertClose(t, "latitude", res.Latitudes[i], wantLat[i], 1e-9)
		assertClose(t, "departure", res.Departures[i], wantDep[i], 1e-9)
	}
}

func TestPropagateKeepsUnnormalizedBearings(t *testing.T) {
	res, err := Propagate(300, []float64{100, 100, 100}, []float64{10, 10, 10}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantBearings := []float64{400, 500, 600}
	for i, b := range res.Bearings {
		if b != wantBearings[i] {
			t.Errorf("bearing[%d] = %v, want %v", i, b, wantBearings[i])
		}

		// Components match the equivalent bearing in [0, 360).
		rad := NormalizeBearing(b) * math.Pi / 180
		assertClose(t, "latitude", res.Latitudes[i], 10*math.Cos(rad), 1e-9)
		assertClose(t, "departure", res.Departures[i], 10*math.Sin(rad), 1e-9)
	}
}

func TestPropagateLengthMismatch(t *testing.T) {
	if _, err := Propagate(0, []float64{90, 90, 90}, []float64{1, 2}, PropagateCumulative); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestPropagateReferenceAddsToInitialBearing(t *testing.T) {
	res, err := Propagate(0, []float64{90, 90, 90, 90}, []float64{50, 50, 50, 50}, PropagateReference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, b := range res.Bearings {
		if b != 90 {
			t.Errorf("bearing[%d] = %v, want 90", i, b)
		}
		assertClose(t, "latitude", res.Latitudes[i], 0, 1e-9)
		assertClose(t, "departure", res.Departures[i], 50, 1e-9)
	}
}

func TestPropagateReferenceUsesInitialBearingPerLeg(t *testing.T) {
	res, err := Propagate(30, []float64{100, 110, 120}, []float64{10, 10, 10}, PropagateReference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantBearings := []float64{130, 140, 150}
	for i, want := range wantBearings {
		if res.Bearings[i] != want {
			t.Errorf("bearing[%d] = %v, want %v", i, res.Bearings[i], want)
		}
	}
}

func TestPropagateUnknownMode(t *testing.T) {
	_, err := Propagate(0, []float64{90, 90, 90}, []float64{1, 1, 1}, "clockwise")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
