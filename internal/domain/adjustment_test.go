package domain

import (
	"math"
	"testing"
)

func TestAccuracyRatio(t *testing.T) {
	a := Accuracy{ClosingError: 0.01, RatioValue: 20000}
	if got := a.Ratio(); got != "1:20000.0000" {
		t.Fatalf("Ratio() = %q, want %q", got, "1:20000.0000")
	}
	if a.PerfectClosure() {
		t.Fatalf("finite ratio reported as perfect closure")
	}

	perfect := Accuracy{RatioValue: math.Inf(1)}
	if !perfect.PerfectClosure() {
		t.Fatalf("+Inf ratio not reported as perfect closure")
	}
	if got := perfect.Ratio(); got != "perfect closure" {
		t.Fatalf("Ratio() = %q, want %q", got, "perfect closure")
	}
}

func TestLastCoordinate(t *testing.T) {
	adj := &Adjustment{}
	if got := adj.LastCoordinate(); got != (Point{}) {
		t.Fatalf("empty LastCoordinate() = %v", got)
	}

	adj.Coordinates = []Point{{Easting: 1, Northing: 2}, {Easting: 3, Northing: 4}}
	if got := adj.LastCoordinate(); got != (Point{Easting: 3, Northing: 4}) {
		t.Fatalf("LastCoordinate() = %v", got)
	}
}

func TestPointOffset(t *testing.T) {
	p := Point{Easting: 10, Northing: 20}.Offset(2.5, -4)
	if p != (Point{Easting: 12.5, Northing: 16}) {
		t.Fatalf("Offset = %v", p)
	}
}
