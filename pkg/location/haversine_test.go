package location

import (
	"math"
	"testing"
)

func TestHaversineZeroDistance(t *testing.T) {
	d := HaversineKm(-23.5505, -46.6333, -23.5505, -46.6333)
	if d != 0 {
		t.Errorf("distance between identical points = %f, want 0", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	points := [][4]float64{
		{-23.5505, -46.6333, -22.9068, -43.1729}, // São Paulo -> Rio
		{-23.5505, -46.6333, -23.5605, -46.6433},
		{0, 0, 10, 10},
		{51.5074, -0.1278, 40.7128, -74.0060}, // London -> New York
	}
	for _, p := range points {
		ab := HaversineKm(p[0], p[1], p[2], p[3])
		ba := HaversineKm(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("HaversineKm not symmetric: %f vs %f for %v", ab, ba, p)
		}
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// São Paulo -> Rio de Janeiro, roughly 360 km great-circle.
	d := HaversineKm(-23.5505, -46.6333, -22.9068, -43.1729)
	if d < 350 || d > 370 {
		t.Errorf("São Paulo -> Rio = %f km, want ~360", d)
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		in      float64
		want1   float64
		want2   float64
	}{
		{3.14159, 3.1, 3.14},
		{2.0, 2.0, 2.0},
		{10.9999, 11.0, 11.0},
		{0.05, 0.1, 0.05},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want1 {
			t.Errorf("Round1(%f) = %f, want %f", tt.in, got, tt.want1)
		}
		if got := Round2(tt.in); got != tt.want2 {
			t.Errorf("Round2(%f) = %f, want %f", tt.in, got, tt.want2)
		}
	}
}
