package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	testCases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 8.9886, lon1: 7.3884, lat2: 8.9886, lon2: 7.3884,
			want: 0, tolerance: 1e-9,
		},
		{
			name: "one degree of longitude at the equator",
			lat1: 0, lon1: 0, lat2: 0, lon2: 1,
			want: 111194.9, tolerance: 1.0,
		},
		{
			name: "short campus hop",
			lat1: 8.989792, lon1: 7.386981, lat2: 8.988106, lon2: 7.386445,
			want: 196.0, tolerance: 5.0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestHaversineSymmetryAndNonNegativity(t *testing.T) {
	pairs := [][4]float64{
		{8.9886, 7.3884, 8.9898, 7.3870},
		{0, 0, -45, 120},
		{89.9, 179.9, -89.9, -179.9},
	}
	for _, p := range pairs {
		d1 := CalculateHaversineDistance(p[0], p[1], p[2], p[3])
		d2 := CalculateHaversineDistance(p[2], p[3], p[0], p[1])
		assert.GreaterOrEqual(t, d1, 0.0)
		assert.InDelta(t, d1, d2, 1e-6)
	}
}

func TestBearingTo(t *testing.T) {
	testCases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{name: "due north", lat1: 0, lon1: 0, lat2: 1, lon2: 0, want: 0},
		{name: "due east", lat1: 0, lon1: 0, lat2: 0, lon2: 1, want: 90},
		{name: "due south", lat1: 1, lon1: 0, lat2: 0, lon2: 0, want: 180},
		{name: "due west", lat1: 0, lon1: 1, lat2: 0, lon2: 0, want: 270},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := BearingTo(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, 1e-6)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}

func TestBearingDiff(t *testing.T) {
	testCases := []struct {
		name       string
		prev, next float64
		want       float64
	}{
		{name: "no turn", prev: 90, next: 90, want: 0},
		{name: "right turn", prev: 0, next: 90, want: 90},
		{name: "left turn", prev: 90, next: 0, want: -90},
		{name: "wrap right across north", prev: 350, next: 20, want: 30},
		{name: "wrap left across north", prev: 10, next: 340, want: -30},
		{name: "opposite direction normalizes to +180", prev: 0, next: 180, want: 180},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BearingDiff(tt.prev, tt.next), 1e-9)
		})
	}
}

func TestGetDestinationPointRoundTrip(t *testing.T) {
	lat, lon := 8.9886, 7.3884
	for _, bearing := range []float64{0, 45, 90, 135, 225} {
		dLat, dLon := GetDestinationPoint(lat, lon, bearing, 50)
		back := CalculateHaversineDistance(lat, lon, dLat, dLon)
		if math.Abs(back-50) > 0.01 {
			t.Errorf("bearing %.0f: expected 50 m, got %.4f m", bearing, back)
		}
	}
}
