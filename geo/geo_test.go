// Package geo_test validates the haversine distance function: identity,
// symmetry, and agreement with well-known reference distances.
package geo_test

import (
	"math"
	"testing"

	"github.com/devu90197/CabDriverAgent/geo"
)

// TestHaversine_Identity verifies distance(A, A) == 0 exactly.
func TestHaversine_Identity(t *testing.T) {
	pts := []geo.Coord{
		{Lat: 0, Lon: 0},
		{Lat: 12.9716, Lon: 77.5946},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 90, Lon: 0},
	}
	for _, p := range pts {
		if d := geo.Haversine(p, p); d != 0 {
			t.Errorf("Haversine(%v, %v) = %g; want exactly 0", p, p, d)
		}
	}
}

// TestHaversine_Symmetry verifies distance(A, B) == distance(B, A) to
// floating-point precision.
func TestHaversine_Symmetry(t *testing.T) {
	a := geo.Coord{Lat: 12.9716, Lon: 77.5946}  // Bangalore
	b := geo.Coord{Lat: 13.0827, Lon: 80.2707}  // Chennai
	c := geo.Coord{Lat: 51.5074, Lon: -0.1278}  // London
	d := geo.Coord{Lat: 40.7128, Lon: -74.0060} // New York

	pairs := [][2]geo.Coord{{a, b}, {a, c}, {c, d}, {b, d}}
	for _, p := range pairs {
		ab := geo.Haversine(p[0], p[1])
		ba := geo.Haversine(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("asymmetric: Haversine(a,b)=%g, Haversine(b,a)=%g", ab, ba)
		}
	}
}

// TestHaversine_ReferenceDistances checks a handful of known great-circle
// distances with a loose tolerance (the spherical model is itself ~0.5% off).
func TestHaversine_ReferenceDistances(t *testing.T) {
	cases := []struct {
		name   string
		a, b   geo.Coord
		wantKm float64
		tolKm  float64
	}{
		{
			name:   "Bangalore-Chennai",
			a:      geo.Coord{Lat: 12.9716, Lon: 77.5946},
			b:      geo.Coord{Lat: 13.0827, Lon: 80.2707},
			wantKm: 290,
			tolKm:  5,
		},
		{
			name:   "London-NewYork",
			a:      geo.Coord{Lat: 51.5074, Lon: -0.1278},
			b:      geo.Coord{Lat: 40.7128, Lon: -74.0060},
			wantKm: 5570,
			tolKm:  30,
		},
		{
			name:   "one degree of latitude at the equator",
			a:      geo.Coord{Lat: 0, Lon: 0},
			b:      geo.Coord{Lat: 1, Lon: 0},
			wantKm: 111.19,
			tolKm:  0.1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geo.Haversine(tc.a, tc.b)
			if math.Abs(got-tc.wantKm) > tc.tolKm {
				t.Errorf("Haversine = %.2f km; want %.2f ± %.2f km", got, tc.wantKm, tc.tolKm)
			}
		})
	}
}

// TestHaversine_NonNegative guards against negative results on antipodal and
// near-identical inputs.
func TestHaversine_NonNegative(t *testing.T) {
	a := geo.Coord{Lat: 0, Lon: 0}
	b := geo.Coord{Lat: 0, Lon: 180}
	if d := geo.Haversine(a, b); d < 0 {
		t.Fatalf("antipodal distance negative: %g", d)
	}
	c := geo.Coord{Lat: 0, Lon: 1e-12}
	if d := geo.Haversine(a, c); d < 0 {
		t.Fatalf("near-identical distance negative: %g", d)
	}
}
