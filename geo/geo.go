package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Coord is a geographic coordinate in decimal degrees.
//
// Valid ranges are [-90, 90] for Lat and [-180, 180] for Lon; the package does
// not enforce them (boundary validation is an API-layer concern).
type Coord struct {
	// Lat is the latitude in decimal degrees.
	Lat float64 `json:"lat"`

	// Lon is the longitude in decimal degrees.
	Lon float64 `json:"lon"`
}

// radians converts decimal degrees to radians.
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Haversine returns the great-circle distance between a and b in kilometers.
//
// Formula:
//
//	h = sin²(Δφ/2) + cos(φ₁)·cos(φ₂)·sin²(Δλ/2)
//	d = 2R·asin(√h)
//
// Symmetric by construction; returns exactly 0 for identical coordinates.
// Complexity: O(1).
func Haversine(a, b Coord) float64 {
	// Convert both endpoints to radians once.
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	// Haversine of the central angle.
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}
