package geo

import "math"

// EarthRadius is the mean Earth radius in meters used for all spherical calculations.
const EarthRadius = 6371000

// Point represents a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Distance calculates the Haversine distance between two points in meters.
// It assumes a spherical Earth, which is accurate to ~0.5% for our purposes.
func Distance(p1, p2 Point) float64 {
	dLat := (p2.Lat - p1.Lat) * (math.Pi / 180.0)
	dLon := (p2.Lon - p1.Lon) * (math.Pi / 180.0)
	lat1 := p1.Lat * (math.Pi / 180.0)
	lat2 := p2.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// Float rounding can push h just outside [0,1] for identical or
	// antipodal points, which would take Asin out of its domain.
	h = math.Max(0, math.Min(1, h))

	return 2 * EarthRadius * math.Asin(math.Sqrt(h))
}

// Bearing calculates the initial bearing (forward azimuth) from p1 to p2 in degrees.
func Bearing(p1, p2 Point) float64 {
	lat1 := p1.Lat * (math.Pi / 180.0)
	lat2 := p2.Lat * (math.Pi / 180.0)
	dLon := (p2.Lon - p1.Lon) * (math.Pi / 180.0)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Atan2(y, x)

	return math.Mod(brng*(180.0/math.Pi)+360.0, 360.0)
}

// Midpoint returns the arithmetic midpoint of two points in degree space.
// This is not the great-circle midpoint; the error is negligible for the
// short (sub-kilometer) gaps it is used on.
func Midpoint(p1, p2 Point) Point {
	return Point{
		Lat: (p1.Lat + p2.Lat) / 2,
		Lon: (p1.Lon + p2.Lon) / 2,
	}
}

// Lerp linearly interpolates between p1 and p2 in degree space.
// ratio 0 yields p1, ratio 1 yields p2. Like Midpoint, this is a flat-earth
// approximation that only holds for short mid-latitude segments.
func Lerp(p1, p2 Point, ratio float64) Point {
	return Point{
		Lat: p1.Lat + (p2.Lat-p1.Lat)*ratio,
		Lon: p1.Lon + (p2.Lon-p1.Lon)*ratio,
	}
}
