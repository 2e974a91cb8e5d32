// Package export writes generated tracks to the formats the consuming
// apps expect: a plain latitude/longitude JSON array, GeoJSON, and
// Google encoded polylines.
package export

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"trackgen/pkg/geo"
	"trackgen/pkg/track"
)

// Coordinate is the wire format of a single track point:
// {"latitude": 52.52, "longitude": 13.405}.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Round truncates a value to the given number of decimal places.
func Round(v float64, precision int) float64 {
	scale := math.Pow10(precision)
	return math.Round(v*scale) / scale
}

// Coordinates converts a track to its wire format, rounding each
// component to the given number of decimal places.
func Coordinates(t track.Track, precision int) []Coordinate {
	coords := make([]Coordinate, 0, len(t))
	for _, p := range t {
		coords = append(coords, Coordinate{
			Latitude:  Round(p.Lat, precision),
			Longitude: Round(p.Lon, precision),
		})
	}
	return coords
}

// WriteJSON writes the track as a JSON array of coordinate objects.
func WriteJSON(path string, t track.Track, precision int, pretty bool) error {
	coords := Coordinates(t, precision)

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(coords, "", "  ")
	} else {
		data, err = json.Marshal(coords)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal coordinates: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// ReadJSON reads a coordinate array file back into a track.
func ReadJSON(path string) (track.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var coords []Coordinate
	if err := json.Unmarshal(data, &coords); err != nil {
		return nil, fmt.Errorf("failed to parse coordinates: %w", err)
	}

	t := make(track.Track, 0, len(coords))
	for _, c := range coords {
		t = append(t, geo.Point{Lat: c.Latitude, Lon: c.Longitude})
	}
	return t, nil
}
