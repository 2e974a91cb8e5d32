package export

import (
	"fmt"
	"os"

	"github.com/twpayne/go-polyline"

	"trackgen/pkg/track"
)

// EncodePolyline returns the track as a Google encoded polyline string.
// The encoding quantizes to 5 decimal places by definition.
func EncodePolyline(t track.Track) string {
	coords := make([][]float64, 0, len(t))
	for _, p := range t {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

// WritePolyline writes the encoded polyline to a file with a trailing
// newline.
func WritePolyline(path string, t track.Track) error {
	data := append([]byte(EncodePolyline(t)), '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
