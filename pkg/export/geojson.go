package export

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"trackgen/pkg/track"
)

// WriteGeoJSON writes the track as a single LineString Feature.
// Handy for eyeballing a generated route on geojson.io.
func WriteGeoJSON(path, name string, t track.Track, precision int) error {
	line := make(orb.LineString, 0, len(t))
	for _, p := range t {
		// GeoJSON positions are [lon, lat].
		line = append(line, orb.Point{Round(p.Lon, precision), Round(p.Lat, precision)})
	}

	feature := geojson.NewFeature(line)
	feature.Properties["name"] = name
	feature.Properties["points"] = len(t)

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
