package track

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"trackgen/pkg/geo"
)

// Stats summarizes the spacing characteristics of a generated track.
// All distances are in meters, Bearing in degrees.
type Stats struct {
	Points        int
	TotalDistance float64
	MinSpacing    float64
	MaxSpacing    float64
	MeanSpacing   float64
	Bearing       float64
}

// Summarize re-walks the track and computes distance statistics over
// all adjacent point pairs. A track with fewer than two points has no
// spacings; only Points is set.
func Summarize(t Track) Stats {
	s := Stats{Points: len(t)}
	if len(t) < 2 {
		return s
	}

	spacings := make([]float64, 0, len(t)-1)
	for i := 1; i < len(t); i++ {
		spacings = append(spacings, geo.Distance(t[i-1], t[i]))
	}

	s.TotalDistance = floats.Sum(spacings)
	s.MinSpacing = floats.Min(spacings)
	s.MaxSpacing = floats.Max(spacings)
	s.MeanSpacing = stat.Mean(spacings, nil)
	s.Bearing = geo.Bearing(t[0], t[len(t)-1])
	return s
}
