package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackgen/pkg/geo"
)

func TestInterpolateSegment(t *testing.T) {
	// ~111m apart on the equator, 50m spacing -> floor(111/50) = 2 steps.
	start := geo.Point{Lat: 0, Lon: 0}
	end := geo.Point{Lat: 0, Lon: 0.001}

	points := InterpolateSegment(start, end, 50)

	require.Len(t, points, 3)
	assert.Equal(t, start, points[0])
	assert.InDelta(t, 0.0005, points[1].Lon, 1e-12)
	assert.Equal(t, end, points[2])
}

func TestInterpolateSegmentShorterThanSpacing(t *testing.T) {
	// Segment shorter than minSpacing still yields both endpoints.
	start := geo.Point{Lat: 0, Lon: 0}
	end := geo.Point{Lat: 0, Lon: 0.0001}

	points := InterpolateSegment(start, end, 50)

	require.Len(t, points, 2)
	assert.Equal(t, start, points[0])
	assert.Equal(t, end, points[1])
}

func berlinMunichWaypoints() []geo.Point {
	return []geo.Point{
		{Lat: 52.5200, Lon: 13.4050},
		{Lat: 52.1000, Lon: 12.8000},
		{Lat: 51.4800, Lon: 11.9700},
		{Lat: 50.4000, Lon: 10.7000},
		{Lat: 49.4521, Lon: 11.0767},
		{Lat: 48.7665, Lon: 11.4257},
		{Lat: 48.1351, Lon: 11.5820},
	}
}

func TestDensifySpacingInvariant(t *testing.T) {
	const minSpacing = 50.0

	track := Densify(berlinMunichWaypoints(), minSpacing)
	require.Greater(t, len(track), 2)

	// Every adjacent pair except the final one must honor the floor.
	for i := 1; i < len(track)-1; i++ {
		d := geo.Distance(track[i-1], track[i])
		assert.GreaterOrEqual(t, d, minSpacing,
			"spacing violated at index %d", i)
	}
}

func TestDensifyEndpointFidelity(t *testing.T) {
	waypoints := berlinMunichWaypoints()
	track := Densify(waypoints, 50)

	assert.Equal(t, waypoints[0], track[0])
	assert.Equal(t, waypoints[len(waypoints)-1], track[len(track)-1])
}

func TestDensifyDegenerate(t *testing.T) {
	assert.Empty(t, Densify(nil, 50))
	assert.Empty(t, Densify([]geo.Point{}, 50))

	single := []geo.Point{{Lat: 52.5200, Lon: 13.4050}}
	got := Densify(single, 50)
	require.Len(t, got, 1)
	assert.Equal(t, single[0], got[0])
}

func TestDensifyNoDuplicateJunctions(t *testing.T) {
	waypoints := []geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.01},
		{Lat: 0, Lon: 0.02},
	}

	track := Densify(waypoints, 100)
	for i := 1; i < len(track); i++ {
		assert.NotEqual(t, track[i-1], track[i],
			"duplicate point at index %d", i)
	}
}

func TestDensifyToCountGrowsMonotonically(t *testing.T) {
	track := Densify(berlinMunichWaypoints(), 400)
	require.Less(t, len(track), 5000)

	prev := len(track)
	grown := track
	for pass := 0; pass < 5; pass++ {
		grown = DensifyToCount(grown, len(grown)+1, 100, 1)
		assert.GreaterOrEqual(t, len(grown), prev, "point count decreased")
		prev = len(grown)
	}
}

func TestDensifyToCountReachesTarget(t *testing.T) {
	const target = 1000

	// Coarse spacing leaves the track well under the target so the
	// growth loop has real work to do.
	waypoints := berlinMunichWaypoints()
	track := Densify(waypoints, 2000)
	require.Less(t, len(track), target)
	grown := DensifyToCount(track, target, 80, DefaultMaxPasses)

	assert.Equal(t, target, len(grown))
	// Endpoint fidelity survives the overshoot cut.
	assert.Equal(t, waypoints[0], grown[0])
	assert.Equal(t, waypoints[len(waypoints)-1], grown[len(grown)-1])
}

func TestDensifyToCountBoundedPasses(t *testing.T) {
	// Threshold larger than any gap: no pass can insert a point, the
	// loop must exit early instead of spinning to the bound.
	track := Densify(berlinMunichWaypoints(), 50)
	got := DensifyToCount(track, len(track)*10, 1e9, DefaultMaxPasses)

	assert.Equal(t, len(track), len(got))
}

func TestDensifyToCountCutsOversizedTrack(t *testing.T) {
	waypoints := berlinMunichWaypoints()
	full := Densify(waypoints, 50)
	require.Greater(t, len(full), 10)

	got := DensifyToCount(full, 10, 80, DefaultMaxPasses)

	assert.Equal(t, 10, len(got))
	// The cut keeps the true endpoint, not a blind prefix.
	assert.Equal(t, full[:9], got[:9])
	assert.Equal(t, waypoints[len(waypoints)-1], got[9])
}

func TestDensifyToCountDisabled(t *testing.T) {
	track := Densify(berlinMunichWaypoints(), 50)
	got := DensifyToCount(track, 0, 80, DefaultMaxPasses)
	assert.Equal(t, len(track), len(got), "target 0 must pass the track through unchanged")
}

func TestSummarize(t *testing.T) {
	waypoints := berlinMunichWaypoints()
	track := Densify(waypoints, 50)
	stats := Summarize(track)

	assert.Equal(t, len(track), stats.Points)
	// Berlin-Munich great circle is ~505km; the waypoint route is longer
	// but must be at least that.
	assert.Greater(t, stats.TotalDistance, 505000.0)
	assert.Less(t, stats.TotalDistance, 700000.0)
	assert.GreaterOrEqual(t, stats.MaxSpacing, stats.MeanSpacing)
	assert.GreaterOrEqual(t, stats.MeanSpacing, stats.MinSpacing)
	// Route runs roughly south-southwest.
	assert.InDelta(t, 195, stats.Bearing, 30)
}

func TestSummarizeDegenerate(t *testing.T) {
	stats := Summarize(Track{})
	assert.Equal(t, Stats{}, stats)

	stats = Summarize(Track{{Lat: 1, Lon: 2}})
	assert.Equal(t, 1, stats.Points)
	assert.Zero(t, stats.TotalDistance)
}

func TestMeanSpacingMatchesManualWalk(t *testing.T) {
	track := Densify(berlinMunichWaypoints(), 50)
	stats := Summarize(track)

	var total float64
	for i := 1; i < len(track); i++ {
		total += geo.Distance(track[i-1], track[i])
	}
	want := total / float64(len(track)-1)
	if math.Abs(stats.MeanSpacing-want) > 1e-6 {
		t.Errorf("MeanSpacing = %v, want %v", stats.MeanSpacing, want)
	}
}
