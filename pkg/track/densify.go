// Package track turns a coarse list of route waypoints into a dense,
// evenly spaced coordinate sequence suitable for replaying as demo
// location data. Interpolation happens componentwise in degree space,
// not along the great circle; that approximation is fine for waypoints
// a few kilometers apart at mid latitudes, which is the only regime
// the generator is used in.
package track

import (
	"log/slog"
	"math"

	"trackgen/pkg/geo"
)

// Track is an ordered sequence of coordinates along a route.
type Track []geo.Point

// DefaultMaxPasses bounds the gap-filling loop in DensifyToCount.
// Each pass at least halves the largest gap above the threshold, so
// anything near this bound indicates misconfigured parameters.
const DefaultMaxPasses = 32

// InterpolateSegment produces evenly spaced points from start to end,
// both endpoints included. The number of steps is chosen so that
// consecutive points are at most minSpacing apart; a segment shorter
// than minSpacing still yields its two endpoints.
func InterpolateSegment(start, end geo.Point, minSpacing float64) []geo.Point {
	dist := geo.Distance(start, end)
	steps := max(1, int(math.Floor(dist/minSpacing)))

	points := make([]geo.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		ratio := float64(i) / float64(steps)
		points = append(points, geo.Lerp(start, end, ratio))
	}
	return points
}

// Densify interpolates between consecutive waypoints and filters the
// result so that adjacent points are at least minSpacing apart.
//
// The first point of the result is always waypoints[0] and the last is
// always the final waypoint, even when the final waypoint lands closer
// than minSpacing to its predecessor. That single relaxation keeps the
// generated track anchored to the route's true endpoints.
func Densify(waypoints []geo.Point, minSpacing float64) Track {
	if len(waypoints) < 2 {
		return Track(append([]geo.Point(nil), waypoints...))
	}

	var all []geo.Point
	for i := 0; i < len(waypoints)-1; i++ {
		segment := InterpolateSegment(waypoints[i], waypoints[i+1], minSpacing)
		if i < len(waypoints)-2 {
			// Drop the junction point, the next segment starts with it.
			all = append(all, segment[:len(segment)-1]...)
		} else {
			all = append(all, segment...)
		}
	}

	return filterSpacing(all, minSpacing)
}

// filterSpacing walks points in order keeping only those at least
// minSpacing from the last kept point. The final point is kept
// unconditionally so the track ends at the route's last waypoint.
func filterSpacing(points []geo.Point, minSpacing float64) Track {
	if len(points) == 0 {
		return Track{}
	}

	filtered := Track{points[0]}
	for i, p := range points[1:] {
		last := i+1 == len(points)-1
		if last || geo.Distance(filtered[len(filtered)-1], p) >= minSpacing {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// DensifyToCount resizes a track to exactly targetCount points. A track
// below the target grows by repeated passes that insert a degree-space
// midpoint into every gap wider than gapThreshold; point count never
// decreases across passes. The loop is bounded by maxPasses
// (DefaultMaxPasses if <= 0), so misconfigured parameters cannot spin
// forever; hitting the bound returns the track grown so far.
//
// A track above the target is cut to targetCount points, keeping the
// first targetCount-1 points and the true final waypoint. This departs
// from a plain prefix cut, which would leave the track ending wherever
// the count happened to run out instead of at the route's endpoint.
func DensifyToCount(t Track, targetCount int, gapThreshold float64, maxPasses int) Track {
	if targetCount <= 0 || len(t) < 2 {
		return t
	}
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	for pass := 0; pass < maxPasses && len(t) < targetCount && gapThreshold > 0; pass++ {
		grown := make(Track, 0, len(t)*2)
		for i := 0; i < len(t)-1; i++ {
			grown = append(grown, t[i])
			if geo.Distance(t[i], t[i+1]) > gapThreshold {
				grown = append(grown, geo.Midpoint(t[i], t[i+1]))
			}
		}
		grown = append(grown, t[len(t)-1])

		if len(grown) == len(t) {
			// All gaps are at or below the threshold, more passes
			// cannot add points.
			slog.Debug("Gap filling converged below target",
				"points", len(t), "target", targetCount, "passes", pass)
			break
		}
		t = grown
	}

	if len(t) > targetCount {
		cut := append(Track(nil), t[:targetCount-1]...)
		t = append(cut, t[len(t)-1])
	}
	return t
}
