// Package route holds named waypoint catalogues. A route is the coarse,
// hand-picked shape of a journey; the track package turns it into a
// dense coordinate sequence.
package route

import (
	"fmt"
	"sort"

	"trackgen/pkg/geo"
)

// Route describes a generatable route: its waypoints and the
// densification parameters that suit it.
type Route struct {
	Name        string
	Description string
	// MinSpacing is the spacing floor between adjacent track points, meters.
	MinSpacing float64
	// TargetCount, when > 0, requests gap filling up to this many points.
	TargetCount int
	// GapThreshold is the gap width above which midpoints are inserted
	// during gap filling, meters. Ignored when TargetCount is 0.
	GapThreshold float64
	Waypoints    []geo.Point
}

// Registry resolves routes by name, preferring user-defined routes over
// the built-in presets.
type Registry struct {
	routes map[string]Route
}

// NewRegistry creates a registry seeded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{routes: make(map[string]Route)}
	for _, preset := range Presets() {
		r.routes[preset.Name] = preset
	}
	return r
}

// Add registers a route, replacing any existing route with the same name.
func (r *Registry) Add(rt Route) {
	r.routes[rt.Name] = rt
}

// Get returns the route with the given name.
func (r *Registry) Get(name string) (Route, error) {
	rt, ok := r.routes[name]
	if !ok {
		return Route{}, fmt.Errorf("unknown route %q (available: %v)", name, r.Names())
	}
	return rt, nil
}

// Names returns all registered route names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
