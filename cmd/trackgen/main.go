// trackgen generates a dense, evenly spaced coordinate track along a
// named route and writes it out for use as demo location data.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"trackgen/pkg/config"
	"trackgen/pkg/db"
	"trackgen/pkg/export"
	"trackgen/pkg/logging"
	"trackgen/pkg/track"
	"trackgen/pkg/version"
)

var initConfig = flag.Bool("init-config", false, "Generate default config file and exit")

func main() {
	cfgPath := flag.String("config", "configs/trackgen.yaml", "Path to config file")
	routeName := flag.String("route", "berlin-munich", "Route to generate")
	listRoutes := flag.Bool("list", false, "List available routes and exit")
	output := flag.String("out", "", "Output file path (default <output.dir>/<route>.<format>)")
	format := flag.String("format", "json", "Output format: json, geojson, polyline")
	spacing := flag.String("spacing", "", "Override minimum point spacing (e.g. 50m, 0.1km)")
	count := flag.Int("count", -1, "Override target point count (0 disables gap filling)")
	archive := flag.Bool("archive", false, "Archive the run in the sqlite database")
	flag.Parse()

	if *initConfig {
		if err := config.GenerateDefault(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config file generated: %s\n", *cfgPath)
		return
	}

	if err := run(*cfgPath, *routeName, *output, *format, *spacing, *count, *listRoutes, *archive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, routeName, output, format, spacing string, count int, listRoutes, archive bool) error {
	if err := godotenv.Load(); err != nil {
		// No .env is the normal case.
		slog.Debug("No .env file found")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Environment overrides for paths, useful in CI and local setups.
	if v := os.Getenv("TRACKGEN_OUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("TRACKGEN_DB"); v != "" {
		cfg.DB.Path = v
	}
	logging.Setup(cfg.Log.Level)

	slog.Info("trackgen started", "version", version.Version)

	registry := cfg.BuildRegistry()
	if listRoutes {
		for _, name := range registry.Names() {
			rt, _ := registry.Get(name)
			fmt.Printf("%-20s %s (%d waypoints)\n", name, rt.Description, len(rt.Waypoints))
		}
		return nil
	}

	rt, err := registry.Get(routeName)
	if err != nil {
		return err
	}
	if spacing != "" {
		rt.MinSpacing, err = config.ParseDistance(spacing)
		if err != nil {
			return fmt.Errorf("invalid -spacing: %w", err)
		}
		if rt.MinSpacing <= 0 {
			return fmt.Errorf("-spacing must be positive")
		}
	}
	if count >= 0 {
		rt.TargetCount = count
	}

	slog.Info("Generating track", "route", rt.Name,
		"waypoints", len(rt.Waypoints), "min_spacing_m", rt.MinSpacing)

	t := track.Densify(rt.Waypoints, rt.MinSpacing)
	if rt.TargetCount > 0 {
		t = track.DensifyToCount(t, rt.TargetCount, rt.GapThreshold, cfg.Generator.MaxPasses)
		if len(t) < rt.TargetCount {
			slog.Warn("Gap filling stopped short of target",
				"points", len(t), "target", rt.TargetCount)
		}
	}

	if output == "" {
		output = filepath.Join(cfg.Output.Dir, rt.Name+"."+extension(format))
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeTrack(output, format, rt.Name, t, cfg.Output); err != nil {
		return err
	}

	stats := track.Summarize(t)
	report(os.Stdout, rt.Name, output, stats)

	if archive && cfg.DB.Path != "" {
		d, err := db.Init(cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("failed to open archive db: %w", err)
		}
		defer d.Close()

		id, err := d.SaveRun(rt.Name, rt.MinSpacing, rt.TargetCount, t, stats)
		if err != nil {
			return fmt.Errorf("failed to archive run: %w", err)
		}
		slog.Info("Run archived", "id", id, "db", cfg.DB.Path)
	}

	return nil
}

func report(w io.Writer, routeName, path string, s track.Stats) {
	fmt.Fprintf(w, "Generated %d coordinates for %s\n", s.Points, routeName)
	fmt.Fprintf(w, "Saved to: %s\n", path)
	fmt.Fprintf(w, "Total route distance: %.1f km\n", s.TotalDistance/1000)
	fmt.Fprintf(w, "Minimum spacing between points: %.1f meters\n", s.MinSpacing)
	fmt.Fprintf(w, "Maximum spacing between points: %.1f meters\n", s.MaxSpacing)
	fmt.Fprintf(w, "Average spacing: %.1f meters\n", s.MeanSpacing)
	fmt.Fprintf(w, "Overall bearing: %.0f°\n", s.Bearing)
}

func extension(format string) string {
	switch format {
	case "geojson":
		return "geojson"
	case "polyline":
		return "txt"
	default:
		return "json"
	}
}

func writeTrack(path, format, name string, t track.Track, out config.OutputConfig) error {
	switch format {
	case "json":
		return export.WriteJSON(path, t, out.Precision, out.Pretty)
	case "geojson":
		return export.WriteGeoJSON(path, name, t, out.Precision)
	case "polyline":
		return export.WritePolyline(path, t)
	default:
		return fmt.Errorf("unknown format %q (want json, geojson or polyline)", format)
	}
}
