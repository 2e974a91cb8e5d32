package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"trackgen/pkg/geo"
	"trackgen/pkg/route"
)

// Config holds the application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	DB        DBConfig        `yaml:"db"`
	Output    OutputConfig    `yaml:"output"`
	Generator GeneratorConfig `yaml:"generator"`
	Routes    []RouteConfig   `yaml:"routes"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DBConfig holds database settings. An empty path disables the archive.
type DBConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	Dir string `yaml:"dir"`
	// Precision is the number of decimal places for coordinates in
	// generated files. 6 gives ~11cm resolution.
	Precision int `yaml:"precision"`
	Pretty    bool `yaml:"pretty"`
}

// GeneratorConfig holds densification defaults, used when a route does
// not specify its own parameters.
type GeneratorConfig struct {
	MinSpacing   Distance `yaml:"min_spacing"`
	GapThreshold Distance `yaml:"gap_threshold"`
	MaxPasses    int      `yaml:"max_passes"`
}

// RouteConfig describes a user-defined route in the config file.
// Waypoints are [lat, lon] pairs in decimal degrees.
type RouteConfig struct {
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	MinSpacing   Distance     `yaml:"min_spacing"`
	TargetCount  int          `yaml:"target_count"`
	GapThreshold Distance     `yaml:"gap_threshold"`
	Waypoints    [][2]float64 `yaml:"waypoints"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "INFO",
		},
		Output: OutputConfig{
			Dir:       "./out",
			Precision: 6,
			Pretty:    true,
		},
		Generator: GeneratorConfig{
			MinSpacing:   Distance(50),
			GapThreshold: Distance(80),
			MaxPasses:    32,
		},
	}
}

// Load loads the configuration from the given path.
// If the file does not exist, it creates it with default values.
// If the file exists, it merges defaults with existing values but does
// NOT save back to disk (to preserve user formatting and comments).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := Save(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config file: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Generator.MinSpacing <= 0 {
		return fmt.Errorf("generator.min_spacing must be positive, got %v", float64(c.Generator.MinSpacing))
	}
	for _, rc := range c.Routes {
		if rc.Name == "" {
			return fmt.Errorf("route without a name in config")
		}
		for _, wp := range rc.Waypoints {
			if wp[0] < -90 || wp[0] > 90 || wp[1] < -180 || wp[1] > 180 {
				return fmt.Errorf("route %q: waypoint [%v, %v] out of range", rc.Name, wp[0], wp[1])
			}
		}
	}
	return nil
}

// Save writes the configuration to the path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# trackgen Configuration
# ---------------------
# Distances accept units: m (meters), km (kilometers), nm (nautical miles).
# Routes defined here are added to the built-in presets; a route with the
# same name as a preset replaces it.

`)
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return Save(path, DefaultConfig())
}

// BuildRegistry returns a route registry with the built-in presets plus
// the routes defined in the config. Config routes fall back to the
// generator defaults for parameters they leave unset.
func (c *Config) BuildRegistry() *route.Registry {
	reg := route.NewRegistry()
	for _, rc := range c.Routes {
		rt := route.Route{
			Name:         rc.Name,
			Description:  rc.Description,
			MinSpacing:   float64(rc.MinSpacing),
			TargetCount:  rc.TargetCount,
			GapThreshold: float64(rc.GapThreshold),
		}
		if rt.MinSpacing <= 0 {
			rt.MinSpacing = float64(c.Generator.MinSpacing)
		}
		if rt.GapThreshold <= 0 {
			rt.GapThreshold = float64(c.Generator.GapThreshold)
		}
		for _, wp := range rc.Waypoints {
			rt.Waypoints = append(rt.Waypoints, geo.Point{Lat: wp[0], Lon: wp[1]})
		}
		reg.Add(rt)
	}
	return reg
}
