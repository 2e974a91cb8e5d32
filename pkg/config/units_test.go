package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseDistance(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"50m", 50, false},
		{"1.5km", 1500, false},
		{"1nm", 1852, false},
		{"100", 100, false},
		{" 80m ", 80, false},
		{"", 0, false},
		{"fast", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDistance(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDistance(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDistance(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDistanceYAML(t *testing.T) {
	var out struct {
		Spacing Distance `yaml:"spacing"`
	}

	if err := yaml.Unmarshal([]byte("spacing: 2km"), &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.Spacing != 2000 {
		t.Errorf("spacing = %v, want 2000", float64(out.Spacing))
	}

	// Bare numbers are meters.
	if err := yaml.Unmarshal([]byte("spacing: 75"), &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.Spacing != 75 {
		t.Errorf("spacing = %v, want 75", float64(out.Spacing))
	}
}
