package config

import "time"

// Config is the merged termrender configuration.
type Config struct {
	Theme   Theme   `koanf:"theme" toml:"theme"`
	Output  Output  `koanf:"output" toml:"output"`
	Table   Table   `koanf:"table" toml:"table"`
	Spinner Spinner `koanf:"spinner" toml:"spinner"`
}

// Theme selects the palette and its overrides.
type Theme struct {
	Name string `koanf:"name" toml:"name"`
	// Mode is auto, light or dark.
	Mode   string            `koanf:"mode" toml:"mode"`
	Colors map[string]string `koanf:"colors" toml:"colors"`
}

// Output holds terminal overrides. Zero Width and "auto" Color defer to
// detection.
type Output struct {
	Width int    `koanf:"width" toml:"width"`
	Color string `koanf:"color" toml:"color"`
}

// Table holds the default cell style.
type Table struct {
	Padding  int    `koanf:"padding" toml:"padding"`
	Border   string `koanf:"border" toml:"border"`
	Align    string `koanf:"align" toml:"align"`
	MaxWidth int    `koanf:"max_width" toml:"max_width"`
}

type Spinner struct {
	Preset     string `koanf:"preset" toml:"preset"`
	IntervalMS int    `koanf:"interval_ms" toml:"interval_ms"`
}

// Interval is the configured frame interval, zero meaning the preset's.
func (s Spinner) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// ColorLevel returns the forced color level, or ok false for auto.
func (o Output) ColorLevel() (level int, ok bool) {
	if len(o.Color) == 1 && o.Color[0] >= '0' && o.Color[0] <= '3' {
		return int(o.Color[0] - '0'), true
	}
	return 0, false
}

// DarkBackground reports the forced background, or ok false for auto.
func (t Theme) DarkBackground() (dark bool, ok bool) {
	switch t.Mode {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}
