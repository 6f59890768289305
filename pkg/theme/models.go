// Package theme loads the optional wallgen.yaml file: extra color schemes,
// which resolutions to render and which one the default link points at.
package theme

import "github.com/xob0t/deskkit/pkg/generator"

// ── File types ──

// File is the on-disk shape of wallgen.yaml.
type File struct {
	Schemes     []SchemeSpec `yaml:"schemes"`
	Only        []string     `yaml:"only"`        // restrict the random pick to these names
	Resolutions []string     `yaml:"resolutions"` // preset names or "WxH"
	Default     string       `yaml:"default"`     // link target; must be listed in Resolutions
	Quality     int          `yaml:"quality"`     // JPEG quality 1–100
}

// SchemeSpec is a user-defined scheme.
type SchemeSpec struct {
	Name  string   `yaml:"name"`
	Stops []string `yaml:"stops"` // exactly three "#rrggbb" entries
}

// ── Resolved types (after defaults + validation) ──

// Theme is a fully resolved configuration, ready for generator.GenerateSet.
type Theme struct {
	Schemes     []generator.Scheme // every known scheme, built-ins first
	Pool        []generator.Scheme // candidates for the random pick
	Resolutions []generator.Resolution
	Default     generator.Resolution
	Quality     int
}

// ── Presets for common resolutions ──

// Presets maps preset names to sizes.
var Presets = map[string]generator.Resolution{
	"1080p":     generator.FullHD,
	"fhd":       generator.FullHD,
	"1440p":     generator.QHD,
	"qhd":       generator.QHD,
	"2k":        generator.QHD,
	"4k":        generator.UHD,
	"uhd":       generator.UHD,
	"ultrawide": {Width: 3440, Height: 1440},
}

// Default returns the built-in configuration used when no file exists.
func Default() *Theme {
	return &Theme{
		Schemes:     generator.Schemes,
		Pool:        generator.Schemes,
		Resolutions: generator.DefaultResolutions,
		Default:     generator.FullHD,
		Quality:     generator.DefaultQuality,
	}
}
