// loader.go — Read wallgen.yaml and resolve it into a Theme.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and resolves the theme file at path. Problems inside the file
// come back as warnings and the affected entries fall back to defaults; only
// an unreadable file is an error.
func Load(path string) (*Theme, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	th, warnings := Parse(data)
	return th, warnings, nil
}

// LoadOptional is Load, except a missing file yields Default().
func LoadOptional(path string) (*Theme, []string, error) {
	th, warnings, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil, nil
	}
	return th, warnings, err
}

// Parse resolves raw YAML. Malformed YAML yields Default() plus a warning.
func Parse(data []byte) (*Theme, []string) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Default(), []string{fmt.Sprintf("malformed theme file: %v — using all defaults", err)}
	}
	return Resolve(&f)
}

// Resolve merges f onto the defaults, collecting warnings for everything it
// had to skip.
func Resolve(f *File) (*Theme, []string) {
	th := Default()
	var warnings []string

	schemes, w := MergeSchemes(f.Schemes)
	warnings = append(warnings, w...)
	th.Schemes = schemes

	pool, w := filterPool(schemes, f.Only)
	warnings = append(warnings, w...)
	th.Pool = pool

	if len(f.Resolutions) > 0 {
		res, w := parseResolutions(f.Resolutions)
		warnings = append(warnings, w...)
		if len(res) > 0 {
			th.Resolutions = res
		} else {
			warnings = append(warnings, "no usable resolutions — using defaults")
		}
	}

	def, w := resolveDefault(f.Default, th.Resolutions)
	warnings = append(warnings, w...)
	th.Default = def

	if f.Quality != 0 {
		if f.Quality < 1 || f.Quality > 100 {
			warnings = append(warnings, fmt.Sprintf("quality %d out of range 1–100 — using %d", f.Quality, th.Quality))
		} else {
			th.Quality = f.Quality
		}
	}

	return th, warnings
}
