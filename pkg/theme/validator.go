// validator.go — Validate name and resolution references in a theme file.
package theme

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xob0t/deskkit/pkg/generator"
)

// ParseResolution accepts a preset name from Presets or "WxH".
func ParseResolution(s string) (generator.Resolution, error) {
	if r, ok := Presets[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return generator.ParseResolution(s)
}

// filterPool narrows the random pick to the names in only. Unknown names
// are warned about and skipped, repeats count once; an empty result falls
// back to all schemes.
func filterPool(schemes []generator.Scheme, only []string) ([]generator.Scheme, []string) {
	if len(only) == 0 {
		return schemes, nil
	}

	var (
		pool     []generator.Scheme
		warnings []string
	)
	for _, name := range only {
		s, ok := generator.SchemeByName(schemes, name)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("only references unknown scheme %q — ignored", name))
			continue
		}
		if _, dup := generator.SchemeByName(pool, s.Name); dup {
			continue
		}
		pool = append(pool, s)
	}

	if len(pool) == 0 {
		warnings = append(warnings, "only matched no schemes — picking from all")
		return schemes, warnings
	}
	return pool, warnings
}

func parseResolutions(names []string) ([]generator.Resolution, []string) {
	var (
		result   []generator.Resolution
		warnings []string
	)
	for _, name := range names {
		r, err := ParseResolution(name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%v — ignored", err))
			continue
		}
		if slices.Contains(result, r) {
			continue
		}
		result = append(result, r)
	}
	return result, warnings
}

// resolveDefault picks the link target. Unset means 1920x1080 when it is
// rendered, otherwise the first resolution.
func resolveDefault(name string, res []generator.Resolution) (generator.Resolution, []string) {
	fallback := res[0]
	if slices.Contains(res, generator.FullHD) {
		fallback = generator.FullHD
	}

	if strings.TrimSpace(name) == "" {
		return fallback, nil
	}

	r, err := ParseResolution(name)
	if err != nil {
		return fallback, []string{fmt.Sprintf("default: %v — using %s", err, fallback)}
	}
	if !slices.Contains(res, r) {
		return fallback, []string{fmt.Sprintf("default %s is not rendered — using %s", r, fallback)}
	}
	return r, nil
}

// FormatList returns a human-readable summary of the theme for `wallgen list`.
func FormatList(th *Theme) string {
	var b strings.Builder

	b.WriteString("Schemes:\n")
	for _, s := range th.Schemes {
		mark := " "
		if _, ok := generator.SchemeByName(th.Pool, s.Name); ok {
			mark = "*"
		}
		fmt.Fprintf(&b, "  %s %-20s %s %s %s\n", mark, s.Name, s.Stops[0].Hex(), s.Stops[1].Hex(), s.Stops[2].Hex())
	}

	b.WriteString("\nResolutions:\n")
	for _, r := range th.Resolutions {
		suffix := ""
		if r == th.Default {
			suffix = "  → " + generator.LinkName
		}
		fmt.Fprintf(&b, "    %-11s %s%s\n", r, r.FileName(), suffix)
	}

	fmt.Fprintf(&b, "\nJPEG quality: %d\n", th.Quality)
	b.WriteString("(* = eligible for random pick)\n")
	return b.String()
}
