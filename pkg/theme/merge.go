// merge.go — Merge user schemes onto the built-in palette table.
package theme

import (
	"fmt"
	"strings"

	"github.com/xob0t/deskkit/pkg/generator"
)

// MergeSchemes appends valid user schemes to the built-ins. A user scheme
// whose name matches a built-in replaces it in place.
func MergeSchemes(specs []SchemeSpec) ([]generator.Scheme, []string) {
	result := make([]generator.Scheme, len(generator.Schemes))
	copy(result, generator.Schemes)

	var warnings []string
	for i, spec := range specs {
		s, err := parseScheme(spec)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("scheme #%d: %v — ignored", i+1, err))
			continue
		}

		if idx := indexOf(result, s.Name); idx >= 0 {
			if idx < len(generator.Schemes) {
				warnings = append(warnings, fmt.Sprintf("scheme %q overrides the built-in", s.Name))
			} else {
				warnings = append(warnings, fmt.Sprintf("scheme %q defined twice — last wins", s.Name))
			}
			result[idx] = s
			continue
		}
		result = append(result, s)
	}

	return result, warnings
}

func parseScheme(spec SchemeSpec) (generator.Scheme, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return generator.Scheme{}, fmt.Errorf("missing name")
	}
	if len(spec.Stops) != 3 {
		return generator.Scheme{}, fmt.Errorf("%q: need exactly 3 stops, got %d", name, len(spec.Stops))
	}

	s := generator.Scheme{Name: name}
	for i, hex := range spec.Stops {
		c, err := generator.ParseColor(hex)
		if err != nil {
			return generator.Scheme{}, fmt.Errorf("%q stop %d: %w", name, i, err)
		}
		s.Stops[i] = c
	}
	return s, nil
}

func indexOf(schemes []generator.Scheme, name string) int {
	for i, s := range schemes {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return -1
}
