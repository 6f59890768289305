// color.go — RGB stops, hex parsing and the built-in scheme table.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// RGB is one opaque color stop.
type RGB struct {
	R, G, B uint8
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "#rrggbb" (the leading '#' is optional).
func ParseColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return RGB{uint8(rv), uint8(gv), uint8(bv)}, nil
}

// Lerp blends a toward b by f in [0,1], truncating each channel.
// The result always lies between a and b per channel.
func Lerp(a, b RGB, f float64) RGB {
	return RGB{
		R: lerpChannel(a.R, b.R, f),
		G: lerpChannel(a.G, b.G, f),
		B: lerpChannel(a.B, b.B, f),
	}
}

func lerpChannel(a, b uint8, f float64) uint8 {
	v := int(float64(a)*(1-f) + float64(b)*f)
	// Float rounding can land one below the lower stop when a == b.
	lo, hi := int(min(a, b)), int(max(a, b))
	return uint8(min(max(v, lo), hi))
}

// Scheme is an ordered triple of gradient stops.
type Scheme struct {
	Name  string
	Stops [3]RGB
}

// At returns the noiseless gradient color at diagonal position d in [0,1].
// The first half blends stop 0 to stop 1, the second half stop 1 to stop 2.
func (s Scheme) At(d float64) RGB {
	if d < 0.5 {
		return Lerp(s.Stops[0], s.Stops[1], d*2)
	}
	return Lerp(s.Stops[1], s.Stops[2], (d-0.5)*2)
}

// Accent is the stop used for the overlay circles.
func (s Scheme) Accent() RGB {
	return s.Stops[2]
}

var (
	base    = RGB{30, 30, 46}
	surface = RGB{49, 50, 68}
)

// Schemes is the built-in palette table.
var Schemes = []Scheme{
	// Catppuccin
	{"catppuccin-blue", [3]RGB{base, surface, {137, 180, 250}}},
	{"catppuccin-green", [3]RGB{base, surface, {166, 227, 161}}},
	{"catppuccin-pink", [3]RGB{base, surface, {245, 194, 231}}},
	{"catppuccin-yellow", [3]RGB{base, surface, {249, 226, 175}}},

	{"purple-tech", [3]RGB{{13, 13, 35}, {46, 16, 101}, {99, 102, 241}}},
	{"monochrome", [3]RGB{{0, 0, 0}, {30, 30, 30}, {60, 60, 60}}},
	{"slate", [3]RGB{{15, 23, 42}, {30, 41, 59}, {71, 85, 105}}},
	{"gray", [3]RGB{{17, 24, 39}, {31, 41, 55}, {75, 85, 99}}},
}

// SchemeByName looks a scheme up in pool (case-insensitive).
func SchemeByName(pool []Scheme, name string) (Scheme, bool) {
	for _, s := range pool {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Scheme{}, false
}

// PickScheme chooses uniformly from pool. An empty pool falls back to Schemes.
func PickScheme(rng *rand.Rand, pool []Scheme) Scheme {
	if len(pool) == 0 {
		pool = Schemes
	}
	return pool[rng.IntN(len(pool))]
}
