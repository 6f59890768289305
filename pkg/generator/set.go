// set.go — Multi-resolution wallpaper sets and the default symlink.
package generator

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

const (
	// BaseName prefixes every generated file.
	BaseName = "modern-gradient"
	// LinkName is the stable alias pointing at the default resolution.
	LinkName = BaseName + ".jpg"
)

// Resolution is an output size in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// FileName is the on-disk name for a wallpaper of size r.
func (r Resolution) FileName() string {
	return fmt.Sprintf("%s-%s.jpg", BaseName, r)
}

// ParseResolution accepts "WxH" (e.g. "2560x1440").
func ParseResolution(s string) (Resolution, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("invalid resolution %q: expected WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution %q: dimensions must be positive", s)
	}
	return Resolution{w, h}, nil
}

var (
	FullHD = Resolution{1920, 1080}
	QHD    = Resolution{2560, 1440}
	UHD    = Resolution{3840, 2160}
)

// DefaultResolutions are written on every run unless overridden.
var DefaultResolutions = []Resolution{FullHD, QHD, UHD}

// SetConfig describes one generation run.
type SetConfig struct {
	Resolutions []Resolution // default: DefaultResolutions
	Default     Resolution   // link target (default: FullHD)
	Scheme      *Scheme      // fixed scheme; nil picks one per run
	Pool        []Scheme     // candidates for the random pick
	Quality     int
	Rand        *rand.Rand

	// Written is called after each file lands on disk.
	Written func(path string)
}

// GenerateSet writes one wallpaper per resolution into dir, all sharing a
// single scheme, then points LinkName at the default resolution. It returns
// the paths written, in order.
func GenerateSet(dir string, set SetConfig) ([]string, error) {
	if len(set.Resolutions) == 0 {
		set.Resolutions = DefaultResolutions
	}
	if set.Default == (Resolution{}) {
		set.Default = FullHD
	}
	if set.Rand == nil {
		set.Rand = NewRand(0)
	}
	if !slices.Contains(set.Resolutions, set.Default) {
		return nil, fmt.Errorf("default resolution %s is not in the generated set", set.Default)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	scheme := set.Scheme
	if scheme == nil {
		s := PickScheme(set.Rand, set.Pool)
		scheme = &s
	}

	paths := make([]string, 0, len(set.Resolutions))
	for _, res := range set.Resolutions {
		path := filepath.Join(dir, res.FileName())
		cfg := Config{
			Width:   res.Width,
			Height:  res.Height,
			Scheme:  scheme,
			Quality: set.Quality,
			Rand:    set.Rand,
		}
		if err := Generate(path, cfg); err != nil {
			return paths, fmt.Errorf("generate %s: %w", res, err)
		}
		paths = append(paths, path)
		if set.Written != nil {
			set.Written(path)
		}
	}

	if err := ReplaceLink(dir, set.Default.FileName(), LinkName); err != nil {
		return paths, err
	}
	return paths, nil
}

// ReplaceLink makes dir/name a relative symlink to target, replacing
// whatever is there (file, symlink or dangling symlink). Each call stages
// its own temporary link, so concurrent callers race benignly: the last
// rename wins.
func ReplaceLink(dir, target, name string) error {
	link := filepath.Join(dir, name)
	tmp := fmt.Sprintf("%s.%d.%016x.tmp", link, os.Getpid(), rand.Uint64())

	if err := os.Symlink(target, tmp); err != nil {
		return fmt.Errorf("symlink %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, link); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", link, err)
	}
	return nil
}
