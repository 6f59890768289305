// Package generator paints gradient wallpapers.
//
// Every output follows one pipeline: pick a scheme, paint the diagonal
// gradient with noise, composite the accent circles, then encode the
// image as JPEG or PNG depending on the target extension.
package generator

import (
	"fmt"
	"image"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"
)

// DefaultQuality is the JPEG quality used when Config.Quality is unset.
const DefaultQuality = 95

// Config holds parameters for a single wallpaper.
type Config struct {
	Width   int        // Pixel width (default: 1920)
	Height  int        // Pixel height (default: 1080)
	Scheme  *Scheme    // Fixed scheme; nil picks one from Pool
	Pool    []Scheme   // Candidates for a random pick (default: Schemes)
	Quality int        // JPEG quality 1–100 (default: 95)
	Rand    *rand.Rand // Randomness source (default: time seeded)
}

// NewRand returns a PCG-backed source. A zero seed means "seed from the clock".
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Render paints a wallpaper in memory and returns it with the scheme used.
func Render(cfg Config) (*image.RGBA, Scheme) {
	cfg = withDefaults(cfg)

	s := resolveScheme(cfg)
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	Paint(img, s, cfg.Rand)
	Overlay(img, s, cfg.Rand)
	return img, s
}

// Generate renders a wallpaper and writes it to output. The format is
// inferred from the file extension:
//   - ".jpg", ".jpeg" → JPEG
//   - ".png"          → PNG
func Generate(output string, cfg Config) error {
	ext := strings.ToLower(filepath.Ext(output))
	if err := checkFormat(ext); err != nil {
		return err
	}

	cfg = withDefaults(cfg)
	img, _ := Render(cfg)

	switch ext {
	case ".png":
		return writePNG(output, img)
	default:
		return writeJPEG(output, img, cfg.Quality)
	}
}

// GenerateToWriter renders a wallpaper into w. ext selects the format
// (".jpg", ".jpeg" or ".png").
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	ext = strings.ToLower(ext)
	if err := checkFormat(ext); err != nil {
		return err
	}

	cfg = withDefaults(cfg)
	img, _ := Render(cfg)

	switch ext {
	case ".png":
		return encodePNG(w, img)
	default:
		return encodeJPEG(w, img, cfg.Quality)
	}
}

func checkFormat(ext string) error {
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use .jpg or .png", ext)
	}
}

func withDefaults(cfg Config) Config {
	if cfg.Width <= 0 {
		cfg.Width = 1920
	}
	if cfg.Height <= 0 {
		cfg.Height = 1080
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		cfg.Quality = DefaultQuality
	}
	if cfg.Rand == nil {
		cfg.Rand = NewRand(0)
	}
	return cfg
}

func resolveScheme(cfg Config) Scheme {
	if cfg.Scheme != nil {
		return *cfg.Scheme
	}
	return PickScheme(cfg.Rand, cfg.Pool)
}
