// overlay.go — Translucent accent circles composited over the gradient.
package generator

import (
	"image"
	"image/color"
	"math/rand/v2"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

const (
	overlayCircles = 3
	minRadius      = 100
	maxRadius      = 300
	overlayAlpha   = 20

	// Control-point distance for a quarter circle drawn as one cubic Bézier.
	kappa = 0.5522847498
)

// Circle is one overlay disc in pixel coordinates.
type Circle struct {
	X, Y, R int
}

// RandomCircles places n circles with centers anywhere in [0,w]×[0,h]
// (edges included) and radii in [minRadius,maxRadius].
func RandomCircles(rng *rand.Rand, n, w, h int) []Circle {
	circles := make([]Circle, n)
	for i := range circles {
		circles[i] = Circle{
			X: rng.IntN(w + 1),
			Y: rng.IntN(h + 1),
			R: minRadius + rng.IntN(maxRadius-minRadius+1),
		}
	}
	return circles
}

// Overlay composites three random accent circles onto img.
func Overlay(img *image.RGBA, s Scheme, rng *rand.Rand) {
	b := img.Bounds()
	DrawCircles(img, s.Accent(), RandomCircles(rng, overlayCircles, b.Dx(), b.Dy()))
}

// DrawCircles fills the union of circles with c at overlayAlpha and
// composites it over img once, so overlapping discs do not stack opacity.
func DrawCircles(img *image.RGBA, c RGB, circles []Circle) {
	if len(circles) == 0 {
		return
	}
	b := img.Bounds()

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = xdraw.Over
	for _, ci := range circles {
		addCircle(z, float32(ci.X), float32(ci.Y), float32(ci.R))
	}

	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: overlayAlpha})
	z.Draw(img, b, src, image.Point{})
}

func addCircle(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}
