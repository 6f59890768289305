// gradient.go — Diagonal three-stop gradient with per-channel noise.
package generator

import (
	"image"
	"math/rand/v2"
)

// NoiseAmplitude bounds the uniform per-channel noise, inclusive on both ends.
const NoiseAmplitude = 5

// Paint fills img with s as a top-left to bottom-right gradient. Every pixel
// is written exactly once and left opaque.
func Paint(img *image.RGBA, s Scheme, rng *rand.Rand) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	fw, fh := float64(w), float64(h)

	for y := 0; y < h; y++ {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			d := (float64(x)/fw + float64(y)/fh) / 2
			c := s.At(d)

			i := row + x*4
			img.Pix[i+0] = addNoise(c.R, rng)
			img.Pix[i+1] = addNoise(c.G, rng)
			img.Pix[i+2] = addNoise(c.B, rng)
			img.Pix[i+3] = 255
		}
	}
}

func addNoise(v uint8, rng *rand.Rand) uint8 {
	n := rng.IntN(2*NoiseAmplitude+1) - NoiseAmplitude
	return clamp8(int(v) + n)
}

func clamp8(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
