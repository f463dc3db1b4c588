package renderer

import (
	"image/color"
	"math"
)

// WriteColor averages an accumulated color over its sample count and
// gamma-encodes it (γ = 2) to 8-bit RGB. Each channel is clamped to
// [0, 0.999] before the 256 scale so full white maps to 255.
func WriteColor(accumulated [3]float64, samplesPerPixel int) color.RGBA {
	scale := 1.0 / float64(samplesPerPixel)

	encode := func(c float64) uint8 {
		v := c * scale
		if v < 0 {
			v = 0
		}
		v = math.Sqrt(v)
		if v > 0.999 {
			v = 0.999
		}
		return uint8(256 * v)
	}

	return color.RGBA{
		R: encode(accumulated[0]),
		G: encode(accumulated[1]),
		B: encode(accumulated[2]),
		A: 255,
	}
}
