package texture

import (
	"image"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Image looks colors up in a decoded bitmap. Lookups clamp u to [0,1],
// reflect v to image coordinates, and scale 8-bit channels by 1/255.
type Image struct {
	img    image.Image
	width  int
	height int
}

// NewImage creates an image texture from a decoded bitmap
func NewImage(img image.Image) *Image {
	bounds := img.Bounds()
	return &Image{
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// Value returns the texel for the given surface coordinates
func (t *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	uu := clamp(u, 0, 1)
	vv := 1 - clamp(v, 0, 1)

	i := int(uu * float64(t.width))
	j := int(vv * float64(t.height))
	if i >= t.width {
		i = t.width - 1
	}
	if j >= t.height {
		j = t.height - 1
	}

	bounds := t.img.Bounds()
	r, g, b, _ := t.img.At(bounds.Min.X+i, bounds.Min.Y+j).RGBA()

	const colorScale = 1.0 / 255.0
	return core.NewVec3(
		colorScale*float64(r>>8),
		colorScale*float64(g>>8),
		colorScale*float64(b>>8),
	)
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
