package texture

import (
	"math"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Checker alternates between two textures in a 3D sine pattern
type Checker struct {
	Even core.Texture
	Odd  core.Texture
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(even, odd core.Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// Value selects the even or odd texture by the sign of a product of sines
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
