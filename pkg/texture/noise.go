package texture

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Noise is a marble-like texture driven by Perlin turbulence
type Noise struct {
	noise *Perlin
	scale float64
}

// NewNoise creates a noise texture with the given frequency scale
func NewNoise(random *rand.Rand, scale float64) *Noise {
	return &Noise{noise: NewPerlin(random), scale: scale}
}

// Value returns a gray level modulated by a sine of turbulence plus depth
func (n *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	s := 0.5 * (1 + math.Sin(10*n.noise.Turb(p, 7)+n.scale*p.Z))
	return core.NewVec3(1, 1, 1).Multiply(s)
}
