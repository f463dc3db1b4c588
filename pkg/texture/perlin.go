package texture

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

const perlinPointCount = 256

// Perlin holds the gradient and permutation tables for lattice noise.
// Built once at scene construction; read-only afterwards.
type Perlin struct {
	ranVec [perlinPointCount]core.Vec3
	permX  [perlinPointCount]int
	permY  [perlinPointCount]int
	permZ  [perlinPointCount]int
}

// NewPerlin builds the random gradient vectors and permutation tables
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := 0; i < perlinPointCount; i++ {
		p.ranVec[i] = core.RandomVec3(random, -1, 1).Normalize()
	}
	generatePerm(random, &p.permX)
	generatePerm(random, &p.permY)
	generatePerm(random, &p.permZ)
	return p
}

func generatePerm(random *rand.Rand, p *[perlinPointCount]int) {
	for i := 0; i < perlinPointCount; i++ {
		p[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := core.RandomInt(random, 0, i)
		p[i], p[target] = p[target], p[i]
	}
}

// Noise returns smoothed gradient noise in [-1, 1] at the given point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranVec[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}
	return perlinInterp(c, u, v, w)
}

// Turb returns a turbulence sum of noise octaves with halving amplitude
// and doubling frequency
func (p *Perlin) Turb(point core.Vec3, depth int) float64 {
	accum := 0.0
	tempP := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(tempP)
		weight *= 0.5
		tempP = tempP.Multiply(2)
	}
	return math.Abs(accum)
}

// perlinInterp performs Hermite-smoothed trilinear interpolation of the
// gradient contributions at the eight lattice corners
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}
