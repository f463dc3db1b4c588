package material

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // e.g. 1.5 for glass
}

// NewDielectric creates a dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts or reflects the incoming ray. Reflection is chosen on
// total internal reflection or by the Schlick probability.
func (d *Dielectric) Scatter(rayIn core.Ray, rec *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	var refractionRatio float64
	if rec.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(rec.Normal)
	} else {
		direction = unitDirection.Refract(rec.Normal, refractionRatio)
	}

	return core.ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		Specular:    true,
		SpecularRay: core.NewRayAt(rec.Point, direction, rayIn.Time),
	}, true
}

// ScatteringPDF is zero for specular materials
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Reflectance computes the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
