package material

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming ray, perturbed by the fuzz radius
func (m *Metal) Scatter(rayIn core.Ray, rec *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(rec.Normal)
	direction := reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))

	return core.ScatterRecord{
		Attenuation: m.Albedo,
		Specular:    true,
		SpecularRay: core.NewRayAt(rec.Point, direction, rayIn.Time),
	}, true
}

// ScatteringPDF is zero for specular materials
func (m *Metal) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
