package material

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Isotropic is the phase function of a homogeneous medium: rays scatter
// uniformly in all directions
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic material from an albedo texture
func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter sends the ray in a uniformly random direction
func (iso *Isotropic) Scatter(rayIn core.Ray, rec *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: iso.Albedo.Value(rec.UV.X, rec.UV.Y, rec.Point),
		Specular:    true,
		SpecularRay: core.NewRayAt(rec.Point, core.RandomInUnitSphere(random), rayIn.Time),
	}, true
}

// ScatteringPDF is zero; the phase function is handled as a specular event
func (iso *Isotropic) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
