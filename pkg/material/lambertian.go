package material

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a lambertian material from an albedo texture
func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns a diffuse scatter record: the attenuation is the albedo
// texture at the hit point and directions are drawn from a cosine PDF
func (l *Lambertian) Scatter(rayIn core.Ray, rec *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(rec.UV.X, rec.UV.Y, rec.Point),
		Specular:    false,
		PDF:         core.NewCosinePDF(rec.Normal),
	}, true
}

// ScatteringPDF returns cos(θ)/π for directions above the surface
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}
