package material

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// DiffuseLight is an emissive material that never scatters
type DiffuseLight struct {
	Emit core.Texture
}

// NewDiffuseLight creates a light from an emission texture
func NewDiffuseLight(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs the ray
func (dl *DiffuseLight) Scatter(rayIn core.Ray, rec *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is zero; lights do not scatter
func (dl *DiffuseLight) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission texture on the front face, black on the back
func (dl *DiffuseLight) Emitted(rayIn core.Ray, rec *core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	if !rec.FrontFace {
		return core.Vec3{}
	}
	return dl.Emit.Value(u, v, p)
}
