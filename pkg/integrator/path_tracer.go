package integrator

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
)

// tMinBias keeps secondary rays from re-intersecting the surface they
// just left
const tMinBias = 0.001

// PathTracer computes radiance estimates by recursive path tracing with
// multiple importance sampling over material and light distributions
type PathTracer struct {
	World      core.Hittable
	Lights     *geometry.LightList
	Background core.Vec3
	MaxDepth   int
}

// NewPathTracer creates a path tracer over an immutable world
func NewPathTracer(world core.Hittable, lights *geometry.LightList, background core.Vec3, maxDepth int) *PathTracer {
	return &PathTracer{
		World:      world,
		Lights:     lights,
		Background: background,
		MaxDepth:   maxDepth,
	}
}

// RayColor returns the radiance estimate for a camera ray
func (pt *PathTracer) RayColor(ray core.Ray, random *rand.Rand) core.Vec3 {
	return pt.rayColor(ray, random, pt.MaxDepth)
}

func (pt *PathTracer) rayColor(ray core.Ray, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, ok := pt.World.Hit(ray, tMinBias, math.Inf(1), random)
	if !ok {
		return pt.Background
	}

	emitted := emittedLight(ray, rec)

	srec, scattered := rec.Material.Scatter(ray, rec, random)
	if !scattered {
		return emitted
	}

	if srec.Specular {
		indirect := pt.rayColor(srec.SpecularRay, random, depth-1)
		return emitted.Add(srec.Attenuation.MultiplyVec(indirect))
	}

	// Sample the next direction from the material PDF, mixed 50/50 with
	// the light-geometry PDF when the scene has lights
	var pdf core.PDF = srec.PDF
	if !pt.Lights.Empty() {
		lightPDF := core.NewHittablePDF(rec.Point, pt.Lights)
		pdf = core.NewMixturePDF(lightPDF, srec.PDF)
	}

	scatterRay := core.NewRayAt(rec.Point, pdf.Generate(random), ray.Time)
	pdfValue := pdf.Value(scatterRay.Direction, random)
	if pdfValue <= 0 {
		// Degenerate sample; treat as dark rather than corrupt the pixel
		return emitted
	}

	scatteringPDF := rec.Material.ScatteringPDF(ray, rec, scatterRay)
	incoming := pt.rayColor(scatterRay, random, depth-1)

	indirect := srec.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue)
	return emitted.Add(indirect)
}

// emittedLight returns the material's emission at the hit, or black for
// non-emissive materials
func emittedLight(ray core.Ray, rec *core.HitRecord) core.Vec3 {
	if emitter, ok := rec.Material.(core.Emitter); ok {
		return emitter.Emitted(ray, rec, rec.UV.X, rec.UV.Y, rec.Point)
	}
	return core.Vec3{}
}
