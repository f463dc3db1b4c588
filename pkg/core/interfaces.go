package core

import "math/rand"

// Texture maps surface coordinates and a world-space point to a color
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal opposing the ray; arbitrary for medium scatter events
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface texture coordinates
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The stored normal always satisfies dot(ray.Direction, normal) <= 0.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord is the outcome of a material interaction: either a
// deterministic specular ray, or a PDF to draw an indirect direction from
type ScatterRecord struct {
	Attenuation Vec3
	Specular    bool
	SpecularRay Ray // Valid when Specular is true
	PDF         PDF // Valid when Specular is false
}

// Material scatters incoming rays and reports emission
type Material interface {
	// Scatter returns the scatter record for an incoming ray, or false if
	// the ray is absorbed
	Scatter(rayIn Ray, rec *HitRecord, random *rand.Rand) (ScatterRecord, bool)

	// ScatteringPDF returns the density of the scattered direction under
	// this material's BRDF. Zero for specular materials.
	ScatteringPDF(rayIn Ray, rec *HitRecord, scattered Ray) float64
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted(rayIn Ray, rec *HitRecord, u, v float64, p Vec3) Vec3
}

// Hittable is anything a ray can intersect. Hittables are built at scene
// construction time and are read-only afterwards.
type Hittable interface {
	// Hit returns the nearest intersection within (tMin, tMax), or false
	Hit(ray Ray, tMin, tMax float64, random *rand.Rand) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the hittable over the time
	// interval, or false if it is unbounded
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// DirectionSampler is implemented by hittables that can be importance
// sampled: lights and light-like geometry
type DirectionSampler interface {
	// PDFValue returns the solid-angle density of the given direction from
	// the given origin toward this object
	PDFValue(origin, direction Vec3, random *rand.Rand) float64

	// Random returns a direction from the origin toward a random point on
	// this object
	Random(origin Vec3, random *rand.Rand) Vec3
}

// PDF is a probability density over directions on the unit sphere
type PDF interface {
	Value(direction Vec3, random *rand.Rand) float64
	Generate(random *rand.Rand) Vec3
}
