package geometry

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Rectangles are padded by this amount on their fixed axis so their
// bounding boxes are never degenerate
const rectPadding = 0.0001

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1 float64
	K              float64
	Material       core.Material
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat core.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

// Hit solves the plane equation on z and checks the 2D extent
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	rec := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (y-r.Y0)/(r.Y1-r.Y0)),
		Material: r.Material,
	}
	rec.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return rec, true
}

// BoundingBox returns a thin box padded on the fixed axis
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectPadding),
		core.NewVec3(r.X1, r.Y1, r.K+rectPadding),
	), true
}

// PDFValue returns distance²/(cosθ·area) for directions that hit the rectangle
func (r *XYRect) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	rec, ok := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), random)
	if !ok {
		return 0
	}
	area := (r.X1 - r.X0) * (r.Y1 - r.Y0)
	return rectPDF(rec, direction, area)
}

// Random returns a direction toward a uniformly random point on the rectangle
func (r *XYRect) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	point := core.NewVec3(
		core.RandomFloat(random, r.X0, r.X1),
		core.RandomFloat(random, r.Y0, r.Y1),
		r.K,
	)
	return point.Subtract(origin)
}

// XZRect is an axis-aligned rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1 float64
	K              float64
	Material       core.Material
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat core.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit solves the plane equation on y and checks the 2D extent
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	rec := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (z-r.Z0)/(r.Z1-r.Z0)),
		Material: r.Material,
	}
	rec.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return rec, true
}

// BoundingBox returns a thin box padded on the fixed axis
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectPadding, r.Z0),
		core.NewVec3(r.X1, r.K+rectPadding, r.Z1),
	), true
}

// PDFValue returns distance²/(cosθ·area) for directions that hit the rectangle
func (r *XZRect) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	rec, ok := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), random)
	if !ok {
		return 0
	}
	area := (r.X1 - r.X0) * (r.Z1 - r.Z0)
	return rectPDF(rec, direction, area)
}

// Random returns a direction toward a uniformly random point on the rectangle
func (r *XZRect) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	point := core.NewVec3(
		core.RandomFloat(random, r.X0, r.X1),
		r.K,
		core.RandomFloat(random, r.Z0, r.Z1),
	)
	return point.Subtract(origin)
}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1 float64
	K              float64
	Material       core.Material
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat core.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit solves the plane equation on x and checks the 2D extent
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return nil, false
	}
	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	rec := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((y-r.Y0)/(r.Y1-r.Y0), (z-r.Z0)/(r.Z1-r.Z0)),
		Material: r.Material,
	}
	rec.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return rec, true
}

// BoundingBox returns a thin box padded on the fixed axis
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectPadding, r.Y0, r.Z0),
		core.NewVec3(r.K+rectPadding, r.Y1, r.Z1),
	), true
}

// PDFValue returns distance²/(cosθ·area) for directions that hit the rectangle
func (r *YZRect) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	rec, ok := r.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), random)
	if !ok {
		return 0
	}
	area := (r.Y1 - r.Y0) * (r.Z1 - r.Z0)
	return rectPDF(rec, direction, area)
}

// Random returns a direction toward a uniformly random point on the rectangle
func (r *YZRect) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	point := core.NewVec3(
		r.K,
		core.RandomFloat(random, r.Y0, r.Y1),
		core.RandomFloat(random, r.Z0, r.Z1),
	)
	return point.Subtract(origin)
}

// rectPDF converts an area density to a solid-angle density for a
// rectangle hit along the given direction
func rectPDF(rec *core.HitRecord, direction core.Vec3, area float64) float64 {
	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine == 0 {
		return 0
	}
	return distanceSquared / (cosine * area)
}
