package geometry

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// RotateY rotates a hittable around the Y axis by a fixed angle
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
	hasBox   bool
	bbox     core.AABB
}

// NewRotateY creates a rotated view of a hittable. The bounding box is the
// axis-aligned hull of the eight rotated corners of the inner box.
func NewRotateY(object core.Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	bbox, hasBox := object.BoundingBox(0, 1)

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*bbox.Max.X + float64(1-i)*bbox.Min.X
				y := float64(j)*bbox.Max.Y + float64(1-j)*bbox.Min.Y
				z := float64(k)*bbox.Max.Z + float64(1-k)*bbox.Min.Z

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z

				min.X = math.Min(min.X, newX)
				max.X = math.Max(max.X, newX)
				min.Y = math.Min(min.Y, y)
				max.Y = math.Max(max.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}

	return &RotateY{
		Object:   object,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		hasBox:   hasBox,
		bbox:     core.NewAABB(min, max),
	}
}

// Hit rotates the ray into object space, recurses, and rotates the hit
// point and normal back into world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	origin := ray.Origin
	direction := ray.Direction

	origin.X = r.cosTheta*ray.Origin.X - r.sinTheta*ray.Origin.Z
	origin.Z = r.sinTheta*ray.Origin.X + r.cosTheta*ray.Origin.Z
	direction.X = r.cosTheta*ray.Direction.X - r.sinTheta*ray.Direction.Z
	direction.Z = r.sinTheta*ray.Direction.X + r.cosTheta*ray.Direction.Z

	rotated := core.NewRayAt(origin, direction, ray.Time)
	rec, ok := r.Object.Hit(rotated, tMin, tMax, random)
	if !ok {
		return nil, false
	}

	p := rec.Point
	normal := rec.Normal
	p.X = r.cosTheta*rec.Point.X + r.sinTheta*rec.Point.Z
	p.Z = -r.sinTheta*rec.Point.X + r.cosTheta*rec.Point.Z
	normal.X = r.cosTheta*rec.Normal.X + r.sinTheta*rec.Normal.Z
	normal.Z = -r.sinTheta*rec.Normal.X + r.cosTheta*rec.Normal.Z

	// The inner normal already opposes the rotated ray; rotating both back
	// keeps that, so the front-face flag carries over unchanged
	rec.Point = p
	rec.Normal = normal
	return rec, true
}

// BoundingBox returns the precomputed conservative hull
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBox
}
