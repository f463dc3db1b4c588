package geometry

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Triangle is a single triangle with per-vertex texture coordinates.
// The plane normal and the barycentric edge reciprocals are precomputed.
type Triangle struct {
	A        core.Vec3
	Normal   core.Vec3 // Unit plane normal
	pb, pc   core.Vec3 // Edge reciprocal vectors for barycentric evaluation
	Material core.Material
	bbox     core.AABB
	uvA      core.Vec2
	uvAB     core.Vec2 // uvB - uvA
	uvAC     core.Vec2 // uvC - uvA
}

// NewTriangle creates a triangle from three vertices and their UVs
func NewTriangle(a, b, c core.Vec3, mat core.Material, uvA, uvB, uvC core.Vec2) *Triangle {
	ab := b.Subtract(a)
	ac := c.Subtract(a)
	n := ab.Cross(ac)
	l := n.LengthSquared()

	const pad = 0.000001
	bbox := core.NewAABBFromPoints(a, b, c)
	bbox.Min = bbox.Min.Subtract(core.NewVec3(pad, pad, pad))
	bbox.Max = bbox.Max.Add(core.NewVec3(pad, pad, pad))

	return &Triangle{
		A:        a,
		Normal:   n.Normalize(),
		pb:       n.Cross(ab).Multiply(1 / l),
		pc:       ac.Cross(n).Multiply(1 / l),
		Material: mat,
		bbox:     bbox,
		uvA:      uvA,
		uvAB:     core.NewVec2(uvB.X-uvA.X, uvB.Y-uvA.Y),
		uvAC:     core.NewVec2(uvC.X-uvA.X, uvC.Y-uvA.Y),
	}
}

// Hit intersects the plane and tests the barycentric inside condition
// u > 0, v > 0, u+v < 1
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	oa := tr.A.Subtract(ray.Origin)
	t := oa.Dot(tr.Normal) / ray.Direction.Dot(tr.Normal)
	if t < tMin || t > tMax {
		return nil, false
	}

	p := ray.At(t)
	ap := p.Subtract(tr.A)
	u := ap.Dot(tr.pb)
	v := ap.Dot(tr.pc)
	if u <= 0 || v <= 0 || u+v >= 1 {
		return nil, false
	}

	// The precomputed plane normal is the outward normal; hits from behind
	// the plane are back-face hits with the normal turned toward the ray
	rec := &core.HitRecord{
		T:        t,
		Point:    p,
		Material: tr.Material,
		UV: core.NewVec2(
			tr.uvA.X+v*tr.uvAB.X+u*tr.uvAC.X,
			tr.uvA.Y+v*tr.uvAB.Y+u*tr.uvAC.Y,
		),
	}
	rec.SetFaceNormal(ray, tr.Normal)
	return rec, true
}

// BoundingBox returns the padded box around the three vertices
func (tr *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return tr.bbox, true
}
