package geometry

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/material"
)

// ConstantMedium is a homogeneous isotropic participating medium bounded
// by another hittable. Rays scatter after an exponentially distributed
// free-flight distance inside the boundary.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium with the given density and albedo
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// Hit finds the span of the ray inside the boundary, samples a free-flight
// distance, and reports a hit if the distance falls inside the span
func (cm *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	rec1, ok := cm.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), random)
	if !ok {
		return nil, false
	}
	rec2, ok := cm.Boundary.Hit(ray, rec1.T+0.0001, math.Inf(1), random)
	if !ok {
		return nil, false
	}

	t1, t2 := rec1.T, rec2.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := cm.negInvDensity * math.Log(random.Float64())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:     t,
		Point: ray.At(t),
		// The phase function is isotropic, so the normal is arbitrary
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  cm.PhaseFunction,
	}, true
}

// BoundingBox delegates to the boundary
func (cm *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return cm.Boundary.BoundingBox(time0, time1)
}
