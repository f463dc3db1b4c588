package geometry

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly between two points
// over the shutter interval
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere moving from center0 at time0 to center1 at time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat core.Material) *MovingSphere {
	return &MovingSphere{
		Center0: center0, Center1: center1,
		Time0: time0, Time1: time1,
		Radius: radius, Material: mat,
	}
}

// Center returns the interpolated center at the given ray time
func (s *MovingSphere) Center(time float64) core.Vec3 {
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests if a ray intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	center := s.Center(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	rec := &core.HitRecord{
		T:        root,
		Point:    point,
		UV:       sphereUV(outwardNormal),
		Material: s.Material,
	}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// BoundingBox returns the union of the boxes at the interval endpoints
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center(time0).Subtract(r), s.Center(time0).Add(r))
	box1 := core.NewAABB(s.Center(time1).Subtract(r), s.Center(time1).Add(r))
	return box0.Union(box1), true
}
