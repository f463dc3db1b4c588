package geometry

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Box is an axis-aligned box built from six rectangles
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box between two opposite corners
func NewBox(min, max core.Vec3, mat core.Material) *Box {
	sides := NewHittableList()
	sides.Add(NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat))
	sides.Add(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat))
	sides.Add(NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat))
	sides.Add(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat))
	sides.Add(NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat))
	sides.Add(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat))

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit delegates to the six sides
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, random)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
