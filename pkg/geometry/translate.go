package geometry

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Translate shifts a hittable by a fixed offset
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
}

// NewTranslate creates a translated view of a hittable
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit shifts the ray into object space, recurses, and shifts the hit back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	rec, ok := t.Object.Hit(moved, tMin, tMax, random)
	if !ok {
		return nil, false
	}

	// A translation changes neither the normal nor the face orientation
	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

// BoundingBox shifts the inner box by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}
