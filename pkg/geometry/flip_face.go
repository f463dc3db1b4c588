package geometry

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// FlipFace inverts the front-face flag of the wrapped hittable's hits.
// Used so that inward-facing light panels still emit into the scene.
type FlipFace struct {
	Object core.Hittable
}

// NewFlipFace wraps a hittable with inverted face orientation
func NewFlipFace(object core.Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit delegates and flips the front-face flag of the result
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	rec, ok := f.Object.Hit(ray, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	rec.FrontFace = !rec.FrontFace
	return rec, true
}

// BoundingBox delegates to the wrapped hittable
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}
