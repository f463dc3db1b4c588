package geometry

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// HittableList is a flat collection of hittables searched linearly
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates an empty hittable list
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends a hittable to the list
func (hl *HittableList) Add(object core.Hittable) {
	hl.Objects = append(hl.Objects, object)
}

// Hit returns the nearest hit over all objects in the list
func (hl *HittableList) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	for _, object := range hl.Objects {
		if rec, ok := object.Hit(ray, tMin, closestT, random); ok {
			closest = rec
			closestT = rec.T
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the union of all object boxes, or false if the list
// is empty or contains an unbounded object
func (hl *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(hl.Objects) == 0 {
		return core.AABB{}, false
	}

	var output core.AABB
	first := true
	for _, object := range hl.Objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			output = box
			first = false
		} else {
			output = output.Union(box)
		}
	}
	return output, true
}

// BuildBVH builds a BVH over the list's objects for fast traversal. An
// empty list is returned unchanged; every ray misses it.
func (hl *HittableList) BuildBVH(time0, time1 float64, random *rand.Rand) core.Hittable {
	if len(hl.Objects) == 0 {
		return hl
	}
	return NewBVH(hl.Objects, time0, time1, random)
}

// LightList is the set of light-like objects the integrator importance
// samples. It is a uniform mixture over its entries.
type LightList struct {
	Lights []core.DirectionSampler
}

// NewLightList creates an empty light list
func NewLightList() *LightList {
	return &LightList{}
}

// Add appends a sampleable light
func (ll *LightList) Add(light core.DirectionSampler) {
	ll.Lights = append(ll.Lights, light)
}

// Empty reports whether there are no lights to sample
func (ll *LightList) Empty() bool {
	return len(ll.Lights) == 0
}

// PDFValue returns the uniform mixture of the entries' densities
func (ll *LightList) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	if len(ll.Lights) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(ll.Lights))
	sum := 0.0
	for _, light := range ll.Lights {
		sum += weight * light.PDFValue(origin, direction, random)
	}
	return sum
}

// Random delegates to a uniformly random entry
func (ll *LightList) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	i := core.RandomInt(random, 0, len(ll.Lights)-1)
	return ll.Lights[i].Random(origin, random)
}
