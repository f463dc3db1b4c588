package geometry

import (
	"math/rand"
	"sort"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// BVHNode is a node of a bounding volume hierarchy built once over the
// world and immutable afterwards. A leaf holding a single primitive keeps
// it in Left and leaves Right nil.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	bbox  core.AABB
}

// NewBVH builds a BVH over the given objects for the given time interval.
// Splits pick a random axis and divide the slice at the median of the
// axis-minimum ordering.
func NewBVH(objects []core.Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	// Build mutates the slice order, so work on a copy
	objs := make([]core.Hittable, len(objects))
	copy(objs, objects)
	return buildBVH(objs, time0, time1, random)
}

func buildBVH(objects []core.Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	axis := core.RandomInt(random, 0, 2)
	less := func(a, b core.Hittable) bool {
		boxA, _ := a.BoundingBox(time0, time1)
		boxB, _ := b.BoundingBox(time0, time1)
		return boxA.Min.Axis(axis) < boxB.Min.Axis(axis)
	}

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left = objects[0]
	case 2:
		if less(objects[0], objects[1]) {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return less(objects[i], objects[j])
		})
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], time0, time1, random)
		node.Right = buildBVH(objects[mid:], time0, time1, random)
	}

	boxLeft, _ := node.Left.BoundingBox(time0, time1)
	node.bbox = boxLeft
	if node.Right != nil {
		boxRight, _ := node.Right.BoundingBox(time0, time1)
		node.bbox = boxLeft.Union(boxRight)
	}
	return node
}

// Hit prunes by the node box, then returns the nearer of the child hits.
// The right child is queried with tMax tightened to the left hit's t.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	if !n.bbox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	recLeft, hitLeft := n.Left.Hit(ray, tMin, tMax, random)
	if hitLeft {
		tMax = recLeft.T
	}

	if n.Right != nil {
		if recRight, hitRight := n.Right.Hit(ray, tMin, tMax, random); hitRight {
			return recRight, true
		}
	}
	return recLeft, hitLeft
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.bbox, true
}
