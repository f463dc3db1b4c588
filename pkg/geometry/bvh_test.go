package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/emberline/go-path-tracer/pkg/core"
)

func randomSphereCloud(n int, random *rand.Rand) []core.Hittable {
	objects := make([]core.Hittable, 0, n)
	for i := 0; i < n; i++ {
		center := core.RandomVec3(random, -100, 100)
		radius := core.RandomFloat(random, 0.5, 3)
		objects = append(objects, NewSphere(center, radius, absorbMaterial{}))
	}
	return objects
}

func TestBVH_MatchesListTraversal(t *testing.T) {
	random := rand.New(rand.NewSource(99))
	objects := randomSphereCloud(1000, random)

	list := NewHittableList()
	for _, o := range objects {
		list.Add(o)
	}
	bvh := NewBVH(objects, 0, 1, random)

	for i := 0; i < 2000; i++ {
		ray := core.NewRay(core.RandomVec3(random, -150, 150), core.RandomUnitVector(random))

		listRec, listHit := list.Hit(ray, 0.001, math.Inf(1), random)
		bvhRec, bvhHit := bvh.Hit(ray, 0.001, math.Inf(1), random)

		if listHit != bvhHit {
			t.Fatalf("ray %d: list hit=%v, bvh hit=%v", i, listHit, bvhHit)
		}
		if listHit {
			if math.Abs(listRec.T-bvhRec.T) > 1e-9 {
				t.Fatalf("ray %d: list t=%f, bvh t=%f", i, listRec.T, bvhRec.T)
			}
			if listRec.Material != bvhRec.Material {
				t.Fatalf("ray %d: materials differ", i)
			}
		}
	}
}

func bvhDepth(h core.Hittable) int {
	node, ok := h.(*BVHNode)
	if !ok {
		return 0
	}
	depth := bvhDepth(node.Left)
	if node.Right != nil {
		if d := bvhDepth(node.Right); d > depth {
			depth = d
		}
	}
	return depth + 1
}

func TestBVH_DepthBound(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	objects := randomSphereCloud(1000, random)
	bvh := NewBVH(objects, 0, 1, random)

	// Median splits keep the tree balanced: depth stays within
	// ceil(log2(1000)) + 2
	maxDepth := int(math.Ceil(math.Log2(1000))) + 2
	if depth := bvhDepth(bvh); depth > maxDepth {
		t.Errorf("depth = %d, want <= %d", depth, maxDepth)
	}
}

func TestBVH_AllPrimitivesHittable(t *testing.T) {
	random := rand.New(rand.NewSource(21))
	objects := randomSphereCloud(200, random)
	bvh := NewBVH(objects, 0, 1, random)

	// Aim a ray directly at each sphere center from well outside the cloud
	for i, o := range objects {
		sphere := o.(*Sphere)
		origin := core.NewVec3(0, 0, 500)
		dir := sphere.Center.Subtract(origin)

		if _, ok := bvh.Hit(core.NewRay(origin, dir), 0.001, math.Inf(1), random); !ok {
			t.Fatalf("sphere %d at %v unreachable through the BVH", i, sphere.Center)
		}
	}
}

func TestBVH_SingletonVisitedOnce(t *testing.T) {
	random := rand.New(rand.NewSource(31))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, absorbMaterial{})
	bvh := NewBVH([]core.Hittable{sphere}, 0, 1, random)

	// A single-object tree keeps the primitive on the left and no right child
	if bvh.Left != core.Hittable(sphere) {
		t.Error("left child is not the primitive")
	}
	if bvh.Right != nil {
		t.Error("right child should be nil for a singleton")
	}

	rec, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), random)
	if !ok || math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("singleton hit: ok=%v t=%v", ok, rec)
	}
}

func TestBVH_BoxContainsChildren(t *testing.T) {
	random := rand.New(rand.NewSource(41))
	objects := randomSphereCloud(64, random)
	bvh := NewBVH(objects, 0, 1, random)

	var check func(h core.Hittable, parent core.AABB)
	check = func(h core.Hittable, parent core.AABB) {
		box, ok := h.BoundingBox(0, 1)
		if !ok {
			t.Fatal("missing bounding box")
		}
		if box.Min.X < parent.Min.X-1e-9 || box.Max.X > parent.Max.X+1e-9 ||
			box.Min.Y < parent.Min.Y-1e-9 || box.Max.Y > parent.Max.Y+1e-9 ||
			box.Min.Z < parent.Min.Z-1e-9 || box.Max.Z > parent.Max.Z+1e-9 {
			t.Fatalf("child box %v..%v escapes parent %v..%v", box.Min, box.Max, parent.Min, parent.Max)
		}
		if node, isNode := h.(*BVHNode); isNode {
			check(node.Left, box)
			if node.Right != nil {
				check(node.Right, box)
			}
		}
	}

	rootBox, _ := bvh.BoundingBox(0, 1)
	check(bvh, rootBox)
}
