package geometry

import (
	"math"
	"testing"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

func TestTranslate_ShiftsHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, absorbMaterial{})
	moved := NewTranslate(sphere, core.NewVec3(5, 0, 0))
	random := testRand()

	rec, ok := moved.Hit(core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, random)
	if !ok {
		t.Fatal("expected hit on the translated sphere")
	}
	if !rec.Point.Equals(core.NewVec3(5, 0, 1)) {
		t.Errorf("hit point = %v, want {5, 0, 1}", rec.Point)
	}

	box, _ := moved.BoundingBox(0, 1)
	if !box.Min.Equals(core.NewVec3(4, -1, -1)) || !box.Max.Equals(core.NewVec3(6, 1, 1)) {
		t.Errorf("box = %v..%v", box.Min, box.Max)
	}
}

func TestRotateY_QuarterTurn(t *testing.T) {
	// A unit sphere at (2, 0, 0) rotated 90 degrees about Y moves to (0, 0, -2)
	sphere := NewSphere(core.NewVec3(2, 0, 0), 1, absorbMaterial{})
	rotated := NewRotateY(sphere, 90)
	random := testRand()

	rec, ok := rotated.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0.001, 1000, random)
	if !ok {
		t.Fatal("expected hit on the rotated sphere")
	}
	if math.Abs(rec.T-2) > 1e-9 {
		t.Errorf("t = %f, want 2", rec.T)
	}

	// The hull of the rotated box covers the new position on every axis
	box, _ := rotated.BoundingBox(0, 1)
	if box.Min.Z > -3+1e-9 || box.Max.Z < -1-1e-9 {
		t.Errorf("hull z = [%f, %f], want to cover [-3, -1]", box.Min.Z, box.Max.Z)
	}
	if box.Max.Z < box.Min.Z {
		t.Errorf("degenerate hull: %v..%v", box.Min, box.Max)
	}
}

func TestFlipFace_InvertsFrontFace(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, absorbMaterial{})
	flipped := NewFlipFace(rect)
	random := testRand()

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	plain, _ := rect.Hit(ray, 0.001, 1000, random)
	inverted, _ := flipped.Hit(ray, 0.001, 1000, random)

	if plain.FrontFace == inverted.FrontFace {
		t.Error("FlipFace did not invert the front-face flag")
	}
}

func TestConstantMedium_DenseVolumeAlwaysScatters(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, absorbMaterial{})
	medium := NewConstantMedium(boundary, 1e6, texture.NewSolidColorRGB(1, 1, 1))
	random := testRand()

	// At enormous density the free flight is effectively zero: every ray
	// through the boundary scatters, just inside the entry point
	for i := 0; i < 100; i++ {
		rec, ok := medium.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, random)
		if !ok {
			t.Fatal("expected scatter inside a dense medium")
		}
		if rec.T < 4 || rec.T > 6 {
			t.Fatalf("scatter at t=%f, want within the boundary span [4, 6]", rec.T)
		}
	}
}

func TestConstantMedium_ThinVolumeMostlyMisses(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, absorbMaterial{})
	medium := NewConstantMedium(boundary, 1e-6, texture.NewSolidColorRGB(1, 1, 1))
	random := testRand()

	misses := 0
	for i := 0; i < 1000; i++ {
		if _, ok := medium.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, random); !ok {
			misses++
		}
	}
	if misses < 990 {
		t.Errorf("thin medium scattered %d/1000 rays", 1000-misses)
	}
}

func TestHittableList_NearestHitWins(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -10), 1, absorbMaterial{}))
	near := NewSphere(core.NewVec3(0, 0, -5), 1, absorbMaterial{})
	list.Add(near)
	random := testRand()

	rec, ok := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 1000, random)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Errorf("t = %f, want 4 (the nearer sphere)", rec.T)
	}
}
