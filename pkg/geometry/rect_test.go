package geometry

import (
	"math"
	"testing"

	"github.com/emberline/go-path-tracer/pkg/core"
)

func TestXZRect_Hit(t *testing.T) {
	rect := NewXZRect(0, 2, 0, 4, 1, absorbMaterial{})
	random := testRand()

	rec, ok := rect.Hit(core.NewRay(core.NewVec3(1, 3, 2), core.NewVec3(0, -1, 0)), 0.001, 1000, random)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-2) > 1e-9 {
		t.Errorf("t = %f, want 2", rec.T)
	}
	if !rec.Normal.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("normal = %v", rec.Normal)
	}
	if math.Abs(rec.UV.X-0.5) > 1e-9 || math.Abs(rec.UV.Y-0.5) > 1e-9 {
		t.Errorf("uv = %v, want {0.5, 0.5}", rec.UV)
	}

	// Outside the 2D extent
	if _, ok := rect.Hit(core.NewRay(core.NewVec3(3, 3, 2), core.NewVec3(0, -1, 0)), 0.001, 1000, random); ok {
		t.Error("expected miss outside the extent")
	}
}

func TestXYRect_Hit(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, 0, absorbMaterial{})
	random := testRand()

	rec, ok := rect.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, random)
	if !ok {
		t.Fatal("expected hit")
	}
	if !rec.Normal.Equals(core.NewVec3(0, 0, 1)) || !rec.FrontFace {
		t.Errorf("normal = %v frontFace = %v", rec.Normal, rec.FrontFace)
	}
}

func TestYZRect_Hit(t *testing.T) {
	rect := NewYZRect(-1, 1, -1, 1, 0, absorbMaterial{})
	random := testRand()

	rec, ok := rect.Hit(core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)), 0.001, 1000, random)
	if !ok {
		t.Fatal("expected hit")
	}
	if !rec.Normal.Equals(core.NewVec3(1, 0, 0)) || !rec.FrontFace {
		t.Errorf("normal = %v frontFace = %v", rec.Normal, rec.FrontFace)
	}
}

func TestXZRect_PDFValue(t *testing.T) {
	// Unit-area rectangle directly overhead at distance 2, viewed straight
	// on: pdf = d²/(cosθ·area) = 4/1
	rect := NewXZRect(-0.5, 0.5, -0.5, 0.5, 2, absorbMaterial{})
	random := testRand()

	got := rect.PDFValue(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), random)
	if math.Abs(got-4) > 1e-9 {
		t.Errorf("pdf = %f, want 4", got)
	}

	if got := rect.PDFValue(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), random); got != 0 {
		t.Errorf("pdf away from rect = %f, want 0", got)
	}
}

func TestXZRect_Random_HitsRect(t *testing.T) {
	rect := NewXZRect(0, 2, 0, 4, 3, absorbMaterial{})
	origin := core.NewVec3(1, 0, 2)
	random := testRand()

	for i := 0; i < 1000; i++ {
		dir := rect.Random(origin, random)
		if _, ok := rect.Hit(core.NewRay(origin, dir), 0.001, math.Inf(1), random); !ok {
			t.Fatalf("sampled direction %v misses the rectangle", dir)
		}
	}
}

func TestBox_HitAnySide(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), absorbMaterial{})
	random := testRand()

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
		wantT  float64
	}{
		{"from -z", core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1), 1},
		{"from +x", core.NewVec3(2, 0.5, 0.5), core.NewVec3(-1, 0, 0), 1},
		{"from +y", core.NewVec3(0.5, 3, 0.5), core.NewVec3(0, -1, 0), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := box.Hit(core.NewRay(tt.origin, tt.dir), 0.001, 1000, random)
			if !ok {
				t.Fatal("expected hit")
			}
			if math.Abs(rec.T-tt.wantT) > 1e-9 {
				t.Errorf("t = %f, want %f", rec.T, tt.wantT)
			}
		})
	}
}

func TestTriangle_HitAndUV(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
		absorbMaterial{},
		core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0, 1),
	)
	random := testRand()

	rec, ok := tri.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, random)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-5) > 1e-9 {
		t.Errorf("t = %f, want 5", rec.T)
	}
	// Barycentric interpolation of the vertex UVs at (0.5, 0.5)
	if math.Abs(rec.UV.X-0.25) > 1e-9 || math.Abs(rec.UV.Y-0.25) > 1e-9 {
		t.Errorf("uv = %v, want {0.25, 0.25}", rec.UV)
	}

	// Outside the triangle but inside its bounding plane quadrant
	if _, ok := tri.Hit(core.NewRay(core.NewVec3(1.5, 1.5, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, random); ok {
		t.Error("expected miss outside the triangle")
	}
}
