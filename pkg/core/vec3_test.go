package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got := v1.Add(v2); !got.Equals(NewVec3(5, 7, 9)) {
		t.Errorf("Add: got %v", got)
	}
	if got := v2.Subtract(v1); !got.Equals(NewVec3(3, 3, 3)) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := v1.Multiply(2); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := v1.Dot(v2); got != 32 {
		t.Errorf("Dot: got %f, want 32", got)
	}
	if got := v1.Cross(v2); !got.Equals(NewVec3(-3, 6, -3)) {
		t.Errorf("Cross: got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	unit := v.Normalize()

	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Normalize: length %f, want 1", unit.Length())
	}
	if !unit.Equals(NewVec3(0.6, 0.8, 0)) {
		t.Errorf("Normalize: got %v", unit)
	}

	// Zero vector stays zero rather than producing NaN
	if got := NewVec3(0, 0, 0).Normalize(); !got.Equals(Vec3{}) {
		t.Errorf("Normalize zero: got %v", got)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("expected near-zero vector")
	}
	if NewVec3(1e-7, 0, 0).NearZero() {
		t.Error("expected non-near-zero vector")
	}
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	if got := v.Reflect(n); !got.Equals(NewVec3(1, 1, 0)) {
		t.Errorf("Reflect: got %v", got)
	}
}

func TestVec3_Refract_StraightThrough(t *testing.T) {
	// Normal incidence passes straight through for any ratio
	v := NewVec3(0, 0, -1)
	n := NewVec3(0, 0, 1)
	got := v.Refract(n, 1.5)
	if !got.Normalize().Equals(NewVec3(0, 0, -1)) {
		t.Errorf("Refract: got %v", got)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, want := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != want {
			t.Errorf("Axis(%d): got %f, want %f", axis, got, want)
		}
	}
}
