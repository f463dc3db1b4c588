package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func hitAt(point, normal core.Vec3, frontFace bool) *core.HitRecord {
	return &core.HitRecord{
		Point:     point,
		Normal:    normal,
		FrontFace: frontFace,
		T:         1,
	}
}

func TestLambertian_ScatterIsDiffuse(t *testing.T) {
	lambertian := NewLambertian(texture.NewSolidColorRGB(0.5, 0.6, 0.7))
	rec := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), true)

	srec, ok := lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1)), rec, testRand())
	if !ok {
		t.Fatal("expected scatter")
	}
	if srec.Specular {
		t.Error("lambertian scatter should be diffuse")
	}
	if srec.PDF == nil {
		t.Fatal("diffuse scatter must carry a PDF")
	}
	if !srec.Attenuation.Equals(core.NewVec3(0.5, 0.6, 0.7)) {
		t.Errorf("attenuation = %v", srec.Attenuation)
	}
}

func TestLambertian_ScatteringPDF(t *testing.T) {
	lambertian := NewLambertian(texture.NewSolidColorRGB(1, 1, 1))
	rec := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), true)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// Straight up: cos(0)/π
	up := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if got := lambertian.ScatteringPDF(rayIn, rec, up); math.Abs(got-1/math.Pi) > 1e-9 {
		t.Errorf("pdf straight up = %f, want %f", got, 1/math.Pi)
	}

	// At 60 degrees: cos(60°)/π
	slanted := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(math.Sqrt(3)/2, 0.5, 0))
	if got := lambertian.ScatteringPDF(rayIn, rec, slanted); math.Abs(got-0.5/math.Pi) > 1e-9 {
		t.Errorf("pdf at 60° = %f, want %f", got, 0.5/math.Pi)
	}

	// Below the surface: zero
	down := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	if got := lambertian.ScatteringPDF(rayIn, rec, down); got != 0 {
		t.Errorf("pdf below surface = %f, want 0", got)
	}
}

func TestMetal_PerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)
	rec := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), true)

	srec, ok := metal.Scatter(core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0)), rec, testRand())
	if !ok {
		t.Fatal("expected scatter")
	}
	if !srec.Specular {
		t.Error("metal scatter should be specular")
	}

	want := core.NewVec3(1, 1, 0).Normalize()
	if !srec.SpecularRay.Direction.Normalize().Equals(want) {
		t.Errorf("reflected direction = %v, want %v", srec.SpecularRay.Direction.Normalize(), want)
	}
}

func TestMetal_FuzzClamped(t *testing.T) {
	if m := NewMetal(core.NewVec3(1, 1, 1), 5); m.Fuzz != 1 {
		t.Errorf("fuzz = %f, want clamped to 1", m.Fuzz)
	}
	if m := NewMetal(core.NewVec3(1, 1, 1), -1); m.Fuzz != 0 {
		t.Errorf("fuzz = %f, want clamped to 0", m.Fuzz)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	random := testRand()

	// Grazing exit from inside the glass: η·sinθ > 1 forces reflection
	rec := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), false)
	incoming := core.NewVec3(1, -0.1, 0).Normalize()

	for i := 0; i < 100; i++ {
		srec, ok := glass.Scatter(core.NewRay(core.NewVec3(-1, 0.1, 0), incoming), rec, random)
		if !ok {
			t.Fatal("expected scatter")
		}
		want := incoming.Reflect(core.NewVec3(0, 1, 0))
		if !srec.SpecularRay.Direction.Normalize().Equals(want.Normalize()) {
			t.Fatalf("direction = %v, want pure reflection %v", srec.SpecularRay.Direction, want)
		}
	}
}

func TestDielectric_AttenuationIsWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	rec := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), true)

	srec, _ := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.2, -1, 0)), rec, testRand())
	if !srec.Attenuation.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("attenuation = %v, want white", srec.Attenuation)
	}
}

func TestReflectance_MonotoneInCosTheta(t *testing.T) {
	// Schlick reflectance decreases as incidence approaches the normal
	prev := math.Inf(1)
	for cos := 0.0; cos <= 1.0; cos += 0.05 {
		r := Reflectance(cos, 1.0/1.5)
		if r > prev+1e-12 {
			t.Fatalf("reflectance not monotone at cosθ=%f", cos)
		}
		prev = r
	}

	if r := Reflectance(0, 1.0/1.5); math.Abs(r-1) > 1e-9 {
		t.Errorf("grazing reflectance = %f, want 1", r)
	}
}

func TestDiffuseLight_EmitsFrontFaceOnly(t *testing.T) {
	light := NewDiffuseLight(texture.NewSolidColorRGB(4, 4, 4))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, ok := light.Scatter(ray, hitAt(core.Vec3{}, core.NewVec3(0, 1, 0), true), testRand()); ok {
		t.Error("lights must not scatter")
	}

	front := light.Emitted(ray, hitAt(core.Vec3{}, core.NewVec3(0, 1, 0), true), 0, 0, core.Vec3{})
	if !front.Equals(core.NewVec3(4, 4, 4)) {
		t.Errorf("front emission = %v", front)
	}

	back := light.Emitted(ray, hitAt(core.Vec3{}, core.NewVec3(0, 1, 0), false), 0, 0, core.Vec3{})
	if !back.Equals(core.Vec3{}) {
		t.Errorf("back emission = %v, want black", back)
	}
}

func TestIsotropic_ScattersUniformly(t *testing.T) {
	iso := NewIsotropic(texture.NewSolidColorRGB(0.5, 0.5, 0.5))
	rec := hitAt(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), true)
	random := testRand()

	srec, ok := iso.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), rec, random)
	if !ok || !srec.Specular {
		t.Fatal("isotropic scatter should be a specular record")
	}
	if srec.SpecularRay.Direction.Length() > 1+1e-9 {
		t.Errorf("direction %v outside the unit sphere", srec.SpecularRay.Direction)
	}
}
