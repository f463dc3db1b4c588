package geometry

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Sphere represents a static sphere
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	rec := &core.HitRecord{
		T:        root,
		Point:    point,
		UV:       sphereUV(outwardNormal),
		Material: s.Material,
	}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// sphereUV maps a point on the unit sphere to surface coordinates
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)                // Angle from the bottom pole [0, π]
	phi := math.Atan2(-p.Z, p.X) + math.Pi // Angle around the equator [0, 2π]
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r)), true
}

// PDFValue returns the solid-angle density of the direction toward the
// sphere: 1 / (2π(1 − cos θmax)) over the subtended cone
func (s *Sphere) PDFValue(origin, direction core.Vec3, random *rand.Rand) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1), random); !ok {
		return 0
	}

	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/s.Center.Subtract(origin).LengthSquared())
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random returns a direction toward the sphere, uniform over the cone it
// subtends from the origin
func (s *Sphere) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	direction := s.Center.Subtract(origin)
	uvw := core.NewONB(direction)
	return uvw.Local(core.RandomToSphere(random, s.Radius, direction.LengthSquared()))
}
