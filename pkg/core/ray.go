package core

// Ray represents a ray with an origin, direction and time
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64 // Shutter time for motion blur, within the camera's [t0,t1]
}

// NewRay creates a new ray at time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAt creates a new ray with an explicit time
func NewRayAt(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point along the ray at parameter t
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
