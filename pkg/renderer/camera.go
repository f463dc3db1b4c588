package renderer

import (
	"math"
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
)

// Camera generates primary rays through a thin lens with motion blur
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Lens plane basis
	lensRadius      float64
	time0, time1    float64 // Shutter open/close
}

// CameraConfig holds the parameters for camera construction
type CameraConfig struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	VUp         core.Vec3
	VFov        float64 // Vertical field of view in degrees
	AspectRatio float64
	Aperture    float64
	FocusDist   float64
	Time0       float64
	Time1       float64
}

// NewCamera creates a camera with its viewport scaled to the focus distance
func NewCamera(cfg CameraConfig) *Camera {
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(viewportWidth * cfg.FocusDist)
	vertical := v.Multiply(viewportHeight * cfg.FocusDist)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      cfg.Aperture / 2,
		time0:           cfg.Time0,
		time1:           cfg.Time1,
	}
}

// GetRay generates a ray through viewport coordinates (s, t) in [0,1]²,
// with its origin jittered on the lens disk and a time drawn from the
// shutter interval
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAt(origin, direction, core.RandomFloat(random, c.time0, c.time1))
}
