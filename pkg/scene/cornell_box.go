package scene

import (
	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
	"github.com/emberline/go-path-tracer/pkg/material"
	"github.com/emberline/go-path-tracer/pkg/renderer"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

// cornellCamera is shared by the Cornell box variants
func cornellCamera() *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1.0,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})
}

// NewCornellBox builds the classic Cornell box with a rotated tall box and
// a glass sphere under a ceiling panel light
func NewCornellBox() *Scene {
	world := geometry.NewHittableList()

	red := material.NewLambertian(texture.NewSolidColorRGB(0.65, 0.05, 0.05))
	white := material.NewLambertian(texture.NewSolidColorRGB(0.73, 0.73, 0.73))
	green := material.NewLambertian(texture.NewSolidColorRGB(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(texture.NewSolidColorRGB(15, 15, 15))
	glass := material.NewDielectric(1.5)

	world.Add(geometry.NewYZRect(0, 555, 0, 555, 555, green))
	world.Add(geometry.NewYZRect(0, 555, 0, 555, 0, red))

	lightPanel := geometry.NewXZRect(213, 343, 227, 332, 554, light)
	world.Add(geometry.NewFlipFace(lightPanel))

	world.Add(geometry.NewXZRect(0, 555, 0, 555, 0, white))
	world.Add(geometry.NewXZRect(0, 555, 0, 555, 555, white))
	world.Add(geometry.NewXYRect(0, 555, 0, 555, 555, white))

	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	world.Add(geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295)))

	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass)
	world.Add(glassSphere)

	// Sample the panel and the glass sphere; both steer rays that matter
	lights := geometry.NewLightList()
	lights.Add(lightPanel)
	lights.Add(glassSphere)

	return &Scene{
		Background:  core.NewVec3(0, 0, 0),
		AspectRatio: 1.0,
		ImageWidth:  600,
		World:       world,
		Lights:      lights,
		Camera:      cornellCamera(),
	}
}
