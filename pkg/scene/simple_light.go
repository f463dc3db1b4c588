package scene

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
	"github.com/emberline/go-path-tracer/pkg/material"
	"github.com/emberline/go-path-tracer/pkg/renderer"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

// NewSimpleLight builds two marble spheres lit by a rectangle panel and a
// sphere lamp against a black background
func NewSimpleLight(random *rand.Rand) *Scene {
	world := geometry.NewHittableList()

	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(texture.NewNoise(random, 4))))
	world.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2,
		material.NewLambertian(texture.NewNoise(random, 4))))

	rectLight := geometry.NewXYRect(3, 5, 1, 3, -2,
		material.NewDiffuseLight(texture.NewSolidColorRGB(4, 4, 4)))
	sphereLight := geometry.NewSphere(core.NewVec3(0, 7, 0), 2,
		material.NewDiffuseLight(texture.NewSolidColorRGB(4, 4, 4)))
	world.Add(rectLight)
	world.Add(sphereLight)

	lights := geometry.NewLightList()
	lights.Add(rectLight)
	lights.Add(sphereLight)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Background:  core.NewVec3(0, 0, 0),
		AspectRatio: 16.0 / 9.0,
		ImageWidth:  400,
		World:       world,
		Lights:      lights,
		Camera:      camera,
	}
}
