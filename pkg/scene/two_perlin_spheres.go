package scene

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
	"github.com/emberline/go-path-tracer/pkg/material"
	"github.com/emberline/go-path-tracer/pkg/renderer"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

// NewTwoPerlinSpheres builds a marble ground sphere and a marble ball
func NewTwoPerlinSpheres(random *rand.Rand) *Scene {
	world := geometry.NewHittableList()

	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(texture.NewNoise(random, 4))))
	world.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2,
		material.NewLambertian(texture.NewNoise(random, 4))))

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Background:  core.NewVec3(0.7, 0.8, 1.0),
		AspectRatio: 16.0 / 9.0,
		ImageWidth:  1600,
		World:       world,
		Lights:      geometry.NewLightList(),
		Camera:      camera,
	}
}
