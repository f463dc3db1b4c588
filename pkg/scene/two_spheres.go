package scene

import (
	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
	"github.com/emberline/go-path-tracer/pkg/material"
	"github.com/emberline/go-path-tracer/pkg/renderer"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

// NewTwoSpheres builds two large checkered spheres touching at the origin
func NewTwoSpheres() *Scene {
	world := geometry.NewHittableList()

	for _, y := range []float64{-10, 10} {
		checker := texture.NewChecker(
			texture.NewSolidColorRGB(0.2, 0.3, 0.1),
			texture.NewSolidColorRGB(0.9, 0.9, 0.9),
		)
		world.Add(geometry.NewSphere(core.NewVec3(0, y, 0), 10, material.NewLambertian(checker)))
	}

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
		ImageWidth:  400,
		World:       world,
		Lights:      geometry.NewLightList(),
		Camera:      camera,
	}
}
