package scene

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
	"github.com/emberline/go-path-tracer/pkg/material"
	"github.com/emberline/go-path-tracer/pkg/renderer"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

// NewRandomScene builds the bouncing-spheres cover scene: a checker ground
// plane, a grid of small random spheres and three large feature spheres
func NewRandomScene(random *rand.Rand) *Scene {
	world := geometry.NewHittableList()

	checker := texture.NewChecker(
		texture.NewSolidColorRGB(0.2, 0.3, 0.1),
		texture.NewSolidColorRGB(0.9, 0.9, 0.9),
	)
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(checker)))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				world.Add(geometry.NewSphere(center, 0.2, material.NewLambertian(texture.NewSolidColor(albedo))))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := core.RandomFloat(random, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(texture.NewSolidColorRGB(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 3.0 / 2.0,
		Aperture:    0.1,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Background:  core.NewVec3(0.7, 0.8, 1.0),
		AspectRatio: 3.0 / 2.0,
		ImageWidth:  1200,
		World:       world,
		Lights:      geometry.NewLightList(),
		Camera:      camera,
	}
}
