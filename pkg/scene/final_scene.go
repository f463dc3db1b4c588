package scene

import (
	"math/rand"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
	"github.com/emberline/go-path-tracer/pkg/loaders"
	"github.com/emberline/go-path-tracer/pkg/material"
	"github.com/emberline/go-path-tracer/pkg/renderer"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

// NewFinalScene builds the showcase scene: a ground grid of boxes, a
// moving sphere, glass and metal spheres, a subsurface-looking volume, an
// earth sphere, a marble sphere, smoke, and a box of packed spheres
func NewFinalScene(earthMapPath string, random *rand.Rand) (*Scene, error) {
	world := geometry.NewHittableList()

	// Ground: 20x20 boxes of random height, gathered under one BVH
	ground := material.NewLambertian(texture.NewSolidColorRGB(0.48, 0.83, 0.53))
	groundBoxes := make([]core.Hittable, 0, 400)
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			x1 := x0 + w
			y1 := core.RandomFloat(random, 1, 101)
			z1 := z0 + w
			groundBoxes = append(groundBoxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0), core.NewVec3(x1, y1, z1), ground))
		}
	}
	world.Add(geometry.NewBVH(groundBoxes, 0, 1, random))

	lightPanel := geometry.NewXZRect(123, 423, 147, 412, 554,
		material.NewDiffuseLight(texture.NewSolidColorRGB(7, 7, 7)))
	world.Add(geometry.NewFlipFace(lightPanel))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50,
		material.NewLambertian(texture.NewSolidColorRGB(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass sphere filled with a blue volume for a subsurface look
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(
		geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5)),
		0.2, texture.NewSolidColorRGB(0.2, 0.4, 0.9)))

	// Thin global mist
	world.Add(geometry.NewConstantMedium(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5)),
		0.0001, texture.NewSolidColorRGB(1, 1, 1)))

	earthTexture, err := loaders.LoadImageTexture(earthMapPath)
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewLambertian(earthTexture)))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewLambertian(texture.NewNoise(random, 0.1))))

	// A box of 1000 packed white spheres, rotated and lifted into place
	white := material.NewLambertian(texture.NewSolidColorRGB(0.73, 0.73, 0.73))
	packed := make([]core.Hittable, 0, 1000)
	for i := 0; i < 1000; i++ {
		packed = append(packed, geometry.NewSphere(core.RandomVec3(random, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(packed, 0, 1, random), 15),
		core.NewVec3(-100, 270, 395),
	))

	lights := geometry.NewLightList()
	lights.Add(lightPanel)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1.0,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		Background:  core.NewVec3(0, 0, 0),
		AspectRatio: 1.0,
		ImageWidth:  600,
		World:       world,
		Lights:      lights,
		Camera:      camera,
	}, nil
}
