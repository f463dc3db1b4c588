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

// NewMeshScene loads an OBJ model, rotates and lifts it into the frame,
// and lights it with a ceiling panel
func NewMeshScene(meshPath string, random *rand.Rand) (*Scene, error) {
	mesh, err := loaders.LoadOBJ(meshPath, random)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList()
	world.Add(geometry.NewRotateY(
		geometry.NewTranslate(mesh, core.NewVec3(500, 50, 0)),
		35,
	))

	lightPanel := geometry.NewXZRect(123, 423, 147, 412, 554,
		material.NewDiffuseLight(texture.NewSolidColorRGB(7, 7, 7)))
	world.Add(geometry.NewFlipFace(lightPanel))

	lights := geometry.NewLightList()
	lights.Add(lightPanel)

	camera := renderer.NewCamera(renderer.CameraConfig{
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

	return &Scene{
		Background:  core.NewVec3(0.7, 0.8, 1.0),
		AspectRatio: 1.0,
		ImageWidth:  600,
		World:       world,
		Lights:      lights,
		Camera:      camera,
	}, nil
}
