package scene

import (
	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
	"github.com/emberline/go-path-tracer/pkg/material"
	"github.com/emberline/go-path-tracer/pkg/texture"
)

// NewCornellSmoke builds the Cornell box with the two boxes replaced by
// volumes of black and white smoke under a larger, dimmer panel light
func NewCornellSmoke() *Scene {
	world := geometry.NewHittableList()

	red := material.NewLambertian(texture.NewSolidColorRGB(0.65, 0.05, 0.05))
	white := material.NewLambertian(texture.NewSolidColorRGB(0.73, 0.73, 0.73))
	green := material.NewLambertian(texture.NewSolidColorRGB(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(texture.NewSolidColorRGB(7, 7, 7))

	world.Add(geometry.NewYZRect(0, 555, 0, 555, 555, green))
	world.Add(geometry.NewYZRect(0, 555, 0, 555, 0, red))

	lightPanel := geometry.NewXZRect(113, 443, 127, 432, 554, light)
	world.Add(geometry.NewFlipFace(lightPanel))

	world.Add(geometry.NewXZRect(0, 555, 0, 555, 0, white))
	world.Add(geometry.NewXZRect(0, 555, 0, 555, 555, white))
	world.Add(geometry.NewXYRect(0, 555, 0, 555, 555, white))

	tallBox := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295),
	)
	world.Add(geometry.NewConstantMedium(tallBox, 0.01, texture.NewSolidColorRGB(0, 0, 0)))

	shortBox := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65),
	)
	world.Add(geometry.NewConstantMedium(shortBox, 0.01, texture.NewSolidColorRGB(1, 1, 1)))

	lights := geometry.NewLightList()
	lights.Add(lightPanel)

	return &Scene{
		Background:  core.NewVec3(0, 0, 0),
		AspectRatio: 1.0,
		ImageWidth:  600,
		World:       world,
		Lights:      lights,
		Camera:      cornellCamera(),
	}
}
