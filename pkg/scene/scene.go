package scene

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/emberline/go-path-tracer/pkg/core"
	"github.com/emberline/go-path-tracer/pkg/geometry"
	"github.com/emberline/go-path-tracer/pkg/renderer"
)

// Scene bundles everything the renderer consumes: the world geometry, the
// lights the integrator importance samples, the camera, and the image shape
type Scene struct {
	Background  core.Vec3
	AspectRatio float64
	ImageWidth  int
	World       *geometry.HittableList
	Lights      *geometry.LightList
	Camera      *renderer.Camera
}

// ImageHeight derives the image height from the width and aspect ratio
func (s *Scene) ImageHeight() int {
	return int(float64(s.ImageWidth) / s.AspectRatio)
}

// Assets points scene factories at their input files
type Assets struct {
	EarthMap string // Image for the earth scenes
	Mesh     string // OBJ file for the mesh scene
}

// Names lists the available scene identifiers
func Names() []string {
	return []string{
		"random", "two-spheres", "perlin", "earth",
		"simple-light", "cornell", "cornell-smoke", "final", "mesh",
	}
}

// Create builds the scene selected by name
func Create(name string, assets Assets, random *rand.Rand) (*Scene, error) {
	switch name {
	case "random":
		return NewRandomScene(random), nil
	case "two-spheres":
		return NewTwoSpheres(), nil
	case "perlin":
		return NewTwoPerlinSpheres(random), nil
	case "earth":
		return NewEarth(assets.EarthMap)
	case "simple-light":
		return NewSimpleLight(random), nil
	case "cornell":
		return NewCornellBox(), nil
	case "cornell-smoke":
		return NewCornellSmoke(), nil
	case "final":
		return NewFinalScene(assets.EarthMap, random)
	case "mesh":
		return NewMeshScene(assets.Mesh, random)
	default:
		return nil, errors.Errorf("unknown scene %q", name)
	}
}
