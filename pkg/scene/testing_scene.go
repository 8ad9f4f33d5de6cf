package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewTestingScene creates a minimal scene: one gray diffuse sphere on a
// diffuse ground, seen by the default camera with a single sample and a
// single bounce per pixel
func NewTestingScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	base := renderer.DefaultCameraConfig()
	base.SamplesPerPixel = 1
	base.MaxDepth = 1
	cameraConfig := applyOverrides(base, cameraOverrides)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
	)

	return &Scene{
		Name:         "testing",
		Description:  descriptions["testing"],
		World:        world,
		CameraConfig: cameraConfig,
	}
}
