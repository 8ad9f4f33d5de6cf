package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// keepClear is the spot next to the large metal sphere left free of small spheres
var keepClear = core.NewVec3(4, 0.2, 0)

// NewRandomSpheresScene creates the cover scene: a 22x22 grid of small spheres
// with randomly chosen materials around three large spheres. The layout is
// fully determined by seed.
func NewRandomSpheresScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := applyOverrides(renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           1080,
		SamplesPerPixel: 20,
		MaxDepth:        5,
		VFov:            20,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
	}, cameraOverrides)

	sampler := core.NewSeededSampler(seed)
	world := geometry.NewHittableList(groundSphere(core.NewVec3(0, -1000, 0), 1000, core.NewVec3(0.5, 0.5, 0.5)))

	// Glass is immutable, so every small glass sphere shares one instance
	glass := material.NewDielectric(1.5)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var sphereMaterial material.Material
			switch {
			case chooseMat < 0.8:
				// Diffuse
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				// Metal
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				sphereMaterial = glass
			}

			world.Add(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return &Scene{
		Name:         "random-spheres",
		Description:  descriptions["random-spheres"],
		World:        world,
		CameraConfig: cameraConfig,
	}
}
