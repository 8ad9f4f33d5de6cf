package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Description  string
	World        *geometry.HittableList
	CameraConfig renderer.CameraConfig
}

// NewCamera builds a camera from the scene's camera configuration
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// ApplyCameraOverrides merges the non-zero fields of override into the scene camera
func (s *Scene) ApplyCameraOverrides(override renderer.CameraConfig) {
	s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, override)
}

// SphereCount returns the number of top-level spheres in the world
func (s *Scene) SphereCount() int {
	count := 0
	for _, object := range s.World.Objects {
		if _, ok := object.(*geometry.Sphere); ok {
			count++
		}
	}
	return count
}

// builder constructs a built-in scene; seed drives any random layout
type builder func(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene

// descriptions holds the one-line summary of each built-in scene
var descriptions = map[string]string{
	"default":        "Ground, diffuse center, hollow glass left and fuzzy metal right",
	"random-spheres": "Field of small random spheres around three large ones",
	"testing":        "Single diffuse sphere on a diffuse ground, one sample and one bounce",
}

var builtins = map[string]builder{
	"default":        func(_ int64, o ...renderer.CameraConfig) *Scene { return NewDefaultScene(o...) },
	"random-spheres": NewRandomSpheresScene,
	"testing":        func(_ int64, o ...renderer.CameraConfig) *Scene { return NewTestingScene(o...) },
}

// BuiltinNames returns the names of the built-in scenes, sorted
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltin creates the named built-in scene
func NewBuiltin(name string, seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, BuiltinNames())
	}
	return build(seed, cameraOverrides...), nil
}

// applyOverrides merges the first override, if any, onto config
func applyOverrides(config renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(cameraOverrides) > 0 {
		return renderer.MergeCameraConfig(config, cameraOverrides[0])
	}
	return config
}

// groundSphere is the huge sphere the built-in scenes stand on
func groundSphere(center core.Point3, radius float64, albedo core.Color) *geometry.Sphere {
	return geometry.NewSphere(center, radius, material.NewLambertian(albedo))
}
