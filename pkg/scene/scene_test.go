package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func TestNewBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			s, err := NewBuiltin(name, 42)
			if err != nil {
				t.Fatalf("NewBuiltin(%q) error: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.World.Len() == 0 {
				t.Error("Expected a non-empty world")
			}
			if s.SphereCount() != s.World.Len() {
				t.Errorf("Expected only spheres, got %d of %d", s.SphereCount(), s.World.Len())
			}
			if s.NewCamera().ImageHeight() < 1 {
				t.Error("Expected a usable camera")
			}
		})
	}
}

func TestNewBuiltin_Unknown(t *testing.T) {
	_, err := NewBuiltin("cornell-box", 42)
	if err == nil {
		t.Fatal("Expected error for unknown scene")
	}
	if !strings.Contains(err.Error(), "random-spheres") {
		t.Errorf("Expected error to list available scenes, got %v", err)
	}
}

func TestNewBuiltin_CameraOverrides(t *testing.T) {
	s, err := NewBuiltin("default", 1, renderer.CameraConfig{Width: 64, SamplesPerPixel: 3})
	if err != nil {
		t.Fatalf("NewBuiltin error: %v", err)
	}
	if s.CameraConfig.Width != 64 || s.CameraConfig.SamplesPerPixel != 3 {
		t.Errorf("Expected overrides to apply, got %+v", s.CameraConfig)
	}
	if s.CameraConfig.VFov != 20 {
		t.Errorf("Expected scene vfov to survive overrides, got %f", s.CameraConfig.VFov)
	}

	s.ApplyCameraOverrides(renderer.CameraConfig{MaxDepth: -1})
	if s.CameraConfig.MaxDepth != 0 {
		t.Errorf("Expected max depth 0, got %d", s.CameraConfig.MaxDepth)
	}
}

func TestDefaultScene_HollowGlassSphere(t *testing.T) {
	s := NewDefaultScene()

	var outer, bubble *material.Dielectric
	for _, object := range s.World.Objects {
		sphere := object.(*geometry.Sphere)
		if sphere.Center != core.NewVec3(-1, 0, -1) {
			continue
		}
		switch sphere.Radius {
		case 0.5:
			outer = sphere.Material.(*material.Dielectric)
		case 0.4:
			bubble = sphere.Material.(*material.Dielectric)
		}
	}

	if outer == nil || bubble == nil {
		t.Fatal("Expected a glass sphere with an inner bubble")
	}
	if math.Abs(outer.RefractiveIndex*bubble.RefractiveIndex-1) > 1e-12 {
		t.Errorf("Expected bubble index to be the inverse of glass, got %f and %f", outer.RefractiveIndex, bubble.RefractiveIndex)
	}
}

func TestRandomSpheresScene(t *testing.T) {
	s := NewRandomSpheresScene(42)

	// Ground, at most 22x22 small spheres, three large spheres
	if n := s.World.Len(); n < 4 || n > 1+22*22+3 {
		t.Fatalf("Unexpected sphere count %d", n)
	}

	counts := map[string]int{}
	for _, object := range s.World.Objects[1 : s.World.Len()-3] {
		sphere := object.(*geometry.Sphere)
		if sphere.Radius != 0.2 || sphere.Center.Y != 0.2 {
			t.Fatalf("Unexpected small sphere %+v", sphere)
		}
		if sphere.Center.Subtract(keepClear).Length() <= 0.9 {
			t.Errorf("Small sphere at %v is inside the keep-clear zone", sphere.Center)
		}

		switch m := sphere.Material.(type) {
		case *material.Lambertian:
			counts["lambertian"]++
			if m.Albedo.X < 0 || m.Albedo.X >= 1 {
				t.Errorf("Lambertian albedo %v outside [0,1)", m.Albedo)
			}
		case *material.Metal:
			counts["metal"]++
			if m.Albedo.X < 0.5 || m.Fuzzness >= 0.5 {
				t.Errorf("Metal albedo %v fuzz %f outside expected ranges", m.Albedo, m.Fuzzness)
			}
		case *material.Dielectric:
			counts["glass"]++
		default:
			t.Errorf("Unexpected material %T", m)
		}
	}

	// 80/15/5 split over several hundred spheres
	if counts["lambertian"] <= counts["metal"] || counts["metal"] <= counts["glass"] {
		t.Errorf("Unexpected material mix %v", counts)
	}

	if s.CameraConfig.LookFrom != core.NewVec3(13, 2, 3) || s.CameraConfig.VFov != 20 {
		t.Errorf("Unexpected camera %+v", s.CameraConfig)
	}
}

func TestRandomSpheresScene_Deterministic(t *testing.T) {
	first := NewRandomSpheresScene(7)
	second := NewRandomSpheresScene(7)
	other := NewRandomSpheresScene(8)

	if first.World.Len() != second.World.Len() {
		t.Fatalf("Same seed produced %d and %d spheres", first.World.Len(), second.World.Len())
	}
	for i := range first.World.Objects {
		a := first.World.Objects[i].(*geometry.Sphere)
		b := second.World.Objects[i].(*geometry.Sphere)
		if a.Center != b.Center {
			t.Fatalf("Sphere %d differs: %v vs %v", i, a.Center, b.Center)
		}
	}

	differs := other.World.Len() != first.World.Len()
	for i := 1; !differs && i < first.World.Len(); i++ {
		differs = first.World.Objects[i].(*geometry.Sphere).Center != other.World.Objects[i].(*geometry.Sphere).Center
	}
	if !differs {
		t.Error("Expected a different seed to change the layout")
	}
}

func TestTestingScene_Layout(t *testing.T) {
	s := NewTestingScene()

	if s.CameraConfig.SamplesPerPixel != 1 || s.CameraConfig.MaxDepth != 1 {
		t.Errorf("Expected spp 1 and depth 1, got spp %d depth %d", s.CameraConfig.SamplesPerPixel, s.CameraConfig.MaxDepth)
	}
	if s.World.Len() != 2 {
		t.Fatalf("Expected sphere and ground, got %d objects", s.World.Len())
	}
	ground := s.World.Objects[1].(*geometry.Sphere)
	if ground.Center != core.NewVec3(0, -100.5, -1) || ground.Radius != 100 {
		t.Errorf("Unexpected ground sphere at %v radius %g", ground.Center, ground.Radius)
	}
	if _, ok := ground.Material.(*material.Lambertian); !ok {
		t.Errorf("Expected Lambertian ground, got %T", ground.Material)
	}
}

func TestTestingScene_RendersDarkCenter(t *testing.T) {
	s := NewTestingScene(renderer.CameraConfig{Width: 21})
	sampler := core.NewSeededSampler(42)
	rt := renderer.NewRaytracer(s.NewCamera(), s.World, sampler, nil)

	buf := renderer.NewPixelBuffer(0, 0)
	stats := rt.Render(buf)

	if stats.TotalSamples != 21*21 {
		t.Errorf("Expected one sample per pixel, got %d samples", stats.TotalSamples)
	}

	center := buf.RGB(10, 10)
	if center != [3]uint8{0, 0, 0} {
		t.Errorf("Expected black center, got %v", center)
	}
	// The bottom corners see the ground, so only the top ones are sky
	for _, corner := range [][2]int{{0, 0}, {20, 0}} {
		rgb := buf.RGB(corner[0], corner[1])
		if rgb[2] == 0 || int(rgb[0])+int(rgb[1])+int(rgb[2]) <= int(center[0])+int(center[1])+int(center[2]) {
			t.Errorf("Expected sky in corner %v, got %v", corner, rgb)
		}
	}
}
