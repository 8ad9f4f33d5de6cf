package material

import (
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	tests := []struct {
		name           string
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"ray from outside", core.NewVec3(0, 0, -1), true, outward},
		{"ray from inside", core.NewVec3(0, 0, 1), false, outward.Negate()},
		{"tangent ray counts as back face", core.NewVec3(1, 0, 0), false, outward.Negate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			hit.SetFaceNormal(ray, outward)

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(tt.direction) > 0 {
				t.Errorf("Stored normal %v does not oppose ray direction %v", hit.Normal, tt.direction)
			}
		})
	}
}

func TestPlaceholder_ScattersDiffusely(t *testing.T) {
	if OrPlaceholder(nil) != Placeholder {
		t.Fatal("Expected nil material to resolve to the placeholder")
	}

	glass := NewDielectric(1.5)
	if OrPlaceholder(glass) != Material(glass) {
		t.Error("Expected a set material to be returned unchanged")
	}

	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		scatter, ok := Placeholder.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Placeholder material must never absorb")
		}
		if scatter.Attenuation == (core.Color{}) {
			t.Fatal("Placeholder material must not render black")
		}
	}
}
