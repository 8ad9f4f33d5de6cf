package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"random-spheres scene", "random-spheres", false},
		{"testing scene", "testing", false},

		// Scene files (by name)
		{"three_spheres file", "three_spheres", false},

		// Scene files (by path)
		{"direct file path", "scenes/three_spheres.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid file path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, 42, renderer.CameraConfig{})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if s.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", s.CameraConfig.Width)
			}
			if s.World.Len() == 0 {
				t.Errorf("Scene '%s' has no objects", tt.sceneType)
			}
		})
	}
}

func TestCreateScene_AppliesOverrides(t *testing.T) {
	s, err := createScene("three_spheres", 42, cameraOverrides(64, 2, 0))
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}

	if s.CameraConfig.Width != 64 || s.CameraConfig.SamplesPerPixel != 2 || s.CameraConfig.MaxDepth != 0 {
		t.Errorf("Expected width 64, spp 2, depth 0, got %+v", s.CameraConfig)
	}
}

func TestCameraOverrides(t *testing.T) {
	tests := []struct {
		name          string
		width, spp    int
		depth         int
		expectedDepth int
	}{
		{"scene default depth", 0, 0, -1, 10},
		{"explicit zero depth", 0, 0, 0, 0},
		{"explicit depth", 0, 0, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), cameraOverrides(tt.width, tt.spp, tt.depth))
			if merged.MaxDepth != tt.expectedDepth {
				t.Errorf("Expected depth %d, got %d", tt.expectedDepth, merged.MaxDepth)
			}
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	got := defaultOutputPath("random-spheres", now)
	want := filepath.Join("output", "random-spheres", "render_20240309_140507.png")
	if got != want {
		t.Errorf("defaultOutputPath = %q, want %q", got, want)
	}

	if got := defaultOutputPath("", now); filepath.Base(filepath.Dir(got)) != "scene" {
		t.Errorf("Expected fallback directory name, got %q", got)
	}
}

func TestWriteSceneFile(t *testing.T) {
	s, err := createScene("testing", 42, renderer.CameraConfig{})
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "testing.json")
	if err := writeSceneFile(path, s); err != nil {
		t.Fatalf("writeSceneFile failed: %v", err)
	}

	loaded, err := scene.FromFile(path)
	if err != nil {
		t.Fatalf("Failed to load written scene: %v", err)
	}
	if loaded.World.Len() != s.World.Len() || loaded.CameraConfig != s.CameraConfig {
		t.Errorf("Written scene differs: %+v vs %+v", loaded.CameraConfig, s.CameraConfig)
	}
}
