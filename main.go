package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/imageio"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// scenesDir holds the JSON scene files that can be selected by name
const scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name, scene file name in scenes/, or path to a .json scene file")
	outPath := flag.String("out", "", "Output image path (.png, .bmp or .ppm); default output/<scene>/render_<timestamp>.png")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	spp := flag.Int("spp", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", -1, "Maximum bounce depth (-1 = scene default)")
	seed := flag.Int64("seed", 42, "Random seed for sampling and random scene layouts")
	list := flag.Bool("list", false, "List available scenes and exit")
	saveScene := flag.String("save-scene", "", "Write the selected scene to this JSON file and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	overrides := cameraOverrides(*width, *spp, *depth)
	selectedScene, err := createScene(*sceneType, *seed, overrides)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	if *saveScene != "" {
		if err := writeSceneFile(*saveScene, selectedScene); err != nil {
			fmt.Printf("Error saving scene: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scene saved as %s\n", *saveScene)
		return
	}

	filename := *outPath
	if filename == "" {
		filename = defaultOutputPath(selectedScene.Name, time.Now())
	}
	if _, err := imageio.FormatFromPath(filename); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering scene %q (%d spheres)...\n", selectedScene.Name, selectedScene.SphereCount())

	sampler := core.NewSeededSampler(*seed)
	raytracer := renderer.NewRaytracer(selectedScene.NewCamera(), selectedScene.World, sampler, renderer.NewDefaultLogger())

	buf := renderer.NewPixelBuffer(0, 0)
	stats := raytracer.Render(buf)
	fmt.Printf("Stats: %v\n", stats)

	if err := imageio.Save(filename, buf); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Weekend Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-15s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -out is given")
}

func listScenes() error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		fmt.Printf("%-8s %-30s %s\n", info.Type, info.ID, info.Description)
	}
	return nil
}

// cameraOverrides converts command line values into a camera override.
// Zero fields leave the scene's own settings untouched.
func cameraOverrides(width, spp, depth int) renderer.CameraConfig {
	override := renderer.CameraConfig{
		Width:           width,
		SamplesPerPixel: spp,
	}
	switch {
	case depth == 0:
		override.MaxDepth = -1 // explicit zero
	case depth > 0:
		override.MaxDepth = depth
	}
	return override
}

// createScene resolves sceneType to a built-in scene, a file in scenes/, or a
// path to a scene file
func createScene(sceneType string, seed int64, overrides renderer.CameraConfig) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}

	if strings.HasSuffix(sceneType, ".json") {
		return scene.FromFile(sceneType, overrides)
	}

	if s, err := scene.NewBuiltin(sceneType, seed, overrides); err == nil {
		return s, nil
	}

	if s, ok := tryLoadSceneFile(sceneType, overrides); ok {
		return s, nil
	}

	return nil, fmt.Errorf("unknown scene %q (built-in: %v, or a .json file)", sceneType, scene.BuiltinNames())
}

// tryLoadSceneFile looks for scenes/<name>.json
func tryLoadSceneFile(name string, overrides renderer.CameraConfig) (*scene.Scene, bool) {
	path := filepath.Join(scenesDir, name+".json")
	if _, err := os.Stat(path); err != nil {
		return nil, false
	}
	s, err := scene.FromFile(path, overrides)
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
		return nil, false
	}
	return s, true
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	if sceneName == "" {
		sceneName = "scene"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func writeSceneFile(path string, s *scene.Scene) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create scene file: %w", err)
	}
	if err := scene.Save(file, s); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
