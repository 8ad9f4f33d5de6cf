package renderer

import (
	"math"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// shadowAcne is the lower bound of the hit interval; it keeps scattered rays
// from re-hitting the surface they start on
const shadowAcne = 0.001

var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// Raytracer handles the rendering process
type Raytracer struct {
	camera  *Camera
	world   geometry.Hittable
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger disables progress output.
func NewRaytracer(camera *Camera, world geometry.Hittable, sampler core.Sampler, logger core.Logger) *Raytracer {
	return &Raytracer{
		camera:  camera,
		world:   world,
		sampler: sampler,
		logger:  logger,
	}
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// backgroundGradient returns the sky color for a ray that escaped the scene
func backgroundGradient(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return skyBottom.Lerp(skyTop, a)
}

// RayColor returns the radiance carried back along r, following at most
// depth bounces
func (rt *Raytracer) RayColor(r core.Ray, depth int) core.Color {
	return rt.rayColorRecursive(r, depth, nil)
}

// rayColorRecursive traces r, counting how the path ends when stats is non-nil
func (rt *Raytracer) rayColorRecursive(r core.Ray, depth int, stats *RenderStats) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		if stats != nil {
			stats.DepthExhausted++
		}
		return core.Color{}
	}

	hit, isHit := rt.world.Hit(r, core.NewInterval(shadowAcne, math.Inf(1)))
	if !isHit {
		if stats != nil {
			stats.Escaped++
		}
		return backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, rt.sampler)
	if !didScatter {
		if stats != nil {
			stats.Absorbed++
		}
		return core.Color{}
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColorRecursive(scatter.Scattered, depth-1, stats))
}

// Render traces every pixel of the camera's image into buf, top row first.
// buf is resized when its dimensions do not match the camera.
func (rt *Raytracer) Render(buf *PixelBuffer) RenderStats {
	start := time.Now()
	width := rt.camera.ImageWidth()
	height := rt.camera.ImageHeight()
	spp := rt.camera.Config().SamplesPerPixel
	maxDepth := rt.camera.Config().MaxDepth
	scale := rt.camera.PixelSamplesScale()

	buf.Resize(width, height)

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: spp,
	}

	progressStep := max(1, height/10)
	rt.logf("Rendering %dx%d, %d samples per pixel, max depth %d...\n", width, height, spp, maxDepth)

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			pixelColor := core.Color{}
			for sample := 0; sample < spp; sample++ {
				r := rt.camera.GetRay(i, j, rt.sampler)
				pixelColor = pixelColor.Add(rt.rayColorRecursive(r, maxDepth, &stats))
			}
			stats.TotalSamples += spp
			buf.SetColor(i, j, pixelColor.Multiply(scale))
		}

		if done := j + 1; done%progressStep == 0 && done < height {
			rt.logf("Scanlines %d/%d (%d%%)\n", done, height, done*100/height)
		}
	}

	stats.Duration = time.Since(start)
	rt.logf("Render complete in %v\n", stats.Duration)
	return stats
}

func (rt *Raytracer) logf(format string, args ...interface{}) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}
