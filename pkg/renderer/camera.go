package renderer

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraConfig holds the user-facing camera parameters
type CameraConfig struct {
	AspectRatio     float64     // Ratio of image width over height
	Width           int         // Rendered image width in pixels
	SamplesPerPixel int         // Number of random samples for each pixel
	MaxDepth        int         // Maximum number of ray bounces into the scene
	VFov            float64     // Vertical field of view in degrees
	LookFrom        core.Point3 // Point the camera is looking from
	LookAt          core.Point3 // Point the camera is looking at
	Up              core.Vec3   // Camera-relative "up" direction
	DefocusAngle    float64     // Variation angle of rays through each pixel, in degrees
	FocusDistance   float64     // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		Width:           100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base.
// MaxDepth and DefocusAngle are numeric fields where zero is meaningful, so a
// negative override value is used to request zero explicitly.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = max(0, override.MaxDepth)
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = max(0, override.DefocusAngle)
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// Camera generates rays for rendering.
// Derived fields are computed by Initialize from the config and must not be
// read before it runs; NewCamera and SetConfig both call it.
type Camera struct {
	config CameraConfig

	imageHeight       int         // Rendered image height
	pixelSamplesScale float64     // Color scale factor for a sum of pixel samples
	center            core.Point3 // Camera center
	pixel00           core.Point3 // Location of pixel 0, 0
	pixelDeltaU       core.Vec3   // Offset to pixel to the right
	pixelDeltaV       core.Vec3   // Offset to pixel below
	u, v, w           core.Vec3   // Camera frame basis vectors
	defocusDiskU      core.Vec3   // Defocus disk horizontal radius
	defocusDiskV      core.Vec3   // Defocus disk vertical radius
}

// NewCamera creates a camera and derives its viewport from config
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}
	c.Initialize()
	return c
}

// SetConfig replaces the camera parameters and recomputes the derived state
func (c *Camera) SetConfig(config CameraConfig) {
	c.config = config
	c.Initialize()
}

// Config returns the camera parameters
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Initialize recomputes all derived state from the current config
func (c *Camera) Initialize() {
	cfg := c.config

	// Calculate the image height, and ensure that it's at least 1
	c.imageHeight = max(1, int(math.Round(float64(cfg.Width)/cfg.AspectRatio)))
	c.pixelSamplesScale = 1.0 / float64(cfg.SamplesPerPixel)

	c.center = cfg.LookFrom

	// Determine viewport dimensions
	theta := core.DegreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	viewportWidth := viewportHeight * (float64(cfg.Width) / float64(c.imageHeight))

	// Calculate the u,v,w unit basis vectors for the camera coordinate frame
	c.w = cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	// Horizontal and vertical delta vectors from pixel to pixel
	c.pixelDeltaU = viewportU.Divide(float64(cfg.Width))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	// Location of the upper left pixel
	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(cfg.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	// Camera defocus disk basis vectors
	defocusRadius := cfg.FocusDistance * math.Tan(core.DegreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// ImageWidth returns the rendered image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.Width
}

// ImageHeight returns the rendered image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// PixelSamplesScale returns the factor that averages a sum of pixel samples
func (c *Camera) PixelSamplesScale() float64 {
	return c.pixelSamplesScale
}

// Basis returns the camera frame: u (right), v (up), w (backwards)
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// PixelCenter returns the world position of the center of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Point3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay constructs a camera ray originating from the defocus disk and
// directed at a randomly sampled point around pixel (i, j)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// sampleSquare returns a random point in the [-.5,-.5]-[+.5,+.5] unit square
func sampleSquare(sampler core.Sampler) core.Vec2 {
	s := sampler.Get2D()
	return core.NewVec2(s.X-0.5, s.Y-0.5)
}

// defocusDiskSample returns a random point in the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
