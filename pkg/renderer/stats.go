package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Samples taken for each pixel
	Escaped         int           // Paths that left the scene and picked up the background
	Absorbed        int           // Paths terminated by a material absorbing the ray
	DepthExhausted  int           // Paths cut off by the bounce limit
	Duration        time.Duration // Wall time spent in Render
}

// TotalPaths returns the number of terminated paths, one per camera ray
func (s RenderStats) TotalPaths() int {
	return s.Escaped + s.Absorbed + s.DepthExhausted
}

// EscapedFraction returns the share of paths that reached the background
func (s RenderStats) EscapedFraction() float64 {
	total := s.TotalPaths()
	if total == 0 {
		return 0
	}
	return float64(s.Escaped) / float64(total)
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d samples (%d/pixel), paths: %d escaped, %d absorbed, %d depth-limited, took %v",
		s.TotalPixels, s.TotalSamples, s.SamplesPerPixel,
		s.Escaped, s.Absorbed, s.DepthExhausted, s.Duration)
}
