package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// WritePPM writes buf as a plain-text (P3) PPM image: a header line, the
// dimensions, the maximum value 255, then one "r g b" line per pixel
func WritePPM(w io.Writer, buf *renderer.PixelBuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", buf.Width, buf.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for _, p := range buf.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM: %w", err)
	}
	return nil
}
