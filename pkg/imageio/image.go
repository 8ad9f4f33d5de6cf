package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Format identifies an output encoding
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
	FormatPPM Format = "ppm"
)

// FormatFromPath picks the output format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".ppm":
		return FormatPPM, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use .png, .bmp or .ppm)", ext)
	}
}

// WritePNG encodes buf as PNG
func WritePNG(w io.Writer, buf *renderer.PixelBuffer) error {
	if err := png.Encode(w, buf); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WriteBMP encodes buf as a 24-bit BMP
func WriteBMP(w io.Writer, buf *renderer.PixelBuffer) error {
	if err := bmp.Encode(w, buf); err != nil {
		return fmt.Errorf("failed to encode BMP: %w", err)
	}
	return nil
}

// Encode writes buf to w in the given format
func Encode(w io.Writer, buf *renderer.PixelBuffer, format Format) error {
	switch format {
	case FormatPNG:
		return WritePNG(w, buf)
	case FormatBMP:
		return WriteBMP(w, buf)
	case FormatPPM:
		return WritePPM(w, buf)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Save writes buf to path, choosing the encoder from the extension and
// creating parent directories as needed
func Save(path string, buf *renderer.PixelBuffer) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := Encode(file, buf, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}

// Load decodes a PNG, JPEG or BMP image into a pixel buffer
func Load(path string) (*renderer.PixelBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img), nil
}

// FromImage copies any image into a pixel buffer, dropping alpha
func FromImage(img image.Image) *renderer.PixelBuffer {
	bounds := img.Bounds()
	buf := renderer.NewPixelBuffer(bounds.Dx(), bounds.Dy())

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			buf.Pixels[y*buf.Width+x] = [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
		}
	}

	return buf
}
