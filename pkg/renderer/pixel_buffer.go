package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// intensity is the range a gamma-corrected channel is clamped to before it
// is scaled to a byte
var intensity = core.NewInterval(0.000, 0.999)

// PixelBuffer is an 8-bit RGB raster, row-major with the top row first.
// It implements image.Image so the standard encoders can consume it.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels [][3]uint8
}

// NewPixelBuffer allocates a black buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([][3]uint8, width*height),
	}
}

// Resize reallocates the pixel storage when the dimensions differ
func (b *PixelBuffer) Resize(width, height int) {
	if b.Width == width && b.Height == height && len(b.Pixels) == width*height {
		return
	}
	b.Width = width
	b.Height = height
	b.Pixels = make([][3]uint8, width*height)
}

// LinearToGamma applies the gamma-2 transfer curve.
// Non-positive and NaN inputs map to 0.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// QuantizeChannel converts one linear channel to a display byte
func QuantizeChannel(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(LinearToGamma(linear)))
}

// SetColor quantizes a linear color and stores it at pixel (i, j)
func (b *PixelBuffer) SetColor(i, j int, c core.Color) {
	b.Pixels[j*b.Width+i] = [3]uint8{
		QuantizeChannel(c.X),
		QuantizeChannel(c.Y),
		QuantizeChannel(c.Z),
	}
}

// RGB returns the stored bytes of pixel (i, j)
func (b *PixelBuffer) RGB(i, j int) [3]uint8 {
	return b.Pixels[j*b.Width+i]
}

// ColorModel implements image.Image
func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image; pixels outside the bounds are transparent black
func (b *PixelBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	p := b.Pixels[y*b.Width+x]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: 255}
}
