package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

// Canvas is the pixel buffer a render accumulates into, initialized to
// black. Color components are kept as unbounded floats and only scaled and
// clamped when the canvas is serialized.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given dimensions
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// WritePixel sets the color at (x, y). Writes outside the canvas are
// silently dropped so callers can plot without clipping first.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// ppmMaxLineLength is the longest line the plain PPM format allows
const ppmMaxLineLength = 70

// ToPPM serializes the canvas to a plain-text (P3) PPM image. Components are
// scaled to 0-255 and clamped, and body lines are wrapped at 70 characters
// for strict readers.
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "P3\n%d %d\n255\n", c.Width, c.Height)

	for y := 0; y < c.Height; y++ {
		line := ""
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			for _, component := range []float64{pixel.R, pixel.G, pixel.B} {
				value := fmt.Sprintf("%d", scaleComponent(component))
				if line == "" {
					line = value
				} else if len(line)+1+len(value) > ppmMaxLineLength {
					sb.WriteString(line)
					sb.WriteByte('\n')
					line = value
				} else {
					line += " " + value
				}
			}
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ToImage converts the canvas into a stdlib image for PNG encoding
func (c *Canvas) ToImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: uint8(scaleComponent(pixel.R)),
				G: uint8(scaleComponent(pixel.G)),
				B: uint8(scaleComponent(pixel.B)),
				A: 255,
			})
		}
	}
	return img
}

// scaleComponent maps a float color component onto 0-255, clamping values
// outside the displayable range
func scaleComponent(component float64) int {
	scaled := int(math.Round(component * 255))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return scaled
}
