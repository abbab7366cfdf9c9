package image

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/jmylchreest/chromatic/internal/colour"
)

var (
	// ErrOutOfBounds is returned when the sample point lies outside the image.
	ErrOutOfBounds = errors.New("point outside image bounds")
	// ErrInvalidRadius is returned for a negative sample radius.
	ErrInvalidRadius = errors.New("sample radius must not be negative")
)

// Sample averages the pixels in the square window of the given radius centred
// on (x, y). Coordinates are relative to the image's top-left corner and the
// window is clipped to the image. A radius of zero reads the single pixel.
func Sample(img image.Image, x, y, radius int) (colour.RGB, error) {
	if radius < 0 {
		return colour.RGB{}, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}

	b := img.Bounds()
	px, py := b.Min.X+x, b.Min.Y+y
	if !(image.Point{X: px, Y: py}).In(b) {
		return colour.RGB{}, fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, b.Dx(), b.Dy())
	}

	window := image.Rect(px-radius, py-radius, px+radius+1, py+radius+1).Intersect(b)

	var sumR, sumG, sumB float64
	for wy := window.Min.Y; wy < window.Max.Y; wy++ {
		for wx := window.Min.X; wx < window.Max.X; wx++ {
			c := colour.ToRGB(img.At(wx, wy))
			sumR += float64(c.R)
			sumG += float64(c.G)
			sumB += float64(c.B)
		}
	}

	n := float64(window.Dx() * window.Dy())
	return colour.RGB{
		R: uint8(math.Round(sumR / n)),
		G: uint8(math.Round(sumG / n)),
		B: uint8(math.Round(sumB / n)),
	}, nil
}
