package renderer

import (
	"image"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PixelBuffer is a row-major array of packed 32-bit RGBA pixels. Each byte
// lane holds one gamma-encoded 8-bit channel in R,G,B,A order with alpha
// always 0xFF. Workers write disjoint rows, so no synchronization is needed.
type PixelBuffer struct {
	Pix    []uint32
	Width  int
	Height int
}

// Display gamma for the final encode
const gamma = 2.2

// NewPixelBuffer allocates a width x height buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
}

// BytesPerRow returns the stride expected by the external image sink
func (pb *PixelBuffer) BytesPerRow() int {
	return pb.Width * 4
}

// Set packs a linear color into the pixel at (x, y): gamma encode, clamp,
// scale to [0, 255].
func (pb *PixelBuffer) Set(x, y int, color core.Vec3) {
	pb.Pix[y*pb.Width+x] = PackColor(color)
}

// At returns the packed pixel at (x, y)
func (pb *PixelBuffer) At(x, y int) uint32 {
	return pb.Pix[y*pb.Width+x]
}

// PackColor converts a linear color to a packed RGBA pixel
func PackColor(color core.Vec3) uint32 {
	encoded := color.Clamp(0.0, 1.0).GammaCorrect(gamma)
	r := uint32(math.Round(encoded.X * 255))
	g := uint32(math.Round(encoded.Y * 255))
	b := uint32(math.Round(encoded.Z * 255))
	return r<<24 | g<<16 | b<<8 | 0xFF
}

// ToRGBA copies the buffer into an image.RGBA for the encoding collaborator
func (pb *PixelBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			p := pb.Pix[y*pb.Width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(p >> 24)
			img.Pix[i+1] = uint8(p >> 16)
			img.Pix[i+2] = uint8(p >> 8)
			img.Pix[i+3] = uint8(p)
		}
	}
	return img
}
