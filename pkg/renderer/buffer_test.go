package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPackColor_GammaAndClamp(t *testing.T) {
	tests := []struct {
		name  string
		color core.Vec3
	}{
		{"black", core.NewVec3(0, 0, 0)},
		{"white", core.NewVec3(1, 1, 1)},
		{"mid gray", core.NewVec3(0.5, 0.5, 0.5)},
		{"mixed", core.NewVec3(0.25, 0.5, 0.75)},
		{"over-range clamps", core.NewVec3(1.5, 2.0, -0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := PackColor(tt.color)

			clamped := tt.color.Clamp(0, 1)
			for i, c := range []float64{clamped.X, clamped.Y, clamped.Z} {
				expected := uint32(math.Round(math.Pow(c, 1.0/2.2) * 255))
				got := (packed >> (24 - 8*i)) & 0xFF
				if got != expected {
					t.Errorf("Channel %d: expected %d, got %d", i, expected, got)
				}
			}
			if packed&0xFF != 0xFF {
				t.Errorf("Expected full alpha, got 0x%02X", packed&0xFF)
			}
		})
	}
}

func TestPixelBuffer_SetAndAt(t *testing.T) {
	pb := NewPixelBuffer(4, 2)

	if pb.BytesPerRow() != 16 {
		t.Errorf("Expected bytes per row 16, got %d", pb.BytesPerRow())
	}
	if len(pb.Pix) != 8 {
		t.Errorf("Expected 8 pixels, got %d", len(pb.Pix))
	}

	pb.Set(3, 1, core.NewVec3(1, 0, 0))
	packed := pb.At(3, 1)
	if packed != PackColor(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected packed red pixel, got 0x%08X", packed)
	}
	// Row-major layout: (3, 1) is the final element
	if pb.Pix[7] != packed {
		t.Error("Expected pixel stored at row-major index 7")
	}
}

func TestPixelBuffer_ToRGBA(t *testing.T) {
	pb := NewPixelBuffer(2, 2)
	pb.Set(0, 0, core.NewVec3(1, 0, 0))
	pb.Set(1, 1, core.NewVec3(0, 0, 1))

	img := pb.ToRGBA()

	r, _, _, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || a>>8 != 255 {
		t.Errorf("Expected saturated red with full alpha at (0,0), got r=%d a=%d", r>>8, a>>8)
	}
	_, _, b, _ := img.At(1, 1).RGBA()
	if b>>8 != 255 {
		t.Errorf("Expected saturated blue at (1,1), got b=%d", b>>8)
	}
}
