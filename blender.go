package scanraster

import "github.com/scanraster/scanraster/internal/raster"

// RGBABlender is the reference Blender implementation: it composites
// one solid, pre-split source color into an *Image, channel by
// channel, using the integer blend approximation from the raster
// package. A new RGBABlender is constructed per fill call, so it
// carries the source color and nothing else persists across fills.
type RGBABlender struct {
	img *Image

	rowOffset int
	pixOffset int

	srcA, srcR, srcG, srcB int32 // 0..255, straight (non-premultiplied)
}

// NewRGBABlender returns a Blender that paints src (straight alpha)
// into img wherever Sweep finds non-zero coverage. The per-channel
// lerp in Blend takes the source's straight (non-premultiplied) color
// and an effective alpha that already folds in src.A and coverage;
// premultiplying src.R/G/B up front would double-attenuate by src.A.
func NewRGBABlender(img *Image, src RGBA) *RGBABlender {
	return &RGBABlender{
		img:  img,
		srcA: channel8(src.A),
		srcR: channel8(src.R),
		srcG: channel8(src.G),
		srcB: channel8(src.B),
	}
}

// channel8 scales a [0,1] channel to 0..255, clamping out-of-range
// inputs rather than letting them wrap through the uint8 stores below.
func channel8(x float64) int32 {
	v := int32(x*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

var _ raster.Blender = (*RGBABlender)(nil)

func (b *RGBABlender) SetY(y int32) {
	b.rowOffset = int(y) * b.img.stride
	b.pixOffset = b.rowOffset
}

func (b *RGBABlender) SetX(x int32) {
	b.pixOffset = b.rowOffset + int(x)*4
}

func (b *RGBABlender) IncX() { b.pixOffset += 4 }

func (b *RGBABlender) IncY() {
	b.rowOffset += b.img.stride
	b.pixOffset = b.rowOffset
}

// Blend composites the blender's source color into the current pixel
// at the given coverage, which sweep guarantees is in (0, 255].
func (b *RGBABlender) Blend(coverage uint8) {
	if coverage == 255 && b.srcA == 255 {
		px := b.img.pix[b.pixOffset : b.pixOffset+4 : b.pixOffset+4]
		px[0], px[1], px[2], px[3] = uint8(b.srcB), uint8(b.srcG), uint8(b.srcR), 255
		return
	}

	v := int32(coverage) * b.srcA
	effAlpha := (v + 1 + (v >> 8)) >> 8

	px := b.img.pix[b.pixOffset : b.pixOffset+4 : b.pixOffset+4]
	px[0] = uint8(raster.Blend(b.srcB, int32(px[0]), effAlpha))
	px[1] = uint8(raster.Blend(b.srcG, int32(px[1]), effAlpha))
	px[2] = uint8(raster.Blend(b.srcR, int32(px[2]), effAlpha))
	px[3] = uint8(raster.Blend(255, int32(px[3]), effAlpha))
}
