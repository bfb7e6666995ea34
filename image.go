package scanraster

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Image is a BGRA8888 pixel buffer: the reference render target this
// module composites into. It is deliberately minimal — pixel format
// conversion, resizing, and presentation are the caller's concern —
// existing mainly so the test scenarios in this package have
// something concrete to assert against and dump to disk.
type Image struct {
	width, height int
	stride        int
	pix           []uint8 // B, G, R, A per pixel
}

// NewImage allocates a zeroed (fully transparent) width×height BGRA8888 buffer.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		stride: width * 4,
		pix:    make([]uint8, width*height*4),
	}
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

// Pix returns the raw BGRA8888 buffer.
func (img *Image) Pix() []uint8 { return img.pix }

// Stride returns the number of bytes per row.
func (img *Image) Stride() int { return img.stride }

// PixelAt returns the BGRA8888 bytes at (x, y) as (b, g, r, a).
func (img *Image) PixelAt(x, y int) (b, g, r, a uint8) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return 0, 0, 0, 0
	}
	i := y*img.stride + x*4
	return img.pix[i], img.pix[i+1], img.pix[i+2], img.pix[i+3]
}

// At implements image.Image. The reference Blender (see blender.go)
// accumulates alpha-premultiplied color in pix — a fractionally
// covered pixel's stored R/G/B are already scaled by its stored A —
// so this returns color.RGBA (the standard library's premultiplied
// type), not color.NRGBA: decoding these bytes as straight color
// would under-saturate every anti-aliased edge pixel.
func (img *Image) At(x, y int) color.Color {
	b, g, r, a := img.PixelAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// CompositeOnto draws img over dst with its top-left corner placed at
// sp, using the standard library's Porter-Duff Over operator. This is
// the seam between this package's BGRA8888 buffer and a caller's own
// *image.RGBA (or any other draw.Image) when a Renderer's output is
// one layer in a larger composition rather than the final target.
func (img *Image) CompositeOnto(dst draw.Image, sp image.Point) {
	r := image.Rectangle{Min: sp, Max: sp.Add(img.Bounds().Size())}
	draw.Draw(dst, r, img, image.Point{}, draw.Over)
}

// SaveToPNG dumps the image for manual inspection of test fixtures.
func (img *Image) SaveToPNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, img)
}
