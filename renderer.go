package scanraster

import (
	"github.com/scanraster/scanraster/internal/raster"
	"golang.org/x/image/math/fixed"
)

// Renderer is the facade over the rasterizer core: it tracks the
// current pen and subpath origin in float coordinates, owns a
// Rasterizer and a CellProcessor sized to its canvas, and drives a
// Blender once per Fill call.
type Renderer struct {
	width, height int

	x, y   float64
	x0, y0 float64

	rasterizer raster.Rasterizer
	cells      *raster.CellProcessor

	img            *Image
	blenderFactory BlenderFactory

	inFill bool
}

// NewRenderer constructs a Renderer for a width×height canvas. width
// and height must each be in (0, 65535]; anything else is a
// programmer error.
func NewRenderer(width, height int, opts ...RendererOption) *Renderer {
	if width <= 0 || height <= 0 || width > 65535 || height > 65535 {
		panic("scanraster: renderer dimensions out of range")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.img == nil {
		o.img = NewImage(width, height)
	}
	if o.blenderFactory == nil {
		o.blenderFactory = func(img *Image, src RGBA) Blender {
			return NewRGBABlender(img, src)
		}
	}

	return &Renderer{
		width:          width,
		height:         height,
		cells:          raster.NewCellProcessor(int32(width), int32(height)),
		img:            o.img,
		blenderFactory: o.blenderFactory,
	}
}

// Image returns the render target this Renderer composites into.
func (r *Renderer) Image() *Image { return r.img }

func (r *Renderer) guardReentrance() {
	if r.inFill {
		panic("scanraster: renderer re-entered from a blender callback")
	}
}

// MoveTo closes the current subpath and starts a new one at (x, y).
func (r *Renderer) MoveTo(x, y float64) {
	r.guardReentrance()
	r.rasterizer.MoveTo(r.cells, raster.ToFixed24_8(x), raster.ToFixed24_8(y))
	r.x, r.y = x, y
	r.x0, r.y0 = x, y
}

// LineTo adds a straight segment from the current pen to (x, y).
func (r *Renderer) LineTo(x, y float64) {
	r.guardReentrance()
	r.rasterizer.LineTo(r.cells, raster.ToFixed24_8(x), raster.ToFixed24_8(y))
	r.x, r.y = x, y
}

// BezierTo adds a cubic Bézier from the current pen through two
// control points to (x3, y3), flattened into line segments.
func (r *Renderer) BezierTo(x1, y1, x2, y2, x3, y3 float64) {
	r.guardReentrance()
	p0 := raster.CubicPoint{X: r.x, Y: r.y}
	p1 := raster.CubicPoint{X: x1, Y: y1}
	p2 := raster.CubicPoint{X: x2, Y: y2}
	p3 := raster.CubicPoint{X: x3, Y: y3}

	raster.SubdivideCubic(p0, p1, p2, p3, func(x, y float64) {
		r.rasterizer.LineTo(r.cells, raster.ToFixed24_8(x), raster.ToFixed24_8(y))
	})
	r.x, r.y = x3, y3
}

// CloseOutline lines back to the current subpath's origin.
func (r *Renderer) CloseOutline() {
	r.guardReentrance()
	r.rasterizer.Close(r.cells)
	r.x, r.y = r.x0, r.y0
}

// MoveToFixed is MoveTo for callers already working in
// golang.org/x/image/math/fixed.Int26_6 coordinates, as glyph
// outlines (golang.org/x/image/font/sfnt, opentype) are expressed in.
func (r *Renderer) MoveToFixed(p fixed.Point26_6) {
	r.MoveTo(x26_6ToFloat(p.X), x26_6ToFloat(p.Y))
}

// LineToFixed is LineTo for fixed.Int26_6 coordinates.
func (r *Renderer) LineToFixed(p fixed.Point26_6) {
	r.LineTo(x26_6ToFloat(p.X), x26_6ToFloat(p.Y))
}

// CubicToFixed is BezierTo for fixed.Int26_6 coordinates.
func (r *Renderer) CubicToFixed(c1, c2, p fixed.Point26_6) {
	r.BezierTo(x26_6ToFloat(c1.X), x26_6ToFloat(c1.Y), x26_6ToFloat(c2.X), x26_6ToFloat(c2.Y), x26_6ToFloat(p.X), x26_6ToFloat(p.Y))
}

func x26_6ToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Fill implicitly closes the current subpath, sweeps the accumulated
// cells under the given fill rule, and composites src into the
// render target wherever coverage is non-zero. The Renderer's path
// state is reset afterward, ready for the next outline.
func (r *Renderer) Fill(rule FillRule, src RGBA) error {
	r.guardReentrance()
	r.rasterizer.Close(r.cells)

	blender := r.blenderFactory(r.img, src)

	r.inFill = true
	err := r.cells.Sweep(blender, rule)
	r.inFill = false

	r.rasterizer.Reset()
	r.x, r.y, r.x0, r.y0 = 0, 0, 0, 0
	return err
}
