// Package scanraster implements an analytic, subpixel-accurate
// coverage rasterizer for 2D vector paths.
//
// # Overview
//
// Given a sequence of path commands (move-to, line-to, cubic Bézier,
// close) in floating-point coordinates, a Renderer produces exact
// per-pixel alpha coverage and composites a solid color into a
// render target under a selected fill rule.
//
// # Quick Start
//
//	r := scanraster.NewRenderer(512, 512)
//	r.MoveTo(10, 32)
//	r.BezierTo(10, 10, 54, 10, 54, 32)
//	r.LineTo(10, 32)
//	if err := r.Fill(scanraster.FillRuleNonZero, scanraster.Blue); err != nil {
//		// handle cell-stash overflow
//	}
//	r.Image().SaveToPNG("output.png")
//
// # Architecture
//
//   - Public API: Renderer, RGBA, Image, RGBABlender
//   - Internal: raster (Rasterizer, CellProcessor, Bézier subdivider, fixed point)
//
// # Coordinate system
//
// +x right, +y down, origin at the top-left of pixel (0,0). Pixel
// (i,j) occupies the unit square [i,i+1) × [j,j+1).
package scanraster
