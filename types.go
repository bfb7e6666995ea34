package scanraster

import "github.com/scanraster/scanraster/internal/raster"

// FillRule selects how accumulated winding maps to "inside". Aliased
// from the internal raster package so callers never need to import
// it directly.
type FillRule = raster.FillRule

const (
	FillRuleNonZero = raster.FillRuleNonZero
	FillRuleEvenOdd = raster.FillRuleEvenOdd
)

// Blender is the capability a Fill call drives once per covered
// pixel. See RendererOption/WithBlenderFactory to supply one other
// than the reference BGRA8888 implementation.
type Blender = raster.Blender

// ErrCellStashOverflow is returned by Fill when the cell stash
// overflowed while accumulating the frame's geometry. The Renderer
// should be discarded afterward.
var ErrCellStashOverflow = raster.ErrCellStashOverflow
