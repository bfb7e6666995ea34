package raster

// Blender is the capability Sweep drives once per pixel touched by a
// filled path. Within one row calls happen in the order SetY, SetX,
// then an interleaving of Blend/IncX (a row ends on IncX when its
// last pixel has zero coverage); IncY (or a fresh SetY) separates
// rows. Sweep never calls Blend with a zero
// coverage, and never retains the Blender past the call to Sweep.
//
// A plain interface, not a generic parameter: this mirrors the
// blitter-capability pattern used elsewhere in this rasterizer family
// (hairline and curve edge blitters dispatched through an interface
// rather than monomorphized per pixel format), which keeps Sweep
// independent of any particular pixel layout.
type Blender interface {
	SetY(y int32)
	SetX(x int32)
	Blend(coverage uint8)
	IncX()
	IncY()
}
