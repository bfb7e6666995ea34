// Package raster implements an analytic, subpixel-accurate coverage
// rasterizer for 2-D vector paths: a path builder, a scanline cell
// accumulator, and a sweep that integrates accumulated cells into
// per-pixel coverage.
//
// Based on the classic signed-area scanline algorithm (FreeType /
// AGG / stb_truetype lineage): typed fixed-point values, a sparse
// per-row cell store, and a small capability interface at the
// pixel-output boundary instead of a monomorphized blender.
package raster

// Fixed24_8 is a signed 24.8 fixed-point value: 24 integer bits, 8
// fractional bits. One pixel is 256 units.
type Fixed24_8 int32

// Fixed24_8Shift is the number of fractional bits in Fixed24_8.
const Fixed24_8Shift = 8

// Fixed24_8One represents 1.0 in Fixed24_8 format (256).
const Fixed24_8One Fixed24_8 = 1 << Fixed24_8Shift

// Fixed24_8Mask extracts the fractional part of a Fixed24_8 value.
const Fixed24_8Mask = Fixed24_8One - 1

// ToFixed24_8 converts a float64 to 24.8 fixed point, rounding half
// away from zero.
func ToFixed24_8(x float64) Fixed24_8 {
	if x >= 0 {
		return Fixed24_8(x*float64(Fixed24_8One) + 0.5)
	}
	return Fixed24_8(x*float64(Fixed24_8One) - 0.5)
}

// ToFloat converts a Fixed24_8 value back to float64.
func ToFloat(x Fixed24_8) float64 {
	return float64(x) / float64(Fixed24_8One)
}

// Floor returns the integer pixel coordinate containing x (arithmetic
// shift, so it rounds toward negative infinity).
func (x Fixed24_8) Floor() int32 {
	return int32(x) >> Fixed24_8Shift
}

// Frac returns the fractional part of x in [0, 256).
func (x Fixed24_8) Frac() int32 {
	return int32(x) & int32(Fixed24_8Mask)
}

// Blend composites src over dst with coverage alpha (0..255) using the
// integer approximation to (src*alpha + dst*(255-alpha))/255 shared by
// this family of rasterizers: v = dst*256 - dst + alpha*(src-dst),
// result = (v + 1 + (v>>8)) >> 8.
func Blend(src, dst, alpha int32) int32 {
	v := (dst << 8) - dst + alpha*(src-dst)
	return (v + 1 + (v >> 8)) >> 8
}

// cellCoverageScale is the fixed-point domain compute_cell_coverage
// operates in before the final >>9 and ·255/256 fold: a full pixel's
// worth of (cover<<9) - area is 0x20000.
const cellCoverageScale = 0x20000

// ComputeCellCoverage folds a dense cell's accumulated (cover, area)
// into an 8-bit coverage value under the given fill rule.
func ComputeCellCoverage(cover, area int32, rule FillRule) uint8 {
	c := (cover << 9) - area
	if c < 0 {
		c = -c
	}

	switch rule {
	case FillRuleEvenOdd:
		c = foldEvenOdd(c, cellCoverageScale)
	default:
		if c > cellCoverageScale {
			c = cellCoverageScale
		}
	}

	c >>= 9 // now 0..0x100
	return uint8(((c << 8) - c) >> 8)
}

// foldEvenOdd folds c into [0, scale] using the even-odd triangle wave:
// values in the first "lap" pass through unchanged, values in the
// second lap are mirrored back down.
func foldEvenOdd(c, scale int32) int32 {
	period := scale << 1
	c &= period - 1
	if c > scale {
		c = period - c
	}
	return c
}

// midCoverage computes the coverage contributed by a gap cell — one
// with no stashed (cover, area) of its own — purely from the running
// cover accumulator, as if area were 0. This is compute_cell_coverage
// folded directly in the 0..0x100 domain instead of 0..0x20000, since
// a gap's "area" term is defined to be zero.
func midCoverage(cover int32, rule FillRule) uint8 {
	c := cover
	if c < 0 {
		c = -c
	}

	switch rule {
	case FillRuleEvenOdd:
		c = foldEvenOdd(c, 0x100)
	default:
		if c > 0x100 {
			c = 0x100
		}
	}

	return uint8(((c << 8) - c) >> 8)
}
