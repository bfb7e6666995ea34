package raster

// Rasterizer converts a path described by straight line segments
// (after curve flattening) into per-pixel cover/area contributions
// pushed into a CellProcessor. It holds only the current pen
// position and the origin of the current subpath; it carries no
// output state of its own.
type Rasterizer struct {
	pen    point
	origin point
}

type point struct {
	x, y Fixed24_8
}

// Reset clears the pen and subpath origin.
func (r *Rasterizer) Reset() {
	r.pen = point{}
	r.origin = point{}
}

// MoveTo closes the current subpath (by lining back to its origin,
// contributing whatever cover that implies) and starts a new one at
// (x, y).
func (r *Rasterizer) MoveTo(cp *CellProcessor, x, y Fixed24_8) {
	addLine(cp, r.pen.x, r.pen.y, r.origin.x, r.origin.y)
	r.pen = point{x, y}
	r.origin = point{x, y}
}

// LineTo adds a straight segment from the current pen to (x, y).
func (r *Rasterizer) LineTo(cp *CellProcessor, x, y Fixed24_8) {
	addLine(cp, r.pen.x, r.pen.y, x, y)
	r.pen = point{x, y}
}

// Close lines back to the current subpath's origin.
func (r *Rasterizer) Close(cp *CellProcessor) {
	r.LineTo(cp, r.origin.x, r.origin.y)
}

const (
	fixedOne  = int32(Fixed24_8One)
	fixedMask = int32(Fixed24_8Mask)
)

// addLine decomposes one straight segment into cover/area
// contributions. Horizontal segments contribute nothing (cover nets
// to zero); vertical segments use a dedicated single-column walk;
// everything else walks one scanline row at a time, and within each
// row walks one pixel cell at a time, both via incremental integer
// DDA so no segment-length division happens more than once per row
// or per cell.
func addLine(cp *CellProcessor, x1, y1, x2, y2 Fixed24_8) {
	dy := int32(y2 - y1)
	if dy == 0 {
		return
	}

	dx := int32(x2 - x1)
	if dx == 0 {
		addVerticalLine(cp, x1, y1, y2)
		return
	}

	ey1 := int32(y1) >> Fixed24_8Shift
	ey2 := int32(y2) >> Fixed24_8Shift
	fy1 := int32(y1) & fixedMask
	fy2 := int32(y2) & fixedMask

	if ey1 == ey2 {
		renderHLine(cp, ey1, int32(x1), fy1, int32(x2), fy2)
		return
	}

	incr := int32(1)
	first := fixedOne
	p := int64(fixedOne-fy1) * int64(dx)
	if dy < 0 {
		p = int64(fy1) * int64(dx)
		first = 0
		incr = -1
		dy = -dy
	}

	delta := int32(floorDiv(p, int64(dy)))
	mod := p - int64(delta)*int64(dy)

	xFrom := int32(x1) + delta
	renderHLine(cp, ey1, int32(x1), fy1, xFrom, first)
	ey1 += incr

	if ey1 != ey2 {
		p = int64(fixedOne) * int64(dx)
		lift := floorDiv(p, int64(dy))
		rem := p - lift*int64(dy)
		mod -= int64(dy)

		for ey1 != ey2 {
			d := lift
			mod += rem
			if mod >= 0 {
				mod -= int64(dy)
				d++
			}

			xTo := xFrom + int32(d)
			renderHLine(cp, ey1, xFrom, fixedOne-first, xTo, first)
			xFrom = xTo
			ey1 += incr
		}
	}

	renderHLine(cp, ey1, xFrom, fixedOne-first, int32(x2), fy2)
}

// floorDiv performs a division rounded toward negative infinity,
// which is what the incremental DDA's remainder bookkeeping assumes.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// addVerticalLine handles segments with no horizontal movement: every
// crossed pixel lies in a single column, so only cover/area for that
// column need to be produced, row by row.
func addVerticalLine(cp *CellProcessor, x, y1, y2 Fixed24_8) {
	ex := int32(x) >> Fixed24_8Shift
	twoFracX := (int32(x) & fixedMask) << 1

	ey1 := int32(y1) >> Fixed24_8Shift
	ey2 := int32(y2) >> Fixed24_8Shift
	fy1 := int32(y1) & fixedMask
	fy2 := int32(y2) & fixedMask

	cp.SetX(ex)

	if ey1 == ey2 {
		delta := fy2 - fy1
		cp.SetY(ey1)
		cp.SetCell(delta, twoFracX*delta)
		return
	}

	first := fixedOne
	incr := int32(1)
	if y2 < y1 {
		first = 0
		incr = -1
	}

	delta := first - fy1
	cp.SetY(ey1)
	cp.SetCell(delta, twoFracX*delta)
	ey1 += incr

	if ey1 != ey2 {
		delta = first + first - fixedOne
		area := twoFracX * delta
		for ey1 != ey2 {
			cp.SetY(ey1)
			cp.SetCell(delta, area)
			ey1 += incr
		}
	}

	delta = fy2 - fixedOne + first
	cp.SetY(ey1)
	cp.SetCell(delta, twoFracX*delta)
}

// renderHLine decomposes the portion of a segment crossing a single
// scanline row into per-cell cover/area contributions. x1/x2 are full
// 24.8 x-coordinates; y1/y2 are the row-local fractional y positions
// (each in [0, 256]) where the segment enters and exits this row —
// their difference is this row's total signed cover.
func renderHLine(cp *CellProcessor, ey, x1, y1, x2, y2 int32) {
	ex1 := x1 >> Fixed24_8Shift
	ex2 := x2 >> Fixed24_8Shift
	fx1 := x1 & fixedMask
	fx2 := x2 & fixedMask

	cp.SetY(ey)
	cp.SetX(ex1)

	if y1 == y2 {
		cp.SetX(ex2)
		return
	}

	if ex1 == ex2 {
		delta := y2 - y1
		cp.SetCell(delta, (fx1+fx2)*delta)
		return
	}

	dx := int64(x2 - x1)
	incr := int32(1)
	first := fixedOne
	p := int64(fixedOne-fx1) * int64(y2-y1)

	if dx < 0 {
		p = int64(fx1) * int64(y2-y1)
		first = 0
		incr = -1
		dx = -dx
	}

	delta := int32(floorDiv(p, dx))
	mod := p - int64(delta)*dx

	cp.SetCell(delta, (fx1+first)*delta)
	y1 += delta
	ex1 += incr
	if incr == 1 {
		cp.IncX()
	} else {
		cp.SetX(ex1)
	}

	if ex1 != ex2 {
		p = int64(fixedOne) * int64(y2-y1+delta)
		lift := floorDiv(p, dx)
		rem := p - lift*dx
		mod -= dx

		for ex1 != ex2 {
			d := lift
			mod += rem
			if mod >= 0 {
				mod -= dx
				d++
			}

			delta = int32(d)
			cp.SetCell(delta, fixedOne*delta)
			y1 += delta
			ex1 += incr
			if incr == 1 {
				cp.IncX()
			} else {
				cp.SetX(ex1)
			}
		}
	}

	delta = y2 - y1
	cp.SetCell(delta, (fx2+fixedOne-first)*delta)
}
