package raster

import "errors"

// ErrCellStashOverflow is reported by Sweep when accumulating cells
// for the frame required growing the stash past its maximum
// addressable size (2^32-1 entries — the top value is reserved as
// the "no cell" sentinel). The processor's row bookkeeping may be
// left partially populated; callers should discard the owning
// Renderer rather than attempt to reuse it.
var ErrCellStashOverflow = errors.New("scanraster: cell stash overflow")

// noCell is the sentinel arena index meaning "no cell" — the highest
// representable uint32, never a valid allocated index.
const noCell = ^uint32(0)

type cell struct {
	x           int32
	cover, area int32
	next        uint32
}

type row struct {
	head       uint32
	leftCover  int32
	xMin, xMax int32
	hasRange   bool
}

// CellProcessor accumulates signed cover/area contributions emitted
// by a Rasterizer into a sparse per-row cell store, then sweeps them
// into per-pixel coverage values driven into a Blender.
type CellProcessor struct {
	width, height int32

	rows  []row
	arena []cell
	inUse uint32

	curX, curY int32
	yMin, yMax int32
	hasYRange  bool

	overflow bool

	// scratch is the dense per-row working array reused across
	// sweeps, sized to the largest x_range ever observed.
	scratch []cell
}

// NewCellProcessor constructs a processor for a canvas of the given
// size. width == 0 or height == 0 is accepted and yields a degenerate
// processor whose Sweep is always a no-op; dimensions outside
// [0, 65535] are a programmer error.
func NewCellProcessor(width, height int32) *CellProcessor {
	if width < 0 || height < 0 || width > 65535 || height > 65535 {
		panic("scanraster: cell processor dimensions out of range")
	}

	cp := &CellProcessor{width: width, height: height}
	if height > 0 {
		cp.rows = make([]row, height)
		for i := range cp.rows {
			cp.rows[i].head = noCell
		}
	}
	return cp
}

// SetY sets the row the next SetCell calls apply to.
func (cp *CellProcessor) SetY(y int32) { cp.curY = y }

// SetX sets the column the next SetCell call applies to.
func (cp *CellProcessor) SetX(x int32) { cp.curX = x }

// IncX advances the current column by one. Equivalent to
// SetX(current+1) but avoids a redundant store on the hot path.
func (cp *CellProcessor) IncX() { cp.curX++ }

func (cp *CellProcessor) updateRowXRange(r *row, x int32) {
	if !r.hasRange {
		r.xMin, r.xMax = x, x
		r.hasRange = true
		return
	}
	if x < r.xMin {
		r.xMin = x
	}
	if x > r.xMax {
		r.xMax = x
	}
}

func (cp *CellProcessor) updateYRange(y int32) {
	if !cp.hasYRange {
		cp.yMin, cp.yMax = y, y
		cp.hasYRange = true
		return
	}
	if y < cp.yMin {
		cp.yMin = y
	}
	if y > cp.yMax {
		cp.yMax = y
	}
}

// SetCell is the single ingestion point for a (cover, area)
// contribution at the current (x, y). Segments outside the viewport
// in y are dropped silently; x < 0 folds into the row's left_cover;
// x >= width updates only the row's x_range (the cover contribution
// is discarded, per the accepted right-edge-clipping limitation).
func (cp *CellProcessor) SetCell(cover, area int32) {
	y := cp.curY
	if y < 0 || y >= cp.height {
		return
	}

	x := cp.curX
	cp.updateYRange(y)
	r := &cp.rows[y]

	switch {
	case x < 0:
		r.leftCover += cover
		cp.updateRowXRange(r, 0)
	case x >= cp.width:
		cp.updateRowXRange(r, cp.width-1)
	default:
		cp.updateRowXRange(r, x)
		if r.head != noCell && cp.arena[r.head].x == x {
			cp.arena[r.head].cover += cover
			cp.arena[r.head].area += area
			return
		}
		idx, ok := cp.allocCell()
		if !ok {
			cp.overflow = true
			return
		}
		cp.arena[idx] = cell{x: x, cover: cover, area: area, next: r.head}
		r.head = idx
	}
}

func (cp *CellProcessor) allocCell() (uint32, bool) {
	if cp.inUse >= noCell {
		return 0, false
	}
	if uint32(len(cp.arena)) <= cp.inUse {
		if !cp.growArena() {
			return 0, false
		}
	}
	idx := cp.inUse
	cp.inUse++
	return idx, true
}

// growArena applies the stash's amortized growth policy: +4 entries
// while small, then +25%, never growing past the sentinel value.
func (cp *CellProcessor) growArena() bool {
	cur := uint32(len(cp.arena))
	var next uint32
	if cur < 20 {
		next = cur + 4
	} else {
		next = cur + cur/4
	}
	if next <= cur || next >= noCell {
		next = noCell - 1
	}
	if next <= cur {
		return false
	}

	grown := make([]cell, next)
	copy(grown, cp.arena)
	cp.arena = grown

	if ratio := float64(cp.inUse) / float64(noCell); ratio > 0.5 {
		Logger().Warn("scanraster: cell stash nearing capacity", "in_use", cp.inUse, "capacity", next)
	} else {
		Logger().Debug("scanraster: cell stash grew", "capacity", next)
	}
	return true
}

func (cp *CellProcessor) ensureScratch(n int32) []cell {
	if int32(len(cp.scratch)) < n {
		cp.scratch = make([]cell, n)
	}
	s := cp.scratch[:n]
	for i := range s {
		s[i] = cell{}
	}
	return s
}

// Sweep integrates every accumulated row into per-pixel coverage and
// drives blender with the result, then resets all per-frame state
// (row bookkeeping and the cell stash's high-water mark) in place.
// It reports ErrCellStashOverflow if accumulating this frame's cells
// overflowed the stash; in that case no blender calls are made and
// the owning Renderer should be discarded.
func (cp *CellProcessor) Sweep(blender Blender, rule FillRule) error {
	if rule != FillRuleNonZero && rule != FillRuleEvenOdd {
		panic("scanraster: unrecognized fill rule")
	}

	if cp.overflow {
		cp.overflow = false
		cp.resetFrame()
		return ErrCellStashOverflow
	}

	if cp.height == 0 || cp.width == 0 || !cp.hasYRange {
		cp.resetFrame()
		return nil
	}

	for y := cp.yMin; y <= cp.yMax; y++ {
		cp.sweepRow(y, blender, rule)
		if y < cp.yMax {
			blender.IncY()
		}
	}

	cp.resetFrame()
	return nil
}

func (cp *CellProcessor) sweepRow(y int32, blender Blender, rule FillRule) {
	r := &cp.rows[y]
	if !r.hasRange {
		return
	}

	xMin, xMax := r.xMin, r.xMax
	width := xMax - xMin + 1
	dense := cp.ensureScratch(width)

	for idx := r.head; idx != noCell; idx = cp.arena[idx].next {
		src := &cp.arena[idx]
		slot := &dense[src.x-xMin]
		slot.cover += src.cover
		slot.area += src.area
	}

	blender.SetY(y)
	blender.SetX(xMin)

	cover := r.leftCover
	var midCov uint8
	haveMid := false

	for x := xMin; x <= xMax; x++ {
		slot := &dense[x-xMin]
		var coverage uint8

		if slot.cover != 0 || slot.area != 0 {
			cover += slot.cover
			coverage = ComputeCellCoverage(cover, slot.area, rule)
			haveMid = false
		} else {
			if !haveMid {
				midCov = midCoverage(cover, rule)
				haveMid = true
			}
			coverage = midCov
		}

		if coverage > 0 {
			blender.Blend(coverage)
		}

		if x < xMax {
			blender.IncX()
		}
	}

	r.head = noCell
	r.leftCover = 0
	r.hasRange = false
}

// resetFrame clears per-frame bookkeeping (y_range and the stash
// high-water mark) while preserving arena capacity for reuse.
func (cp *CellProcessor) resetFrame() {
	cp.hasYRange = false
	cp.yMin, cp.yMax = 0, 0
	cp.inUse = 0
}
