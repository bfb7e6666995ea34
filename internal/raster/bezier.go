package raster

import "math"

// CubicPoint is a 2-D point in float space, used at the Bézier
// subdivision boundary before coordinates are quantized to 24.8
// fixed point by the Rasterizer.
type CubicPoint struct {
	X, Y float64
}

// SubdivideCubic flattens a cubic Bézier (p0, p1, p2, p3) into a
// polyline and invokes lineTo once per sample point (excluding p0,
// which the caller already holds as its current pen position).
//
// The step count follows the chord-length heuristic: roughly one
// sample every 4 fixed-point pixel-units of travel along the
// control polygon, clamped to a minimum of 4 samples so that short,
// sharply curved segments are never under-sampled. This mirrors the
// evenly-spaced step-count heuristic used by this family of
// rasterizers (see also golang.org/x/image/vector's devSquared-driven
// subdivision) but
// follows the chord-length/4 formula exactly rather than a deviation
// threshold.
func SubdivideCubic(p0, p1, p2, p3 CubicPoint, lineTo func(x, y float64)) {
	d0x, d0y := p1.X-p0.X, p1.Y-p0.Y
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p3.X-p2.X, p3.Y-p2.Y

	chord := math.Abs(d0x) + math.Abs(d0y) + math.Abs(d1x) + math.Abs(d1y) + math.Abs(d2x) + math.Abs(d2y)
	if chord == 0 {
		return
	}

	n := int(math.Ceil(chord / 4))
	if n < 4 {
		n = 4
	}

	// Polynomial coefficients for p(t) = c0 + c1*t + c2*t^2 + c3*t^3.
	c0x, c0y := p0.X, p0.Y
	c1x, c1y := 3*(p1.X-p0.X), 3*(p1.Y-p0.Y)
	c2x, c2y := 3*p0.X-6*p1.X+3*p2.X, 3*p0.Y-6*p1.Y+3*p2.Y
	c3x, c3y := p3.X-3*p2.X+3*p1.X-p0.X, p3.Y-3*p2.Y+3*p1.Y-p0.Y

	dt := 1.0 / float64(n)

	// Forward-difference setup: evaluate p, Δp, Δ²p, Δ³p at t=0 so
	// each subsequent sample is three additions instead of a fresh
	// polynomial evaluation.
	fx, fy := c0x, c0y
	dfx := c1x*dt + c2x*dt*dt + c3x*dt*dt*dt
	dfy := c1y*dt + c2y*dt*dt + c3y*dt*dt*dt
	ddfx := 2*c2x*dt*dt + 6*c3x*dt*dt*dt
	ddfy := 2*c2y*dt*dt + 6*c3y*dt*dt*dt
	dddfx := 6 * c3x * dt * dt * dt
	dddfy := 6 * c3y * dt * dt * dt

	for i := 1; i <= n; i++ {
		fx += dfx
		fy += dfy
		dfx += ddfx
		dfy += ddfy
		ddfx += dddfx
		ddfy += dddfy

		if i == n {
			// Guard against float roundoff drift: the final sample
			// must land on p3 exactly so a following join starts
			// where this curve ends.
			lineTo(p3.X, p3.Y)
		} else {
			lineTo(fx, fy)
		}
	}
}
