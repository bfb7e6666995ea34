package scanraster

import "math"

// PathBuilder is a fluent convenience wrapper over Renderer's float
// API. Every method bottoms out in MoveTo/LineTo/BezierTo/
// CloseOutline — it adds no rasterization semantics of its own.
type PathBuilder struct {
	r *Renderer
}

// Build starts a path builder over an existing Renderer.
func Build(r *Renderer) *PathBuilder {
	return &PathBuilder{r: r}
}

func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.r.MoveTo(x, y)
	return b
}

func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.r.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic Bézier by degree-elevating it to the
// equivalent cubic (the Renderer only offers a cubic primitive).
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	x0, y0 := b.r.x, b.r.y
	c1x, c1y := x0+2.0/3.0*(cx-x0), y0+2.0/3.0*(cy-y0)
	c2x, c2y := x+2.0/3.0*(cx-x), y+2.0/3.0*(cy-y)
	b.r.BezierTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.r.BezierTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

func (b *PathBuilder) Close() *PathBuilder {
	b.r.CloseOutline()
	return b
}

// Rect adds an axis-aligned rectangle.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.r.MoveTo(x, y)
	b.r.LineTo(x+w, y)
	b.r.LineTo(x+w, y+h)
	b.r.LineTo(x, y+h)
	b.r.CloseOutline()
	return b
}

// kappaBezierCircle is the control-point distance, as a fraction of
// radius, that makes a single cubic Bézier approximate a circular
// quarter-arc: 4/3 * (sqrt(2) - 1), the constant that equalizes the
// arc's midpoint error for a 90° sweep.
const kappaBezierCircle = 4.0 / 3.0 * (math.Sqrt2 - 1)

// rotateCCW rotates a vector by +90°, (x, y) → (-y, x): counterclockwise
// in the usual y-up convention, which appears clockwise in this
// package's y-down coordinate system (+x maps to +y, i.e. downward).
func rotateCCW(x, y float64) (float64, float64) { return -y, x }

// arcQuadrant emits one quarter-ellipse Bézier arc around center
// (cx, cy) with radii (rx, ry): from the point rx,ry along unit
// direction (u1x, u1y) to the point along (u2x, u2y). u1 and u2 must
// be 90° apart; the pen must already be at the arc's start point
// (cx+u1x*rx, cy+u1y*ry). RoundRect's four rounded corners and
// Ellipse's four quadrants both reduce to a sequence of these, the
// only difference being whether rx == ry.
func (b *PathBuilder) arcQuadrant(cx, cy, rx, ry, u1x, u1y, u2x, u2y float64) {
	kx, ky := kappaBezierCircle*rx, kappaBezierCircle*ry
	p3x, p3y := cx+u2x*rx, cy+u2y*ry
	t1x, t1y := rotateCCW(u1x, u1y)
	t2x, t2y := rotateCCW(u2x, u2y)
	p0x, p0y := cx+u1x*rx, cy+u1y*ry
	b.r.BezierTo(p0x+t1x*kx, p0y+t1y*ky, p3x-t2x*kx, p3y-t2y*ky, p3x, p3y)
}

// RoundRect adds a rectangle with circular-arc corners of radius r.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	r = min(r, min(w, h)/2)

	b.r.MoveTo(x+r, y)
	b.r.LineTo(x+w-r, y)
	b.arcQuadrant(x+w-r, y+r, r, r, 0, -1, 1, 0)
	b.r.LineTo(x+w, y+h-r)
	b.arcQuadrant(x+w-r, y+h-r, r, r, 1, 0, 0, 1)
	b.r.LineTo(x+r, y+h)
	b.arcQuadrant(x+r, y+h-r, r, r, 0, 1, -1, 0)
	b.r.LineTo(x, y+r)
	b.arcQuadrant(x+r, y+r, r, r, -1, 0, 0, -1)
	b.r.CloseOutline()
	return b
}

// Circle adds a circle of radius r centered at (cx, cy).
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds an axis-aligned ellipse centered at (cx, cy), built
// from four quarter-arcs sweeping from the +x axis toward +y
// (clockwise on screen, since y points down).
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	dirs := [5][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 0}}

	b.r.MoveTo(cx+rx, cy)
	for i := 0; i < 4; i++ {
		u1, u2 := dirs[i], dirs[i+1]
		b.arcQuadrant(cx, cy, rx, ry, u1[0], u1[1], u2[0], u2[1])
	}
	b.r.CloseOutline()
	return b
}

// polarVertices walks n vertices spaced angleStep radians apart
// starting at startAngle, each placed radiusAt(i) from (cx, cy), and
// traces them as a closed polyline. Polygon and Star are both
// instances of this walk, differing only in how many vertices there
// are and whether the radius alternates.
func (b *PathBuilder) polarVertices(cx, cy, startAngle, angleStep float64, n int, radiusAt func(i int) float64) *PathBuilder {
	for i := 0; i < n; i++ {
		angle := startAngle + float64(i)*angleStep
		radius := radiusAt(i)
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			b.r.MoveTo(x, y)
		} else {
			b.r.LineTo(x, y)
		}
	}
	b.r.CloseOutline()
	return b
}

// Polygon adds a regular polygon with the given number of sides.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}
	return b.polarVertices(cx, cy, -math.Pi/2, 2*math.Pi/float64(sides), sides,
		func(int) float64 { return radius })
}

// Star adds a star shape with the given number of points, alternating
// between outerRadius and innerRadius at each of its 2*points vertices.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	if points < 3 {
		return b
	}
	return b.polarVertices(cx, cy, -math.Pi/2, math.Pi/float64(points), points*2,
		func(i int) float64 {
			if i%2 == 1 {
				return innerRadius
			}
			return outerRadius
		})
}

// Fill closes the path, sweeps it under rule, and composites src
// into the Renderer's image.
func (b *PathBuilder) Fill(rule FillRule, src RGBA) error {
	return b.r.Fill(rule, src)
}
