package outline

import (
	"math"
	"sort"
)

// Geometric primitives for the outline model. The parametric forms and
// extrema logic follow kurbo-style curve math; signed areas use the
// closed-form Green's theorem integrals so winding and area queries do
// not depend on flattening tolerance.

// Rect is an axis-aligned rectangle, Min <= Max in both components.
type Rect struct {
	Min, Max Coordinate
}

// NewRect builds a rectangle from two corner points in any order.
func NewRect(p, q Coordinate) Rect {
	return Rect{
		Min: Coordinate{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)},
		Max: Coordinate{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)},
	}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Coordinate{X: math.Min(r.Min.X, s.Min.X), Y: math.Min(r.Min.Y, s.Min.Y)},
		Max: Coordinate{X: math.Max(r.Max.X, s.Max.X), Y: math.Max(r.Max.Y, s.Max.Y)},
	}
}

// Expand returns r grown to contain p.
func (r Rect) Expand(p Coordinate) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Contains reports whether p lies inside or on the edge of r.
func (r Rect) Contains(p Coordinate) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// -------------------------------------------------------------------
// LineSeg
// -------------------------------------------------------------------

// LineSeg is a straight segment from P0 to P1.
type LineSeg struct {
	P0, P1 Coordinate
}

// Eval evaluates the line at parameter t in [0, 1].
func (l LineSeg) Eval(t float64) Coordinate {
	return l.P0.Lerp(l.P1, t)
}

// BoundingBox returns the axis-aligned bounding box of the segment.
func (l LineSeg) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// SignedArea returns the area between the segment and the origin per
// Green's theorem; summed over a closed loop it yields the loop's signed
// area.
func (l LineSeg) SignedArea() float64 {
	return l.P0.Cross(l.P1) * 0.5
}

// -------------------------------------------------------------------
// QuadBez
// -------------------------------------------------------------------

// QuadBez is a quadratic bezier with control point P1.
type QuadBez struct {
	P0, P1, P2 Coordinate
}

// Eval evaluates the curve at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Coordinate {
	mt := 1 - t
	return Coordinate{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Extrema returns the parameters in (0, 1) where the derivative of x(t)
// or y(t) vanishes, in ascending order.
func (q QuadBez) Extrema() []float64 {
	// The derivative is linear: 2[(P1-P0) + t(P2-2P1+P0)].
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	var ts []float64
	if dd := d1.X - d0.X; dd != 0 {
		if t := -d0.X / dd; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	if dd := d1.Y - d0.Y; dd != 0 {
		if t := -d0.Y / dd; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	sort.Float64s(ts)
	return ts
}

// BoundingBox returns the tight axis-aligned bounding box of the curve,
// accounting for interior extrema.
func (q QuadBez) BoundingBox() Rect {
	box := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		box = box.Expand(q.Eval(t))
	}
	return box
}

// SignedArea returns the Green's theorem area integral for the curve.
func (q QuadBez) SignedArea() float64 {
	v := q.P0.X*(2*q.P1.Y+q.P2.Y) +
		2*q.P1.X*(q.P2.Y-q.P0.Y) -
		q.P2.X*(q.P0.Y+2*q.P1.Y)
	return v / 6
}

// Raise elevates the quadratic to an exactly equivalent cubic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez
// -------------------------------------------------------------------

// CubicBez is a cubic bezier with control points P1 and P2.
type CubicBez struct {
	P0, P1, P2, P3 Coordinate
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Coordinate {
	mt := 1 - t
	mt2, t2 := mt*mt, t*t
	return Coordinate{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Extrema returns the parameters in (0, 1) where the derivative of x(t)
// or y(t) vanishes, in ascending order.
func (c CubicBez) Extrema() []float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	ts := make([]float64, 0, 4)
	// x'(t) and y'(t) are quadratics in t.
	ts = append(ts, unitRoots(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	ts = append(ts, unitRoots(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	sort.Float64s(ts)
	return ts
}

// BoundingBox returns the tight axis-aligned bounding box of the curve,
// accounting for interior extrema.
func (c CubicBez) BoundingBox() Rect {
	box := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		box = box.Expand(c.Eval(t))
	}
	return box
}

// SignedArea returns the Green's theorem area integral for the curve.
func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6*c.P1.Y+3*c.P2.Y+c.P3.Y) +
		3*(c.P1.X*(-2*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3*c.P1.Y+6*c.P2.Y)
	return v / 20
}

// -------------------------------------------------------------------
// Quadratic splines
// -------------------------------------------------------------------

// quadSpline expands a TrueType-style quadratic run (one on-curve start,
// n off-curve controls, one on-curve end) into individual quadratics.
// For n > 1 the on-curve points between consecutive controls are implied
// at their midpoints.
func quadSpline(start Coordinate, controls []Coordinate, end Coordinate) []QuadBez {
	if len(controls) == 0 {
		return nil
	}
	quads := make([]QuadBez, 0, len(controls))
	p0 := start
	for i, ctrl := range controls {
		var p2 Coordinate
		if i == len(controls)-1 {
			p2 = end
		} else {
			p2 = ctrl.Midpoint(controls[i+1])
		}
		quads = append(quads, QuadBez{P0: p0, P1: ctrl, P2: p2})
		p0 = p2
	}
	return quads
}

// -------------------------------------------------------------------
// Root finding
// -------------------------------------------------------------------

// unitRoots returns the real roots of a*t^2 + b*t + c = 0 that lie
// strictly inside (0, 1). The linear and constant degenerations are
// handled so callers can pass raw derivative coefficients.
func unitRoots(a, b, c float64) []float64 {
	const eps = 1e-12
	var roots []float64
	if math.Abs(a) < eps {
		if math.Abs(b) >= eps {
			roots = append(roots, -c/b)
		}
	} else {
		disc := b*b - 4*a*c
		switch {
		case disc < 0:
		case disc == 0:
			roots = append(roots, -b/(2*a))
		default:
			// Numerically stable form: the large-magnitude root first,
			// the second via Vieta.
			q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
			roots = append(roots, q/a)
			if q != 0 {
				roots = append(roots, c/q)
			}
		}
	}
	out := roots[:0]
	for _, t := range roots {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

// -------------------------------------------------------------------
// Flattening
// -------------------------------------------------------------------

// flattenSteps is the uniform subdivision count used when converting a
// curved segment to a polyline for containment tests and rasterization.
// Sixteen steps keeps the polyline within a small fraction of a font
// unit for typical glyph arcs.
const flattenSteps = 16

func flattenQuad(q QuadBez, out []Coordinate) []Coordinate {
	for i := 1; i <= flattenSteps; i++ {
		out = append(out, q.Eval(float64(i)/flattenSteps))
	}
	return out
}

func flattenCubic(c CubicBez, out []Coordinate) []Coordinate {
	for i := 1; i <= flattenSteps; i++ {
		out = append(out, c.Eval(float64(i)/flattenSteps))
	}
	return out
}
