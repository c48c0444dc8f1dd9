package outline

// Geometry queries over the derived segment view. Bounds account for
// bezier extrema, not just control points, and area uses the per-segment
// Green's theorem integrals, so neither depends on flattening tolerance.
// Containment tests run on a flattened polyline.

// curvePiece is one drawable primitive of a contour.
type curvePiece struct {
	kind  PointType // Line, Curve or QCurve
	line  LineSeg
	cubic CubicBez
	quads []QuadBez
}

// pieces decomposes the contour into drawable primitives. The move
// segment of an open contour contributes nothing; when closeContour is
// set an open contour gains an implicit closing line back to its start.
func (c *Contour) pieces(closeContour bool) []curvePiece {
	segments := c.Segments()
	if len(segments) == 0 {
		return nil
	}
	if len(segments) == 1 && segments[0].OnCurve() == nil {
		// TrueType all-implied form: every point is an off-curve
		// control and every on-curve point is an implied midpoint.
		var controls []Coordinate
		for _, p := range segments[0].points {
			controls = append(controls, p.Position())
		}
		if len(controls) < 2 {
			return nil
		}
		start := controls[len(controls)-1].Midpoint(controls[0])
		return []curvePiece{{kind: QCurve, quads: quadSpline(start, controls, start)}}
	}

	open := c.Open()
	var out []curvePiece
	for _, seg := range segments {
		on := seg.OnCurve()
		if on == nil || on.typ == Move {
			continue
		}
		start := seg.startOnCurve()
		end := on.Position()
		offs := seg.OffCurve()
		switch {
		case len(offs) == 0:
			out = append(out, curvePiece{kind: Line, line: LineSeg{P0: start, P1: end}})
		case on.typ == Curve && len(offs) == 2:
			out = append(out, curvePiece{kind: Curve, cubic: CubicBez{
				P0: start,
				P1: offs[0].Position(),
				P2: offs[1].Position(),
				P3: end,
			}})
		case len(offs) == 1:
			out = append(out, curvePiece{kind: QCurve, quads: []QuadBez{{
				P0: start,
				P1: offs[0].Position(),
				P2: end,
			}}})
		default:
			controls := make([]Coordinate, len(offs))
			for i, p := range offs {
				controls[i] = p.Position()
			}
			out = append(out, curvePiece{kind: QCurve, quads: quadSpline(start, controls, end)})
		}
	}
	if open && closeContour {
		points := c.store.All()
		if len(points) > 1 {
			last := points[len(points)-1].Position()
			for i := len(points) - 1; i >= 0; i-- {
				if points[i].typ.OnCurve() {
					last = points[i].Position()
					break
				}
			}
			out = append(out, curvePiece{kind: Line, line: LineSeg{
				P0: last,
				P1: points[0].Position(),
			}})
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the rendered outline,
// including curve extrema. ok is false for a contour without points.
// When the backing store carries a bounds hint and no mutation has
// happened since load, the hint is returned directly.
func (c *Contour) Bounds() (Rect, bool) {
	if c.store.Len() == 0 {
		return Rect{}, false
	}
	if !c.mutated {
		if hint, ok := c.store.BoundsHint(); ok {
			return hint, true
		}
	}
	pieces := c.pieces(false)
	if len(pieces) == 0 {
		points := c.store.All()
		box := NewRect(points[0].Position(), points[0].Position())
		for _, p := range points[1:] {
			box = box.Expand(p.Position())
		}
		return box, true
	}
	var box Rect
	first := true
	for _, piece := range pieces {
		var b Rect
		switch piece.kind {
		case Curve:
			b = piece.cubic.BoundingBox()
		case QCurve:
			b = piece.quads[0].BoundingBox()
			for _, q := range piece.quads[1:] {
				b = b.Union(q.BoundingBox())
			}
		default:
			b = piece.line.BoundingBox()
		}
		if first {
			box, first = b, false
		} else {
			box = box.Union(b)
		}
	}
	return box, true
}

// SignedArea returns the contour's signed area. A positive sign means
// counter-clockwise winding in the y-up font coordinate system. Open
// contours are treated as implicitly closed.
func (c *Contour) SignedArea() float64 {
	var sum float64
	for _, piece := range c.pieces(true) {
		switch piece.kind {
		case Curve:
			sum += piece.cubic.SignedArea()
		case QCurve:
			for _, q := range piece.quads {
				sum += q.SignedArea()
			}
		default:
			sum += piece.line.SignedArea()
		}
	}
	return sum
}

// Area returns the magnitude of the contour's signed area.
func (c *Contour) Area() float64 {
	a := c.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// Clockwise reports whether the contour winds clockwise, derived from
// the sign of the area.
func (c *Contour) Clockwise() bool {
	return c.SignedArea() < 0
}

// SetClockwise reverses the contour when its winding direction differs
// from the requested one.
func (c *Contour) SetClockwise(value bool) {
	if c.Clockwise() != value {
		c.Reverse()
	}
}

// flatten converts the contour to a closed polyline.
func (c *Contour) flatten() []Coordinate {
	pieces := c.pieces(true)
	if len(pieces) == 0 {
		return nil
	}
	var out []Coordinate
	for i, piece := range pieces {
		switch piece.kind {
		case Curve:
			if i == 0 {
				out = append(out, piece.cubic.P0)
			}
			out = flattenCubic(piece.cubic, out)
		case QCurve:
			if i == 0 {
				out = append(out, piece.quads[0].P0)
			}
			for _, q := range piece.quads {
				out = flattenQuad(q, out)
			}
		default:
			if i == 0 {
				out = append(out, piece.line.P0)
			}
			out = append(out, piece.line.P1)
		}
	}
	return out
}

// PointInside reports whether the coordinate lies within the filled
// area of the contour, using the even-odd rule on the flattened
// outline.
func (c *Contour) PointInside(pt Coordinate) bool {
	poly := c.flatten()
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			x := pi.X + (pt.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if pt.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// ContourInside reports whether every point of the other contour's
// flattened outline lies within this contour's filled area.
func (c *Contour) ContourInside(other *Contour) bool {
	poly := other.flatten()
	if len(poly) == 0 {
		return false
	}
	for _, pt := range poly {
		if !c.PointInside(pt) {
			return false
		}
	}
	return true
}
