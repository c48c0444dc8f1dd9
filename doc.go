// Package outline implements an editable vector-outline model for type
// glyphs.
//
// A glyph outline is stored as contours of typed points: on-curve points
// (move, line, curve, qcurve) and the off-curve control points that precede
// them. On top of that point list the package derives a segment view, the
// unit designers actually edit: one on-curve point plus its preceding
// off-curve run. Both views mutate the same point sequence and stay
// consistent; segment operations translate into point insertions, removals
// and retypes.
//
// Basic usage:
//
//	c := outline.NewContour()
//	c.AppendPoint(outline.Coord(0, 0), outline.Line, false)
//	c.AppendPoint(outline.Coord(0, 100), outline.Line, false)
//	c.AppendPoint(outline.Coord(100, 100), outline.Line, false)
//	c.AppendPoint(outline.Coord(100, 0), outline.Line, false)
//
//	seg := c.Segments()[1]
//	seg.SetType(outline.Curve) // line becomes a flat cubic
//
// Every externally supplied value passes through the normalizer layer
// (Normalize*) before any mutation happens, so failed operations leave the
// model untouched. Points, contours, anchors, components and guidelines can
// carry stable string identifiers, generated lazily and never reused within
// their scope.
//
// Geometry queries (Bounds, Area, Clockwise, PointInside) are exact with
// respect to curvature: bounds account for bezier extrema and area uses the
// closed-form Green's theorem integral per segment.
//
// The opentype subpackage loads outlines from OpenType binaries into this
// model. Persistence, pens and font-wide operations are out of scope.
package outline
