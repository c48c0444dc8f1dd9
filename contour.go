package outline

import "fmt"

// Contour is an ordered sequence of points describing one closed or open
// loop of a glyph outline. The order of the point list is the drawing
// order; a contour is open exactly when its first point is a Move.
//
// Contours own their points. All mutation goes through the contour so
// the derived segment view can always be rebuilt without ambiguity.
type Contour struct {
	store      PointStore
	pointIDs   *identifierScope
	identifier string
	mutated    bool

	glyph *Glyph // non-owning back-reference, nil when detached
}

// NewContour returns an empty contour backed by the in-memory store.
func NewContour() *Contour {
	return NewContourWithStore(newMemStore())
}

// NewContourWithStore returns a contour over an explicit backing store.
// The store's point list, if non-empty, is adopted as-is; identifiers
// already present are registered with the contour's scope.
func NewContourWithStore(store PointStore) *Contour {
	c := &Contour{
		store:    store,
		pointIDs: newIdentifierScope(),
	}
	for _, p := range store.All() {
		p.contour = c
		if p.identifier != "" {
			// First occurrence wins; a duplicate from a malformed
			// store is cleared rather than trusted.
			if err := c.pointIDs.adopt(p.identifier); err != nil {
				p.identifier = ""
			}
		}
	}
	return c
}

// PointSpec describes a point to insert. Name and Identifier are
// optional; an Identifier must be unique within the contour.
type PointSpec struct {
	Position   Coordinate
	Type       PointType
	Smooth     bool
	Name       string
	Identifier string
}

// Points returns the contour's points in drawing order.
func (c *Contour) Points() []*Point {
	return c.store.All()
}

// PointCount returns the number of points in the contour.
func (c *Contour) PointCount() int {
	return c.store.Len()
}

// PointAt returns the point at the given index.
func (c *Contour) PointAt(index int) (*Point, error) {
	if err := checkIndex(index, c.store.Len()); err != nil {
		return nil, err
	}
	return c.store.At(index), nil
}

// Open reports whether the contour is open, which is the case exactly
// when its first point is a Move.
func (c *Contour) Open() bool {
	return c.store.Len() > 0 && c.store.At(0).typ == Move
}

// Glyph returns the owning glyph, or nil when the contour is detached.
func (c *Contour) Glyph() *Glyph { return c.glyph }

// Index returns the contour's position within its glyph, or -1 when
// detached.
func (c *Contour) Index() int {
	if c.glyph == nil {
		return -1
	}
	for i, other := range c.glyph.contours {
		if other == c {
			return i
		}
	}
	return -1
}

// -------------------------------------------------------------------
// Identifier
// -------------------------------------------------------------------

// Identifier returns the contour's identifier, or "" if none has been
// generated yet.
func (c *Contour) Identifier() string { return c.identifier }

// GenerateIdentifier returns the contour's identifier, generating and
// caching one in the owning glyph's scope on first request. It fails
// with ErrDetached when the contour has no glyph.
func (c *Contour) GenerateIdentifier() (string, error) {
	if c.identifier != "" {
		return c.identifier, nil
	}
	if c.glyph == nil {
		return "", fmt.Errorf("%w: contour has no glyph", ErrDetached)
	}
	c.identifier = c.glyph.ids.generate()
	return c.identifier, nil
}

// SetIdentifier assigns an explicit identifier in the owning glyph's
// scope.
func (c *Contour) SetIdentifier(value string) error {
	if c.glyph == nil {
		return fmt.Errorf("%w: contour has no glyph", ErrDetached)
	}
	id, err := c.glyph.ids.claim(value)
	if err != nil {
		return err
	}
	c.identifier = id
	return nil
}

// -------------------------------------------------------------------
// Point operations
// -------------------------------------------------------------------

// AppendPoint adds a point at the end of the point list.
func (c *Contour) AppendPoint(pos Coordinate, typ PointType, smooth bool) (*Point, error) {
	return c.InsertPointSpec(c.store.Len(), PointSpec{Position: pos, Type: typ, Smooth: smooth})
}

// InsertPoint inserts a point at the given index.
func (c *Contour) InsertPoint(index int, pos Coordinate, typ PointType, smooth bool) (*Point, error) {
	return c.InsertPointSpec(index, PointSpec{Position: pos, Type: typ, Smooth: smooth})
}

// InsertPointSpec inserts a fully described point at the given index.
// All fields are validated before the point list changes.
func (c *Contour) InsertPointSpec(index int, spec PointSpec) (*Point, error) {
	if err := checkInsertIndex(index, c.store.Len()); err != nil {
		return nil, err
	}
	pos, err := NormalizeCoordinate(spec.Position)
	if err != nil {
		return nil, err
	}
	typ, err := NormalizePointType(string(spec.Type))
	if err != nil {
		return nil, err
	}
	if spec.Smooth && typ == OffCurve {
		return nil, fmt.Errorf("%w: an offcurve point cannot be smooth", ErrInvalidValue)
	}
	name := ""
	if spec.Name != "" {
		if name, err = NormalizePointName(spec.Name); err != nil {
			return nil, err
		}
	}
	identifier := ""
	if spec.Identifier != "" {
		if identifier, err = c.pointIDs.claim(spec.Identifier); err != nil {
			return nil, err
		}
	}
	p := &Point{
		x:          pos.X,
		y:          pos.Y,
		typ:        typ,
		smooth:     spec.Smooth,
		name:       name,
		identifier: identifier,
		contour:    c,
	}
	c.store.Insert(index, p)
	c.mutated = true
	return p, nil
}

// RemovePoint removes the point at index.
//
// With preserveCurve false the point is removed verbatim; off-curve
// points that lose their terminus stay in the list and re-attach to the
// next on-curve point when segments are re-derived.
//
// With preserveCurve true the visual curve shape is approximately
// preserved:
//   - removing the on-curve terminus between two quadratic segments
//     concatenates their control runs;
//   - removing any other curve terminus collapses the two neighboring
//     segments into a single cubic whose controls are the first control
//     after the previous on-curve point and the last control before the
//     next one (the previous or next on-curve position when a side has
//     no controls);
//   - removing an off-curve point removes its whole control run and
//     drops the segment to a line.
func (c *Contour) RemovePoint(index int, preserveCurve bool) error {
	if err := checkIndex(index, c.store.Len()); err != nil {
		return err
	}
	p := c.store.At(index)
	if !preserveCurve {
		c.removeRaw(index)
		return nil
	}
	if p.typ == OffCurve {
		c.removeOffCurveRun(p)
		return nil
	}
	c.removeOnCurvePreserve(p)
	return nil
}

// removeRaw removes a single point, keeping the open-contour invariant
// that the first point is on-curve.
func (c *Contour) removeRaw(index int) {
	wasOpen := c.Open()
	p := c.store.Remove(index)
	p.contour = nil
	c.mutated = true
	if wasOpen && index == 0 && c.store.Len() > 0 {
		// The move point is gone; promote the next on-curve point and
		// drop controls that would lead the contour.
		for c.store.Len() > 0 && c.store.At(0).typ == OffCurve {
			dropped := c.store.Remove(0)
			dropped.contour = nil
		}
		if c.store.Len() > 0 {
			c.store.At(0).typ = Move
		}
	}
}

// removeOffCurveRun removes every off-curve point in p's run and
// retypes the run's on-curve terminus to a line.
func (c *Contour) removeOffCurveRun(p *Point) {
	seg := c.segmentContaining(p)
	if seg == nil {
		// Orphan off-curve in a contour with no on-curve points.
		c.removeRaw(c.indexOfPoint(p))
		return
	}
	for _, off := range seg.OffCurve() {
		c.removeRaw(c.indexOfPoint(off))
	}
	if on := seg.OnCurve(); on != nil && on.typ != Move {
		on.typ = Line
	}
}

// removeOnCurvePreserve removes an on-curve point, merging its two
// neighboring segments as documented on RemovePoint.
func (c *Contour) removeOnCurvePreserve(p *Point) {
	segs := c.Segments()
	var cur, next *Segment
	for i, s := range segs {
		if s.OnCurve() == p {
			cur = s
			next = segs[(i+1)%len(segs)]
			break
		}
	}
	if cur == nil || next == cur || next.OnCurve() == nil || next.OnCurve() == p {
		c.removeRaw(c.indexOfPoint(p))
		return
	}
	in := cur.OffCurve()
	out := next.OffCurve()
	q := next.OnCurve()
	if len(in) == 0 && len(out) == 0 {
		c.removeRaw(c.indexOfPoint(p))
		return
	}
	if p.typ == QCurve && q.typ == QCurve {
		// Quadratic runs concatenate; the removed terminus becomes an
		// implied midpoint's neighborhood.
		c.removeRaw(c.indexOfPoint(p))
		return
	}
	prevOn := cur.startOnCurve()
	first := prevOn
	if len(in) > 0 {
		first = in[0].Position()
	}
	second := q.Position()
	if len(out) > 0 {
		second = out[len(out)-1].Position()
	}
	// Drop the merged segments' interior, then rebuild a single cubic
	// into q.
	for _, off := range out {
		c.removeRaw(c.indexOfPoint(off))
	}
	for _, off := range in {
		c.removeRaw(c.indexOfPoint(off))
	}
	c.removeRaw(c.indexOfPoint(p))
	qi := c.indexOfPoint(q)
	q.typ = Curve
	c.store.Insert(qi, &Point{x: second.X, y: second.Y, typ: OffCurve, contour: c})
	c.store.Insert(qi, &Point{x: first.X, y: first.Y, typ: OffCurve, contour: c})
	c.mutated = true
}

// indexOfPoint returns the index of p in the point list, or -1.
func (c *Contour) indexOfPoint(p *Point) int {
	for i, other := range c.store.All() {
		if other == p {
			return i
		}
	}
	return -1
}

// segmentContaining returns the derived segment that owns p, or nil.
func (c *Contour) segmentContaining(p *Point) *Segment {
	for _, s := range c.Segments() {
		for _, sp := range s.Points() {
			if sp == p {
				return s
			}
		}
	}
	return nil
}

// -------------------------------------------------------------------
// Start point rotation
// -------------------------------------------------------------------

// SetStartPoint rotates a closed contour so the on-curve point at the
// given index becomes the first point. Open contours cannot change
// their starting point.
func (c *Contour) SetStartPoint(index int) error {
	if c.Open() {
		return fmt.Errorf("%w: an open contour cannot change its starting point", ErrInvalidValue)
	}
	points := c.store.All()
	if err := checkIndex(index, len(points)); err != nil {
		return err
	}
	if index == 0 {
		return nil
	}
	if !points[index].typ.OnCurve() {
		return fmt.Errorf("%w: the starting point must be on-curve", ErrInvalidValue)
	}
	logger().Debug("outline: rotating contour start", "index", index)
	rotated := append(points[index:], points[:index]...)
	c.store.Replace(rotated)
	c.mutated = true
	return nil
}

// SetStartSegment rotates a closed contour so the segment at the given
// index becomes the last segment, making its terminating on-curve point
// the contour's first point.
func (c *Contour) SetStartSegment(index int) error {
	if c.Open() {
		return fmt.Errorf("%w: an open contour cannot change its starting point", ErrInvalidValue)
	}
	segments := c.Segments()
	if err := checkIndex(index, len(segments)); err != nil {
		return err
	}
	on := segments[index].OnCurve()
	if on == nil {
		return fmt.Errorf("%w: segment %d has no on-curve point", ErrInvalidValue, index)
	}
	return c.SetStartPoint(c.indexOfPoint(on))
}

// AutoStartSegment rotates a closed contour so it starts at the
// on-curve point closest to the lower left, preferring the smaller y
// and breaking ties with the smaller x. A no-op on open contours.
func (c *Contour) AutoStartSegment() error {
	if c.Open() || c.store.Len() == 0 {
		return nil
	}
	best := -1
	for i, p := range c.store.All() {
		if !p.typ.OnCurve() {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		bp := c.store.At(best)
		if p.y < bp.y || (p.y == bp.y && p.x < bp.x) {
			best = i
		}
	}
	if best <= 0 {
		return nil
	}
	return c.SetStartPoint(best)
}

// -------------------------------------------------------------------
// Reversal
// -------------------------------------------------------------------

// Reverse flips the contour's winding direction. The point list is
// reversed and segment types are reattached: after reversal each
// on-curve point carries the type of the segment that used to leave it,
// so off-curve runs bind to their new terminus.
func (c *Contour) Reverse() {
	points := c.store.All()
	if len(points) < 2 {
		return
	}
	open := c.Open()

	var ons []*Point
	for _, p := range points {
		if p.typ.OnCurve() {
			ons = append(ons, p)
		}
	}
	newType := make(map[*Point]PointType, len(ons))
	for i, p := range ons {
		if open {
			if i == len(ons)-1 {
				newType[p] = Move
			} else {
				newType[p] = ons[i+1].typ
			}
		} else {
			newType[p] = ons[(i+1)%len(ons)].typ
		}
	}

	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	for p, t := range newType {
		p.typ = t
	}
	c.store.Replace(points)
	c.mutated = true
	logger().Debug("outline: contour reversed", "points", len(points))
}

// -------------------------------------------------------------------
// Transformations
// -------------------------------------------------------------------

// TransformBy maps every point through t.
func (c *Contour) TransformBy(t Transformation) {
	for _, p := range c.store.All() {
		p.TransformBy(t)
	}
	c.mutated = true
}

// MoveBy offsets every point.
func (c *Contour) MoveBy(dx, dy float64) {
	c.TransformBy(Offset(dx, dy))
}

// ScaleBy scales every point about origin.
func (c *Contour) ScaleBy(sx, sy float64, origin Coordinate) {
	c.TransformBy(transformAround(origin, ScaleTransform(sx, sy)))
}

// RotateBy rotates every point about origin by an angle in degrees
// between -360 and 360, counter-clockwise.
func (c *Contour) RotateBy(degrees float64, origin Coordinate) error {
	degrees, err := NormalizeRotationAngle(degrees)
	if err != nil {
		return err
	}
	c.TransformBy(transformAround(origin, RotateTransform(degrees)))
	return nil
}

// SkewBy skews every point about origin, angles in degrees.
func (c *Contour) SkewBy(xDegrees, yDegrees float64, origin Coordinate) error {
	xDegrees, err := NormalizeRotationAngle(xDegrees)
	if err != nil {
		return err
	}
	yDegrees, err = NormalizeRotationAngle(yDegrees)
	if err != nil {
		return err
	}
	c.TransformBy(transformAround(origin, SkewTransform(xDegrees, yDegrees)))
	return nil
}

// RoundCoordinates rounds every point to integer font units.
func (c *Contour) RoundCoordinates() {
	for _, p := range c.store.All() {
		p.RoundCoordinates()
	}
	c.mutated = true
}

// transformAround conjugates t with a translation so it acts about
// origin instead of (0, 0).
func transformAround(origin Coordinate, t Transformation) Transformation {
	return Offset(origin.X, origin.Y).Concat(t).Concat(Offset(-origin.X, -origin.Y))
}
