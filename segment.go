package outline

import "fmt"

// Segment is a derived view over a contour's point list: one on-curve
// terminus plus the maximal run of off-curve points immediately before
// it. Segments are rebuilt from the point list on every request; hold a
// Segment only for the duration of an edit.
//
// Segment indexing convention: the initial Move of an open contour is
// its own one-point segment at index 0. On a closed contour the
// grouping rotates so segment 0 terminates at the first on-curve point
// after the start point and the final segment wraps around to the start
// point.
type Segment struct {
	contour *Contour
	points  []*Point
	index   int
}

// Segments derives the contour's segment list from its point sequence.
func (c *Contour) Segments() []*Segment {
	points := c.store.All()
	if len(points) == 0 {
		return nil
	}
	groups := [][]*Point{{}}
	firstIsMove := points[0].typ == Move
	lastWasOffCurve := false
	for _, p := range points {
		groups[len(groups)-1] = append(groups[len(groups)-1], p)
		if p.typ != OffCurve {
			groups = append(groups, nil)
		}
		lastWasOffCurve = p.typ == OffCurve
	}
	if len(groups[len(groups)-1]) == 0 {
		groups = groups[:len(groups)-1]
	}
	if lastWasOffCurve && firstIsMove {
		// Trailing off-curves of an open contour terminate nothing.
		groups = groups[:len(groups)-1]
	} else if lastWasOffCurve && len(groups) > 1 {
		// Closed contour whose trailing off-curves wrap around to the
		// leading on-curve point.
		tail := groups[len(groups)-1]
		tail = append(tail, groups[0]...)
		groups = append(groups[1:len(groups)-1], tail)
	} else if !lastWasOffCurve && !firstIsMove {
		// Closed contour: the start point terminates the final,
		// wrapping segment.
		groups = append(groups[1:], groups[0])
	}
	segments := make([]*Segment, len(groups))
	for i, g := range groups {
		segments[i] = &Segment{contour: c, points: g, index: i}
	}
	return segments
}

// SegmentCount returns the number of derived segments.
func (c *Contour) SegmentCount() int {
	return len(c.Segments())
}

// SegmentAt returns the derived segment at the given index.
func (c *Contour) SegmentAt(index int) (*Segment, error) {
	segments := c.Segments()
	if err := checkIndex(index, len(segments)); err != nil {
		return nil, err
	}
	return segments[index], nil
}

// Contour returns the contour the segment was derived from.
func (s *Segment) Contour() *Contour { return s.contour }

// Index returns the segment's position in the derivation it came from.
func (s *Segment) Index() int { return s.index }

// Points returns the segment's points: the off-curve run followed by
// the on-curve terminus.
func (s *Segment) Points() []*Point {
	out := make([]*Point, len(s.points))
	copy(out, s.points)
	return out
}

// OnCurve returns the segment's on-curve terminus, or nil for an
// off-curve-only contour.
func (s *Segment) OnCurve() *Point {
	if len(s.points) == 0 {
		return nil
	}
	if last := s.points[len(s.points)-1]; last.typ.OnCurve() {
		return last
	}
	return nil
}

// OffCurve returns the segment's off-curve points in order.
func (s *Segment) OffCurve() []*Point {
	var out []*Point
	for _, p := range s.points {
		if p.typ == OffCurve {
			out = append(out, p)
		}
	}
	return out
}

// Type returns the segment's type: the on-curve point's type, or QCurve
// for an off-curve-only contour (the TrueType all-implied form).
func (s *Segment) Type() PointType {
	on := s.OnCurve()
	if on == nil {
		return QCurve
	}
	return on.typ
}

// Smooth reports the smooth flag of the on-curve terminus.
func (s *Segment) Smooth() bool {
	on := s.OnCurve()
	if on == nil {
		return true
	}
	return on.smooth
}

// SetSmooth sets the smooth flag of the on-curve terminus. Point count
// and positions never change.
func (s *Segment) SetSmooth(value bool) error {
	on := s.OnCurve()
	if on == nil {
		return nil
	}
	return on.SetSmooth(value)
}

// startOnCurve returns the position the segment departs from: the
// previous segment's terminus, wrapping on closed contours. For the
// move segment of an open contour it is the move point itself.
func (s *Segment) startOnCurve() Coordinate {
	segments := s.contour.Segments()
	if len(segments) == 0 {
		return Coordinate{}
	}
	if s.Type() == Move {
		if on := s.OnCurve(); on != nil {
			return on.Position()
		}
	}
	prev := segments[(s.index+len(segments)-1)%len(segments)]
	if on := prev.OnCurve(); on != nil {
		return on.Position()
	}
	return Coordinate{}
}

// SetType converts the segment to a new type. Setting the current type
// is a no-op. Point-count effects:
//
//   - move/line to curve/qcurve inserts two off-curve points duplicating
//     the segment's start and end positions (the canonical no-curvature
//     form);
//   - curve/qcurve to move/line removes the off-curve run;
//   - curve and qcurve relabel in place when the off-curve count suits
//     both forms; a qcurve run whose length is neither 0 nor 2 cannot
//     become a cubic and fails with ErrUnsupportedConversion;
//   - move and line relabel in place.
//
// Only a contour's first point can become a move (opening the contour);
// a move segment has no incoming edge and cannot become a curve or
// qcurve.
//
// All validation happens before any mutation; on error the contour is
// unchanged.
func (s *Segment) SetType(newType PointType) error {
	newType, err := NormalizeSegmentType(string(newType))
	if err != nil {
		return err
	}
	on := s.OnCurve()
	if on == nil {
		// A lone quadratic run of off-curves has no terminus to
		// convert.
		return nil
	}
	oldType := on.typ
	if oldType == newType {
		return nil
	}
	c := s.contour
	if newType == Move && c.indexOfPoint(on) != 0 {
		return fmt.Errorf("%w: only a contour's first point can become a move", ErrInvalidValue)
	}
	if oldType == Move && (newType == Curve || newType == QCurve) {
		return fmt.Errorf("%w: a move segment has no incoming edge to curve", ErrUnsupportedConversion)
	}

	switch {
	case (newType == Move || newType == Line) && (oldType == Move || oldType == Line):
		// Relabel only.
	case newType == Move || newType == Line:
		for _, off := range s.OffCurve() {
			c.removeRaw(c.indexOfPoint(off))
		}
	case oldType == Curve || oldType == QCurve:
		// curve <-> qcurve.
		n := len(s.OffCurve())
		if newType == Curve && n != 0 && n != 2 {
			return fmt.Errorf("%w: a qcurve run of %d off-curves cannot become a cubic curve", ErrUnsupportedConversion, n)
		}
		if n == 0 {
			if err := s.insertFlatControls(); err != nil {
				return err
			}
		}
	default:
		// move/line to curve/qcurve.
		if err := s.insertFlatControls(); err != nil {
			return err
		}
	}
	on.typ = newType
	c.mutated = true
	return nil
}

// insertFlatControls inserts the two off-curve points of the canonical
// no-curvature conversion: one at the segment's start position, one at
// its end position, immediately before the on-curve terminus.
func (s *Segment) insertFlatControls() error {
	c := s.contour
	on := s.OnCurve()
	start := s.startOnCurve()
	i := c.indexOfPoint(on)
	if i < 0 {
		return fmt.Errorf("%w: segment is stale", ErrIndexOutOfRange)
	}
	c.store.Insert(i, &Point{x: on.x, y: on.y, typ: OffCurve, contour: c})
	c.store.Insert(i, &Point{x: start.X, y: start.Y, typ: OffCurve, contour: c})
	c.mutated = true
	return nil
}

// SetSegmentType converts the segment at the given index; see
// Segment.SetType.
func (c *Contour) SetSegmentType(index int, newType PointType) error {
	seg, err := c.SegmentAt(index)
	if err != nil {
		return err
	}
	return seg.SetType(newType)
}

// -------------------------------------------------------------------
// Segment-level insertion and removal
// -------------------------------------------------------------------

// AppendSegment adds a segment after the current last segment. The
// final coordinate is the on-curve terminus; any preceding coordinates
// become its off-curve run.
func (c *Contour) AppendSegment(typ PointType, points []Coordinate, smooth bool) error {
	return c.InsertSegment(len(c.Segments()), typ, points, smooth)
}

// InsertSegment inserts a segment at the given segment index,
// translating to the equivalent point insertions. The final coordinate
// is the on-curve terminus; preceding coordinates become off-curves.
func (c *Contour) InsertSegment(index int, typ PointType, points []Coordinate, smooth bool) error {
	segments := c.Segments()
	if err := checkInsertIndex(index, len(segments)); err != nil {
		return err
	}
	typ, err := NormalizeSegmentType(string(typ))
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("%w: a segment needs at least an on-curve point", ErrInvalidValue)
	}
	coords := make([]Coordinate, len(points))
	for i, pt := range points {
		if coords[i], err = NormalizeCoordinate(pt); err != nil {
			return err
		}
	}
	onCurve := coords[len(coords)-1]
	offCurve := coords[:len(coords)-1]

	// Locate the point index where the new segment starts. On a closed
	// contour segment 0 starts after the wrap point, hence the +1; on
	// an open contour the move segment is segment 0 and nothing may be
	// inserted before it.
	ptIndex := 1
	if c.Open() {
		if index == 0 {
			return fmt.Errorf("%w: cannot insert a segment before the initial move", ErrInvalidValue)
		}
		ptIndex = 0
	}
	for i := 0; i < index && i < len(segments); i++ {
		ptIndex += len(segments[i].points)
	}
	if ptIndex > c.store.Len() {
		ptIndex = c.store.Len()
	}

	if _, err := c.InsertPoint(ptIndex, onCurve, typ, smooth); err != nil {
		return err
	}
	for i := len(offCurve) - 1; i >= 0; i-- {
		if _, err := c.InsertPoint(ptIndex, offCurve[i], OffCurve, false); err != nil {
			return err
		}
	}
	return nil
}

// RemoveSegment removes the segment at the given index, translating to
// the equivalent point removals. With preserveCurve true the neighbor
// segments are merged per the RemovePoint policy instead of leaving a
// gap.
func (c *Contour) RemoveSegment(index int, preserveCurve bool) error {
	segments := c.Segments()
	if err := checkIndex(index, len(segments)); err != nil {
		return err
	}
	seg := segments[index]
	on := seg.OnCurve()
	if preserveCurve && on != nil {
		for _, off := range seg.OffCurve() {
			c.removeRaw(c.indexOfPoint(off))
		}
		c.removeOnCurvePreserve(on)
		return nil
	}
	for _, p := range seg.Points() {
		if i := c.indexOfPoint(p); i >= 0 {
			c.removeRaw(i)
		}
	}
	return nil
}
