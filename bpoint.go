package outline

import "fmt"

// BPointType classifies a bPoint: a hard corner or a smooth join.
type BPointType string

const (
	// Corner is a bPoint whose incoming and outgoing tangents are
	// independent.
	Corner BPointType = "corner"
	// Smooth is a bPoint whose tangents are intended to align.
	Smooth BPointType = "smooth"
)

// BPoint is a bezier-editing view over an on-curve point: the anchor
// position plus the incoming and outgoing control handles expressed as
// offsets from the anchor. Like segments, bPoints are derived on demand
// and only valid until the next mutation.
//
// Points terminating quadratic runs have no bPoint form and are skipped
// by BPoints.
type BPoint struct {
	contour *Contour
	point   *Point
}

// BPoints derives the contour's bPoints from its on-curve points.
func (c *Contour) BPoints() []*BPoint {
	var out []*BPoint
	for _, p := range c.store.All() {
		switch p.typ {
		case Move, Line, Curve:
			out = append(out, &BPoint{contour: c, point: p})
		}
	}
	return out
}

// Anchor returns the bPoint's on-curve position.
func (b *BPoint) Anchor() Coordinate { return b.point.Position() }

// SetAnchor moves the bPoint's on-curve position. Handles keep their
// absolute positions.
func (b *BPoint) SetAnchor(pos Coordinate) error {
	return b.point.SetPosition(pos)
}

// Type returns Smooth when the underlying point carries the smooth
// flag, Corner otherwise.
func (b *BPoint) Type() BPointType {
	if b.point.smooth {
		return Smooth
	}
	return Corner
}

// SetType sets the bPoint to corner or smooth. Tangent alignment is
// not enforced; only the flag changes.
func (b *BPoint) SetType(value BPointType) error {
	t, err := NormalizeBPointType(string(value))
	if err != nil {
		return err
	}
	return b.point.SetSmooth(t == Smooth)
}

// segmentIn returns the segment terminating at the bPoint's anchor.
func (b *BPoint) segmentIn() *Segment {
	return b.contour.segmentContaining(b.point)
}

// segmentOut returns the segment leaving the bPoint's anchor.
func (b *BPoint) segmentOut() *Segment {
	segments := b.contour.Segments()
	for i, s := range segments {
		if s.OnCurve() == b.point {
			return segments[(i+1)%len(segments)]
		}
	}
	return nil
}

// BcpIn returns the incoming handle as an offset from the anchor, or
// the zero offset when the incoming segment is straight.
func (b *BPoint) BcpIn() Coordinate {
	seg := b.segmentIn()
	if seg == nil {
		return Coordinate{}
	}
	offs := seg.OffCurve()
	if len(offs) == 0 {
		return Coordinate{}
	}
	return offs[len(offs)-1].Position().Sub(b.Anchor())
}

// BcpOut returns the outgoing handle as an offset from the anchor, or
// the zero offset when the outgoing segment is straight.
func (b *BPoint) BcpOut() Coordinate {
	seg := b.segmentOut()
	if seg == nil {
		return Coordinate{}
	}
	offs := seg.OffCurve()
	if len(offs) == 0 {
		return Coordinate{}
	}
	return offs[0].Position().Sub(b.Anchor())
}

// SetBcpIn sets the incoming handle. A non-zero handle on a straight
// incoming segment first converts it to a cubic.
func (b *BPoint) SetBcpIn(offset Coordinate) error {
	offset, err := NormalizeCoordinate(offset)
	if err != nil {
		return err
	}
	seg := b.segmentIn()
	if seg == nil {
		return fmt.Errorf("%w: bPoint is stale", ErrIndexOutOfRange)
	}
	if seg.Type() == Move && (offset != Coordinate{}) {
		return fmt.Errorf("%w: the initial move has no incoming segment", ErrInvalidValue)
	}
	if len(seg.OffCurve()) == 0 {
		if offset == (Coordinate{}) {
			return nil
		}
		if err := seg.SetType(Curve); err != nil {
			return err
		}
		seg = b.segmentIn()
	}
	offs := seg.OffCurve()
	return offs[len(offs)-1].SetPosition(b.Anchor().Add(offset))
}

// SetBcpOut sets the outgoing handle. A non-zero handle on a straight
// outgoing segment first converts it to a cubic.
func (b *BPoint) SetBcpOut(offset Coordinate) error {
	offset, err := NormalizeCoordinate(offset)
	if err != nil {
		return err
	}
	seg := b.segmentOut()
	if seg == nil {
		return fmt.Errorf("%w: bPoint is stale", ErrIndexOutOfRange)
	}
	if len(seg.OffCurve()) == 0 {
		if offset == (Coordinate{}) {
			return nil
		}
		if seg.Type() == Move {
			return fmt.Errorf("%w: an open contour has no outgoing segment at its end", ErrInvalidValue)
		}
		if err := seg.SetType(Curve); err != nil {
			return err
		}
		seg = b.segmentOut()
	}
	return seg.OffCurve()[0].SetPosition(b.Anchor().Add(offset))
}
