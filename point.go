package outline

import "fmt"

// PointType classifies a point within a contour. On-curve points carry
// one of Move, Line, Curve or QCurve; control points are OffCurve.
type PointType string

const (
	// Move starts an open contour. Only the first point of a contour
	// may carry it.
	Move PointType = "move"
	// Line is an on-curve point reached by a straight segment.
	Line PointType = "line"
	// Curve is an on-curve point reached by a cubic bezier; it owns the
	// two preceding off-curve points.
	Curve PointType = "curve"
	// QCurve is an on-curve point reached by a quadratic spline; it owns
	// the preceding off-curve run of any length.
	QCurve PointType = "qcurve"
	// OffCurve is a control point owned by the following on-curve point.
	OffCurve PointType = "offcurve"
)

// OnCurve reports whether t is an on-curve type.
func (t PointType) OnCurve() bool {
	return t == Move || t == Line || t == Curve || t == QCurve
}

// Point is a single outline point. Points are owned by their contour and
// are created and removed through contour operations; mutate them only
// while they are attached.
type Point struct {
	x, y       float64
	typ        PointType
	smooth     bool
	name       string
	identifier string

	contour *Contour // non-owning back-reference, nil when detached
}

// X returns the point's x coordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the point's y coordinate.
func (p *Point) Y() float64 { return p.y }

// Position returns the point's coordinate pair.
func (p *Point) Position() Coordinate { return Coordinate{X: p.x, Y: p.y} }

// SetPosition moves the point.
func (p *Point) SetPosition(pos Coordinate) error {
	pos, err := NormalizeCoordinate(pos)
	if err != nil {
		return err
	}
	p.x, p.y = pos.X, pos.Y
	return nil
}

// Type returns the point's type.
func (p *Point) Type() PointType { return p.typ }

// SetType retypes the point. Retyping an off-curve point to an on-curve
// type (or the reverse) changes how the surrounding segment run is
// derived; the smooth flag is dropped when the point becomes off-curve.
func (p *Point) SetType(value PointType) error {
	t, err := NormalizePointType(string(value))
	if err != nil {
		return err
	}
	p.typ = t
	if t == OffCurve {
		p.smooth = false
	}
	return nil
}

// Smooth reports the point's smooth flag. Smoothness is stored only;
// tangent alignment is the caller's policy.
func (p *Point) Smooth() bool { return p.smooth }

// SetSmooth sets the smooth flag. Off-curve points cannot be smooth.
func (p *Point) SetSmooth(value bool) error {
	if value && p.typ == OffCurve {
		return fmt.Errorf("%w: an offcurve point cannot be smooth", ErrInvalidValue)
	}
	p.smooth = value
	return nil
}

// Name returns the point's name, empty when unnamed.
func (p *Point) Name() string { return p.name }

// SetName names the point. An empty string clears the name.
func (p *Point) SetName(value string) error {
	if value == "" {
		p.name = ""
		return nil
	}
	name, err := NormalizePointName(value)
	if err != nil {
		return err
	}
	p.name = name
	return nil
}

// Identifier returns the point's identifier, or "" if none has been
// generated yet. Use GenerateIdentifier to request one.
func (p *Point) Identifier() string { return p.identifier }

// GenerateIdentifier returns the point's identifier, generating and
// caching one in the owning contour's scope on first request. It fails
// with ErrDetached when the point has no contour.
func (p *Point) GenerateIdentifier() (string, error) {
	if p.identifier != "" {
		return p.identifier, nil
	}
	if p.contour == nil {
		return "", fmt.Errorf("%w: point has no contour", ErrDetached)
	}
	p.identifier = p.contour.pointIDs.generate()
	return p.identifier, nil
}

// SetIdentifier assigns an explicit identifier in the owning contour's
// scope. It fails with ErrDuplicateIdentifier if the value is or was in
// use within the contour.
func (p *Point) SetIdentifier(value string) error {
	if p.contour == nil {
		return fmt.Errorf("%w: point has no contour", ErrDetached)
	}
	id, err := p.contour.pointIDs.claim(value)
	if err != nil {
		return err
	}
	p.identifier = id
	return nil
}

// Contour returns the owning contour, or nil when the point is detached.
func (p *Point) Contour() *Contour { return p.contour }

// TransformBy maps the point's position through t.
func (p *Point) TransformBy(t Transformation) {
	pos := t.Apply(p.Position())
	p.x, p.y = pos.X, pos.Y
}

// MoveBy offsets the point's position.
func (p *Point) MoveBy(dx, dy float64) {
	p.TransformBy(Offset(dx, dy))
}

// RoundCoordinates rounds the point's position to integer font units.
func (p *Point) RoundCoordinates() {
	pos := p.Position().Round()
	p.x, p.y = pos.X, pos.Y
}
