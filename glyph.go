package outline

import (
	"fmt"
	"math"
)

// Glyph is the owning container for contours and the glyph-scope
// entities: anchors, components and guidelines. It also owns the
// identifier scope those entities draw from.
type Glyph struct {
	name       string
	width      float64
	markColor  Color
	hasMark    bool
	contours   []*Contour
	anchors    []*Anchor
	components []*Component
	guidelines []*Guideline
	ids        *identifierScope
}

// NewGlyph returns an empty glyph with the given name.
func NewGlyph(name string) *Glyph {
	return &Glyph{name: name, ids: newIdentifierScope()}
}

// Name returns the glyph's name.
func (g *Glyph) Name() string { return g.name }

// SetName renames the glyph. The name must be non-empty.
func (g *Glyph) SetName(value string) error {
	name, err := NormalizePointName(value)
	if err != nil {
		return err
	}
	g.name = name
	return nil
}

// Width returns the glyph's advance width.
func (g *Glyph) Width() float64 { return g.width }

// SetWidth sets the glyph's advance width.
func (g *Glyph) SetWidth(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: width is not a finite number", ErrInvalidValue)
	}
	g.width = value
	return nil
}

// MarkColor returns the glyph's mark color and whether one is set.
func (g *Glyph) MarkColor() (Color, bool) { return g.markColor, g.hasMark }

// SetMarkColor sets the glyph's mark color.
func (g *Glyph) SetMarkColor(c Color) {
	g.markColor = c
	g.hasMark = true
}

// ClearMarkColor removes the glyph's mark color.
func (g *Glyph) ClearMarkColor() {
	g.markColor = Color{}
	g.hasMark = false
}

// -------------------------------------------------------------------
// Contours
// -------------------------------------------------------------------

// Contours returns the glyph's contours in order.
func (g *Glyph) Contours() []*Contour {
	out := make([]*Contour, len(g.contours))
	copy(out, g.contours)
	return out
}

// ContourCount returns the number of contours.
func (g *Glyph) ContourCount() int { return len(g.contours) }

// ContourAt returns the contour at the given index.
func (g *Glyph) ContourAt(index int) (*Contour, error) {
	if err := checkIndex(index, len(g.contours)); err != nil {
		return nil, err
	}
	return g.contours[index], nil
}

// AppendContour attaches a contour to the glyph. The contour must not
// belong to another glyph; an identifier it already carries is
// registered with (and must be unique in) the glyph's scope.
func (g *Glyph) AppendContour(c *Contour) error {
	return g.InsertContour(len(g.contours), c)
}

// InsertContour attaches a contour at the given index.
func (g *Glyph) InsertContour(index int, c *Contour) error {
	if err := checkInsertIndex(index, len(g.contours)); err != nil {
		return err
	}
	if c.glyph != nil {
		return fmt.Errorf("%w: contour already belongs to a glyph", ErrInvalidValue)
	}
	if c.identifier != "" {
		if err := g.ids.adopt(c.identifier); err != nil {
			return err
		}
	}
	c.glyph = g
	g.contours = append(g.contours, nil)
	copy(g.contours[index+1:], g.contours[index:])
	g.contours[index] = c
	return nil
}

// RemoveContour detaches the contour at the given index. Its
// identifier stays retired in the glyph's scope.
func (g *Glyph) RemoveContour(index int) error {
	if err := checkIndex(index, len(g.contours)); err != nil {
		return err
	}
	g.contours[index].glyph = nil
	g.contours = append(g.contours[:index], g.contours[index+1:]...)
	return nil
}

// ClearContours detaches every contour.
func (g *Glyph) ClearContours() {
	for _, c := range g.contours {
		c.glyph = nil
	}
	g.contours = nil
}

// -------------------------------------------------------------------
// Geometry
// -------------------------------------------------------------------

// Bounds returns the union of the contours' bounds. ok is false when no
// contour has points.
func (g *Glyph) Bounds() (Rect, bool) {
	var box Rect
	found := false
	for _, c := range g.contours {
		b, ok := c.Bounds()
		if !ok {
			continue
		}
		if !found {
			box, found = b, true
		} else {
			box = box.Union(b)
		}
	}
	return box, found
}

// Area returns the magnitude of the summed signed contour areas, so
// counter-wound inner contours subtract from the total.
func (g *Glyph) Area() float64 {
	var sum float64
	for _, c := range g.contours {
		sum += c.SignedArea()
	}
	return math.Abs(sum)
}

// PointInside reports whether the coordinate lies within the glyph's
// filled area under the even-odd rule across all contours.
func (g *Glyph) PointInside(pt Coordinate) bool {
	inside := false
	for _, c := range g.contours {
		if c.PointInside(pt) {
			inside = !inside
		}
	}
	return inside
}

// -------------------------------------------------------------------
// Anchors, components, guidelines
// -------------------------------------------------------------------

// Anchors returns the glyph's anchors in order.
func (g *Glyph) Anchors() []*Anchor {
	out := make([]*Anchor, len(g.anchors))
	copy(out, g.anchors)
	return out
}

// AppendAnchor adds a named anchor at a position.
func (g *Glyph) AppendAnchor(name string, pos Coordinate) (*Anchor, error) {
	name, err := NormalizePointName(name)
	if err != nil {
		return nil, err
	}
	pos, err = NormalizeCoordinate(pos)
	if err != nil {
		return nil, err
	}
	a := &Anchor{name: name, x: pos.X, y: pos.Y, glyph: g}
	g.anchors = append(g.anchors, a)
	return a, nil
}

// RemoveAnchor detaches the anchor at the given index.
func (g *Glyph) RemoveAnchor(index int) error {
	if err := checkIndex(index, len(g.anchors)); err != nil {
		return err
	}
	g.anchors[index].glyph = nil
	g.anchors = append(g.anchors[:index], g.anchors[index+1:]...)
	return nil
}

// Components returns the glyph's components in order.
func (g *Glyph) Components() []*Component {
	out := make([]*Component, len(g.components))
	copy(out, g.components)
	return out
}

// AppendComponent adds a reference to another glyph with a placement
// transformation.
func (g *Glyph) AppendComponent(baseGlyph string, t Transformation) (*Component, error) {
	baseGlyph, err := NormalizePointName(baseGlyph)
	if err != nil {
		return nil, err
	}
	comps := t.Components()
	t, err = NormalizeTransformation(comps[:])
	if err != nil {
		return nil, err
	}
	comp := &Component{baseGlyph: baseGlyph, transformation: t, glyph: g}
	g.components = append(g.components, comp)
	return comp, nil
}

// RemoveComponent detaches the component at the given index.
func (g *Glyph) RemoveComponent(index int) error {
	if err := checkIndex(index, len(g.components)); err != nil {
		return err
	}
	g.components[index].glyph = nil
	g.components = append(g.components[:index], g.components[index+1:]...)
	return nil
}

// Guidelines returns the glyph's guidelines in order.
func (g *Glyph) Guidelines() []*Guideline {
	out := make([]*Guideline, len(g.guidelines))
	copy(out, g.guidelines)
	return out
}

// AppendGuideline adds a guideline through a position at an angle in
// degrees.
func (g *Glyph) AppendGuideline(pos Coordinate, angle float64) (*Guideline, error) {
	pos, err := NormalizeCoordinate(pos)
	if err != nil {
		return nil, err
	}
	angle, err = NormalizeRotationAngle(angle)
	if err != nil {
		return nil, err
	}
	gl := &Guideline{x: pos.X, y: pos.Y, angle: angle, glyph: g}
	g.guidelines = append(g.guidelines, gl)
	return gl, nil
}

// RemoveGuideline detaches the guideline at the given index.
func (g *Glyph) RemoveGuideline(index int) error {
	if err := checkIndex(index, len(g.guidelines)); err != nil {
		return err
	}
	g.guidelines[index].glyph = nil
	g.guidelines = append(g.guidelines[:index], g.guidelines[index+1:]...)
	return nil
}

// -------------------------------------------------------------------
// Transformations
// -------------------------------------------------------------------

// TransformBy maps every contour, anchor, component and guideline
// position through t.
func (g *Glyph) TransformBy(t Transformation) {
	for _, c := range g.contours {
		c.TransformBy(t)
	}
	for _, a := range g.anchors {
		a.TransformBy(t)
	}
	for _, comp := range g.components {
		comp.TransformBy(t)
	}
	for _, gl := range g.guidelines {
		gl.TransformBy(t)
	}
}

// MoveBy offsets the whole glyph.
func (g *Glyph) MoveBy(dx, dy float64) {
	g.TransformBy(Offset(dx, dy))
}

// ScaleBy scales the whole glyph about origin.
func (g *Glyph) ScaleBy(sx, sy float64, origin Coordinate) {
	g.TransformBy(transformAround(origin, ScaleTransform(sx, sy)))
}

// RoundCoordinates rounds every contour point and anchor to integer
// font units.
func (g *Glyph) RoundCoordinates() {
	for _, c := range g.contours {
		c.RoundCoordinates()
	}
	for _, a := range g.anchors {
		a.RoundCoordinates()
	}
}
