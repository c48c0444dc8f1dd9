package outline

import "math"

// Anchor is a named attachment position on a glyph, used for mark
// placement. Unlike a point it never participates in outlines.
type Anchor struct {
	x, y       float64
	name       string
	color      Color
	hasColor   bool
	identifier string
	glyph      *Glyph
}

// Position returns the anchor's coordinate.
func (a *Anchor) Position() Coordinate { return Coord(a.x, a.y) }

// SetPosition moves the anchor.
func (a *Anchor) SetPosition(pos Coordinate) error {
	pos, err := NormalizeCoordinate(pos)
	if err != nil {
		return err
	}
	a.x, a.y = pos.X, pos.Y
	return nil
}

// Name returns the anchor's name.
func (a *Anchor) Name() string { return a.name }

// SetName renames the anchor.
func (a *Anchor) SetName(value string) error {
	name, err := NormalizePointName(value)
	if err != nil {
		return err
	}
	a.name = name
	return nil
}

// AnchorColor returns the anchor's display color and whether one is set.
func (a *Anchor) AnchorColor() (Color, bool) { return a.color, a.hasColor }

// SetColor sets the anchor's display color.
func (a *Anchor) SetColor(c Color) {
	a.color = c
	a.hasColor = true
}

// ClearColor removes the anchor's display color.
func (a *Anchor) ClearColor() {
	a.color = Color{}
	a.hasColor = false
}

// Identifier returns the anchor's identifier, or "" when unset.
func (a *Anchor) Identifier() string { return a.identifier }

// GenerateIdentifier assigns a fresh unique identifier within the
// owning glyph's scope. Calling it again returns the existing value.
func (a *Anchor) GenerateIdentifier() (string, error) {
	if a.identifier != "" {
		return a.identifier, nil
	}
	if a.glyph == nil {
		return "", ErrDetached
	}
	id := a.glyph.ids.generate()
	a.identifier = id
	return id, nil
}

// SetIdentifier assigns an explicit identifier, which must be unique
// within the owning glyph's scope.
func (a *Anchor) SetIdentifier(value string) error {
	if a.glyph == nil {
		return ErrDetached
	}
	id, err := a.glyph.ids.claim(value)
	if err != nil {
		return err
	}
	a.identifier = id
	return nil
}

// TransformBy maps the anchor's position through t.
func (a *Anchor) TransformBy(t Transformation) {
	p := t.Apply(Coord(a.x, a.y))
	a.x, a.y = p.X, p.Y
}

// MoveBy offsets the anchor.
func (a *Anchor) MoveBy(dx, dy float64) {
	a.x += dx
	a.y += dy
}

// RoundCoordinates rounds the anchor to integer font units.
func (a *Anchor) RoundCoordinates() {
	a.x = math.Round(a.x)
	a.y = math.Round(a.y)
}
