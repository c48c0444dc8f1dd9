package outline

import (
	"math"
)

// Guideline is an infinite reference line through a position at an
// angle, used for alignment while editing.
type Guideline struct {
	x, y       float64
	angle      float64
	name       string
	color      Color
	hasColor   bool
	identifier string
	glyph      *Glyph
}

// Position returns the point the guideline passes through.
func (g *Guideline) Position() Coordinate { return Coord(g.x, g.y) }

// SetPosition moves the guideline.
func (g *Guideline) SetPosition(pos Coordinate) error {
	pos, err := NormalizeCoordinate(pos)
	if err != nil {
		return err
	}
	g.x, g.y = pos.X, pos.Y
	return nil
}

// Angle returns the guideline's angle in degrees, in [0, 360).
func (g *Guideline) Angle() float64 { return g.angle }

// SetAngle sets the guideline's angle in degrees.
func (g *Guideline) SetAngle(value float64) error {
	angle, err := NormalizeRotationAngle(value)
	if err != nil {
		return err
	}
	g.angle = angle
	return nil
}

// Name returns the guideline's name, or "" when unnamed.
func (g *Guideline) Name() string { return g.name }

// SetName renames the guideline. An empty string clears the name.
func (g *Guideline) SetName(value string) error {
	if value == "" {
		g.name = ""
		return nil
	}
	name, err := NormalizePointName(value)
	if err != nil {
		return err
	}
	g.name = name
	return nil
}

// GuidelineColor returns the guideline's display color and whether one
// is set.
func (g *Guideline) GuidelineColor() (Color, bool) { return g.color, g.hasColor }

// SetColor sets the guideline's display color.
func (g *Guideline) SetColor(c Color) {
	g.color = c
	g.hasColor = true
}

// ClearColor removes the guideline's display color.
func (g *Guideline) ClearColor() {
	g.color = Color{}
	g.hasColor = false
}

// Identifier returns the guideline's identifier, or "" when unset.
func (g *Guideline) Identifier() string { return g.identifier }

// GenerateIdentifier assigns a fresh unique identifier within the
// owning glyph's scope. Calling it again returns the existing value.
func (g *Guideline) GenerateIdentifier() (string, error) {
	if g.identifier != "" {
		return g.identifier, nil
	}
	if g.glyph == nil {
		return "", ErrDetached
	}
	id := g.glyph.ids.generate()
	g.identifier = id
	return id, nil
}

// SetIdentifier assigns an explicit identifier, which must be unique
// within the owning glyph's scope.
func (g *Guideline) SetIdentifier(value string) error {
	if g.glyph == nil {
		return ErrDetached
	}
	id, err := g.glyph.ids.claim(value)
	if err != nil {
		return err
	}
	g.identifier = id
	return nil
}

// TransformBy maps the guideline's position through t and rotates its
// angle by the transformation's rotation part.
func (g *Guideline) TransformBy(t Transformation) {
	p := t.Apply(Coord(g.x, g.y))
	g.x, g.y = p.X, p.Y
	// Map a direction vector to recover the new angle.
	rad := g.angle * math.Pi / 180
	dx := t.XX*math.Cos(rad) + t.YX*math.Sin(rad)
	dy := t.XY*math.Cos(rad) + t.YY*math.Sin(rad)
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	g.angle = deg
}

// MoveBy offsets the guideline.
func (g *Guideline) MoveBy(dx, dy float64) {
	g.x += dx
	g.y += dy
}
