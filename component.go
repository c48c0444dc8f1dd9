package outline

// Component is a placed reference to another glyph. The referenced
// outline is positioned by the component's transformation; the
// component itself holds no points.
type Component struct {
	baseGlyph      string
	transformation Transformation
	identifier     string
	glyph          *Glyph
}

// BaseGlyph returns the name of the referenced glyph.
func (c *Component) BaseGlyph() string { return c.baseGlyph }

// SetBaseGlyph points the component at a different glyph.
func (c *Component) SetBaseGlyph(value string) error {
	name, err := NormalizePointName(value)
	if err != nil {
		return err
	}
	c.baseGlyph = name
	return nil
}

// Transformation returns the component's placement transformation.
func (c *Component) Transformation() Transformation { return c.transformation }

// SetTransformation replaces the component's placement transformation.
func (c *Component) SetTransformation(t Transformation) error {
	comps := t.Components()
	t, err := NormalizeTransformation(comps[:])
	if err != nil {
		return err
	}
	c.transformation = t
	return nil
}

// Offset returns the translation part of the placement.
func (c *Component) Offset() Coordinate {
	return Coord(c.transformation.DX, c.transformation.DY)
}

// SetOffset replaces the translation part of the placement.
func (c *Component) SetOffset(pos Coordinate) error {
	pos, err := NormalizeCoordinate(pos)
	if err != nil {
		return err
	}
	c.transformation.DX, c.transformation.DY = pos.X, pos.Y
	return nil
}

// Scale returns the diagonal scale factors of the placement.
func (c *Component) Scale() (sx, sy float64) {
	return c.transformation.XX, c.transformation.YY
}

// Identifier returns the component's identifier, or "" when unset.
func (c *Component) Identifier() string { return c.identifier }

// GenerateIdentifier assigns a fresh unique identifier within the
// owning glyph's scope. Calling it again returns the existing value.
func (c *Component) GenerateIdentifier() (string, error) {
	if c.identifier != "" {
		return c.identifier, nil
	}
	if c.glyph == nil {
		return "", ErrDetached
	}
	id := c.glyph.ids.generate()
	c.identifier = id
	return id, nil
}

// SetIdentifier assigns an explicit identifier, which must be unique
// within the owning glyph's scope.
func (c *Component) SetIdentifier(value string) error {
	if c.glyph == nil {
		return ErrDetached
	}
	id, err := c.glyph.ids.claim(value)
	if err != nil {
		return err
	}
	c.identifier = id
	return nil
}

// TransformBy composes t onto the component's placement, so the
// referenced outline lands where t would have mapped it.
func (c *Component) TransformBy(t Transformation) {
	c.transformation = t.Concat(c.transformation)
}

// MoveBy offsets the component's placement.
func (c *Component) MoveBy(dx, dy float64) {
	c.TransformBy(Offset(dx, dy))
}
