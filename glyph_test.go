package outline

import (
	"errors"
	"testing"
)

func glyphWithSquare(t *testing.T) (*Glyph, *Contour) {
	t.Helper()
	g := NewGlyph("square")
	c := closedSquare(t)
	if err := g.AppendContour(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g, c
}

func TestGlyphName(t *testing.T) {
	g := NewGlyph("A")
	if g.Name() != "A" {
		t.Errorf("Name = %q", g.Name())
	}
	if err := g.SetName(""); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("empty name error = %v, want ErrInvalidValue", err)
	}
	if err := g.SetName("A.alt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name() != "A.alt" {
		t.Errorf("Name = %q", g.Name())
	}
}

func TestGlyphContourOwnership(t *testing.T) {
	g, c := glyphWithSquare(t)
	if c.Glyph() != g {
		t.Error("appended contour should reference its glyph")
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d", c.Index())
	}

	other := NewGlyph("other")
	if err := other.AppendContour(c); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("double ownership error = %v, want ErrInvalidValue", err)
	}

	if err := g.RemoveContour(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Glyph() != nil || c.Index() != -1 {
		t.Error("removed contour should be detached")
	}
	if g.ContourCount() != 0 {
		t.Errorf("ContourCount = %d", g.ContourCount())
	}
}

func TestGlyphContourIdentifierScope(t *testing.T) {
	g, c := glyphWithSquare(t)
	if err := c.SetIdentifier("outer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c2 := NewContour()
	c2.AppendPoint(Coord(10, 10), Line, false)
	if err := g.AppendContour(c2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c2.SetIdentifier("outer"); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Errorf("duplicate contour identifier error = %v, want ErrDuplicateIdentifier", err)
	}

	// Removing the contour retires its identifier in the glyph.
	if err := g.RemoveContour(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c2.SetIdentifier("outer"); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Errorf("retired identifier reuse error = %v, want ErrDuplicateIdentifier", err)
	}
}

func TestGlyphAppendContourAdoptsIdentifier(t *testing.T) {
	g := NewGlyph("g")
	c := closedSquare(t)
	// Attach, claim, detach, then reattach to a fresh glyph: the fresh
	// scope must adopt the carried identifier.
	if err := g.AppendContour(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SetIdentifier("carried"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.RemoveContour(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g2 := NewGlyph("g2")
	if err := g2.AppendContour(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c2 := NewContour()
	c2.AppendPoint(Coord(0, 0), Line, false)
	if err := g2.AppendContour(c2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c2.SetIdentifier("carried"); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Errorf("adopted identifier reuse error = %v, want ErrDuplicateIdentifier", err)
	}
}

func TestGlyphAggregateGeometry(t *testing.T) {
	g, _ := glyphWithSquare(t)

	// An inner counter, reversed so it subtracts from the area.
	inner := NewContour()
	for _, pos := range []Coordinate{
		Coord(25, 25), Coord(75, 25), Coord(75, 75), Coord(25, 75),
	} {
		inner.AppendPoint(pos, Line, false)
	}
	inner.Reverse()
	if err := g.AppendContour(inner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	box, ok := g.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if box != (Rect{Min: Coord(0, 0), Max: Coord(100, 100)}) {
		t.Errorf("Bounds = %+v", box)
	}
	if got := g.Area(); got != 10000-2500 {
		t.Errorf("Area = %v, want 7500", got)
	}
	if !g.PointInside(Coord(10, 10)) {
		t.Error("(10, 10) should be inside the ring")
	}
	if g.PointInside(Coord(50, 50)) {
		t.Error("(50, 50) sits in the counter and should be outside")
	}
}

func TestGlyphWidthAndMarkColor(t *testing.T) {
	g := NewGlyph("n")
	if err := g.SetWidth(600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Width() != 600 {
		t.Errorf("Width = %v", g.Width())
	}

	if _, ok := g.MarkColor(); ok {
		t.Error("fresh glyph should have no mark color")
	}
	red, _ := NewColor(1, 0, 0, 1)
	g.SetMarkColor(red)
	if got, ok := g.MarkColor(); !ok || got != red {
		t.Errorf("MarkColor = %v, %v", got, ok)
	}
	g.ClearMarkColor()
	if _, ok := g.MarkColor(); ok {
		t.Error("ClearMarkColor should remove the mark color")
	}
}

func TestGlyphAnchors(t *testing.T) {
	g := NewGlyph("a")
	a, err := g.AppendAnchor("top", Coord(250, 700))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name() != "top" || a.Position() != Coord(250, 700) {
		t.Errorf("anchor = %q at %v", a.Name(), a.Position())
	}

	if _, err := g.AppendAnchor("", Coord(0, 0)); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("unnamed anchor error = %v, want ErrInvalidValue", err)
	}

	if _, err := a.GenerateIdentifier(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blue, _ := NewColor(0, 0, 1, 1)
	a.SetColor(blue)
	if got, ok := a.AnchorColor(); !ok || got != blue {
		t.Errorf("AnchorColor = %v, %v", got, ok)
	}

	a.MoveBy(0, -100)
	if a.Position() != Coord(250, 600) {
		t.Errorf("moved anchor = %v", a.Position())
	}

	if err := g.RemoveAnchor(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Anchors()) != 0 {
		t.Error("anchor not removed")
	}
}

func TestGlyphComponents(t *testing.T) {
	g := NewGlyph("aacute")
	comp, err := g.AppendComponent("a", Identity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comp.BaseGlyph() != "a" {
		t.Errorf("BaseGlyph = %q", comp.BaseGlyph())
	}

	if err := comp.SetOffset(Coord(0, 200)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comp.Offset() != Coord(0, 200) {
		t.Errorf("Offset = %v", comp.Offset())
	}

	// MoveBy composes onto the placement.
	comp.MoveBy(10, 0)
	if comp.Offset() != Coord(10, 200) {
		t.Errorf("Offset after MoveBy = %v", comp.Offset())
	}

	sx, sy := comp.Scale()
	if sx != 1 || sy != 1 {
		t.Errorf("Scale = %v, %v", sx, sy)
	}

	if err := g.RemoveComponent(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Components()) != 0 {
		t.Error("component not removed")
	}
}

func TestGlyphGuidelines(t *testing.T) {
	g := NewGlyph("o")
	gl, err := g.AppendGuideline(Coord(0, 500), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := gl.SetAngle(-45); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gl.Angle() != 315 {
		t.Errorf("Angle = %v, want 315", gl.Angle())
	}
	if err := gl.SetAngle(400); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("out-of-range angle error = %v, want ErrInvalidValue", err)
	}

	if err := gl.SetName("x-height"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gl.Name() != "x-height" {
		t.Errorf("Name = %q", gl.Name())
	}

	if _, err := g.AppendGuideline(Coord(0, 0), 999); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("invalid angle error = %v, want ErrInvalidValue", err)
	}
	if err := g.RemoveGuideline(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Guidelines()) != 0 {
		t.Error("guideline not removed")
	}
}

func TestGuidelineTransformRotatesAngle(t *testing.T) {
	g := NewGlyph("g")
	gl, _ := g.AppendGuideline(Coord(100, 0), 0)
	gl.TransformBy(RotateTransform(90))
	if !gl.Position().Approx(Coord(0, 100), 1e-9) {
		t.Errorf("rotated position = %v", gl.Position())
	}
	if d := gl.Angle() - 90; d > 1e-9 || d < -1e-9 {
		t.Errorf("rotated angle = %v, want 90", gl.Angle())
	}
}

func TestGlyphTransformBy(t *testing.T) {
	g, c := glyphWithSquare(t)
	a, _ := g.AppendAnchor("top", Coord(50, 100))

	g.MoveBy(10, 20)
	first, _ := c.PointAt(0)
	if first.Position() != Coord(10, 20) {
		t.Errorf("contour start = %v", first.Position())
	}
	if a.Position() != Coord(60, 120) {
		t.Errorf("anchor = %v", a.Position())
	}

	g.ScaleBy(0.5, 0.5, Coord(0, 0))
	if a.Position() != Coord(30, 60) {
		t.Errorf("scaled anchor = %v", a.Position())
	}
}

func TestGlyphRoundCoordinates(t *testing.T) {
	g := NewGlyph("g")
	c := NewContour()
	c.AppendPoint(Coord(0.6, 0.4), Line, false)
	if err := g.AppendContour(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := g.AppendAnchor("top", Coord(10.5, 20.4))

	g.RoundCoordinates()
	p, _ := c.PointAt(0)
	if p.Position() != Coord(1, 0) {
		t.Errorf("rounded point = %v", p.Position())
	}
	if a.Position() != Coord(11, 20) {
		t.Errorf("rounded anchor = %v", a.Position())
	}
}
