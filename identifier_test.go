package outline

import (
	"errors"
	"testing"
)

func TestIdentifierScopeGenerate(t *testing.T) {
	scope := newIdentifierScope()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := scope.generate()
		if id == "" {
			t.Fatal("generate returned an empty identifier")
		}
		if _, err := NormalizeIdentifier(id); err != nil {
			t.Fatalf("generated identifier %q fails validation: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("generate returned %q twice", id)
		}
		seen[id] = true
	}
}

func TestIdentifierScopeClaim(t *testing.T) {
	scope := newIdentifierScope()

	id, err := scope.claim("stem-top")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "stem-top" {
		t.Errorf("claim returned %q", id)
	}

	if _, err := scope.claim("stem-top"); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Errorf("second claim error = %v, want ErrDuplicateIdentifier", err)
	}
	if _, err := scope.claim(""); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("empty claim error = %v, want ErrInvalidValue", err)
	}
}

func TestIdentifierGenerateIsStable(t *testing.T) {
	c := NewContour()
	p, err := c.AppendPoint(Coord(0, 0), Move, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Identifier() != "" {
		t.Errorf("fresh point identifier = %q, want empty", p.Identifier())
	}
	first, err := p.GenerateIdentifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.GenerateIdentifier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("repeated generation changed the identifier: %q then %q", first, second)
	}
	if p.Identifier() != first {
		t.Errorf("Identifier() = %q, want %q", p.Identifier(), first)
	}
}

func TestIdentifierRetirement(t *testing.T) {
	c := NewContour()
	p, _ := c.AppendPoint(Coord(0, 0), Move, false)
	q, _ := c.AppendPoint(Coord(10, 0), Line, false)

	if err := p.SetIdentifier("first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.RemovePoint(0, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A removed point's identifier never comes back into circulation.
	if err := q.SetIdentifier("first"); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Errorf("reuse after removal error = %v, want ErrDuplicateIdentifier", err)
	}
}

func TestIdentifierDetached(t *testing.T) {
	p := &Point{typ: Line}
	if _, err := p.GenerateIdentifier(); !errors.Is(err, ErrDetached) {
		t.Errorf("detached generate error = %v, want ErrDetached", err)
	}
	if err := p.SetIdentifier("loose"); !errors.Is(err, ErrDetached) {
		t.Errorf("detached set error = %v, want ErrDetached", err)
	}

	c := NewContour()
	if _, err := c.GenerateIdentifier(); !errors.Is(err, ErrDetached) {
		t.Errorf("glyphless contour generate error = %v, want ErrDetached", err)
	}
}
