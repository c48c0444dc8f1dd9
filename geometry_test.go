package outline

import (
	"math"
	"testing"
)

func TestSquareGeometry(t *testing.T) {
	c := closedSquare(t)

	box, ok := c.Bounds()
	if !ok {
		t.Fatal("square should have bounds")
	}
	want := Rect{Min: Coord(0, 0), Max: Coord(100, 100)}
	if box != want {
		t.Errorf("Bounds = %+v, want %+v", box, want)
	}
	if c.Area() != 10000 {
		t.Errorf("Area = %v, want 10000", c.Area())
	}
	if c.Clockwise() {
		t.Error("counter-clockwise square reported clockwise")
	}
	if c.SignedArea() != 10000 {
		t.Errorf("SignedArea = %v, want 10000", c.SignedArea())
	}
}

func TestSetClockwise(t *testing.T) {
	c := closedSquare(t)
	c.SetClockwise(true)
	if !c.Clockwise() {
		t.Fatal("SetClockwise(true) did not reverse")
	}
	before := pointPositions(c)
	c.SetClockwise(true)
	after := pointPositions(c)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("SetClockwise with matching winding should be a no-op")
		}
	}
}

func TestBoundsIncludeCurveExtrema(t *testing.T) {
	// A closed shape whose top edge is a quadratic arch. The control
	// sits at y=100 but the curve only reaches y=50.
	c := NewContour()
	c.AppendPoint(Coord(0, 0), QCurve, false)
	c.AppendPoint(Coord(100, 0), Line, false)
	c.AppendPoint(Coord(50, 100), OffCurve, false)

	box, ok := c.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if math.Abs(box.Max.Y-50) > 1e-9 {
		t.Errorf("Max.Y = %v, want the curve extremum 50", box.Max.Y)
	}
}

func TestBoundsEmptyContour(t *testing.T) {
	if _, ok := NewContour().Bounds(); ok {
		t.Error("empty contour should report no bounds")
	}
}

func TestOpenContourAreaImplicitlyClosed(t *testing.T) {
	// An open right-angle path closes to a triangle.
	c := openPath(t)
	if got := c.Area(); math.Abs(got-5000) > 1e-9 {
		t.Errorf("Area = %v, want 5000", got)
	}
}

func TestPointInside(t *testing.T) {
	c := closedSquare(t)
	tests := []struct {
		name string
		pt   Coordinate
		want bool
	}{
		{name: "center", pt: Coord(50, 50), want: true},
		{name: "near edge inside", pt: Coord(1, 50), want: true},
		{name: "right of square", pt: Coord(150, 50), want: false},
		{name: "above square", pt: Coord(50, 150), want: false},
		{name: "far negative", pt: Coord(-10, -10), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.PointInside(tt.pt); got != tt.want {
				t.Errorf("PointInside(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestContourInside(t *testing.T) {
	outer := closedSquare(t)
	inner := NewContour()
	for _, pos := range []Coordinate{
		Coord(25, 25), Coord(75, 25), Coord(75, 75), Coord(25, 75),
	} {
		inner.AppendPoint(pos, Line, false)
	}
	if !outer.ContourInside(inner) {
		t.Error("inner square should be inside the outer square")
	}
	if inner.ContourInside(outer) {
		t.Error("outer square should not be inside the inner square")
	}
}

func TestBoundsUsesStoreHint(t *testing.T) {
	hint := Rect{Min: Coord(-5, -5), Max: Coord(105, 105)}
	store := &hintedStore{memStore: newMemStore(), hint: hint}
	c := NewContourWithStore(store)
	for _, pos := range []Coordinate{
		Coord(0, 0), Coord(100, 0), Coord(100, 100), Coord(0, 100),
	} {
		p := &Point{x: pos.X, y: pos.Y, typ: Line}
		store.Insert(store.Len(), p)
		p.contour = c
	}

	box, ok := c.Bounds()
	if !ok || box != hint {
		t.Errorf("unmutated Bounds = %+v, want the hint %+v", box, hint)
	}

	// Any mutation invalidates the hint.
	if _, err := c.AppendPoint(Coord(50, 120), Line, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	box, ok = c.Bounds()
	if !ok || box == hint {
		t.Errorf("mutated Bounds should be recomputed, got %+v", box)
	}
	if box.Max.Y != 120 {
		t.Errorf("recomputed Max.Y = %v, want 120", box.Max.Y)
	}
}

// hintedStore wraps the in-memory store with a fixed bounds hint, the
// way a store backed by a binary glyph table would report the glyf
// bounding box.
type hintedStore struct {
	*memStore
	hint Rect
}

func (s *hintedStore) BoundsHint() (Rect, bool) { return s.hint, true }
