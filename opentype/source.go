// Package opentype provides read-only glyph sources that load outlines
// from OpenType font binaries into the point model. The parsing backend
// is selected at construction: NewSFNTSource parses with
// golang.org/x/image/font/sfnt and NewGoTextSource with
// github.com/go-text/typesetting.
package opentype

import (
	"errors"

	"github.com/typetools/outline"
)

// GID identifies a glyph within a font.
type GID uint32

// ErrNoOutline is returned for glyphs that carry no vector outline,
// such as bitmap or color glyphs.
var ErrNoOutline = errors.New("opentype: glyph has no outline")

// Source is a read-only view of the glyphs in a parsed font.
// All coordinates are in font units, y-up.
type Source interface {
	// GlyphContours loads a glyph's outline as model contours.
	GlyphContours(gid GID) ([]*outline.Contour, error)

	// Lookup returns the glyph a rune maps to through the cmap.
	Lookup(r rune) (GID, bool)

	// UnitsPerEm returns the font's design grid size.
	UnitsPerEm() float64
}

type pathOp uint8

const (
	opMoveTo pathOp = iota
	opLineTo
	opQuadTo
	opCubeTo
)

// pathSegment is the pen-style wire form shared by both backends.
// args holds 1 point for move/line, 2 for quad, 3 for cube; the last
// used slot is the target and the rest are controls.
type pathSegment struct {
	op   pathOp
	args [3]outline.Coordinate
}

// contoursFromSegments folds a pen-style segment stream into closed
// model contours. Each move begins a contour. A trailing line back to
// the start point is elided, and a trailing curve landing on the start
// folds its type onto the first point, so the result matches the UFO
// point-list form where closed contours carry no move.
func contoursFromSegments(segs []pathSegment) ([]*outline.Contour, error) {
	var out []*outline.Contour
	var specs []outline.PointSpec

	flush := func() error {
		if len(specs) == 0 {
			return nil
		}
		if len(specs) > 1 {
			last := specs[len(specs)-1]
			if last.Type != outline.OffCurve && last.Position == specs[0].Position {
				specs[0].Type = last.Type
				specs = specs[:len(specs)-1]
			}
		}
		c := outline.NewContour()
		for i, spec := range specs {
			if _, err := c.InsertPointSpec(i, spec); err != nil {
				return err
			}
		}
		out = append(out, c)
		specs = nil
		return nil
	}

	for _, s := range segs {
		switch s.op {
		case opMoveTo:
			if err := flush(); err != nil {
				return nil, err
			}
			// Type is provisional; flush folds the closing segment's
			// type onto it.
			specs = append(specs, outline.PointSpec{Position: s.args[0], Type: outline.Line})
		case opLineTo:
			specs = append(specs, outline.PointSpec{Position: s.args[0], Type: outline.Line})
		case opQuadTo:
			specs = append(specs,
				outline.PointSpec{Position: s.args[0], Type: outline.OffCurve},
				outline.PointSpec{Position: s.args[1], Type: outline.QCurve},
			)
		case opCubeTo:
			specs = append(specs,
				outline.PointSpec{Position: s.args[0], Type: outline.OffCurve},
				outline.PointSpec{Position: s.args[1], Type: outline.OffCurve},
				outline.PointSpec{Position: s.args[2], Type: outline.Curve},
			)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}
