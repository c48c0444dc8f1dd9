package opentype

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/typetools/outline"
)

// SFNTSource reads glyph outlines through golang.org/x/image/font/sfnt.
// It is not safe for concurrent use; the sfnt working buffer is reused
// between calls.
type SFNTSource struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	upem float64
}

// NewSFNTSource parses OpenType font data.
func NewSFNTSource(data []byte) (*SFNTSource, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("opentype: parse: %w", err)
	}
	return &SFNTSource{font: f, upem: float64(f.UnitsPerEm())}, nil
}

// GlyphCount returns the number of glyphs in the font.
func (s *SFNTSource) GlyphCount() int { return s.font.NumGlyphs() }

// UnitsPerEm returns the font's design grid size.
func (s *SFNTSource) UnitsPerEm() float64 { return s.upem }

// Lookup returns the glyph a rune maps to through the cmap.
func (s *SFNTSource) Lookup(r rune) (GID, bool) {
	gid, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return GID(gid), true
}

// GlyphContours loads a glyph at the font's own grid size, so the
// resulting coordinates are font units. sfnt emits y-down coordinates;
// they are flipped to the model's y-up convention.
func (s *SFNTSource) GlyphContours(gid GID) ([]*outline.Contour, error) {
	ppem := fixed.I(int(s.upem))
	raw, err := s.font.LoadGlyph(&s.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("opentype: load glyph %d: %w", gid, err)
	}
	if len(raw) == 0 {
		return nil, ErrNoOutline
	}
	segs := make([]pathSegment, 0, len(raw))
	for _, seg := range raw {
		ps := pathSegment{}
		var n int
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ps.op, n = opMoveTo, 1
		case sfnt.SegmentOpLineTo:
			ps.op, n = opLineTo, 1
		case sfnt.SegmentOpQuadTo:
			ps.op, n = opQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			ps.op, n = opCubeTo, 3
		}
		for i := 0; i < n; i++ {
			ps.args[i] = fixedCoord(seg.Args[i])
		}
		segs = append(segs, ps)
	}
	return contoursFromSegments(segs)
}

// fixedCoord converts a 26.6 fixed point to font units, y flipped up.
func fixedCoord(p fixed.Point26_6) outline.Coordinate {
	return outline.Coord(float64(p.X)/64, -float64(p.Y)/64)
}
