package opentype

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/typetools/outline"
)

// GoTextSource reads glyph outlines through go-text/typesetting. The
// parsed font.Font is read-only; the font.Face wrapper holds per-source
// glyph caches and is not safe for concurrent use, so neither is the
// source.
type GoTextSource struct {
	face *font.Face
}

// NewGoTextSource parses OpenType font data.
func NewGoTextSource(data []byte) (*GoTextSource, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opentype: parse: %w", err)
	}
	return &GoTextSource{face: face}, nil
}

// UnitsPerEm returns the font's design grid size.
func (s *GoTextSource) UnitsPerEm() float64 { return float64(s.face.Upem()) }

// Lookup returns the glyph a rune maps to through the cmap.
func (s *GoTextSource) Lookup(r rune) (GID, bool) {
	gid, ok := s.face.NominalGlyph(r)
	if !ok {
		return 0, false
	}
	return GID(gid), true
}

// GlyphContours loads a glyph's outline as model contours in font
// units. Bitmap and color glyphs fail with ErrNoOutline.
func (s *GoTextSource) GlyphContours(gid GID) ([]*outline.Contour, error) {
	data := s.face.GlyphData(font.GID(gid))
	gd, ok := data.(font.GlyphOutline)
	if !ok {
		return nil, ErrNoOutline
	}
	if len(gd.Segments) == 0 {
		return nil, ErrNoOutline
	}
	segs := make([]pathSegment, 0, len(gd.Segments))
	for _, seg := range gd.Segments {
		ps := pathSegment{}
		var n int
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			ps.op, n = opMoveTo, 1
		case ot.SegmentOpLineTo:
			ps.op, n = opLineTo, 1
		case ot.SegmentOpQuadTo:
			ps.op, n = opQuadTo, 2
		case ot.SegmentOpCubeTo:
			ps.op, n = opCubeTo, 3
		}
		for i := 0; i < n; i++ {
			ps.args[i] = outline.Coord(float64(seg.Args[i].X), float64(seg.Args[i].Y))
		}
		segs = append(segs, ps)
	}
	return contoursFromSegments(segs)
}
