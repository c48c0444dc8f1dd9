package outline

import (
	"fmt"
	"image"

	"golang.org/x/image/vector"
)

// RenderAlpha rasterizes the glyph's contours into an alpha mask of the
// given size. The transformation maps font units to pixel space; pass
// something like Offset(0, ascent).Concat(ScaleTransform(s, -s)) to flip
// the y-up font coordinate system into image rows. Open contours are
// closed with a straight line, and overlapping contours combine under
// the non-zero winding rule.
func RenderAlpha(g *Glyph, width, height int, t Transformation) (*image.Alpha, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: mask size %dx%d", ErrInvalidValue, width, height)
	}
	r := vector.NewRasterizer(width, height)
	for _, c := range g.contours {
		pieces := c.pieces(true)
		if len(pieces) == 0 {
			continue
		}
		start := t.Apply(pieceStart(pieces[0]))
		r.MoveTo(float32(start.X), float32(start.Y))
		for _, piece := range pieces {
			switch piece.kind {
			case Line:
				p := t.Apply(piece.line.P1)
				r.LineTo(float32(p.X), float32(p.Y))
			case Curve:
				p1 := t.Apply(piece.cubic.P1)
				p2 := t.Apply(piece.cubic.P2)
				p3 := t.Apply(piece.cubic.P3)
				r.CubeTo(
					float32(p1.X), float32(p1.Y),
					float32(p2.X), float32(p2.Y),
					float32(p3.X), float32(p3.Y),
				)
			case QCurve:
				for _, q := range piece.quads {
					p1 := t.Apply(q.P1)
					p2 := t.Apply(q.P2)
					r.QuadTo(
						float32(p1.X), float32(p1.Y),
						float32(p2.X), float32(p2.Y),
					)
				}
			}
		}
		r.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst, nil
}

func pieceStart(p curvePiece) Coordinate {
	switch p.kind {
	case Curve:
		return p.cubic.P0
	case QCurve:
		return p.quads[0].P0
	default:
		return p.line.P0
	}
}
