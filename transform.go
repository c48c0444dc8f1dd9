package outline

import "math"

// Transformation is an immutable 2D affine map stored as the 6-tuple
// (xx, xy, yx, yy, dx, dy):
//
//	x' = xx*x + yx*y + dx
//	y' = xy*x + yy*y + dy
//
// The component order matches the convention used by font tools, where a
// transformation is written (xx, xy, yx, yy, dx, dy).
type Transformation struct {
	XX, XY, YX, YY, DX, DY float64
}

// Identity returns the identity transformation.
func Identity() Transformation {
	return Transformation{XX: 1, YY: 1}
}

// Offset returns a pure translation.
func Offset(dx, dy float64) Transformation {
	return Transformation{XX: 1, YY: 1, DX: dx, DY: dy}
}

// ScaleTransform returns a pure scale about the origin.
func ScaleTransform(sx, sy float64) Transformation {
	return Transformation{XX: sx, YY: sy}
}

// RotateTransform returns a rotation about the origin, angle in degrees
// counter-clockwise.
func RotateTransform(degrees float64) Transformation {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Transformation{XX: cos, XY: sin, YX: -sin, YY: cos}
}

// SkewTransform returns a skew along both axes, angles in degrees.
func SkewTransform(xDegrees, yDegrees float64) Transformation {
	return Transformation{
		XX: 1,
		XY: math.Tan(yDegrees * math.Pi / 180),
		YX: math.Tan(xDegrees * math.Pi / 180),
		YY: 1,
	}
}

// TransformationFromSlice builds a transformation from a 6-element
// slice in (xx, xy, yx, yy, dx, dy) order. Any other length fails with
// ErrInvalidValue.
func TransformationFromSlice(v []float64) (Transformation, error) {
	return NormalizeTransformation(v)
}

// Components returns the six components in (xx, xy, yx, yy, dx, dy)
// order.
func (t Transformation) Components() [6]float64 {
	return [6]float64{t.XX, t.XY, t.YX, t.YY, t.DX, t.DY}
}

// Apply maps a coordinate through the transformation.
func (t Transformation) Apply(p Coordinate) Coordinate {
	return Coordinate{
		X: t.XX*p.X + t.YX*p.Y + t.DX,
		Y: t.XY*p.X + t.YY*p.Y + t.DY,
	}
}

// Concat returns the transformation equivalent to applying u first and
// then t.
func (t Transformation) Concat(u Transformation) Transformation {
	return Transformation{
		XX: u.XX*t.XX + u.XY*t.YX,
		XY: u.XX*t.XY + u.XY*t.YY,
		YX: u.YX*t.XX + u.YY*t.YX,
		YY: u.YX*t.XY + u.YY*t.YY,
		DX: u.DX*t.XX + u.DY*t.YX + t.DX,
		DY: u.DX*t.XY + u.DY*t.YY + t.DY,
	}
}

// Lerp interpolates the six components between t and u at parameter s.
// Interpolating rotations component-wise is approximate but matches the
// tuple arithmetic used for outline interpolation.
func (t Transformation) Lerp(u Transformation, s float64) Transformation {
	return Transformation{
		XX: t.XX + (u.XX-t.XX)*s,
		XY: t.XY + (u.XY-t.XY)*s,
		YX: t.YX + (u.YX-t.YX)*s,
		YY: t.YY + (u.YY-t.YY)*s,
		DX: t.DX + (u.DX-t.DX)*s,
		DY: t.DY + (u.DY-t.DY)*s,
	}
}
