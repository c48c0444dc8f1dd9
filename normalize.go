package outline

import (
	"fmt"
	"math"
)

// The normalizer layer. Every externally supplied value passes through
// one of these functions before any mutation of the model, so a failed
// operation never leaves partial state. Normalizers are pure: they
// validate, coerce to the canonical in-memory form, and do nothing else.

// NormalizeCoordinatePair validates a coordinate supplied as a slice.
// The slice must hold exactly two finite values.
func NormalizeCoordinatePair(v []float64) (Coordinate, error) {
	if len(v) != 2 {
		return Coordinate{}, fmt.Errorf("%w: coordinate must have two components, not %d", ErrInvalidValue, len(v))
	}
	for i, n := range v {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return Coordinate{}, fmt.Errorf("%w: coordinate component %d is not a finite number", ErrInvalidValue, i)
		}
	}
	return Coordinate{X: v[0], Y: v[1]}, nil
}

// NormalizeCoordinate validates a Coordinate value.
func NormalizeCoordinate(c Coordinate) (Coordinate, error) {
	return NormalizeCoordinatePair([]float64{c.X, c.Y})
}

// NormalizePointType validates a raw point type string. The allowed set
// is "move", "line", "offcurve", "curve" and "qcurve", case-sensitive.
func NormalizePointType(value string) (PointType, error) {
	switch t := PointType(value); t {
	case Move, Line, OffCurve, Curve, QCurve:
		return t, nil
	}
	return "", fmt.Errorf("%w: point type must be one of move, line, offcurve, curve, qcurve; got %q", ErrInvalidValue, value)
}

// NormalizeSegmentType validates a raw segment type string. The allowed
// set is "move", "line", "curve" and "qcurve", case-sensitive.
func NormalizeSegmentType(value string) (PointType, error) {
	switch t := PointType(value); t {
	case Move, Line, Curve, QCurve:
		return t, nil
	}
	return "", fmt.Errorf("%w: segment type must be one of move, line, curve, qcurve; got %q", ErrInvalidValue, value)
}

// NormalizeBPointType validates a raw bPoint type string. The allowed
// set is "corner" and "smooth", case-sensitive.
func NormalizeBPointType(value string) (BPointType, error) {
	switch t := BPointType(value); t {
	case Corner, Smooth:
		return t, nil
	}
	return "", fmt.Errorf("%w: bPoint type must be corner or smooth; got %q", ErrInvalidValue, value)
}

// NormalizeColor validates a color supplied as a component slice. The
// slice must hold exactly four values, each in [0, 1].
func NormalizeColor(v []float64) (Color, error) {
	if len(v) != 4 {
		return Color{}, fmt.Errorf("%w: color must have four components, not %d", ErrInvalidValue, len(v))
	}
	names := [4]string{"r", "g", "b", "a"}
	for i, n := range v {
		if math.IsNaN(n) || n < 0 || n > 1 {
			return Color{}, fmt.Errorf("%w: color component %s (%v) is not between 0 and 1", ErrInvalidValue, names[i], n)
		}
	}
	return Color{r: v[0], g: v[1], b: v[2], a: v[3]}, nil
}

// NormalizeTransformation validates a transformation matrix supplied as
// a slice in (xx, xy, yx, yy, dx, dy) order. The slice must hold exactly
// six finite values.
func NormalizeTransformation(v []float64) (Transformation, error) {
	if len(v) != 6 {
		return Transformation{}, fmt.Errorf("%w: transformation must have six components, not %d", ErrInvalidValue, len(v))
	}
	for i, n := range v {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return Transformation{}, fmt.Errorf("%w: transformation component %d is not a finite number", ErrInvalidValue, i)
		}
	}
	return Transformation{XX: v[0], XY: v[1], YX: v[2], YY: v[3], DX: v[4], DY: v[5]}, nil
}

// maxIdentifierLength bounds identifier strings, matching the UFO
// identifier conventions the model persists into.
const maxIdentifierLength = 100

// NormalizeIdentifier validates an identifier string: non-empty, at most
// 100 characters, every character in the printable ASCII range
// 0x20-0x7E.
func NormalizeIdentifier(value string) (string, error) {
	if len(value) == 0 {
		return "", fmt.Errorf("%w: identifier is empty", ErrInvalidValue)
	}
	if len(value) > maxIdentifierLength {
		return "", fmt.Errorf("%w: identifier length %d exceeds the maximum of %d", ErrInvalidValue, len(value), maxIdentifierLength)
	}
	for _, c := range value {
		if c < 0x20 || c > 0x7E {
			return "", fmt.Errorf("%w: identifier %q contains a character outside the range 0x20-0x7E", ErrInvalidValue, value)
		}
	}
	return value, nil
}

// NormalizePointName validates a point, anchor or guideline name:
// non-empty.
func NormalizePointName(value string) (string, error) {
	if len(value) == 0 {
		return "", fmt.Errorf("%w: name must be at least one character long", ErrInvalidValue)
	}
	return value, nil
}

// NormalizeRotationAngle validates an angle in degrees. The value must
// be between -360 and 360; negative angles are wrapped into [0, 360).
func NormalizeRotationAngle(value float64) (float64, error) {
	if math.IsNaN(value) || math.Abs(value) > 360 {
		return 0, fmt.Errorf("%w: angle must be between -360 and 360; got %v", ErrInvalidValue, value)
	}
	if value < 0 {
		value += 360
	}
	return value, nil
}

// NormalizeBoundingBox validates a (xMin, yMin, xMax, yMax) 4-tuple and
// returns it as a Rect. Minimums must not exceed maximums.
func NormalizeBoundingBox(value []float64) (Rect, error) {
	if len(value) != 4 {
		return Rect{}, fmt.Errorf("%w: bounding box must have exactly four values; got %d", ErrInvalidValue, len(value))
	}
	for _, v := range value {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Rect{}, fmt.Errorf("%w: bounding box values must be finite; got %v", ErrInvalidValue, v)
		}
	}
	if value[0] > value[2] {
		return Rect{}, fmt.Errorf("%w: xMin %v exceeds xMax %v", ErrInvalidValue, value[0], value[2])
	}
	if value[1] > value[3] {
		return Rect{}, fmt.Errorf("%w: yMin %v exceeds yMax %v", ErrInvalidValue, value[1], value[3])
	}
	return Rect{
		Min: Coordinate{X: value[0], Y: value[1]},
		Max: Coordinate{X: value[2], Y: value[3]},
	}, nil
}

// checkIndex validates an access index against a length of n.
func checkIndex(index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, index, n)
	}
	return nil
}

// checkInsertIndex validates an insertion index, which may equal n.
func checkInsertIndex(index, n int) error {
	if index < 0 || index > n {
		return fmt.Errorf("%w: insert index %d with length %d", ErrIndexOutOfRange, index, n)
	}
	return nil
}
