package outline

import "errors"

var (
	// ErrInvalidValue indicates a supplied value failed shape, type or
	// range validation. It is always raised before any mutation, so a
	// failed operation never leaves partial state.
	ErrInvalidValue = errors.New("outline: invalid value")
	// ErrDuplicateIdentifier indicates an explicitly assigned identifier
	// collides with one already used (or retired) in the same scope.
	ErrDuplicateIdentifier = errors.New("outline: duplicate identifier")
	// ErrUnsupportedConversion indicates a segment type conversion between
	// incompatible shapes, such as a qcurve run of three off-curves to a
	// cubic curve.
	ErrUnsupportedConversion = errors.New("outline: unsupported segment conversion")
	// ErrIndexOutOfRange indicates a point or segment index outside the
	// valid range.
	ErrIndexOutOfRange = errors.New("outline: index out of range")
	// ErrDetached indicates an operation that requires an owning parent,
	// such as generating a contour identifier while the contour is not
	// part of a glyph.
	ErrDetached = errors.New("outline: object has no parent")
)
