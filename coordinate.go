package outline

import "math"

// Coordinate is a 2D position or displacement in font units.
type Coordinate struct {
	X, Y float64
}

// Coord is a convenience constructor for a Coordinate.
func Coord(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the component-wise sum of two coordinates.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the component-wise difference of two coordinates.
func (c Coordinate) Sub(d Coordinate) Coordinate {
	return Coordinate{X: c.X - d.X, Y: c.Y - d.Y}
}

// Mul returns the coordinate scaled by s.
func (c Coordinate) Mul(s float64) Coordinate {
	return Coordinate{X: c.X * s, Y: c.Y * s}
}

// Dot returns the dot product of two displacement vectors.
func (c Coordinate) Dot(d Coordinate) float64 {
	return c.X*d.X + c.Y*d.Y
}

// Cross returns the scalar 2D cross product of two displacement vectors.
func (c Coordinate) Cross(d Coordinate) float64 {
	return c.X*d.Y - c.Y*d.X
}

// Lerp linearly interpolates between c and d at parameter t.
func (c Coordinate) Lerp(d Coordinate, t float64) Coordinate {
	return Coordinate{
		X: c.X + (d.X-c.X)*t,
		Y: c.Y + (d.Y-c.Y)*t,
	}
}

// Distance returns the euclidean distance between two coordinates.
func (c Coordinate) Distance(d Coordinate) float64 {
	return math.Hypot(c.X-d.X, c.Y-d.Y)
}

// Midpoint returns the point halfway between c and d.
func (c Coordinate) Midpoint(d Coordinate) Coordinate {
	return c.Lerp(d, 0.5)
}

// Round returns the coordinate with both components rounded to the
// nearest integer, halves away from zero.
func (c Coordinate) Round() Coordinate {
	return Coordinate{X: math.Round(c.X), Y: math.Round(c.Y)}
}

// Approx reports whether c and d are equal within tolerance tol in each
// component.
func (c Coordinate) Approx(d Coordinate, tol float64) bool {
	return math.Abs(c.X-d.X) <= tol && math.Abs(c.Y-d.Y) <= tol
}
