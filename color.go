package outline

// Color is an immutable RGBA color with each component in [0, 1].
// The zero value is transparent black. Colors compare by value.
type Color struct {
	r, g, b, a float64
}

// NewColor builds a color from four components. Each component must be
// in [0, 1] or the constructor fails with ErrInvalidValue.
func NewColor(r, g, b, a float64) (Color, error) {
	return NormalizeColor([]float64{r, g, b, a})
}

// ColorFromSlice builds a color from a 4-element component slice. Any
// other length fails with ErrInvalidValue.
func ColorFromSlice(v []float64) (Color, error) {
	return NormalizeColor(v)
}

// R returns the red component.
func (c Color) R() float64 { return c.r }

// G returns the green component.
func (c Color) G() float64 { return c.g }

// B returns the blue component.
func (c Color) B() float64 { return c.b }

// A returns the alpha component.
func (c Color) A() float64 { return c.a }

// Components returns the four components in r, g, b, a order.
func (c Color) Components() [4]float64 {
	return [4]float64{c.r, c.g, c.b, c.a}
}

// Add returns the component-wise sum of two colors, clamped to [0, 1].
func (c Color) Add(d Color) Color {
	return Color{
		r: clamp01(c.r + d.r),
		g: clamp01(c.g + d.g),
		b: clamp01(c.b + d.b),
		a: clamp01(c.a + d.a),
	}
}

// Sub returns the component-wise difference of two colors, clamped to
// [0, 1].
func (c Color) Sub(d Color) Color {
	return Color{
		r: clamp01(c.r - d.r),
		g: clamp01(c.g - d.g),
		b: clamp01(c.b - d.b),
		a: clamp01(c.a - d.a),
	}
}

// Scale returns the color with every component multiplied by s and
// clamped to [0, 1].
func (c Color) Scale(s float64) Color {
	return Color{
		r: clamp01(c.r * s),
		g: clamp01(c.g * s),
		b: clamp01(c.b * s),
		a: clamp01(c.a * s),
	}
}

// Lerp interpolates component-wise between c and d at parameter t.
// t=0 returns c, t=1 returns d. Used for interpolation-style blends
// between outline sources.
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		r: clamp01(c.r + (d.r-c.r)*t),
		g: clamp01(c.g + (d.g-c.g)*t),
		b: clamp01(c.b + (d.b-c.b)*t),
		a: clamp01(c.a + (d.a-c.a)*t),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
