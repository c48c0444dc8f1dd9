package outline

import "testing"

func TestCoordinateArithmetic(t *testing.T) {
	a, b := Coord(3, 4), Coord(1, -2)

	if got := a.Add(b); got != Coord(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != Coord(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != Coord(6, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Dot(b); got != 3-8 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Cross(b); got != -6-4 {
		t.Errorf("Cross = %v", got)
	}
}

func TestCoordinateLerpMidpointDistance(t *testing.T) {
	a, b := Coord(0, 0), Coord(10, 20)

	if got := a.Lerp(b, 0.5); got != Coord(5, 10) {
		t.Errorf("Lerp = %v", got)
	}
	if got := a.Midpoint(b); got != Coord(5, 10) {
		t.Errorf("Midpoint = %v", got)
	}
	if got := Coord(0, 0).Distance(Coord(3, 4)); got != 5 {
		t.Errorf("Distance = %v", got)
	}
}

func TestCoordinateRoundApprox(t *testing.T) {
	if got := Coord(1.5, -2.4).Round(); got != Coord(2, -2) {
		t.Errorf("Round = %v", got)
	}
	if !Coord(1, 1).Approx(Coord(1+1e-12, 1), 1e-9) {
		t.Error("Approx should accept values within tolerance")
	}
	if Coord(1, 1).Approx(Coord(1.1, 1), 1e-9) {
		t.Error("Approx should reject values outside tolerance")
	}
}
