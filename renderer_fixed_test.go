package scanraster

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestRenderer_FixedCoordinateInterop(t *testing.T) {
	r := NewRenderer(20, 20)
	r.MoveToFixed(fixed.P(2, 2))
	r.LineToFixed(fixed.P(18, 2))
	r.LineToFixed(fixed.P(18, 18))
	r.LineToFixed(fixed.P(2, 18))
	if err := r.Fill(FillRuleNonZero, White); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	_, _, _, a := r.Image().PixelAt(10, 10)
	if a != 255 {
		t.Errorf("fixed-coordinate rect interior alpha = %d, want 255", a)
	}
	_, _, _, a = r.Image().PixelAt(0, 0)
	if a != 0 {
		t.Errorf("fixed-coordinate rect exterior alpha = %d, want 0", a)
	}
}

func TestRenderer_CubicToFixed(t *testing.T) {
	r := NewRenderer(40, 40)
	r.MoveToFixed(fixed.P(5, 35))
	r.CubicToFixed(fixed.P(5, 5), fixed.P(35, 5), fixed.P(35, 35))
	r.LineToFixed(fixed.P(5, 35))
	if err := r.Fill(FillRuleNonZero, Blue); err != nil {
		t.Fatalf("Fill() = %v", err)
	}
	_, _, _, a := r.Image().PixelAt(20, 15)
	if a == 0 {
		t.Error("expected non-zero coverage under the fixed-coordinate cubic arc")
	}
}
