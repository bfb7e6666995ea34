package scanraster

import "testing"

// TestScenario_S1_OpaqueUnitRect fills a single solid pixel (0,0) on a
// 10x10 canvas and checks every other pixel stays fully transparent.
func TestScenario_S1_OpaqueUnitRect(t *testing.T) {
	r := NewRenderer(10, 10)
	r.MoveTo(0, 0)
	r.LineTo(1, 0)
	r.LineTo(1, 1)
	r.LineTo(0, 1)
	if err := r.Fill(FillRuleNonZero, White); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	img := r.Image()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			b, g, rr, a := img.PixelAt(x, y)
			if x == 0 && y == 0 {
				if b != 255 || g != 255 || rr != 255 || a != 255 {
					t.Errorf("pixel (0,0) = (%d,%d,%d,%d), want opaque white", b, g, rr, a)
				}
				continue
			}
			if b != 0 || g != 0 || rr != 0 || a != 0 {
				t.Errorf("pixel (%d,%d) = (%d,%d,%d,%d), want fully transparent", x, y, b, g, rr, a)
			}
		}
	}
}

// TestScenario_S2_DiagonalHalfPixel reproduces the coverages produced
// by a diagonal edge crossing a 2x2 canvas: the diagonal from (0,0)
// to (2,2) passes straight through cells (0,0) and (1,1), splitting
// each in half, while (0,1) lies entirely on the filled side and
// (1,0) entirely on the empty side.
func TestScenario_S2_DiagonalHalfPixel(t *testing.T) {
	r := NewRenderer(2, 2)
	r.MoveTo(0, 0)
	r.LineTo(2, 2)
	r.LineTo(0, 2)
	if err := r.Fill(FillRuleNonZero, Black); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	img := r.Image()
	cases := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 127},
		{1, 0, 0},
		{0, 1, 255},
		{1, 1, 127},
	}
	for _, tc := range cases {
		_, _, _, a := img.PixelAt(tc.x, tc.y)
		if a != tc.want {
			t.Errorf("pixel (%d,%d) alpha = %d, want %d", tc.x, tc.y, a, tc.want)
		}
	}
}

// TestScenario_S3_EvenOddAnnulus: an outer and inner square wound the
// same direction, filled under even-odd, leaves the inner square a
// hole.
func TestScenario_S3_EvenOddAnnulus(t *testing.T) {
	r := NewRenderer(16, 16)
	squareCW(r, 2, 2, 14, 14)
	squareCW(r, 6, 6, 10, 10)
	if err := r.Fill(FillRuleEvenOdd, Red); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	img := r.Image()
	_, _, _, holeA := img.PixelAt(8, 8)
	if holeA != 0 {
		t.Errorf("hole center (8,8) alpha = %d, want 0", holeA)
	}
	_, _, redR, ringA := img.PixelAt(3, 3)
	if ringA != 255 || redR != 255 {
		t.Errorf("annulus pixel (3,3) = (a=%d,r=%d), want opaque red", ringA, redR)
	}
	_, _, _, outsideA := img.PixelAt(0, 0)
	if outsideA != 0 {
		t.Errorf("outside (0,0) alpha = %d, want 0", outsideA)
	}
}

// TestScenario_S4_NonZeroSelfOverlap: the same annulus, but with the
// inner square's winding reversed, filled under non-zero — the hole
// must still appear because the reversed winding cancels, giving the
// same visible shape as the even-odd scenario.
func TestScenario_S4_NonZeroSelfOverlap(t *testing.T) {
	r := NewRenderer(16, 16)
	squareCW(r, 2, 2, 14, 14)
	squareCCW(r, 6, 6, 10, 10)
	if err := r.Fill(FillRuleNonZero, Red); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	img := r.Image()
	_, _, _, holeA := img.PixelAt(8, 8)
	if holeA != 0 {
		t.Errorf("hole center (8,8) alpha = %d, want 0 (winding cancels)", holeA)
	}
	_, _, _, ringA := img.PixelAt(3, 3)
	if ringA != 255 {
		t.Errorf("annulus pixel (3,3) alpha = %d, want 255", ringA)
	}
}

// TestScenario_S5_BezierArcSymmetry checks that a Bézier arc whose
// control polygon is symmetric about x=32 produces coverage mirrored
// about that axis, within the ±1 tolerance the forward-differencing
// flattening admits.
func TestScenario_S5_BezierArcSymmetry(t *testing.T) {
	r := NewRenderer(64, 64)
	r.MoveTo(10, 32)
	r.BezierTo(10, 10, 54, 10, 54, 32)
	r.LineTo(10, 32)
	if err := r.Fill(FillRuleNonZero, Blue); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	img := r.Image()
	for y := 0; y < 64; y++ {
		for x := 10; x < 32; x++ {
			mirrored := 63 - x
			_, _, _, a1 := img.PixelAt(x, y)
			_, _, _, a2 := img.PixelAt(mirrored, y)
			diff := int(a1) - int(a2)
			if diff < -1 || diff > 1 {
				t.Errorf("alpha(%d,%d)=%d vs alpha(%d,%d)=%d, diff %d exceeds ±1", x, y, a1, mirrored, y, a2, diff)
			}
		}
	}
}

// TestScenario_S6_DegenerateHorizontalNoop checks that a horizontal-
// only outline leaves the canvas untouched.
func TestScenario_S6_DegenerateHorizontalNoop(t *testing.T) {
	r := NewRenderer(20, 20)
	r.MoveTo(0, 0)
	r.LineTo(10, 0)
	if err := r.Fill(FillRuleNonZero, White); err != nil {
		t.Fatalf("Fill() = %v", err)
	}

	img := r.Image()
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			_, _, _, a := img.PixelAt(x, y)
			if a != 0 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 0 for a degenerate horizontal outline", x, y, a)
			}
		}
	}
}

func squareCW(r *Renderer, x0, y0, x1, y1 float64) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.CloseOutline()
}

func squareCCW(r *Renderer, x0, y0, x1, y1 float64) {
	r.MoveTo(x0, y0)
	r.LineTo(x0, y1)
	r.LineTo(x1, y1)
	r.LineTo(x1, y0)
	r.CloseOutline()
}
