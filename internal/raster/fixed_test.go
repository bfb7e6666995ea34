package raster

import "testing"

func TestToFixed24_8(t *testing.T) {
	cases := []struct {
		in   float64
		want Fixed24_8
	}{
		{0.0, 0},
		{1.0, 256},
		{-1.0, -256},
		{0.5, 128},
		{-0.5, -128},
	}
	for _, tc := range cases {
		if got := ToFixed24_8(tc.in); got != tc.want {
			t.Errorf("ToFixed24_8(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFixed24_8Roundtrip(t *testing.T) {
	for n := int32(-1 << 23); n < 1<<23; n += 65537 {
		x := Fixed24_8(n)
		f := ToFloat(x)
		got := ToFixed24_8(f)
		if got != x {
			t.Fatalf("roundtrip broke at n=%d: ToFixed24_8(ToFloat(%d)) = %d", n, x, got)
		}
	}
}

func TestFixed24_8FloorFrac(t *testing.T) {
	cases := []struct {
		x        Fixed24_8
		floor    int32
		frac     int32
	}{
		{0, 0, 0},
		{256, 1, 0},
		{300, 1, 44},
		{-1, -1, 255},
		{-256, -1, 0},
		{-300, -2, 212},
	}
	for _, tc := range cases {
		if got := tc.x.Floor(); got != tc.floor {
			t.Errorf("Fixed24_8(%d).Floor() = %d, want %d", tc.x, got, tc.floor)
		}
		if got := tc.x.Frac(); got != tc.frac {
			t.Errorf("Fixed24_8(%d).Frac() = %d, want %d", tc.x, got, tc.frac)
		}
	}
}

func TestBlendBounds(t *testing.T) {
	cases := []struct{ src, dst, alpha int32 }{
		{255, 0, 255},
		{0, 255, 255},
		{255, 0, 0},
		{0, 0, 128},
		{255, 255, 128},
	}
	for _, tc := range cases {
		got := Blend(tc.src, tc.dst, tc.alpha)
		if got < 0 || got > 255 {
			t.Errorf("Blend(%d,%d,%d) = %d, out of [0,255]", tc.src, tc.dst, tc.alpha, got)
		}
	}
	if got := Blend(255, 0, 255); got != 255 {
		t.Errorf("Blend(255,0,255) = %d, want 255 (full replace)", got)
	}
	if got := Blend(255, 0, 0); got != 0 {
		t.Errorf("Blend(255,0,0) = %d, want 0 (no coverage, dst unchanged)", got)
	}
}

func TestComputeCellCoverageRange(t *testing.T) {
	rules := []FillRule{FillRuleNonZero, FillRuleEvenOdd}
	for _, rule := range rules {
		for cover := int32(-2); cover <= 2; cover++ {
			for area := int32(-0x20000 - 100); area <= 0x20000+100; area += 997 {
				c := ComputeCellCoverage(cover, area, rule)
				if int(c) < 0 || int(c) > 255 {
					t.Fatalf("ComputeCellCoverage(%d,%d,%v) = %d, out of [0,255]", cover, area, rule, c)
				}
			}
		}
	}
}

func TestComputeCellCoverageFullPixel(t *testing.T) {
	// A fully covered cell under non-zero winding: cover equal to a
	// full pixel's worth of vertical traversal (fixedOne) with area=0
	// means the entire cell lies to one side of the edge.
	got := ComputeCellCoverage(int32(Fixed24_8One), 0, FillRuleNonZero)
	if got != 255 {
		t.Errorf("ComputeCellCoverage(256,0,NonZero) = %d, want 255", got)
	}
}

func TestComputeCellCoverageEmpty(t *testing.T) {
	got := ComputeCellCoverage(0, 0, FillRuleNonZero)
	if got != 0 {
		t.Errorf("ComputeCellCoverage(0,0,NonZero) = %d, want 0", got)
	}
}

func TestMidCoverageRange(t *testing.T) {
	rules := []FillRule{FillRuleNonZero, FillRuleEvenOdd}
	for _, rule := range rules {
		for cover := int32(-600); cover <= 600; cover++ {
			c := midCoverage(cover, rule)
			if int(c) < 0 || int(c) > 255 {
				t.Fatalf("midCoverage(%d,%v) = %d, out of [0,255]", cover, rule, c)
			}
		}
	}
}

func TestFoldEvenOddTriangleWave(t *testing.T) {
	scale := int32(0x100)
	cases := []struct{ in, want int32 }{
		{0, 0},
		{0x80, 0x80},
		{0x100, 0x100},
		{0x180, 0x80},
		{0x200, 0},
		{0x280, 0x80},
	}
	for _, tc := range cases {
		if got := foldEvenOdd(tc.in, scale); got != tc.want {
			t.Errorf("foldEvenOdd(%#x, %#x) = %#x, want %#x", tc.in, scale, got, tc.want)
		}
	}
}
