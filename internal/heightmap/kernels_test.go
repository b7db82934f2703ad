package heightmap

import (
	"math"
	"testing"
)

func TestBilinearExactInteger(t *testing.T) {
	g := New(4, 4)
	g.Set(2, 1, 7.5)
	if got := Bilinear(g, 2, 1); got != 7.5 {
		t.Fatalf("Bilinear at exact integer = %v, want 7.5", got)
	}
}

func TestBilinearHalfway(t *testing.T) {
	g := New(4, 4)
	const a = 10.0
	g.Set(0, 0, 0)
	g.Set(1, 0, a)
	g.Set(0, 1, 0)
	g.Set(1, 1, a)
	got := Bilinear(g, 0.5, 0.5)
	if math.Abs(got-a/2) > 1e-9 {
		t.Fatalf("Bilinear at (0.5,0.5) = %v, want %v", got, a/2)
	}
}

func TestBilinearOutOfBounds(t *testing.T) {
	g := New(4, 4)
	cases := []struct{ x, y float64 }{
		{-0.1, 0}, {0, -0.1}, {3, 0}, {0, 3}, {3.5, 0}, {0, 3.5},
	}
	for _, c := range cases {
		if got := Bilinear(g, c.x, c.y); got != 0 {
			t.Errorf("Bilinear(%v,%v) = %v, want 0 (out of bounds)", c.x, c.y, got)
		}
	}
}

func TestGradientFlat(t *testing.T) {
	g := New(5, 5)
	g.Fill(3.0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			gx, gy, ok := Gradient(g, float64(x), float64(y))
			if !ok {
				t.Fatalf("Gradient(%d,%d) reported out of bounds", x, y)
			}
			if gx != 0 || gy != 0 {
				t.Fatalf("Gradient(%d,%d) = (%v,%v), want (0,0) on a flat map", x, y, gx, gy)
			}
		}
	}
}

func TestGradientOutOfBounds(t *testing.T) {
	g := New(4, 4)
	if _, _, ok := Gradient(g, 3, 0); ok {
		t.Fatalf("Gradient at x=width-1 should report out of bounds")
	}
}

func TestNormalFlatIsUp(t *testing.T) {
	g := New(5, 5)
	g.Fill(42)
	nx, ny, nz := Normal(g, 2, 2)
	if nx != 0 || ny != 0 || nz != 1 {
		t.Fatalf("Normal on flat map = (%v,%v,%v), want (0,0,1)", nx, ny, nz)
	}
}

func TestGridLengthInvariant(t *testing.T) {
	g := New(7, 9)
	if len(g.Data()) != 7*9 {
		t.Fatalf("len(Data()) = %d, want %d", len(g.Data()), 7*9)
	}
	g.Set(3, 4, 1)
	if len(g.Data()) != 7*9 {
		t.Fatalf("len(Data()) changed after Set")
	}
}
