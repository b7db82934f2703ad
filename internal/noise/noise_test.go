package noise

import "testing"

func TestDeterminism(t *testing.T) {
	a := NewSource(12345)
	b := NewSource(12345)
	for i := 0; i < 50; i++ {
		x, y := float64(i)*0.37, float64(i)*1.11
		if a.Noise(x, y) != b.Noise(x, y) {
			t.Fatalf("Noise not deterministic for seed 12345 at (%v,%v)", x, y)
		}
	}
}

func TestPeriod256(t *testing.T) {
	s := NewSource(7)
	for i := 0; i < 20; i++ {
		x, y := float64(i)*0.13, float64(i)*0.29
		a := s.Noise(x, y)
		b := s.Noise(x+256, y+256)
		if a != b {
			t.Fatalf("Noise period-256 violated at (%v,%v): %v != %v", x, y, a, b)
		}
	}
}

func TestFadeEndpointsAndMonotonic(t *testing.T) {
	if fade(0) != 0 {
		t.Fatalf("fade(0) = %v, want 0", fade(0))
	}
	if fade(1) != 1 {
		t.Fatalf("fade(1) = %v, want 1", fade(1))
	}
	prev := fade(0)
	for i := 1; i <= 100; i++ {
		v := fade(float64(i) / 100)
		if v < prev {
			t.Fatalf("fade not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestFadeDerivativeNearZeroAtEndpoints(t *testing.T) {
	const h = 1e-4
	d0 := (fade(h) - fade(0)) / h
	d1 := (fade(1) - fade(1-h)) / h
	if d0 > 1e-2 {
		t.Fatalf("fade'(0) ~= %v, want ~0", d0)
	}
	if d1 > 1e-2 {
		t.Fatalf("fade'(1) ~= %v, want ~0", d1)
	}
}

func TestValidateFbmParams(t *testing.T) {
	good := FbmParams{Frequency: 0.1, Amplitude: 1, Octaves: 4, Persistence: 0.5, Lacunarity: 2}
	if err := ValidateFbmParams(good); err != nil {
		t.Fatalf("unexpected error for valid params: %v", err)
	}

	bad := []FbmParams{
		{Frequency: 0, Amplitude: 1, Octaves: 4, Persistence: 0.5, Lacunarity: 2},
		{Frequency: 0.1, Amplitude: -1, Octaves: 4, Persistence: 0.5, Lacunarity: 2},
		{Frequency: 0.1, Amplitude: 1, Octaves: 0, Persistence: 0.5, Lacunarity: 2},
		{Frequency: 0.1, Amplitude: 1, Octaves: 17, Persistence: 0.5, Lacunarity: 2},
	}
	for i, p := range bad {
		if err := ValidateFbmParams(p); err == nil {
			t.Errorf("case %d: expected error, got nil", i)
		}
	}
}
