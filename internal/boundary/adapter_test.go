package boundary

import "testing"

func TestFromArrayShapeMismatch(t *testing.T) {
	_, err := FromArray(make([]float32, 10), 4, 4)
	if err == nil {
		t.Fatalf("expected a ShapeMismatchError for len=10, want=16")
	}
	if _, ok := err.(*ShapeMismatchError); !ok {
		t.Fatalf("error = %T (%v), want *ShapeMismatchError", err, err)
	}
}

func TestFromArrayToArrayRoundTrip(t *testing.T) {
	data := []float32{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}
	g, err := FromArray(data, 4, 3)
	if err != nil {
		t.Fatalf("FromArray: %v", err)
	}
	if g.At(2, 1) != 6 {
		t.Fatalf("At(2,1) = %v, want 6 (row-major: y*width+x)", g.At(2, 1))
	}
	got := ToArray(g)
	if len(got) != len(data) {
		t.Fatalf("ToArray length = %d, want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("round trip mismatch at index %d: got %v, want %v", i, got[i], data[i])
		}
	}
}

func TestToArrayIsACopyNotAView(t *testing.T) {
	g, _ := FromArray([]float32{1, 2, 3, 4}, 2, 2)
	out := ToArray(g)
	out[0] = 99
	if g.At(0, 0) == 99 {
		t.Fatalf("ToArray returned a view into the grid's backing storage, not a copy")
	}
}
