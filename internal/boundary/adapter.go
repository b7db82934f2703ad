// Package boundary marshals a dense float array and a (width,height) pair
// to/from a heightmap.Grid. This is the seam a language-binding shim would
// sit behind; everything else in this module talks in terms of
// *heightmap.Grid.
package boundary

import (
	"fmt"

	"terra/internal/heightmap"
)

// ShapeMismatchError reports that a dense array's length does not match
// width*height.
type ShapeMismatchError struct {
	Width, Height, Len int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("boundary: array length %d does not match %d*%d", e.Len, e.Width, e.Height)
}

// FromArray builds a heightmap.Grid from a dense row-major array in
// (y=0,x=0),(y=0,x=1)...(y=0,x=w-1),(y=1,x=0)... order. The array is
// bulk-copied into the grid's own backing storage.
func FromArray(data []float32, width, height int) (*heightmap.Grid, error) {
	if len(data) != width*height {
		return nil, &ShapeMismatchError{Width: width, Height: height, Len: len(data)}
	}
	g := heightmap.New(width, height)
	copy(g.Data(), data)
	return g, nil
}

// ToArray returns a dense row-major copy of g's elevation data in the same
// order FromArray expects. Callers that only need to read the grid can use
// g.Data() directly for a zero-copy view instead.
func ToArray(g *heightmap.Grid) []float32 {
	out := make([]float32, len(g.Data()))
	copy(out, g.Data())
	return out
}
