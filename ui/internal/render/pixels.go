package render

import "image/color"

// palette is a small elevation gradient: deep water, shallow water, shore,
// grass, rock, snow cap. fillElevationRGBA linearly interpolates within it.
var palette = []color.RGBA{
	{20, 40, 90, 255},
	{80, 130, 200, 255},
	{210, 200, 140, 255},
	{90, 150, 60, 255},
	{120, 110, 100, 255},
	{250, 250, 250, 255},
}

// fillElevationRGBA converts elevation samples in [lo,hi] into RGBA pixels
// in buf using the fixed palette gradient.
func fillElevationRGBA(buf []byte, elevations []float32, lo, hi float64) {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	last := len(palette) - 1
	for i, e := range elevations {
		t := (float64(e) - lo) / span
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		pos := t * float64(last)
		i0 := int(pos)
		if i0 >= last {
			i0 = last - 1
		}
		frac := pos - float64(i0)
		c := lerpColor(palette[i0], palette[i0+1], frac)

		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
		A: lerpByte(a.A, b.A, t),
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}
