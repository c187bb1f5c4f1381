package viewer

import "image/color"

// Trough to crest colour ramp
var ramp = []color.RGBA{
	{3, 4, 94, 255},
	{2, 62, 138, 255},
	{0, 119, 182, 255},
	{0, 150, 199, 255},
	{0, 180, 216, 255},
	{72, 202, 228, 255},
	{144, 224, 239, 255},
	{202, 240, 248, 255},
}

// heightColor linearly blends the ramp for z in [-scale, scale].
func heightColor(z, scale float64) color.RGBA {
	if scale <= 0 {
		return ramp[len(ramp)/2]
	}
	u := (z/scale + 1) / 2
	if u <= 0 {
		return ramp[0]
	}
	if u >= 1 {
		return ramp[len(ramp)-1]
	}
	pos := u * float64(len(ramp)-1)
	i := int(pos)
	f := pos - float64(i)
	a, b := ramp[i], ramp[i+1]
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*f + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// fillHeightRGBA writes one pixel per control point into buf with North up.
// buf must hold 4*rows*cols bytes.
func fillHeightRGBA(buf []byte, heights [][]float64, scale float64) {
	rows := len(heights)
	for i, row := range heights {
		y := rows - 1 - i
		for j, z := range row {
			base := (y*len(row) + j) * 4
			c := heightColor(z, scale)
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}
