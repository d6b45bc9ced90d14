package embed

import "math"

// ReferenceColor is hsl(37°, 100%, 50%), used when a presentation carries
// no accent color.
var ReferenceColor = HSLToRGB(37, 1, 0.5)

// HSLToRGB converts hue h in degrees [0,360) and saturation s and lightness
// l in [0,1] to a packed 24-bit RGB integer. Channels round half to even.
func HSLToRGB(h, s, l float64) int {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r1, g1, b1 float64
	switch {
	case hp >= 0 && hp < 1:
		r1, g1, b1 = c, x, 0
	case hp >= 1 && hp < 2:
		r1, g1, b1 = x, c, 0
	case hp >= 2 && hp < 3:
		r1, g1, b1 = 0, c, x
	case hp >= 3 && hp < 4:
		r1, g1, b1 = 0, x, c
	case hp >= 4 && hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	m := l - c/2
	r := channel(r1 + m)
	g := channel(g1 + m)
	b := channel(b1 + m)
	return r<<16 | g<<8 | b
}

func channel(v float64) int {
	return int(math.RoundToEven(v * 255))
}
