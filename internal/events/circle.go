package events

const (
	circleOrange  = "🟠"
	circleGreen   = "🟢"
	circleRed     = "🔴"
	circleYellow  = "🟡"
	circleBlue    = "🔵"
	genericSquare = "▫️"
)

var exactCircles = map[int]string{
	ColorOrange: circleOrange,
	ColorGreen:  circleGreen,
	ColorRed:    circleRed,
	ColorYellow: circleYellow,
	ColorBlue:   circleBlue,
}

type colorRange struct {
	lo, hi int
	glyph  string
}

// Evaluated in order; the red band sits inside the orange band and only
// matters if the orange band is ever narrowed.
var circleRanges = []colorRange{
	{lo: 0xF00000, hi: 0xFFFF00, glyph: circleOrange},
	{lo: 0x00FF00, hi: 0x33FF33, glyph: circleGreen},
	{lo: 0xFF0000, hi: 0xFF5555, glyph: circleRed},
}

// CircleFor maps an accent color to a colored circle glyph used as the
// Category field prefix.
func CircleFor(color int) string {
	if glyph, ok := exactCircles[color]; ok {
		return glyph
	}
	for _, r := range circleRanges {
		if color >= r.lo && color <= r.hi {
			return r.glyph
		}
	}
	return genericSquare
}
