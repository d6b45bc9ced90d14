package embed

import "testing"

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    int
	}{
		{"reference amber", 37, 1, 0.5, 0xFF9D00},
		{"red", 0, 1, 0.5, 0xFF0000},
		{"yellow", 60, 1, 0.5, 0xFFFF00},
		{"green", 120, 1, 0.5, 0x00FF00},
		{"cyan", 180, 1, 0.5, 0x00FFFF},
		{"blue", 240, 1, 0.5, 0x0000FF},
		{"magenta", 300, 1, 0.5, 0xFF00FF},
		{"white", 0, 0, 1, 0xFFFFFF},
		{"black", 0, 0, 0, 0x000000},
		{"mid grey rounds half to even", 0, 0, 0.5, 0x808080},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HSLToRGB(tc.h, tc.s, tc.l); got != tc.want {
				t.Fatalf("HSLToRGB(%v, %v, %v) = %#06x, want %#06x", tc.h, tc.s, tc.l, got, tc.want)
			}
		})
	}
}

func TestReferenceColorIsStable(t *testing.T) {
	first := HSLToRGB(37, 1, 0.5)
	for i := 0; i < 5; i++ {
		if got := HSLToRGB(37, 1, 0.5); got != first {
			t.Fatalf("HSLToRGB not deterministic: %#06x vs %#06x", got, first)
		}
	}
	if ReferenceColor != first {
		t.Fatalf("ReferenceColor = %#06x, want %#06x", ReferenceColor, first)
	}
	if r := ReferenceColor >> 16; r != 0xFF {
		t.Fatalf("expected saturated red channel, got %#x", r)
	}
}
