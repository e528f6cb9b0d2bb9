package csscolor

import (
	"math"
	"testing"
)

func TestGamma(t *testing.T) {
	tests := []struct {
		in   uint8
		want float64
	}{
		{0, 0},
		{255, 1},
		{10, 10.0 / 255 / 12.92},
		{128, math.Pow((128.0/255+0.055)/1.055, 2.4)},
	}
	for _, tt := range tests {
		if got := Gamma(tt.in); !floatNear(got, tt.want, 1e-12) {
			t.Errorf("Gamma(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"black", 0},
		{"white", 1},
		{"red", 0.2126},
		{"lime", 0.7152},
		{"blue", 0.0722},
		{"#80808000", 0.2158605}, // alpha ignored
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MustParse(tt.in).RelativeLuminance(); !floatNear(got, tt.want, 1e-6) {
				t.Errorf("RelativeLuminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPerceivedLightness(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		eps  float64
	}{
		{"black", 0, 1e-12},
		{"white", 1, 1e-12},
		{"#808080", 0.53585, 1e-3},
		// y = Gamma(1)*1.0 is far below 216/24389, so the linear branch applies.
		{"#010101", 24389.0 / 27 * (1.0 / 255 / 12.92) / 100, 1e-12},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := MustParse(tt.in).PerceivedLightness()
			if !floatNear(got, tt.want, tt.eps) {
				t.Errorf("PerceivedLightness() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("PerceivedLightness() = %v, outside [0, 1]", got)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	if got := Black.ContrastRatio(White); !floatNear(got, 21, 1e-9) {
		t.Errorf("black/white contrast = %v, want 21", got)
	}

	pairs := [][2]string{
		{"red", "blue"},
		{"#777", "white"},
		{"navy", "gold"},
	}
	for _, p := range pairs {
		a, b := MustParse(p[0]), MustParse(p[1])
		ab, ba := a.ContrastRatio(b), b.ContrastRatio(a)
		if ab != ba {
			t.Errorf("contrast(%s, %s) = %v but reverse = %v", p[0], p[1], ab, ba)
		}
		if ab < 1 || ab > 21 {
			t.Errorf("contrast(%s, %s) = %v, outside [1, 21]", p[0], p[1], ab)
		}
		if self := a.ContrastRatio(a); !floatNear(self, 1, 1e-12) {
			t.Errorf("contrast(%s, %s) = %v, want 1", p[0], p[0], self)
		}
	}

	// #777 on white is the classic 4.48:1 near-miss of WCAG AA.
	if got := MustParse("#777").ContrastRatio(White); !floatNear(got, 4.48, 0.01) {
		t.Errorf("#777/white contrast = %v, want about 4.48", got)
	}
}

func TestBestTextColor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"black", "white"},
		{"white", "black"},
		{"yellow", "black"},
		{"navy", "white"},
		// Luminance crosses 0.1791, where both ratios meet, between 117 and 118.
		{"#757575", "white"},
		{"#767676", "black"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MustParse(tt.in).BestTextColor(); got != tt.want {
				t.Errorf("BestTextColor() = %q, want %q", got, tt.want)
			}
		})
	}
}
