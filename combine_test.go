package csscolor

import (
	"errors"
	"testing"
)

func TestMix(t *testing.T) {
	red := MustParse("red")
	blue := MustParse("#0000ff00")

	tests := []struct {
		name string
		f    float64
		want [4]uint8
	}{
		{"zero", 0, [4]uint8{255, 0, 0, 255}},
		{"one", 1, [4]uint8{0, 0, 255, 0}},
		{"half", 0.5, [4]uint8{128, 0, 128, 128}},
		{"quarter", 0.25, [4]uint8{191, 0, 64, 191}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := red.Mix(blue, tt.f)
			if err != nil {
				t.Fatalf("Mix error: %v", err)
			}
			if got.Bytes() != tt.want {
				t.Errorf("Mix(%v) = %v, want %v", tt.f, got.Bytes(), tt.want)
			}
			if got == red || got == blue {
				t.Error("Mix returned one of its inputs")
			}
		})
	}

	for _, f := range []float64{-0.1, 1.1} {
		if _, err := red.Mix(blue, f); !errors.Is(err, ErrRange) {
			t.Errorf("Mix(%v) error = %v, want ErrRange", f, err)
		}
	}
}

func TestMix_EndpointsKeepHSL(t *testing.T) {
	a := mustHSLA(t, 33.3333333, 0.7, 0.35, 255)
	b := MustParse("teal")

	got, _ := a.Mix(b, 0)
	if !got.Equal(a) || got.Hue() != a.Hue() {
		t.Errorf("Mix(0) = %v hue %v, want %v hue %v", got, got.Hue(), a, a.Hue())
	}
	got, _ = a.Mix(b, 1)
	if !got.Equal(b) {
		t.Errorf("Mix(1) = %v, want %v", got, b)
	}
}

func TestComplement(t *testing.T) {
	c := MustParse("red").Complement()
	if !floatNear(c.Hue(), 180, 1e-9) {
		t.Errorf("Complement().Hue() = %v, want 180", c.Hue())
	}
	if got, want := c.Bytes(), [4]uint8{0, 255, 255, 255}; got != want {
		t.Errorf("Complement() = %v, want %v", got, want)
	}

	base := mustHSLA(t, 300, 0.42, 0.33, 99)
	comp := base.Complement()
	if h, s, l := comp.HSL(); h != 120 || s != 0.42 || l != 0.33 {
		t.Errorf("Complement HSL = (%v, %v, %v), want (120, 0.42, 0.33)", h, s, l)
	}
	if comp.Alpha() != 99 {
		t.Errorf("Complement alpha = %d, want 99", comp.Alpha())
	}
	if back := comp.Complement(); back.Hue() != 300 {
		t.Errorf("double complement hue = %v, want 300", back.Hue())
	}
}

func TestAverage(t *testing.T) {
	if _, err := Average(); !errors.Is(err, ErrArgumentCount) {
		t.Errorf("Average() error = %v, want ErrArgumentCount", err)
	}

	one := MustParse("#123456")
	got, err := Average(one)
	if err != nil {
		t.Fatalf("Average(one) error: %v", err)
	}
	if got != one {
		t.Errorf("Average(one) = %p, want the same color %p", got, one)
	}

	tests := []struct {
		name   string
		colors []string
		want   [4]uint8
	}{
		{"black white white", []string{"black", "white", "white"}, [4]uint8{170, 170, 170, 255}},
		{"alpha averaged", []string{"#00000000", "#000000ff"}, [4]uint8{0, 0, 0, 128}},
		{"primaries", []string{"red", "lime", "blue"}, [4]uint8{85, 85, 85, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := make([]*Color, len(tt.colors))
			for i, s := range tt.colors {
				colors[i] = MustParse(s)
			}
			got, err := Average(colors...)
			if err != nil {
				t.Fatalf("Average error: %v", err)
			}
			if got.Bytes() != tt.want {
				t.Errorf("Average = %v, want %v", got.Bytes(), tt.want)
			}
		})
	}
}
