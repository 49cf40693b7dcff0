package color

import (
	"errors"
	"testing"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name string
		px   []Pixel
		want Pixel
	}{
		{
			name: "mixed alpha",
			px: []Pixel{
				MakePixel(0x00, 0x00, 0x00, 0xFF),
				MakePixel(0xFF, 0xFF, 0xFF, 0x00),
				MakePixel(0x80, 0x80, 0x80, 0xFF),
				MakePixel(0x40, 0x40, 0x40, 0xFF),
			},
			want: 0x6F6F6FBF,
		},
		{name: "single", px: []Pixel{0xDEADBEEF}, want: 0xDEADBEEF},
		{name: "floor", px: []Pixel{0x01010101, 0x00000000}, want: 0x00000000},
		{name: "pair", px: []Pixel{0x40000020, 0x00400020}, want: 0x20200020},
		{name: "saturated", px: []Pixel{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}, want: 0xFFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Average(tt.px...)
			if err != nil {
				t.Fatalf("Average: %v", err)
			}
			if got != tt.want {
				t.Errorf("Average = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageEmpty(t *testing.T) {
	if _, err := Average(); !errors.Is(err, ErrEmptyAverageSet) {
		t.Fatalf("Average() error = %v, want ErrEmptyAverageSet", err)
	}
}

func TestAverageLargeSet(t *testing.T) {
	px := make([]Pixel, 1<<20)
	for i := range px {
		px[i] = 0xFFFFFFFF
	}
	got, err := Average(px...)
	if err != nil {
		t.Fatalf("Average: %v", err)
	}
	if got != 0xFFFFFFFF {
		t.Errorf("Average = %v, want 0xFFFFFFFF", got)
	}
}
