package layout

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCenterSquare(t *testing.T) {
	tests := []struct {
		name string
		rect image.Rectangle
		side int
		want image.Rectangle
	}{
		{name: "tall window", rect: image.Rect(0, 0, 300, 450), side: 300, want: image.Rect(0, 75, 300, 375)},
		{name: "wide window", rect: image.Rect(0, 0, 400, 100), side: 100, want: image.Rect(150, 0, 250, 100)},
		{name: "side clamped", rect: image.Rect(0, 0, 80, 60), side: 500, want: image.Rect(10, 0, 70, 60)},
		{name: "offset rect", rect: image.Rect(10, 20, 110, 120), side: 50, want: image.Rect(35, 45, 85, 95)},
		{name: "negative side", rect: image.Rect(0, 0, 10, 10), side: -3, want: image.Rect(5, 5, 5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, CenterSquare(tt.rect, tt.side)); diff != "" {
				t.Errorf("CenterSquare() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitHorizontal(t *testing.T) {
	top, bottom := SplitHorizontal(image.Rect(0, 0, 100, 50), 80)
	if diff := cmp.Diff([]image.Rectangle{image.Rect(0, 0, 100, 50), image.Rect(0, 50, 100, 50)}, []image.Rectangle{top, bottom}); diff != "" {
		t.Errorf("SplitHorizontal() mismatch (-want +got):\n%s", diff)
	}
}

func TestInset(t *testing.T) {
	if got := Inset(image.Rect(0, 0, 10, 10), 2); got != image.Rect(2, 2, 8, 8) {
		t.Errorf("Inset() = %v", got)
	}
	if got := Inset(image.Rect(0, 0, 10, 10), 0); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("Inset(0) = %v", got)
	}
}
