package geometry

import (
	"image"
	"testing"
)

func TestParseRectInt(t *testing.T) {
	r, err := ParseRectInt("16, 32,8,12")
	if err != nil {
		t.Fatalf("ParseRectInt: %v", err)
	}
	if want := (RectInt{X: 16, Y: 32, Width: 8, Height: 12}); r != want {
		t.Errorf("got %+v, want %+v", r, want)
	}
	if r.String() != "16,32,8,12" {
		t.Errorf("String() = %q", r.String())
	}

	for _, bad := range []string{"", "1,2,3", "a,b,c,d", "1,2,3,4,5"} {
		if _, err := ParseRectInt(bad); err == nil {
			t.Errorf("ParseRectInt(%q): expected error", bad)
		}
	}
}

func TestRectIntIn(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 32)
	tests := []struct {
		r    RectInt
		want bool
	}{
		{RectInt{0, 0, 64, 32}, true},
		{RectInt{32, 16, 32, 16}, true},
		{RectInt{33, 16, 32, 16}, false},
		{RectInt{-1, 0, 4, 4}, false},
		{RectInt{0, 0, 0, 4}, false},
	}
	for _, tt := range tests {
		if got := tt.r.In(bounds); got != tt.want {
			t.Errorf("%v.In(%v) = %v, want %v", tt.r, bounds, got, tt.want)
		}
	}
}

func TestRectIntConversions(t *testing.T) {
	ir := image.Rect(2, 3, 10, 7)
	r := FromImageRect(ir)
	if r.ImageRect() != ir {
		t.Errorf("round trip: got %v, want %v", r.ImageRect(), ir)
	}
	if r.Area() != 32 {
		t.Errorf("Area() = %d, want 32", r.Area())
	}
	if (RectInt{Width: -2, Height: 5}).Area() != 0 {
		t.Error("empty rect should have zero area")
	}
}
