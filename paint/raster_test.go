package paint

import (
	"image"
	"testing"
)

func TestRasterizeEveryPixel(t *testing.T) {
	g := NewLinearGradient(0, 0, 16, 0).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)
	r := image.Rect(4, 2, 20, 6)

	img := Rasterize(g, r, 1)
	if img.Bounds() != r {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), r)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			want := g.ColorAt(float64(x)+0.5, float64(y)+0.5).NRGBA()
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRasterizeUpscalesGrid(t *testing.T) {
	g := NewLinearGradient(0, 0, 64, 0).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)
	r := image.Rect(0, 0, 64, 8)

	img := Rasterize(g, r, 4)
	if img.Bounds() != r {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), r)
	}
	left, right := img.NRGBAAt(0, 4), img.NRGBAAt(63, 4)
	if left.R < 200 || left.B > 55 {
		t.Errorf("left edge = %v, want near red", left)
	}
	if right.B < 200 || right.R > 55 {
		t.Errorf("right edge = %v, want near blue", right)
	}
	prev := 256
	for x := 0; x < 64; x++ {
		c := img.NRGBAAt(x, 4)
		if c.A != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", x, c.A)
		}
		if int(c.R) > prev {
			t.Fatalf("red rises at x=%d: %d > %d", x, c.R, prev)
		}
		prev = int(c.R)
	}
}

func TestRasterizeEmpty(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 0).AddColorStop(0, Red)
	if img := Rasterize(g, image.Rectangle{}, 4); !img.Bounds().Empty() {
		t.Errorf("Bounds() = %v, want empty", img.Bounds())
	}
}
