package paint

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Rasterize samples g over r into a new image. With step > 1 the gradient is
// sampled once per step x step cell and the grid is upscaled with bilinear
// filtering; step <= 1 samples every pixel centre.
func Rasterize(g Gradient, r image.Rectangle, step int) *image.NRGBA {
	dst := image.NewNRGBA(r)
	if r.Empty() {
		return dst
	}
	if step <= 1 {
		sample(dst, g, r, 1)
		return dst
	}

	cw := (r.Dx() + step - 1) / step
	ch := (r.Dy() + step - 1) / step
	grid := image.NewNRGBA(image.Rect(0, 0, cw, ch))
	sample(grid, g, r, step)

	s2d := Translate(float64(r.Min.X), float64(r.Min.Y)).
		Multiply(Scale(float64(step), float64(step)))
	xdraw.BiLinear.Transform(dst, s2d.Aff3(), grid, grid.Bounds(), xdraw.Src, nil)
	return dst
}

// sample fills img with one gradient lookup per pixel, pixel (i, j) standing
// for the centre of the step-sized cell at origin.Min + (i, j)*step.
func sample(img *image.NRGBA, g Gradient, origin image.Rectangle, step int) {
	b := img.Bounds()
	s := float64(step)
	for j := b.Min.Y; j < b.Max.Y; j++ {
		y := float64(origin.Min.Y) + (float64(j-b.Min.Y)+0.5)*s
		for i := b.Min.X; i < b.Max.X; i++ {
			x := float64(origin.Min.X) + (float64(i-b.Min.X)+0.5)*s
			img.SetNRGBA(i, j, g.ColorAt(x, y).NRGBA())
		}
	}
}
