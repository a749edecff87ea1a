// Command retaineddemo animates gradient fills on a retained SVG display
// and writes the final document.
package main

import (
	"flag"
	"image"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/retained"
	"github.com/gogpu/retained/block"
	"github.com/gogpu/retained/display"
	"github.com/gogpu/retained/paint"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML display config")
		frames     = flag.Int("frames", 60, "number of frames to animate")
		output     = flag.String("output", "demo.svg", "output SVG file")
		swatch     = flag.String("swatch", "", "optional PNG file sampling the gradients")
		verbose    = flag.Bool("v", false, "log per-frame bookkeeping")
	)
	flag.Parse()

	cfg := display.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = display.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	var opts []display.Option
	if *verbose {
		opts = append(opts, display.WithLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	d, err := display.NewFromConfig(cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to create display: %v", err)
	}

	s, err := newScene(d)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	var writes uint64
	for f := 0; f < *frames; f++ {
		s.animate(float64(f) / float64(max(*frames, 1)))
		stats := d.UpdateDisplay()
		writes += stats.Writes
		retained.Logger().Info("frame", "n", stats.Frame, "gradients", stats.Gradients,
			"blocks", stats.Blocks, "writes", stats.Writes, "took", stats.Duration)
	}
	if retained.Verifying() {
		block.AuditChain(s.blocks[0], s.drawables[0])
	}

	if err := writeSVG(d, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d frames, %d writes)\n",
		*output, d.Width(), d.Height(), *frames, writes)

	if *swatch != "" {
		if err := writeSwatch(*swatch, d.Width(), d.Height(), s.linear, s.radial); err != nil {
			log.Fatalf("Failed to save swatch: %v", err)
		}
		log.Printf("Swatch saved to %s\n", *swatch)
	}

	s.teardown(d)
	d.Dispose()
}

// scene is two blocks of three drawables: a row of linear gradient bars
// over a row of radial gradient tiles.
type scene struct {
	blocks    []*block.Block
	drawables []*block.Drawable

	linear *paint.LinearGradient
	radial *paint.RadialGradient
	from   *paint.ColorProperty
	to     *paint.ColorProperty
	glow   *paint.ColorProperty
}

func newScene(d *display.Display) (*scene, error) {
	w, h := d.Width(), d.Height()
	s := &scene{
		from: paint.NewColorProperty(paint.MustParseColor("tomato")),
		to:   paint.NewColorProperty(paint.MustParseColor("#1e90ff")),
		glow: paint.NewColorProperty(paint.MustParseColor("gold")),
	}
	s.linear = paint.NewLinearGradient(0, 0, float64(w), 0).
		AddColorStop(0, s.from).
		AddColorStop(1, s.to)
	s.radial = paint.NewRadialGradient(float64(w)/2, float64(h)*0.75, 0, float64(w)/2, float64(h)*0.75, float64(h)/4).
		AddColorStop(0, s.glow).
		AddColorStop(1, paint.MustParseColor("rgba(0,0,0,0)")).
		SetExtend(paint.ExtendReflect)

	for z := range 2 {
		b, err := d.NewBlock(retained.RendererSVG, z)
		if err != nil {
			return nil, err
		}
		s.blocks = append(s.blocks, b)
	}
	block.LinkBlocks(s.blocks[0], s.blocks[1])

	cell := w / 3
	for i := range 6 {
		dr := d.NewDrawable(retained.RendererSVG)
		row := i / 3
		dr.Bounds = image.Rect((i%3)*cell, row*h/2, (i%3+1)*cell, (row+1)*h/2)
		if row == 0 {
			dr.Fill = s.linear
		} else {
			dr.Fill = s.radial
		}
		s.drawables = append(s.drawables, dr)
	}
	block.LinkAll(s.drawables...)

	for row, b := range s.blocks {
		members := s.drawables[row*3 : row*3+3]
		for _, dr := range members {
			b.AddDrawable(dr)
		}
		b.NotifyInterval(members[0], members[2])
	}
	return s, nil
}

// animate moves the stop colors to position t in [0, 1).
func (s *scene) animate(t float64) {
	phase := 0.5 - 0.5*math.Cos(2*math.Pi*t)
	s.from.Set(paint.MustParseColor("tomato").Lerp(paint.MustParseColor("orchid"), phase))
	s.to.Set(paint.MustParseColor("#1e90ff").Lerp(paint.MustParseColor("seagreen"), phase))
	s.glow.Set(paint.MustParseColor("gold").Lerp(paint.White, phase))
}

func (s *scene) teardown(d *display.Display) {
	for _, b := range s.blocks {
		for dr := b.First(); dr != nil; {
			next := dr.Next
			b.RemoveDrawable(dr)
			if dr == b.Last() {
				break
			}
			dr = next
		}
		b.NotifyInterval(nil, nil)
		d.DisposeBlock(b)
	}
	for _, dr := range s.drawables {
		block.Unlink(dr)
		d.DisposeDrawable(dr)
	}
}

func writeSVG(d *display.Display, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Document().Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// swatchStep is the sampling cell size of the PNG swatch in pixels.
const swatchStep = 4

// writeSwatch samples both gradients: the linear one fills the top half,
// the radial one the bottom half.
func writeSwatch(path string, w, h int, linear, radial paint.Gradient) error {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	top := image.Rect(0, 0, w, h/2)
	bottom := image.Rect(0, h/2, w, h)
	draw.Draw(img, top, paint.Rasterize(linear, top, swatchStep), top.Min, draw.Src)
	draw.Draw(img, bottom, paint.Rasterize(radial, bottom, swatchStep), bottom.Min, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
