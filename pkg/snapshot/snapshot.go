// Package snapshot renders simulation frames to images without a window.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/gogpu/gg"
	"github.com/golangdaddy/nightdriver/pkg/game"
	"github.com/golangdaddy/nightdriver/pkg/logging"
	"github.com/golangdaddy/nightdriver/pkg/projection"
	"github.com/hajimehoshi/bitmapfont/v4"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Text placement of the status line.
const (
	TextX = 10
	TextY = 10
)

// Renderer draws frames of one simulation.
type Renderer struct {
	sim        *game.Simulation
	background image.Image
}

// NewRenderer creates a renderer. background may be nil for a black sky.
func NewRenderer(sim *game.Simulation, background image.Image) *Renderer {
	return &Renderer{sim: sim, background: background}
}

// Render draws the current frame: backdrop, posts, car and status line.
func (r *Renderer) Render() (img *image.RGBA, err error) {
	cfg := r.sim.Mapper().Config()

	var dc *gg.Context
	if r.background != nil {
		dc = gg.NewContextForImage(r.background)
	} else {
		dc = gg.NewContext(cfg.ScreenWidth, cfg.ScreenHeight)
	}
	defer func() {
		if cerr := dc.Close(); cerr != nil {
			logging.Logger().Warn("snapshot context close failed", "err", cerr)
			if err == nil {
				img, err = nil, fmt.Errorf("close context: %w", cerr)
			}
		}
	}()

	if r.background == nil {
		dc.SetColor(game.ColorBackground)
		dc.DrawRectangle(0, 0, float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("fill background: %w", err)
		}
	}

	for _, p := range r.sim.Posts() {
		if err := drawPost(dc, p); err != nil {
			return nil, err
		}
	}
	if err := drawCar(dc, r.sim.Mapper().CarOutline()); err != nil {
		return nil, err
	}

	src := dc.Image()
	img = image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)

	st := r.sim.Status()
	drawText(img, game.StatusLine(st), game.StatusColor(st))
	return img, nil
}

// WritePNG renders the current frame to filename.
func (r *Renderer) WritePNG(filename string) error {
	img, err := r.Render()
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	logging.Logger().Info("snapshot written", "file", filename,
		"frame", r.sim.Frames(), "distance", r.sim.Distance())
	return nil
}

func drawPost(dc *gg.Context, p projection.Post) error {
	left, right := game.PostColors(p.LeftRed)

	dc.SetColor(left)
	dc.DrawRectangle(p.LeftX(), p.Y, projection.PostWidth, projection.PostHeight)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("draw post %d: %w", p.Station, err)
	}

	dc.SetColor(right)
	dc.DrawRectangle(p.RightX(), p.Y, projection.PostWidth, projection.PostHeight)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("draw post %d: %w", p.Station, err)
	}
	return nil
}

func drawCar(dc *gg.Context, outline [4]projection.Point) error {
	dc.SetColor(game.ColorCar)
	dc.MoveTo(outline[0].X, outline[0].Y)
	for _, pt := range outline[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("draw car: %w", err)
	}
	return nil
}

func drawText(dst draw.Image, s string, c color.Color) {
	face := bitmapfont.Face
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(TextX, TextY+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
