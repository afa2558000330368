package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator paints the static backdrop behind the road.
type Generator struct {
	Width   int
	Height  int
	Horizon int // screen row where sky meets ground
}

// NewGenerator creates a new background generator
func NewGenerator(width, height, horizon int) *Generator {
	if horizon < 0 {
		horizon = 0
	}
	if horizon > height {
		horizon = height
	}
	return &Generator{
		Width:   width,
		Height:  height,
		Horizon: horizon,
	}
}

// Ground is the colour below the horizon.
var Ground = color.RGBA{6, 8, 10, 255}

// GenerateNightSky creates a starfield above the horizon and dark ground
// below it. The same seed always gives the same picture.
func (g *Generator) GenerateNightSky(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	// Sky gets a faint glow towards the horizon
	for y := 0; y < g.Horizon; y++ {
		t := float64(y) / math.Max(1, float64(g.Horizon))
		c := color.RGBA{
			uint8(4 + 14*t*t),
			uint8(6 + 10*t*t),
			uint8(16 + 24*t*t),
			255,
		}
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	for y := g.Horizon; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, Ground)
		}
	}

	if g.Horizon == 0 || g.Width == 0 {
		return img
	}

	// Stars thin out near the horizon
	stars := g.Width * g.Horizon / 60
	for i := 0; i < stars; i++ {
		x := rng.Intn(g.Width)
		y := int(float64(g.Horizon) * math.Pow(rng.Float64(), 1.6))
		if y >= g.Horizon {
			y = g.Horizon - 1
		}
		shade := uint8(120 + rng.Intn(136))
		img.SetRGBA(x, y, color.RGBA{shade, shade, uint8(math.Min(255, float64(shade)+30)), 255})
	}

	return img
}
