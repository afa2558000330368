package ui

import (
	"image/color"
	"math"

	"github.com/golangdaddy/nightdriver/pkg/game"
	"github.com/golangdaddy/nightdriver/pkg/projection"
	"github.com/golangdaddy/nightdriver/pkg/road"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// titleAdvanceFrames is how often the idle road behind the title scrolls.
const titleAdvanceFrames = 8

// TitleScreen shows the game name over an idle straight road.
type TitleScreen struct {
	frames         int
	road           *road.Buffer
	mapper         *projection.Mapper
	posts          []projection.Post
	onStartPressed func()
}

// NewTitleScreen creates a title screen for the given view.
func NewTitleScreen(view projection.Config, stations int, onStartPressed func()) *TitleScreen {
	ts := &TitleScreen{
		road:           road.NewBuffer(stations),
		mapper:         projection.NewMapper(view),
		onStartPressed: onStartPressed,
	}
	ts.posts = ts.mapper.ProjectAll(nil, ts.road, 0)
	return ts
}

// Update scrolls the idle road and waits for ENTER or SPACE.
func (ts *TitleScreen) Update() error {
	ts.frames++
	if ts.frames%titleAdvanceFrames == 0 {
		ts.road.Advance(0)
		ts.posts = ts.mapper.ProjectAll(ts.posts[:0], ts.road, 0)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen.
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(game.ColorBackground)

	for i := len(ts.posts) - 1; i >= 0; i-- {
		drawPost(screen, ts.posts[i])
	}

	seconds := float64(ts.frames) / float64(ebiten.TPS())
	centerX := float64(width) / 2
	centerY := float64(height) / 4

	// Pulse between 3x and 3.3x.
	scale := 3.0 * (1 + 0.1*sinWave(seconds*2))
	drawCentered(screen, "NIGHT DRIVER", centerX, centerY-8*scale, scale, color.RGBA{255, 200, 50, 255})
	drawCentered(screen, "Endless Road", centerX, centerY+24, 1.5, color.RGBA{180, 180, 200, 255})

	if int(seconds*2)%2 == 0 {
		drawCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)/2, 1, color.RGBA{150, 200, 255, 255})
	}
}

// sinWave returns a sine wave value between -1 and 1.
func sinWave(t float64) float64 {
	return math.Sin(t)
}

// drawPost draws the left and right markers of one station.
func drawPost(dst *ebiten.Image, p projection.Post) {
	left, right := game.PostColors(p.LeftRed)
	y := float32(p.Y)
	vector.DrawFilledRect(dst, float32(p.LeftX()), y, projection.PostWidth, projection.PostHeight, left, false)
	vector.DrawFilledRect(dst, float32(p.RightX()), y, projection.PostWidth, projection.PostHeight, right, false)
}
