package ui

import (
	"image"

	"github.com/golangdaddy/nightdriver/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD placement.
const (
	hudX = 10
	hudY = 10
)

// EngineSound follows the car once per frame.
type EngineSound interface {
	Update(speed, topSpeed float64, offRoad bool)
}

// KeyBindings maps keys onto driver input.
type KeyBindings struct {
	Accelerate []ebiten.Key
	Left       []ebiten.Key
	Right      []ebiten.Key
	Gears      []ebiten.Key // Gears[i] selects gear i+1
	Reset      []ebiten.Key
}

// DefaultKeyBindings uses the arrows and WASD to drive and 1-4 for gears.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Accelerate: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Left:       []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:      []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Gears: []ebiten.Key{
			ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		},
		Reset: []ebiten.Key{ebiten.KeyR},
	}
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// Input builds one frame of driver input. pressed reports held keys and
// justPressed keys that went down this frame.
func (b KeyBindings) Input(pressed, justPressed func(ebiten.Key) bool) game.Input {
	in := game.Input{
		Accelerate: anyKey(b.Accelerate, pressed),
		SteerLeft:  anyKey(b.Left, pressed),
		SteerRight: anyKey(b.Right, pressed),
	}
	for i, k := range b.Gears {
		if justPressed(k) {
			in.Gear = i + 1
			break
		}
	}
	return in
}

// GameplayScreen drives the simulation from the keyboard.
type GameplayScreen struct {
	sim        *game.Simulation
	keys       KeyBindings
	engine     EngineSound
	background *ebiten.Image
	vertices   []ebiten.Vertex
	onExit     func()
}

// NewGameplayScreen creates the driving screen. engine may be nil.
func NewGameplayScreen(sim *game.Simulation, background image.Image, engine EngineSound, onExit func()) *GameplayScreen {
	gs := &GameplayScreen{
		sim:    sim,
		keys:   DefaultKeyBindings(),
		engine: engine,
		onExit: onExit,
	}
	if background != nil {
		gs.background = ebiten.NewImageFromImage(background)
	}
	return gs
}

// Update advances the simulation by one frame.
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.engine != nil {
			gs.engine.Update(0, gs.sim.Car().TopSpeed(), false)
		}
		if gs.onExit != nil {
			gs.onExit()
		}
		return nil
	}
	if anyKey(gs.keys.Reset, inpututil.IsKeyJustPressed) {
		gs.sim.Reset()
	}

	st := gs.sim.Tick(gs.keys.Input(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	if gs.engine != nil {
		gs.engine.Update(st.Speed, gs.sim.Car().TopSpeed(), st.OffRoad)
	}
	return nil
}

// Draw renders the night backdrop, the posts, the car and the HUD.
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	if gs.background != nil {
		screen.DrawImage(gs.background, nil)
	} else {
		screen.Fill(game.ColorBackground)
	}

	posts := gs.sim.Posts()
	for i := len(posts) - 1; i >= 0; i-- {
		drawPost(screen, posts[i])
	}

	gs.drawCar(screen)

	st := gs.sim.Status()
	drawText(screen, game.StatusLine(st), hudX, hudY, 1, game.StatusColor(st))
}

// drawCar fills the car outline as two triangles.
func (gs *GameplayScreen) drawCar(screen *ebiten.Image) {
	outline := gs.sim.Mapper().CarOutline()
	c := game.ColorCar
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255

	gs.vertices = gs.vertices[:0]
	for _, p := range outline {
		gs.vertices = append(gs.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	screen.DrawTriangles(gs.vertices, carIndices, whiteSubImage, nil)
}

var carIndices = []uint16{0, 1, 2, 0, 2, 3}
