package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/golangdaddy/nightdriver/pkg/audio"
	"github.com/golangdaddy/nightdriver/pkg/background"
	"github.com/golangdaddy/nightdriver/pkg/config"
	"github.com/golangdaddy/nightdriver/pkg/game"
	"github.com/golangdaddy/nightdriver/pkg/logging"
	"github.com/golangdaddy/nightdriver/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game and switches between the title and the drive.
type Game struct {
	tuning        config.Tuning
	sim           *game.Simulation
	background    image.Image
	engine        *audio.Engine
	currentScreen ui.Screen
}

// NewGame builds the simulation and opens the title screen.
func NewGame(tuning config.Tuning, engine *audio.Engine) *Game {
	view := tuning.View
	g := &Game{
		tuning:     tuning,
		sim:        game.NewSimulation(tuning, game.NewRand(tuning.Seed)),
		background: background.NewGenerator(view.ScreenWidth, view.ScreenHeight, int(view.Horizon)).GenerateNightSky(tuning.Seed),
		engine:     engine,
	}
	g.showTitle()
	return g
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.tuning.View, g.tuning.Stations, g.startDriving)
}

// startDriving puts a fresh car on the road.
func (g *Game) startDriving() {
	g.sim.Reset()
	var engine ui.EngineSound
	if g.engine != nil {
		engine = g.engine
	}
	g.currentScreen = ui.NewGameplayScreen(g.sim, g.background, engine, func() {
		logging.Logger().Info("drive ended", "frames", g.sim.Frames(), "distance", g.sim.Distance())
		g.showTitle()
	})
	log.Printf("Drive started (gear %d, seed %d)", g.sim.Status().Gear, g.tuning.Seed)
}

// Update is called every tick.
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout keeps the logical screen at the tuned view size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.tuning.View.ScreenWidth, g.tuning.View.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "Path to JSON tuning file (defaults when empty)")
	seed := flag.Int64("seed", 0, "Random seed (0 uses NIGHTDRIVER_SEED or the clock)")
	mute := flag.Bool("mute", false, "Disable engine audio")
	scale := flag.Int("scale", 2, "Window scale factor")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	logging.New(logging.ParseLevel(*logLevel))

	tuning := config.Default()
	if *configPath != "" {
		var err error
		tuning, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config %q: %v", *configPath, err)
		}
	}
	if err := tuning.ApplyEnv(os.Getenv); err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		tuning.Seed = *seed
	}
	if *mute {
		tuning.Audio.Enabled = false
	}
	if *scale < 1 {
		*scale = 1
	}

	var engine *audio.Engine
	if tuning.Audio.Enabled {
		var err error
		engine, err = audio.NewEngine(tuning.Audio.Volume, tuning.Seed)
		if err != nil {
			// Driving works without sound.
			logging.Logger().Warn("engine audio unavailable", "err", err)
		} else {
			defer engine.Close()
		}
	}

	ebiten.SetTPS(tuning.TicksPerSecond)
	ebiten.SetWindowSize(tuning.View.ScreenWidth**scale, tuning.View.ScreenHeight**scale)
	ebiten.SetWindowTitle("Night Driver")
	if err := ebiten.RunGame(NewGame(tuning, engine)); err != nil {
		log.Fatal(err)
	}
}
