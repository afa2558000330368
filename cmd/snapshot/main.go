// Command snapshot drives the simulation headlessly and writes frames as PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golangdaddy/nightdriver/pkg/background"
	"github.com/golangdaddy/nightdriver/pkg/config"
	"github.com/golangdaddy/nightdriver/pkg/game"
	"github.com/golangdaddy/nightdriver/pkg/logging"
	"github.com/golangdaddy/nightdriver/pkg/snapshot"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to JSON tuning file (defaults when empty)")
		seed       = flag.Int64("seed", 0, "Random seed (0 uses NIGHTDRIVER_SEED or the clock)")
		frames     = flag.Int("frames", 300, "Frames to simulate")
		every      = flag.Int("every", 0, "Also write a frame every N frames (0 writes only the last)")
		output     = flag.String("output", "frame.png", "Output file; numbered frames go next to it")
		gear       = flag.Int("gear", 3, "Gear to select before driving")
		accelerate = flag.Bool("accelerate", true, "Hold the accelerator")
		steer      = flag.String("steer", "", "Hold steering: left, right or empty")
		logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	)
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

	in := game.Input{Accelerate: *accelerate}
	switch *steer {
	case "":
	case "left":
		in.SteerLeft = true
	case "right":
		in.SteerRight = true
	default:
		log.Fatalf("invalid -steer %q: want left or right", *steer)
	}

	sim := game.NewSimulation(tuning, game.NewRand(tuning.Seed))
	view := tuning.View
	bg := background.NewGenerator(view.ScreenWidth, view.ScreenHeight, int(view.Horizon)).GenerateNightSky(tuning.Seed)
	renderer := snapshot.NewRenderer(sim, bg)

	sim.Tick(game.Input{Gear: *gear})
	for i := 1; i <= *frames; i++ {
		sim.Tick(in)
		if *every > 0 && i%*every == 0 {
			if err := renderer.WritePNG(numbered(*output, i)); err != nil {
				log.Fatal(err)
			}
		}
	}
	if err := renderer.WritePNG(*output); err != nil {
		log.Fatal(err)
	}
	fmt.Println(game.StatusLine(sim.Status()))
}

// numbered turns "out/frame.png" into "out/frame_0042.png".
func numbered(path string, frame int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%04d%s", path[:len(path)-len(ext)], frame, ext)
}
