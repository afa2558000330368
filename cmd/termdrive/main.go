// Command termdrive plays Night Driver in a text terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/nightdriver/pkg/config"
	"github.com/golangdaddy/nightdriver/pkg/game"
	"github.com/golangdaddy/nightdriver/pkg/logging"
	"github.com/golangdaddy/nightdriver/pkg/terminal"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON tuning file (defaults when empty)")
	seed := flag.Int64("seed", 0, "Random seed (0 uses NIGHTDRIVER_SEED or the clock)")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()
	// The screen owns stdout; logs go to stderr, which can be redirected.
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	sim := game.NewSimulation(tuning, game.NewRand(tuning.Seed))
	if err := terminal.Run(screen, sim); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	fmt.Printf("Drove %d stations in %d frames\n", sim.Distance(), sim.Frames())
}
