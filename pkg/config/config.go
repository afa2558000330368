// Package config loads the game's tuning constants.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/golangdaddy/nightdriver/pkg/projection"
	"github.com/golangdaddy/nightdriver/pkg/road"
	"github.com/golangdaddy/nightdriver/pkg/vehicle"
)

// Environment overrides.
const (
	EnvSeed = "NIGHTDRIVER_SEED"
	EnvMute = "NIGHTDRIVER_MUTE"
)

// AudioConfig controls the engine sound.
type AudioConfig struct {
	Enabled bool    `json:"enabled"`
	Volume  float64 `json:"volume"`
}

// Tuning holds every constant the simulation and its frontends use.
type Tuning struct {
	Seed           int64             `json:"seed"` // 0 seeds from the clock
	Stations       int               `json:"stations"`
	ScrollDivisor  float64           `json:"scroll_divisor"`
	TicksPerSecond int               `json:"ticks_per_second"`
	Curve          road.CurveConfig  `json:"curve"`
	Vehicle        vehicle.Config    `json:"vehicle"`
	View           projection.Config `json:"view"`
	Audio          AudioConfig       `json:"audio"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Stations:       40,
		ScrollDivisor:  road.DefaultScrollDivisor,
		TicksPerSecond: 60,
		Curve:          road.DefaultCurveConfig(),
		Vehicle:        vehicle.DefaultConfig(),
		View:           projection.DefaultConfig(),
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.25,
		},
	}
}

// Load reads a JSON tuning file. Fields missing from the file keep their
// default values.
func Load(filename string) (Tuning, error) {
	t := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning file %s: %w", filename, err)
	}
	return t, t.Validate()
}

// Save writes the tuning as indented JSON.
func (t Tuning) Save(filename string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (t *Tuning) ApplyEnv(getenv func(string) string) error {
	if s := getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, s, err)
		}
		t.Seed = seed
	}
	if s := strings.TrimSpace(getenv(EnvMute)); s != "" {
		mute, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMute, s, err)
		}
		t.Audio.Enabled = !mute
	}
	return nil
}

// Validate reports every field that would break the simulation.
func (t Tuning) Validate() error {
	var errs []error
	if t.Stations < road.MinStations {
		errs = append(errs, fmt.Errorf("stations must be at least %d, got %d", road.MinStations, t.Stations))
	}
	if !(t.ScrollDivisor >= road.MinScrollDivisor) || math.IsInf(t.ScrollDivisor, 1) {
		errs = append(errs, fmt.Errorf("scroll_divisor must be at least %v, got %v", road.MinScrollDivisor, t.ScrollDivisor))
	}
	if t.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("ticks_per_second must be positive, got %d", t.TicksPerSecond))
	}
	if t.Curve.Smoothing < 0 || t.Curve.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("curve.smoothing must be in [0,1], got %v", t.Curve.Smoothing))
	}
	if t.Curve.MinFrames < 1 || t.Curve.MaxFrames < t.Curve.MinFrames {
		errs = append(errs, fmt.Errorf("curve frame range %d..%d is empty", t.Curve.MinFrames, t.Curve.MaxFrames))
	}
	if len(t.Vehicle.GearSpeeds) == 0 {
		errs = append(errs, errors.New("vehicle.gear_speeds must not be empty"))
	}
	for i, s := range t.Vehicle.GearSpeeds {
		if s < 0 {
			errs = append(errs, fmt.Errorf("vehicle.gear_speeds[%d] is negative", i))
		}
	}
	if t.Vehicle.StartGear < 0 || t.Vehicle.StartGear >= len(t.Vehicle.GearSpeeds) {
		errs = append(errs, fmt.Errorf("vehicle.start_gear %d is not in the gear table", t.Vehicle.StartGear))
	}
	if t.Vehicle.OffRoadPenalty < 0 || t.Vehicle.OffRoadPenalty > 1 {
		errs = append(errs, fmt.Errorf("vehicle.off_road_penalty must be in [0,1], got %v", t.Vehicle.OffRoadPenalty))
	}
	if t.View.ScreenWidth <= 0 || t.View.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("view size %dx%d is invalid", t.View.ScreenWidth, t.View.ScreenHeight))
	}
	if t.View.Horizon >= float64(t.View.ScreenHeight) {
		errs = append(errs, fmt.Errorf("view.horizon %v must be above the bottom edge", t.View.Horizon))
	}
	if t.Audio.Volume < 0 || t.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0,1], got %v", t.Audio.Volume))
	}
	return errors.Join(errs...)
}
