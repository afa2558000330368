// Package game wires the road, the car and the projection into one
// simulation that advances exactly once per frame.
package game

import (
	"math/rand"
	"time"

	"github.com/golangdaddy/nightdriver/pkg/config"
	"github.com/golangdaddy/nightdriver/pkg/logging"
	"github.com/golangdaddy/nightdriver/pkg/projection"
	"github.com/golangdaddy/nightdriver/pkg/road"
	"github.com/golangdaddy/nightdriver/pkg/vehicle"
)

// Input is one frame of driver input. The zero value coasts straight ahead.
type Input struct {
	Accelerate bool
	SteerLeft  bool
	SteerRight bool
	Gear       int // 0 means no selection, n selects gear n
}

// Status is the per-frame readout shown to the player.
type Status struct {
	Gear      int
	Speed     float64
	Lateral   float64
	OffRoad   bool
	Curvature float64
	Advances  int // buffer advances performed this frame
}

// Simulation owns all mutable state of a drive.
type Simulation struct {
	tuning config.Tuning
	road   *road.Buffer
	curve  *road.CurveController
	scroll road.ScrollAccumulator
	car    *vehicle.Car
	mapper *projection.Mapper
	posts  []projection.Post
	status Status
	frames int64
	total  int64
}

// NewRand returns a random source for seed, or a clock-seeded one for 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewSimulation creates a straight road with a stationary car.
func NewSimulation(t config.Tuning, rng road.RandSource) *Simulation {
	s := &Simulation{
		tuning: t,
		road:   road.NewBuffer(t.Stations),
		curve:  road.NewCurveController(t.Curve, rng),
		car:    vehicle.NewCar(t.Vehicle),
		mapper: projection.NewMapper(t.View),
	}
	s.refresh(0)
	return s
}

// Tick runs one frame: car, curvature, scrolling, off-road check and
// projection, in that order.
func (s *Simulation) Tick(in Input) Status {
	if in.Gear > 0 && !s.car.SelectGear(in.Gear) {
		logging.Logger().Debug("ignoring gear selection", "gear", in.Gear, "gears", s.car.Gears())
	}

	s.car.Tick(vehicle.Controls{
		Accelerate: in.Accelerate,
		SteerLeft:  in.SteerLeft,
		SteerRight: in.SteerRight,
	})

	curvature := s.curve.Tick()

	advances := s.scroll.Consume(s.car.Speed() / s.tuning.ScrollDivisor)
	for i := 0; i < advances; i++ {
		s.car.Shift(s.road.Advance(curvature))
	}

	s.car.CheckOffRoad()
	s.frames++
	s.total += int64(advances)
	s.refresh(advances)
	return s.status
}

func (s *Simulation) refresh(advances int) {
	s.posts = s.mapper.ProjectAll(s.posts[:0], s.road, s.car.Lateral())
	s.status = Status{
		Gear:      s.car.Gear(),
		Speed:     s.car.Speed(),
		Lateral:   s.car.Lateral(),
		OffRoad:   s.car.OffRoad(),
		Curvature: s.curve.Curvature(),
		Advances:  advances,
	}
}

// Reset puts the car back on a straight road without reseeding the curves.
func (s *Simulation) Reset() {
	s.road.Reset()
	s.scroll.Reset()
	s.car.Reset()
	s.frames, s.total = 0, 0
	s.refresh(0)
}

// Posts returns the projected stations from the last frame, nearest first.
// The slice is reused by the next Tick.
func (s *Simulation) Posts() []projection.Post { return s.posts }

// Status returns the readout from the last frame.
func (s *Simulation) Status() Status { return s.status }

// Road returns the rolling road buffer.
func (s *Simulation) Road() *road.Buffer { return s.road }

// Car returns the player's car.
func (s *Simulation) Car() *vehicle.Car { return s.car }

// Mapper returns the projection in use.
func (s *Simulation) Mapper() *projection.Mapper { return s.mapper }

// Tuning returns the configuration the simulation was built with.
func (s *Simulation) Tuning() config.Tuning { return s.tuning }

// Frames returns the number of ticks run since the last reset.
func (s *Simulation) Frames() int64 { return s.frames }

// Distance returns the number of stations travelled since the last reset.
func (s *Simulation) Distance() int64 { return s.total }
