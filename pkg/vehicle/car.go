package vehicle

import "math"

// Car integrates speed and lateral position for the player's car.
// Lateral position lives in the road buffer's rolling frame.
type Car struct {
	cfg     Config
	gear    int
	speed   float64
	lateral float64
	offRoad bool
}

var _ Vehicle = (*Car)(nil)

// NewCar creates a stationary car centred on the road.
func NewCar(cfg Config) *Car {
	if len(cfg.GearSpeeds) == 0 {
		cfg.GearSpeeds = []float64{0}
	}
	c := &Car{cfg: cfg}
	if !c.SelectGear(cfg.StartGear) {
		c.gear = 0
	}
	return c
}

// SelectGear switches to gear g. Gears outside the table are ignored and
// false is returned.
func (c *Car) SelectGear(g int) bool {
	if g < 0 || g >= len(c.cfg.GearSpeeds) {
		return false
	}
	c.gear = g
	return true
}

// Tick applies one frame of throttle and steering.
// Speed is updated first and then clamped to the gear's ceiling; steering
// authority scales with the clamped speed.
func (c *Car) Tick(in Controls) {
	if in.Accelerate {
		c.speed += c.cfg.Accel
	} else {
		c.speed -= c.cfg.Friction
	}
	c.speed = math.Max(0, math.Min(c.speed, c.TopSpeed()))

	steer := 0.0
	if in.SteerLeft {
		steer = -c.cfg.SteerRate
	} else if in.SteerRight {
		steer = c.cfg.SteerRate
	}
	c.lateral += steer * c.cfg.TurnRate * c.speed
}

// Shift keeps the car in the road's frame after an advance that re-anchored
// the buffer by delta.
func (c *Car) Shift(delta float64) {
	c.lateral -= delta * c.cfg.LateralShiftScale
}

// CheckOffRoad updates the off-road flag from the current lateral position
// and applies the speed penalty when the car has left the road.
func (c *Car) CheckOffRoad() bool {
	c.offRoad = math.Abs(c.lateral) > c.cfg.OffRoadThreshold
	if c.offRoad {
		c.speed *= c.cfg.OffRoadPenalty
	}
	return c.offRoad
}

// Reset stops the car in the start gear, centred on the road.
func (c *Car) Reset() {
	c.speed, c.lateral, c.offRoad = 0, 0, false
	if !c.SelectGear(c.cfg.StartGear) {
		c.gear = 0
	}
}

func (c *Car) Gear() int         { return c.gear }
func (c *Car) Gears() int        { return len(c.cfg.GearSpeeds) }
func (c *Car) TopSpeed() float64 { return c.cfg.GearSpeeds[c.gear] }
func (c *Car) Speed() float64    { return c.speed }
func (c *Car) Lateral() float64  { return c.lateral }
func (c *Car) OffRoad() bool     { return c.offRoad }
