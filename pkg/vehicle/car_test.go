package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCar(t *testing.T) {
	c := NewCar(DefaultConfig())
	assert.Equal(t, 1, c.Gear())
	assert.Equal(t, 2.5, c.TopSpeed())
	assert.Zero(t, c.Speed())
	assert.Zero(t, c.Lateral())
	assert.False(t, c.OffRoad())
}

func TestNewCarBadStartGear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartGear = 9
	assert.Equal(t, 0, NewCar(cfg).Gear())

	cfg.GearSpeeds = nil
	c := NewCar(cfg)
	assert.Equal(t, 0, c.Gear())
	assert.Zero(t, c.TopSpeed())
}

func TestSelectGear(t *testing.T) {
	c := NewCar(DefaultConfig())
	assert.True(t, c.SelectGear(4))
	assert.Equal(t, 9.0, c.TopSpeed())

	assert.False(t, c.SelectGear(5))
	assert.False(t, c.SelectGear(-1))
	assert.Equal(t, 4, c.Gear(), "invalid selections are ignored")
}

func TestFirstGearClampsAtTopSpeed(t *testing.T) {
	c := NewCar(DefaultConfig())
	for i := 0; i < 30; i++ {
		c.Tick(Controls{Accelerate: true})
	}
	assert.Equal(t, 2.5, c.Speed())
}

func TestSpeedAlwaysWithinGear(t *testing.T) {
	c := NewCar(DefaultConfig())
	pattern := []struct {
		gear  int
		accel bool
	}{
		{4, true}, {4, true}, {1, false}, {3, true}, {0, true}, {2, false}, {4, true},
	}
	for frame := 0; frame < 700; frame++ {
		p := pattern[(frame/25)%len(pattern)]
		c.SelectGear(p.gear)
		c.Tick(Controls{Accelerate: p.accel})
		require.GreaterOrEqual(t, c.Speed(), 0.0)
		require.LessOrEqual(t, c.Speed(), c.TopSpeed())
	}
}

func TestFrictionStopsAtZero(t *testing.T) {
	c := NewCar(DefaultConfig())
	c.Tick(Controls{Accelerate: true})
	for i := 0; i < 10; i++ {
		c.Tick(Controls{})
	}
	assert.Zero(t, c.Speed())
}

func TestSteeringScalesWithSpeed(t *testing.T) {
	c := NewCar(DefaultConfig())
	c.Tick(Controls{SteerRight: true})
	assert.Zero(t, c.Lateral(), "no turning while stationary")

	c.Tick(Controls{Accelerate: true, SteerRight: true})
	assert.InDelta(t, 1.2*0.05*0.15, c.Lateral(), 1e-12)

	c.Tick(Controls{Accelerate: true, SteerLeft: true})
	assert.InDelta(t, 1.2*0.05*0.15-1.2*0.05*0.3, c.Lateral(), 1e-12)
}

func TestSteerLeftWinsWhenBothHeld(t *testing.T) {
	c := NewCar(DefaultConfig())
	c.Tick(Controls{Accelerate: true, SteerLeft: true, SteerRight: true})
	assert.Less(t, c.Lateral(), 0.0)
}

func TestShift(t *testing.T) {
	c := NewCar(DefaultConfig())
	c.Shift(0.1)
	assert.InDelta(t, -0.3, c.Lateral(), 1e-12)
}

func TestOffRoadPenalty(t *testing.T) {
	c := NewCar(DefaultConfig())
	for i := 0; i < 20; i++ {
		c.Tick(Controls{Accelerate: true})
	}
	require.Equal(t, 2.5, c.Speed())

	assert.False(t, c.CheckOffRoad())
	assert.Equal(t, 2.5, c.Speed())

	c.Shift(-0.3) // lateral 0.9
	assert.True(t, c.CheckOffRoad())
	assert.InDelta(t, 2.5*0.97, c.Speed(), 1e-12)
}

func TestOffRoadThresholdIsExclusive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LateralShiftScale = 1
	c := NewCar(cfg)
	c.Shift(-0.8)
	assert.False(t, c.CheckOffRoad())
	c.Shift(-0.01)
	assert.True(t, c.CheckOffRoad())
}

func TestOffRoadSpeedDecays(t *testing.T) {
	c := NewCar(DefaultConfig())
	c.SelectGear(4)
	for i := 0; i < 60; i++ {
		c.Tick(Controls{Accelerate: true})
	}
	c.Shift(-1) // lateral 3, well off the road
	c.CheckOffRoad()

	for i := 0; i < 50; i++ {
		prev := c.Speed()
		c.Tick(Controls{})
		c.CheckOffRoad()
		require.LessOrEqual(t, c.Speed(), prev*0.97+1e-12)
	}
}

func TestReset(t *testing.T) {
	c := NewCar(DefaultConfig())
	c.SelectGear(3)
	c.Tick(Controls{Accelerate: true, SteerLeft: true})
	c.Shift(1)
	c.CheckOffRoad()

	c.Reset()
	assert.Equal(t, 1, c.Gear())
	assert.Zero(t, c.Speed())
	assert.Zero(t, c.Lateral())
	assert.False(t, c.OffRoad())
}
