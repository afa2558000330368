package road

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values so resampling can be traced exactly.
type scriptedRand struct {
	floats []float64
	ints   []int
	intArg []int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) Intn(n int) int {
	s.intArg = append(s.intArg, n)
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func TestCurveFirstTickSamples(t *testing.T) {
	src := &scriptedRand{floats: []float64{1.0}, ints: []int{0}}
	c := NewCurveController(DefaultCurveConfig(), src)

	got := c.Tick()
	assert.InDelta(t, 0.1, c.Target(), 1e-12)
	assert.Equal(t, 60, c.Countdown())
	assert.Equal(t, []int{121}, src.intArg, "countdown is drawn from 60..180 inclusive")
	assert.InDelta(t, 0.1*0.05, got, 1e-12)
}

func TestCurveResamplesOnlyWhenCountdownExpires(t *testing.T) {
	cfg := CurveConfig{Range: 0.1, Smoothing: 0.05, MinFrames: 3, MaxFrames: 3}
	src := &scriptedRand{floats: []float64{0.0, 1.0}, ints: []int{0, 0}}
	c := NewCurveController(cfg, src)

	c.Tick()
	assert.InDelta(t, -0.1, c.Target(), 1e-12)
	assert.Equal(t, 3, c.Countdown())

	c.Tick()
	c.Tick()
	assert.InDelta(t, -0.1, c.Target(), 1e-12)
	assert.Equal(t, 1, c.Countdown())

	c.Tick()
	assert.InDelta(t, 0.1, c.Target(), 1e-12)
	assert.Equal(t, 3, c.Countdown())
	assert.Empty(t, src.floats)
}

func TestCurveCountdownNeverNegative(t *testing.T) {
	c := NewCurveController(DefaultCurveConfig(), rand.New(rand.NewSource(1)))
	for i := 0; i < 5000; i++ {
		c.Tick()
		require.GreaterOrEqual(t, c.Countdown(), 1)
		require.LessOrEqual(t, c.Countdown(), 180)
	}
}

func TestCurveStaysWithinRange(t *testing.T) {
	c := NewCurveController(DefaultCurveConfig(), rand.New(rand.NewSource(99)))
	for i := 0; i < 5000; i++ {
		v := c.Tick()
		require.LessOrEqual(t, v, 0.1)
		require.GreaterOrEqual(t, v, -0.1)
	}
}

func TestCurveSmoothing(t *testing.T) {
	cfg := CurveConfig{Range: 1, Smoothing: 0.5, MinFrames: 100, MaxFrames: 100}
	src := &scriptedRand{floats: []float64{1.0}, ints: []int{0}}
	c := NewCurveController(cfg, src)

	assert.InDelta(t, 0.5, c.Tick(), 1e-12)
	assert.InDelta(t, 0.75, c.Tick(), 1e-12)
	assert.InDelta(t, 0.875, c.Tick(), 1e-12)
}

func TestCurveDeterministicForSeed(t *testing.T) {
	a := NewCurveController(DefaultCurveConfig(), rand.New(rand.NewSource(5)))
	b := NewCurveController(DefaultCurveConfig(), rand.New(rand.NewSource(5)))
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Tick(), b.Tick())
	}
}

func TestCurveFixesBadFrameRange(t *testing.T) {
	cfg := CurveConfig{Range: 0.1, Smoothing: 0.05, MinFrames: 0, MaxFrames: -5}
	c := NewCurveController(cfg, rand.New(rand.NewSource(3)))
	for i := 0; i < 10; i++ {
		c.Tick()
		assert.Equal(t, 1, c.Countdown())
	}
}
