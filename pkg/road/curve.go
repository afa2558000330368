package road

// RandSource is the subset of *math/rand.Rand the curve generator needs.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// CurveController produces the curvature appended at the horizon. It holds a
// random target for a random number of frames and eases the live value
// towards it.
type CurveController struct {
	cfg       CurveConfig
	rng       RandSource
	curvature float64
	target    float64
	countdown int
}

// NewCurveController creates a controller that samples its first target on
// the first Tick.
func NewCurveController(cfg CurveConfig, rng RandSource) *CurveController {
	if cfg.MinFrames < 1 {
		cfg.MinFrames = 1
	}
	if cfg.MaxFrames < cfg.MinFrames {
		cfg.MaxFrames = cfg.MinFrames
	}
	return &CurveController{
		cfg: cfg,
		rng: rng,
	}
}

// Tick advances the generator one frame and returns the smoothed curvature.
func (c *CurveController) Tick() float64 {
	c.countdown--
	if c.countdown <= 0 {
		c.target = -c.cfg.Range + 2*c.cfg.Range*c.rng.Float64()
		c.countdown = c.cfg.MinFrames + c.rng.Intn(c.cfg.MaxFrames-c.cfg.MinFrames+1)
	}
	c.curvature += (c.target - c.curvature) * c.cfg.Smoothing
	return c.curvature
}

// Curvature returns the current smoothed curvature.
func (c *CurveController) Curvature() float64 { return c.curvature }

// Target returns the value the curvature is easing towards.
func (c *CurveController) Target() float64 { return c.target }

// Countdown returns the frames left before the next target is drawn.
func (c *CurveController) Countdown() int { return c.countdown }
