package road

// CurveConfig tunes the stochastic curvature generator.
type CurveConfig struct {
	Range     float64 `json:"range"`      // targets are drawn from [-Range, Range]
	Smoothing float64 `json:"smoothing"`  // fraction of the gap closed per tick
	MinFrames int     `json:"min_frames"` // shortest hold of one target
	MaxFrames int     `json:"max_frames"` // longest hold of one target (inclusive)
}

// DefaultCurveConfig returns the tuning used by the game.
func DefaultCurveConfig() CurveConfig {
	return CurveConfig{
		Range:     0.1,
		Smoothing: 0.05,
		MinFrames: 60,
		MaxFrames: 180,
	}
}

// Speed is divided by the scroll divisor to get stations travelled per tick.
const (
	DefaultScrollDivisor = 4.0
	MinScrollDivisor     = 0.01
)
