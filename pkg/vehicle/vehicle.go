package vehicle

// Vehicle is the read-only view of a car that frontends display.
type Vehicle interface {
	Gear() int
	TopSpeed() float64
	Speed() float64
	Lateral() float64
	OffRoad() bool
}

// Controls is the per-frame driver input. The zero value coasts straight.
type Controls struct {
	Accelerate bool
	SteerLeft  bool
	SteerRight bool
}

// Config tunes the arcade car model.
type Config struct {
	GearSpeeds        []float64 `json:"gear_speeds"` // max speed per gear, index is the gear
	StartGear         int       `json:"start_gear"`
	Accel             float64   `json:"accel"`
	Friction          float64   `json:"friction"`
	SteerRate         float64   `json:"steer_rate"`
	TurnRate          float64   `json:"turn_rate"`
	OffRoadThreshold  float64   `json:"off_road_threshold"`
	OffRoadPenalty    float64   `json:"off_road_penalty"`    // speed multiplier per off-road frame
	LateralShiftScale float64   `json:"lateral_shift_scale"` // applied to road re-anchoring drift
}

// DefaultConfig returns the tuning used by the game.
func DefaultConfig() Config {
	return Config{
		GearSpeeds:        []float64{0, 2.5, 4.5, 6.5, 9.0},
		StartGear:         1,
		Accel:             0.15,
		Friction:          0.05,
		SteerRate:         1.2,
		TurnRate:          0.05,
		OffRoadThreshold:  0.8,
		OffRoadPenalty:    0.97,
		LateralShiftScale: 3,
	}
}
