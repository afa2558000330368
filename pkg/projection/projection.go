// Package projection maps road stations to screen space.
//
// Depth is linear in the station index and the lateral displacement grows
// towards the horizon by (1 + i/N).
package projection

// Road is the read side of the rolling road buffer.
type Road interface {
	Len() int
	At(i int) float64
	Alternate() bool
}

// Post sizes in screen pixels.
const (
	PostWidth  = 4
	PostHeight = 6
)

// Config describes the view the road is projected into.
type Config struct {
	ScreenWidth  int     `json:"screen_width"`
	ScreenHeight int     `json:"screen_height"`
	Horizon      float64 `json:"horizon"`       // screen y of the horizon line
	PostSpacing  float64 `json:"post_spacing"`  // screen rows between stations
	MinWidth     float64 `json:"min_width"`     // half width at the horizon
	MaxWidth     float64 `json:"max_width"`     // half width at the bottom edge
	LateralScale float64 `json:"lateral_scale"` // pixels per unit of lateral offset
	YOffset      float64 `json:"y_offset"`      // rows every post is lifted by
}

// DefaultConfig returns the 480x320 view the game is tuned for.
func DefaultConfig() Config {
	const w, h = 480, 320
	return Config{
		ScreenWidth:  w,
		ScreenHeight: h,
		Horizon:      h / 4,
		PostSpacing:  8,
		MinWidth:     40,
		MaxWidth:     200,
		LateralScale: 150,
		YOffset:      float64(int(h * 0.10)),
	}
}

// CenterX returns the screen column the car sits on.
func (c Config) CenterX() float64 {
	return float64(c.ScreenWidth / 2)
}

// Post is one projected station: a pair of road-edge markers.
type Post struct {
	Station   int
	X         float64 // road centre
	Y         float64 // top of both markers
	HalfWidth float64
	Depth     float64
	LeftRed   bool // left marker red and right white, or the reverse
}

// LeftX returns the left edge of the left marker.
func (p Post) LeftX() float64 { return p.X - p.HalfWidth }

// RightX returns the left edge of the right marker.
func (p Post) RightX() float64 { return p.X + p.HalfWidth - PostWidth }

// Mapper projects stations of a Road.
type Mapper struct {
	cfg Config
}

// NewMapper creates a mapper for the given view.
func NewMapper(cfg Config) *Mapper {
	return &Mapper{cfg: cfg}
}

// Config returns the view configuration.
func (m *Mapper) Config() Config {
	return m.cfg
}

// StationY returns the unlifted screen row of station i; station 0 sits on
// the bottom edge.
func (m *Mapper) StationY(i int) float64 {
	return float64(m.cfg.ScreenHeight) - float64(i)*m.cfg.PostSpacing
}

// Depth returns 1 at the bottom edge and 0 at the horizon. Stations drawn
// above the horizon go negative.
func (m *Mapper) Depth(i int) float64 {
	h := float64(m.cfg.ScreenHeight)
	return (m.StationY(i) - m.cfg.Horizon) / (h - m.cfg.Horizon)
}

// HalfWidth returns the road half width at station i.
func (m *Mapper) HalfWidth(i int) float64 {
	return m.cfg.MinWidth + m.Depth(i)*(m.cfg.MaxWidth-m.cfg.MinWidth)
}

// Project maps station i of r, seen from lateral position lateral.
func (m *Mapper) Project(r Road, i int, lateral float64) Post {
	n := float64(r.Len())
	grow := 1 + float64(i)/n
	alt := 0
	if r.Alternate() {
		alt = 1
	}
	return Post{
		Station:   i,
		X:         m.cfg.CenterX() + (r.At(i)-lateral)*m.cfg.LateralScale*grow,
		Y:         m.StationY(i) - m.cfg.YOffset,
		HalfWidth: m.HalfWidth(i),
		Depth:     m.Depth(i),
		LeftRed:   (i+alt)%2 == 0,
	}
}

// ProjectAll projects every station, nearest first, appending to dst.
func (m *Mapper) ProjectAll(dst []Post, r Road, lateral float64) []Post {
	for i := 0; i < r.Len(); i++ {
		dst = append(dst, m.Project(r, i, lateral))
	}
	return dst
}

// Point is a screen-space vertex.
type Point struct {
	X, Y float64
}

// CarOutline returns the car's trapezoid, bottom edge first, clockwise.
func (m *Mapper) CarOutline() [4]Point {
	cx := m.cfg.CenterX()
	h := float64(m.cfg.ScreenHeight)
	return [4]Point{
		{cx - 80, h},
		{cx + 80, h},
		{cx + 50, h - 40},
		{cx - 50, h - 40},
	}
}
