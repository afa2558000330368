package projection

import (
	"testing"

	"github.com/golangdaddy/nightdriver/pkg/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 80.0, cfg.Horizon)
	assert.Equal(t, 32.0, cfg.YOffset)
	assert.Equal(t, 240.0, cfg.CenterX())
}

func TestDepthAndWidth(t *testing.T) {
	m := NewMapper(DefaultConfig())

	assert.Equal(t, 1.0, m.Depth(0))
	assert.Equal(t, 200.0, m.HalfWidth(0))

	assert.Equal(t, 0.0, m.Depth(30)) // 320 - 30*8 = 80, the horizon
	assert.Equal(t, 40.0, m.HalfWidth(30))

	// Beyond the horizon the width keeps extrapolating.
	assert.InDelta(t, -0.3, m.Depth(39), 1e-12)
	assert.InDelta(t, -8, m.HalfWidth(39), 1e-9)
}

func TestProjectStraightRoad(t *testing.T) {
	m := NewMapper(DefaultConfig())
	b := road.NewBuffer(40)

	posts := m.ProjectAll(nil, b, 0)
	require.Len(t, posts, 40)
	for i, p := range posts {
		assert.Equal(t, i, p.Station)
		assert.Equal(t, 240.0, p.X)
		assert.Equal(t, 320-float64(i)*8-32, p.Y)
	}
}

func TestProjectLateralGrowsWithStation(t *testing.T) {
	m := NewMapper(DefaultConfig())
	b := road.NewBuffer(40)

	p0 := m.Project(b, 0, 0.5)
	assert.InDelta(t, 240-0.5*150, p0.X, 1e-9)

	p20 := m.Project(b, 20, 0.5)
	assert.InDelta(t, 240-0.5*150*1.5, p20.X, 1e-9)
}

func TestProjectUsesSample(t *testing.T) {
	m := NewMapper(DefaultConfig())
	b := road.NewBuffer(4)
	b.Advance(0.2)
	b.Advance(0.2) // [0, 0, 0.2, 0.4]

	p := m.Project(b, 3, 0.1)
	assert.InDelta(t, 240+(0.4-0.1)*150*1.75, p.X, 1e-9)
}

func TestProjectColourAlternation(t *testing.T) {
	m := NewMapper(DefaultConfig())
	b := road.NewBuffer(4)

	for i := 0; i < 4; i++ {
		assert.Equal(t, i%2 == 0, m.Project(b, i, 0).LeftRed)
	}
	b.Advance(0)
	for i := 0; i < 4; i++ {
		assert.Equal(t, i%2 == 1, m.Project(b, i, 0).LeftRed)
	}
}

func TestPostEdges(t *testing.T) {
	p := Post{X: 240, HalfWidth: 100}
	assert.Equal(t, 140.0, p.LeftX())
	assert.Equal(t, 336.0, p.RightX())
}

func TestCarOutline(t *testing.T) {
	m := NewMapper(DefaultConfig())
	o := m.CarOutline()
	assert.Equal(t, Point{160, 320}, o[0])
	assert.Equal(t, Point{320, 320}, o[1])
	assert.Equal(t, Point{290, 280}, o[2])
	assert.Equal(t, Point{190, 280}, o[3])
}
