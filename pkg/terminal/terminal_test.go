package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/nightdriver/pkg/config"
	"github.com/golangdaddy/nightdriver/pkg/game"
	"github.com/golangdaddy/nightdriver/pkg/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeysHoldWindow(t *testing.T) {
	var k Keys
	require.True(t, k.Press(key('w'), 10))

	assert.True(t, k.Input(10).Accelerate)
	assert.True(t, k.Input(10+HoldFrames-1).Accelerate)
	assert.False(t, k.Input(10+HoldFrames).Accelerate)
}

func TestKeysArrowKeys(t *testing.T) {
	var k Keys
	k.Press(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 0)
	k.Press(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), 0)
	in := k.Input(1)
	assert.True(t, in.Accelerate)
	assert.True(t, in.SteerLeft)
	assert.False(t, in.SteerRight)
}

func TestKeysOppositeSteeringCancels(t *testing.T) {
	var k Keys
	k.Press(key('a'), 0)
	k.Press(key('d'), 1)
	in := k.Input(2)
	assert.False(t, in.SteerLeft)
	assert.True(t, in.SteerRight)
}

func TestKeysGearConsumedOnce(t *testing.T) {
	var k Keys
	k.Press(key('3'), 0)
	assert.Equal(t, 3, k.Input(0).Gear)
	assert.Equal(t, 0, k.Input(1).Gear)
}

func TestKeysQuit(t *testing.T) {
	var k Keys
	assert.False(t, k.Press(key('q'), 0))
	assert.False(t, k.Press(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0))
	assert.True(t, k.Press(key('x'), 0))
}

func TestCell(t *testing.T) {
	view := projection.DefaultConfig()
	x, y := Cell(view, 240, 160, 80, 24)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)

	x, y = Cell(view, 0, 0, 80, 24)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(80, 24)

	sim := game.NewSimulation(config.Default(), game.NewRand(1))
	Draw(s, sim)

	line := game.StatusLine(sim.Status())
	for i, want := range line {
		got, _, _, _ := s.GetContent(i, 0)
		require.Equal(t, want, got, "column %d", i)
	}

	car, _, st, _ := s.GetContent(40, 23)
	assert.Equal(t, '▄', car)
	fg, _, _ := st.Decompose()
	r, g, b := fg.RGB()
	assert.Equal(t, [3]int32{255, 140, 0}, [3]int32{r, g, b})

	// Nearest left post sits at x=42 of 480 on row 288 of 320.
	post, _, _, _ := s.GetContent(7, 21)
	assert.Equal(t, '█', post)
}
