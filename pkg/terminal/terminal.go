// Package terminal draws the road in a text terminal.
//
// Terminals report key presses but not releases, so a control counts as
// held for a short window after its last press (terminal auto-repeat keeps
// refreshing it while the key is down).
package terminal

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/nightdriver/pkg/game"
	"github.com/golangdaddy/nightdriver/pkg/logging"
	"github.com/golangdaddy/nightdriver/pkg/projection"
)

// HoldFrames is how long a key press keeps its control held.
const HoldFrames = 12

type control int

const (
	controlAccelerate control = iota
	controlLeft
	controlRight
	controlCount
)

// Keys turns discrete key events into held controls.
type Keys struct {
	lastPress [controlCount]int64
	pressed   [controlCount]bool
	gear      int
}

// Press records a key event at frame. It reports false for keys that quit.
func (k *Keys) Press(ev *tcell.EventKey, frame int64) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		k.hold(controlAccelerate, frame)
	case tcell.KeyLeft:
		k.hold(controlLeft, frame)
	case tcell.KeyRight:
		k.hold(controlRight, frame)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return false
		case 'w', 'W':
			k.hold(controlAccelerate, frame)
		case 'a', 'A':
			k.hold(controlLeft, frame)
		case 'd', 'D':
			k.hold(controlRight, frame)
		case '1', '2', '3', '4':
			k.gear = int(r - '0')
		}
	}
	return true
}

func (k *Keys) hold(c control, frame int64) {
	k.lastPress[c] = frame
	k.pressed[c] = true
	// Opposite steering cancels immediately.
	switch c {
	case controlLeft:
		k.pressed[controlRight] = false
	case controlRight:
		k.pressed[controlLeft] = false
	}
}

func (k *Keys) held(c control, frame int64) bool {
	return k.pressed[c] && frame-k.lastPress[c] < HoldFrames
}

// Input returns the controls for frame and consumes any gear selection.
func (k *Keys) Input(frame int64) game.Input {
	in := game.Input{
		Accelerate: k.held(controlAccelerate, frame),
		SteerLeft:  k.held(controlLeft, frame),
		SteerRight: k.held(controlRight, frame),
		Gear:       k.gear,
	}
	k.gear = 0
	return in
}

// Cell maps a screen-space point of the view onto a terminal cell.
func Cell(view projection.Config, x, y float64, cols, rows int) (int, int) {
	cx := int(x * float64(cols) / float64(view.ScreenWidth))
	cy := int(y * float64(rows) / float64(view.ScreenHeight))
	return cx, cy
}

func style(c color.Color) tcell.Style {
	r, g, b, _ := c.RGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))
}

// Draw renders the simulation's last frame onto s.
func Draw(s tcell.Screen, sim *game.Simulation) {
	cols, rows := s.Size()
	s.Clear()
	if cols <= 0 || rows <= 0 {
		return
	}
	view := sim.Mapper().Config()

	set := func(x, y int, r rune, st tcell.Style) {
		if x >= 0 && x < cols && y >= 1 && y < rows {
			s.SetContent(x, y, r, nil, st)
		}
	}

	// Farthest first so nearer posts win shared cells.
	posts := sim.Posts()
	for i := len(posts) - 1; i >= 0; i-- {
		p := posts[i]
		left, right := game.PostColors(p.LeftRed)
		lx, ly := Cell(view, p.LeftX()+projection.PostWidth/2, p.Y, cols, rows)
		rx, ry := Cell(view, p.RightX()+projection.PostWidth/2, p.Y, cols, rows)
		set(lx, ly, '█', style(left))
		set(rx, ry, '█', style(right))
	}

	outline := sim.Mapper().CarOutline()
	x0, _ := Cell(view, outline[0].X, 0, cols, rows)
	x1, _ := Cell(view, outline[1].X, 0, cols, rows)
	carStyle := style(game.ColorCar)
	for x := x0; x <= x1; x++ {
		set(x, rows-1, '▄', carStyle)
	}

	st := sim.Status()
	for i, ch := range game.StatusLine(st) {
		if i >= cols {
			break
		}
		s.SetContent(i, 0, ch, nil, style(game.StatusColor(st)))
	}
}

// Run drives sim at its tuned tick rate until the player quits.
func Run(s tcell.Screen, sim *game.Simulation) error {
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.HideCursor()

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go s.ChannelEvents(events, quit)
	defer close(quit)

	tps := sim.Tuning().TicksPerSecond
	tick := time.NewTicker(time.Second / time.Duration(tps))
	defer tick.Stop()

	var keys Keys
	var frame int64
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if !keys.Press(e, frame) {
					logging.Logger().Info("terminal session ended",
						"frames", sim.Frames(), "distance", sim.Distance())
					return nil
				}
			}
		case <-tick.C:
			sim.Tick(keys.Input(frame))
			frame++
			Draw(s, sim)
			s.Show()
		}
	}
}
