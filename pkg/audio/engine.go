// Package audio synthesises the engine note.
//
// The note is generated on the fly by a reader that the audio device pulls
// from its own goroutine; the game only publishes the current speed.
package audio

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/golangdaddy/nightdriver/pkg/logging"
	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	bytesPerFrame = 4 * ChannelCount
)

// Engine note pitch range in Hz.
const (
	IdleHz = 48.0
	MaxHz  = 220.0
)

// Tone is an endless engine-note stream. It is safe to call Set from one
// goroutine while the device reads from another.
type Tone struct {
	freq   atomic.Uint64 // math.Float64bits of the target pitch
	rumble atomic.Bool
	phase  float64
	sub    float64 // phase of the sub oscillator, one octave down
	hz     float64 // glides towards freq to avoid clicks
	noise  *rand.Rand
}

// NewTone creates a tone idling at IdleHz.
func NewTone(seed int64) *Tone {
	t := &Tone{
		hz:    IdleHz,
		noise: rand.New(rand.NewSource(seed)),
	}
	t.freq.Store(math.Float64bits(IdleHz))
	return t
}

// Pitch maps speed as a fraction of the gear's top speed onto the note.
// A stationary car idles; each gear sweeps the full range.
func Pitch(speed, topSpeed float64) float64 {
	if topSpeed <= 0 || speed <= 0 {
		return IdleHz
	}
	f := math.Min(speed/topSpeed, 1)
	return IdleHz + (MaxHz-IdleHz)*f
}

// Set publishes the car state the tone should follow.
func (t *Tone) Set(speed, topSpeed float64, offRoad bool) {
	t.freq.Store(math.Float64bits(Pitch(speed, topSpeed)))
	t.rumble.Store(offRoad)
}

// Frequency returns the target pitch in Hz.
func (t *Tone) Frequency() float64 {
	return math.Float64frombits(t.freq.Load())
}

// Read fills p with whole stereo float32 frames. It never returns io.EOF.
func (t *Tone) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	target := t.Frequency()
	rumble := t.rumble.Load()
	for i := 0; i < frames; i++ {
		t.hz += (target - t.hz) * 0.0005
		t.phase += t.hz / SampleRate
		if t.phase >= 1 {
			t.phase -= 1
		}
		t.sub += t.hz / (2 * SampleRate)
		if t.sub >= 1 {
			t.sub -= 1
		}
		// Saw plus a sub sine an octave down.
		s := 0.6*(2*t.phase-1) + 0.4*math.Sin(2*math.Pi*t.sub)
		if rumble {
			s = 0.7*s + 0.3*(t.noise.Float64()*2-1)
		}
		putStereoF32(p, i, 0.5*s)
	}
	return frames * bytesPerFrame, nil
}

var _ io.Reader = (*Tone)(nil)

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*bytesPerFrame + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// Engine plays a Tone on the default audio device.
type Engine struct {
	ctx    *oto.Context
	player oto.Player
	tone   *Tone
}

// NewEngine opens the audio device and starts the engine note once the
// device is ready.
func NewEngine(volume float64, seed int64) (*Engine, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	tone := NewTone(seed)
	player := ctx.NewPlayer(tone)
	player.SetVolume(volume)

	e := &Engine{ctx: ctx, player: player, tone: tone}
	go func() {
		<-ready
		player.Play()
		logging.Logger().Info("engine audio started", "sample_rate", SampleRate)
	}()
	return e, nil
}

// Update follows the car; call once per frame.
func (e *Engine) Update(speed, topSpeed float64, offRoad bool) {
	e.tone.Set(speed, topSpeed, offRoad)
}

// SetVolume sets the player volume in [0,1].
func (e *Engine) SetVolume(v float64) {
	e.player.SetVolume(math.Max(0, math.Min(v, 1)))
}

// Close stops playback.
func (e *Engine) Close() error {
	return e.player.Close()
}
