package road

// MinStations is the smallest buffer that can be advanced: re-anchoring needs
// the two nearest stations.
const MinStations = 2

// Buffer is the rolling strip of road ahead of the car. Each sample is the
// lateral offset of the road centreline at one station; station 0 is nearest
// the camera and the last station is the horizon.
type Buffer struct {
	samples   []float64
	alternate bool // flips once per Advance, drives the post colour pattern
}

// NewBuffer creates a straight road of the given number of stations.
func NewBuffer(stations int) *Buffer {
	if stations < MinStations {
		stations = MinStations
	}
	return &Buffer{
		samples: make([]float64, stations),
	}
}

// Len returns the number of stations, which never changes.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// At returns the lateral offset of station i.
func (b *Buffer) At(i int) float64 {
	return b.samples[i]
}

// Samples returns a copy of all stations, nearest first.
func (b *Buffer) Samples() []float64 {
	out := make([]float64, len(b.samples))
	copy(out, b.samples)
	return out
}

// Alternate reports the current parity of the post colour pattern.
func (b *Buffer) Alternate() bool {
	return b.alternate
}

// Advance moves the road one station towards the camera and appends a new
// horizon station bent by curvature.
//
// Every sample is shifted by the drift between the two nearest stations so
// station 0 keeps its value and coordinates stay bounded. The drift is
// returned; anything else expressed in the same frame (the car's lateral
// position) must be shifted by it too.
func (b *Buffer) Advance(curvature float64) float64 {
	n := len(b.samples)
	delta := b.samples[1] - b.samples[0]

	copy(b.samples, b.samples[1:])
	for i := range b.samples {
		b.samples[i] -= delta
	}
	b.samples[n-1] = b.samples[n-2] + curvature

	b.alternate = !b.alternate
	return delta
}

// Reset straightens the road and clears the colour parity.
func (b *Buffer) Reset() {
	clear(b.samples)
	b.alternate = false
}
