package sim

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

const renderChunk = 512

// Mixer renders every agent's sound source into one headless stream.
// Nothing is sent to a device; Render drains the samples one frame's worth at
// a time and keeps level statistics.
type Mixer struct {
	mu       sync.Mutex
	sr       beep.SampleRate
	mixer    *beep.Mixer
	buf      [][2]float64
	rendered int
	lastRMS  float64
	peak     float64
}

// NewMixer creates a mixer running at sampleRate Hz.
func NewMixer(sampleRate int) *Mixer {
	return &Mixer{
		sr:    beep.SampleRate(sampleRate),
		mixer: &beep.Mixer{},
		buf:   make([][2]float64, renderChunk),
	}
}

// SampleRate returns the mixer rate.
func (m *Mixer) SampleRate() beep.SampleRate {
	return m.sr
}

// NewEmitter adds a paused gunfire source to the mix.
func (m *Mixer) NewEmitter(seed uint64) *Emitter {
	ctrl := &beep.Ctrl{Streamer: NewGunfireGenerator(m.sr, seed), Paused: true}

	m.mu.Lock()
	m.mixer.Add(ctrl)
	m.mu.Unlock()

	return &Emitter{mu: &m.mu, ctrl: ctrl}
}

// Render mixes dt seconds of audio.
func (m *Mixer) Render(dt float64) {
	n := m.sr.N(time.Duration(dt * float64(time.Second)))

	m.mu.Lock()
	defer m.mu.Unlock()

	var sum float64
	for left := n; left > 0; {
		chunk := min(left, len(m.buf))
		got, _ := m.mixer.Stream(m.buf[:chunk])
		for _, s := range m.buf[:got] {
			sum += s[0]*s[0] + s[1]*s[1]
			m.peak = max(m.peak, math.Abs(s[0]), math.Abs(s[1]))
		}
		m.rendered += chunk
		left -= chunk
	}

	m.lastRMS = 0
	if n > 0 {
		m.lastRMS = math.Sqrt(sum / float64(2*n))
	}
}

// Rendered returns the number of samples mixed so far.
func (m *Mixer) Rendered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rendered
}

// LastRMS returns the RMS level of the last rendered frame.
func (m *Mixer) LastRMS() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRMS
}

// Peak returns the highest absolute sample seen.
func (m *Mixer) Peak() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.peak
}

// Emitter is one agent's sound source. Play and Stop toggle its Ctrl; the
// stream keeps its position while paused.
type Emitter struct {
	mu    *sync.Mutex // the owning mixer's lock
	ctrl  *beep.Ctrl
	plays int
	stops int
}

func (e *Emitter) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.Paused = false
	e.plays++
}

func (e *Emitter) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctrl.Paused = true
	e.stops++
}

// Playing reports whether the emitter is audible.
func (e *Emitter) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.ctrl.Paused
}

// Counts returns how many times Play and Stop were called.
func (e *Emitter) Counts() (plays, stops int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.plays, e.stops
}

// GunfireGenerator produces an endless burst of shots: a short noise crack with
// exponential decay, 8 shots per second.
type GunfireGenerator struct {
	sr     beep.SampleRate
	pos    int
	period int
	rng    *rand.Rand
}

// NewGunfireGenerator creates a gunfire generator. The same seed yields the same samples.
func NewGunfireGenerator(sr beep.SampleRate, seed uint64) *GunfireGenerator {
	return &GunfireGenerator{
		sr:     sr,
		period: sr.N(125 * time.Millisecond),
		rng:    rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15)),
	}
}

func (g *GunfireGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos%g.period) / float64(g.sr)

		envelope := math.Exp(-t * 60)
		noise := g.rng.Float64()*2 - 1
		sample := 0.4 * envelope * noise

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *GunfireGenerator) Err() error {
	return nil
}
