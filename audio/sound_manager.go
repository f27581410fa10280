package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeFreq     = 880
	chimeDuration = 90 * time.Millisecond
	chimeGain     = 0.25

	buzzFreq     = 110
	buzzDuration = 400 * time.Millisecond
)

// SoundManager plays short cues for game events. It satisfies game.Listener.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device. Until it succeeds every cue is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops whatever is still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// FoodEaten plays a short high chime.
func (sm *SoundManager) FoodEaten() {
	sine, err := generators.SineTone(sampleRate, chimeFreq)
	if err != nil {
		return
	}
	sm.play(NewFade(sine, chimeGain, sampleRate.N(chimeDuration)))
}

// GameOver plays a low buzz.
func (sm *SoundManager) GameOver(score int, cause error) {
	sm.play(beep.Take(sampleRate.N(buzzDuration), NewBuzzGenerator(sampleRate, buzzFreq)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Fade scales a streamer by gain and ramps it linearly to silence over
// length samples, then ends.
type Fade struct {
	s      beep.Streamer
	gain   float64
	length int
	pos    int
}

func NewFade(s beep.Streamer, gain float64, length int) *Fade {
	return &Fade{s: s, gain: gain, length: length}
}

func (f *Fade) Stream(samples [][2]float64) (n int, ok bool) {
	if f.pos >= f.length {
		return 0, false
	}
	if remaining := f.length - f.pos; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := f.gain * (1 - float64(f.pos)/float64(f.length))
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *Fade) Err() error {
	return f.s.Err()
}

// BuzzGenerator is a harsh tone built from a few odd harmonics
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*5*t)

		// 20ms attack to avoid a click
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
