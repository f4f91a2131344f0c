package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bacon-invasion/internal/config"
	"github.com/vovakirdan/bacon-invasion/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Wave shapes for generated tones.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes the sound generated for one name.
type Tone struct {
	Freq     float64 // start frequency in Hz
	Sweep    float64 // end frequency, 0 keeps Freq
	Duration time.Duration
	Wave     Wave
}

// Tones maps sound names used by the world to generated tones.
var Tones = map[string]Tone{
	"step":    {Freq: 90, Duration: 40 * time.Millisecond, Wave: WaveNoise},
	"bleep1":  {Freq: 880, Sweep: 440, Duration: 120 * time.Millisecond, Wave: WaveSquare},
	"fire":    {Freq: 320, Sweep: 80, Duration: 90 * time.Millisecond, Wave: WaveNoise},
	"stun":    {Freq: 1200, Sweep: 1800, Duration: 200 * time.Millisecond, Wave: WaveSine},
	"empty":   {Freq: 140, Duration: 60 * time.Millisecond, Wave: WaveSquare},
	"hit":     {Freq: 200, Sweep: 100, Duration: 80 * time.Millisecond, Wave: WaveSaw},
	"death":   {Freq: 300, Sweep: 40, Duration: 400 * time.Millisecond, Wave: WaveSaw},
	"door":    {Freq: 60, Sweep: 120, Duration: 300 * time.Millisecond, Wave: WaveSaw},
	"locked":  {Freq: 110, Duration: 150 * time.Millisecond, Wave: WaveSquare},
	"unlock":  {Freq: 660, Sweep: 990, Duration: 150 * time.Millisecond, Wave: WaveSine},
	"pickup":  {Freq: 520, Sweep: 1040, Duration: 100 * time.Millisecond, Wave: WaveSine},
	"heal":    {Freq: 440, Sweep: 660, Duration: 200 * time.Millisecond, Wave: WaveSine},
	"respawn": {Freq: 50, Sweep: 200, Duration: 500 * time.Millisecond, Wave: WaveSaw},
}

// Speaker plays tones on the default audio device through one mixer.
type Speaker struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	listener core.Vec
	volume   float64
	hearing  float64
}

// NewSpeaker initialises the audio device.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		hearing: cfg.HearingRange,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Open returns a Speaker, or Nop when audio is disabled or the device cannot
// be opened.
func Open(cfg config.AudioConfig, logger *log.Logger) Sink {
	if !cfg.Enabled {
		return Nop{}
	}
	s, err := NewSpeaker(cfg)
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing muted", "err", err)
		}
		return Nop{}
	}
	return s
}

// SetListener moves the point distances are measured from.
func (s *Speaker) SetListener(p core.Vec) {
	s.mu.Lock()
	s.listener = p
	s.mu.Unlock()
}

// Play implements Sink. Unknown names and inaudible sounds are dropped.
func (s *Speaker) Play(name string, pos *core.Vec) {
	tone, ok := Tones[name]
	if !ok {
		return
	}
	s.mu.Lock()
	gain := Gain(s.volume, s.hearing, s.listener, pos)
	s.mu.Unlock()
	if gain <= 0 {
		return
	}

	n := sampleRate.N(tone.Duration)
	streamer := newVolume(beep.Take(n, newGenerator(tone, n)), gain)
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops playback.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// newVolume wraps s at a linear gain. Log2(0) is -Inf so zero goes silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// generator renders a Tone with a linear frequency sweep and a short
// attack/release envelope.
type generator struct {
	tone  Tone
	total int
	pos   int
	phase float64
	noise uint32
}

func newGenerator(t Tone, total int) *generator {
	return &generator{tone: t, total: total, noise: 0x9e3779b9}
}

// Stream implements beep.Streamer.
func (g *generator) Stream(samples [][2]float64) (n int, ok bool) {
	end := g.tone.Sweep
	if end == 0 {
		end = g.tone.Freq
	}
	for i := range samples {
		p := float64(g.pos) / float64(g.total)
		freq := g.tone.Freq + (end-g.tone.Freq)*p
		g.phase += freq / float64(sampleRate)
		g.phase -= math.Floor(g.phase)

		var v float64
		switch g.tone.Wave {
		case WaveSquare:
			v = 0.5
			if g.phase >= 0.5 {
				v = -0.5
			}
		case WaveSaw:
			v = g.phase - 0.5
		case WaveNoise:
			g.noise ^= g.noise << 13
			g.noise ^= g.noise >> 17
			g.noise ^= g.noise << 5
			v = (float64(g.noise)/math.MaxUint32 - 0.5) * 0.6
		default:
			v = 0.5 * math.Sin(2*math.Pi*g.phase)
		}

		env := math.Min(1, math.Min(p/0.05, (1-p)/0.2))
		if env < 0 {
			env = 0
		}
		v *= env

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *generator) Err() error { return nil }
