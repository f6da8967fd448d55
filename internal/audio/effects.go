package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite raw wave, optionally sweeping from freq
// to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator that streams for the
// given duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewSweep creates an oscillator that glides linearly from f0 to f1.
func NewSweep(f0, f1 float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     f0,
		endFreq:  f1,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer in attack/sustain/release shaping.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a volume effect. math.Log2(0) is -Inf, so
// zero volume switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// flapSound is a quick upward chirp for a wing beat.
func flapSound(rate beep.SampleRate) beep.Streamer {
	const dur = 90 * time.Millisecond
	osc := NewSweep(320, 640, dur, WaveSine, rate)
	shaped := NewEnvelope(osc, dur, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.4)
}

// coinSound is a two-note square chime.
func coinSound(rate beep.SampleRate) beep.Streamer {
	const note = 70 * time.Millisecond
	n1 := NewEnvelope(NewOscillator(987.77, note, WaveSquare, rate), note, 3*time.Millisecond, 40*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, note, WaveSquare, rate), note, 3*time.Millisecond, 50*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), 0.35)
}

// scoreSound is a single soft ding for clearing an obstacle.
func scoreSound(rate beep.SampleRate) beep.Streamer {
	const dur = 80 * time.Millisecond
	osc := NewOscillator(880, dur, WaveSine, rate)
	shaped := NewEnvelope(osc, dur, 4*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.3)
}

// screechSound announces an enemy entering the field.
func screechSound(rate beep.SampleRate) beep.Streamer {
	const dur = 160 * time.Millisecond
	osc := NewSweep(900, 450, dur, WaveSaw, rate)
	shaped := NewEnvelope(osc, dur, 10*time.Millisecond, 90*time.Millisecond, rate)
	return newVolume(shaped, 0.25)
}

// gameOverSound is a slow three-note descent.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	const note = 180 * time.Millisecond
	notes := []float64{523.25, 392.00, 261.63}
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		osc := NewOscillator(f, note, WaveSine, rate)
		parts[i] = NewEnvelope(osc, note, 8*time.Millisecond, 100*time.Millisecond, rate)
	}
	return newVolume(beep.Seq(parts...), 0.45)
}

// startSound is a short rising fanfare for round start.
func startSound(rate beep.SampleRate) beep.Streamer {
	const note = 90 * time.Millisecond
	notes := []float64{392.00, 523.25, 659.25}
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		osc := NewOscillator(f, note, WaveSquare, rate)
		parts[i] = NewEnvelope(osc, note, 5*time.Millisecond, 50*time.Millisecond, rate)
	}
	return newVolume(beep.Seq(parts...), 0.3)
}
