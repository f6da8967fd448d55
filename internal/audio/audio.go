// Package audio plays short synthesized cues for game events. Sound is
// strictly fire-and-forget: a cue that can't play never blocks or fails
// the simulation. When no audio device is available the manager runs in
// silent mode and every Play becomes a no-op.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies one game sound.
type Cue int

const (
	CueStart Cue = iota
	CueFlap
	CueScore
	CueCoin
	CueEnemy
	CueGameOver
)

var cueNames = map[Cue]string{
	CueStart:    "start",
	CueFlap:     "flap",
	CueScore:    "score",
	CueCoin:     "coin",
	CueEnemy:    "enemy",
	CueGameOver: "gameover",
}

func (c Cue) String() string {
	if n, ok := cueNames[c]; ok {
		return n
	}
	return "unknown"
}

// synth maps each cue to its generator. Overrides loaded from disk shadow
// these per cue; a cue whose override fails to load keeps its synth.
var synth = map[Cue]func(beep.SampleRate) beep.Streamer{
	CueStart:    startSound,
	CueFlap:     flapSound,
	CueScore:    scoreSound,
	CueCoin:     coinSound,
	CueEnemy:    screechSound,
	CueGameOver: gameOverSound,
}

// Manager owns the speaker and mixes cues into it.
type Manager struct {
	mu        sync.Mutex
	logger    *log.Logger
	mixer     *beep.Mixer
	overrides map[Cue]*beep.Buffer
	enabled   bool
	muted     bool
}

// NewManager creates an uninitialized manager. Call Init before Play;
// without it every Play is a silent no-op.
func NewManager(logger *log.Logger, muted bool) *Manager {
	return &Manager{
		logger:    logger,
		mixer:     &beep.Mixer{},
		overrides: make(map[Cue]*beep.Buffer),
		muted:     muted,
	}
}

// Init opens the audio device and starts the mixer. Failure is not an
// error to the caller: the manager degrades to silent mode and logs once.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.enabled {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		m.logger.Warn("audio unavailable, running silent", "err", err)
		return
	}
	speaker.Play(m.mixer)
	m.enabled = true
}

// LoadOverride replaces a cue's synthesized sound with a WAV file,
// resampled to the speaker rate and buffered in memory. A broken or
// missing file leaves the synth fallback in place.
func (m *Manager) LoadOverride(cue Cue, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("audio: open %s override: %w", cue, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("audio: decode %s override: %w", cue, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)

	m.mu.Lock()
	m.overrides[cue] = buf
	m.mu.Unlock()
	return nil
}

// LoadOverrides scans dir for per-cue WAV files named after the cue
// ("flap.wav", "coin.wav", ...). Cues without a file keep their synth;
// a file that exists but fails to load is logged and skipped, so one
// broken asset never silences the rest.
func (m *Manager) LoadOverrides(dir string) {
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, dir[1:])
	}

	for cue := CueStart; cue <= CueGameOver; cue++ {
		path := filepath.Join(dir, cue.String()+".wav")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := m.LoadOverride(cue, path); err != nil {
			m.logger.Warn("sound override unusable, keeping synth", "cue", cue.String(), "err", err)
		}
	}
}

// Play queues a cue on the mixer and returns immediately.
func (m *Manager) Play(cue Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.muted {
		return
	}

	var s beep.Streamer
	if buf, ok := m.overrides[cue]; ok {
		s = buf.Streamer(0, buf.Len())
	} else if gen, ok := synth[cue]; ok {
		s = gen(sampleRate)
	} else {
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted toggles cue playback without touching the device.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
}

// Muted reports the mute state.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Close drains the mixer. The speaker itself has no close; clearing the
// streamers is what stops residual output.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.enabled = false
}
