package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/caveleap/internal/audio"
	"github.com/vovakirdan/caveleap/internal/core"
	"github.com/vovakirdan/caveleap/internal/game"
	"github.com/vovakirdan/caveleap/internal/level"
	"github.com/vovakirdan/caveleap/internal/storage"
)

// Model is the Bubble Tea model driving one game session. The session is
// held by pointer, so the value-receiver Update methods all mutate the
// same simulation.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Manager
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       *KeyMapper
	quitting   bool
	runSaved   bool // Whether the current round's result has been recorded
}

// NewModel creates a Bubble Tea model for a fresh session.
func NewModel(levels level.Table, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	best := 0
	if store != nil {
		//nolint:errcheck // Best-effort read, 0 is a fine starting best
		best, _ = store.BestScore()
	}

	if sound != nil && cfg.Mute {
		sound.SetMuted(true)
	}

	return Model{
		session:    game.NewSession(cfg.Seed, levels, best),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, m.config.ScreenW, m.config.ScreenH, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers actions for the next tick; quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordRun()
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "m" && m.sound != nil {
		m.sound.SetMuted(!m.sound.Muted())
	}
	return m, nil
}

// handleResize rescales the cell buffer. The simulation runs in virtual
// units, so the round keeps going across any resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step and translates the returned events
// into sound cues and persistence.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	ev := m.session.Step(m.inputFrame)
	m.inputFrame.Clear()

	if ev.Has(game.EventStarted) {
		m.runSaved = false
	}
	if ev.Has(game.EventDied) {
		m.recordRun()
	}
	m.playCues(ev)

	return m, tickCmd(m.config.TickRate)
}

// recordRun persists the round's result at most once. Runs are
// append-only rows; the stored best is derived and never decreases.
func (m *Model) recordRun() {
	if m.store == nil || m.runSaved {
		return
	}
	snap := m.session.Snapshot()
	if snap.State == game.StateStart || snap.Score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.RecordRun(snap.Score, snap.Bonus, snap.LevelName)
	m.runSaved = true
}

func (m Model) playCues(ev game.Events) {
	if m.sound == nil {
		return
	}
	cues := []struct {
		event game.Events
		cue   audio.Cue
	}{
		{game.EventStarted, audio.CueStart},
		{game.EventFlapped, audio.CueFlap},
		{game.EventScored, audio.CueScore},
		{game.EventCoinTaken, audio.CueCoin},
		{game.EventEnemySpawned, audio.CueEnemy},
		{game.EventDied, audio.CueGameOver},
	}
	for _, c := range cues {
		if ev.Has(c.event) {
			m.sound.Play(c.cue)
		}
	}
}

// View renders the current snapshot to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game.Render(m.session.Snapshot(), m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(levels level.Table, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) error {
	model := NewModel(levels, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to flap and hit buttons
	)

	_, err := p.Run()
	return err
}
