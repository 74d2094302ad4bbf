package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/game"
	"github.com/vovakirdan/brickout/internal/storage"
)

// maxFrameDelta caps the simulation delta for one tick. A suspended terminal
// resuming after seconds away steps the world by at most this much.
const maxFrameDelta = 0.1

// Model is the Bubble Tea model running a brickout session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	lastTick   time.Time
	highScore  int
	scoreSaved bool // Whether the score was saved for the current game over
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given terminal size and game
// configuration.
func NewModel(cfg core.RuntimeConfig, gameCfg config.Config, store *storage.Store, player string) Model {
	m := Model{
		game:       game.New(gameCfg, WorldAspect(cfg.ScreenW, cfg.ScreenH), cfg.Seed),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}
	return m
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

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer and the simulation's world bounds to
// the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= 0 {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(WorldAspect(msg.Width, msg.Height))
	return m, nil
}

// handleTick advances the simulation by the elapsed wall-clock delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	m.lastTick = now

	wasOver := m.game.State() == game.StateGameOver
	m.game.Step(dt, m.inputFrame)

	// Save the score once per game over
	if m.game.State() == game.StateGameOver {
		if !wasOver && !m.scoreSaved && m.game.Score() > 0 && m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.player, m.game.Score(), m.game.Level())
			if m.game.Score() > m.highScore {
				m.highScore = m.game.Score()
			}
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.game.Snapshot(), m.highScore)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg core.RuntimeConfig, gameCfg config.Config, store *storage.Store, player string) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	p := tea.NewProgram(
		NewModel(cfg, gameCfg, store, player),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
