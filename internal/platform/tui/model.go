package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/game"
)

// Model is the Bubble Tea model running a single Pac-Man session. Key
// presses accumulate in an input frame that is applied on the next tick, so
// the simulation only ever sees input at tick boundaries.
type Model struct {
	game       *game.Game
	store      ScoreSaver
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	frame      core.InputFrame
	status     string
	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// ScoreSaver is the slice of the storage layer the model needs. Nil disables
// score persistence.
type ScoreSaver interface {
	SaveScore(score, level int) (int64, error)
}

// NewModel creates a new Bubble Tea model with a fresh game.
func NewModel(store ScoreSaver, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	return Model{
		game:      newGame(cfg),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		frame:     core.NewInputFrame(),
	}
}

func newGame(cfg core.RuntimeConfig) *game.Game {
	g := game.New(game.Options{
		Seed:         cfg.Seed,
		Lives:        uint8(cfg.Lives),
		UpdatePeriod: uint8(cfg.UpdatePeriod),
	})
	g.Play()
	return g
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
		return m.handleMouse(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey gathers keyboard input into the current frame. Quit is the only
// action applied immediately; everything else waits for the tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.frame.Set(action)
	}
	return m, nil
}

// applyFrame feeds the actions gathered since the last tick into the game,
// then clears the frame.
func (m *Model) applyFrame() {
	if m.frame.Has(core.ActionPause) {
		if m.game.Paused() {
			m.game.Play()
		} else {
			m.game.Pause()
		}
	}

	if m.frame.Has(core.ActionRestart) && m.game.Lives() == 0 {
		m.config.Seed = uint64(time.Now().UnixNano())
		m.game = newGame(m.config)
		m.scoreSaved = false
		m.status = ""
	}

	if m.frame.Has(core.ActionUp) {
		m.game.MovePlayer(game.DirUp)
	}
	if m.frame.Has(core.ActionLeft) {
		m.game.MovePlayer(game.DirLeft)
	}
	if m.frame.Has(core.ActionDown) {
		m.game.MovePlayer(game.DirDown)
	}
	if m.frame.Has(core.ActionRight) {
		m.game.MovePlayer(game.DirRight)
	}

	m.frame.Clear()
}

// handleMouse turns a click on the board into a queued walk.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	row := int8(msg.Y)
	col := int8(msg.X / cellWidth)
	if err := m.game.SetPlayerTarget(row, col); err != nil {
		m.status = "can't walk there"
		return m, nil
	}
	m.status = ""
	return m, nil
}

// handleTick applies the gathered input frame and advances the simulation
// one raw tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyFrame()
	m.game.Step()

	// Save the score once per game over
	if m.game.Lives() == 0 && !m.scoreSaved {
		if m.store != nil && m.game.Score() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(int(m.game.Score()), int(m.game.Level()))
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the board and HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderBoard(m.game) + "\n" + renderHUD(m.game, m.status)
}

// Run starts the Bubble Tea program with the given model.
func Run(store ScoreSaver, cfg core.RuntimeConfig) error {
	model := NewModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks drive the pathfinder
	)

	_, err := p.Run()
	return err
}
