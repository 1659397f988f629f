package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/egg-launch/internal/core"
	"github.com/vovakirdan/egg-launch/internal/registry"
	"github.com/vovakirdan/egg-launch/internal/storage"
)

// charger is implemented by games with a charge-to-launch control.
type charger interface {
	Charging() bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	scores     storage.ScoreLog
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	embedded   bool // Back returns to a parent instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig) Model {
	svc = svc.withDefaults()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		svc:        svc,
		scores:     svc.ScoreLog(game.ID()),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.svc.Logger.Info("game started", "game", m.game.ID(), "seed", seedOf(m.game))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keys.MapMouse(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	charging := false
	if c, ok := m.game.(charger); ok {
		charging = c.Charging()
	}

	action, isQuit := m.keys.MapKey(msg, charging)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the game by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameSeconds(m.lastTick, now, m.config.FrameSeconds())
	m.lastTick = now

	var result core.StepResult
	if adv, ok := m.game.(registry.Advancer); ok {
		result = adv.Advance(m.inputFrame, dt)
	} else {
		result = m.game.Step(m.inputFrame)
	}
	m.gameState = result.State
	m.handleEvents(result.Events)
	if m.inputFrame.Has(core.ActionRestart) {
		m.svc.Logger.Info("level restarted", "game", m.game.ID(), "seed", seedOf(m.game))
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents logs the frame's events, persists completed rounds and
// plays audio cues.
func (m Model) handleEvents(events []core.Event) {
	if len(events) == 0 {
		return
	}
	logger := m.svc.Logger
	for _, ev := range events {
		logger.Debug("event", "game", m.game.ID(), "kind", ev.Kind, "value", ev.Value)
		if ev.Kind != core.EventWin {
			continue
		}
		duration := core.FormatDuration(ev.Value)
		if err := m.scores.AppendScore(ev.Value); err != nil {
			logger.Warn("could not save round time", "game", m.game.ID(), "duration", duration, "error", err)
			continue
		}
		logger.Info("round complete", "game", m.game.ID(), "duration", duration)
	}
	m.svc.Sink.Play(events)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".egglaunch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.svc.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.svc.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.svc.Logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the game with a one-line key help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// seedOf returns the level seed for games that expose one.
func seedOf(g registry.Game) int64 {
	if s, ok := g.(interface{ Seed() int64 }); ok {
		return s.Seed()
	}
	return 0
}

// Run starts the Bubble Tea program for one game. It returns true when the
// user pressed Back rather than Quit.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, svc, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
