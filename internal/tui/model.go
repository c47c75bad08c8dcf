// Package tui provides the Bubble Tea game interface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordshot/internal/game"
)

type tickMsg time.Time

// Model implements the Bubble Tea game UI.
type Model struct {
	session *game.Session
	stepper *game.Stepper

	width  int
	height int
}

// NewModel constructs a game UI model around session.
func NewModel(session *game.Session, tickRate int) *Model {
	return &Model{
		session: session,
		stepper: game.NewStepper(tickRate),
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.stepper.Interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if m.session.State() == game.StatePlaying {
			m.session.Advance(m.stepper.Steps(now))
		} else {
			m.stepper.Reset(now)
		}
		return m, m.tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch m.session.State() {
	case game.StateMenu:
		switch key {
		case "enter", " ", "space":
			m.start()
		case "s":
			m.session.OpenSettings()
		case "q":
			return tea.Quit
		}
	case game.StateSettings:
		switch key {
		case "1":
			m.session.SetSFX(!m.session.SFX())
		case "2":
			m.session.SetMusic(!m.session.Music())
		case "esc", "enter", "b":
			m.session.ReturnToMenu()
		}
	case game.StatePlaying:
		if msg.Type == tea.KeyEsc {
			m.session.ReturnToMenu()
			return nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
			m.session.ApplyLetter(string(msg.Runes[0]))
		}
	case game.StateGameOver:
		switch key {
		case "enter", "r":
			m.start()
		case "esc", "m":
			m.session.ReturnToMenu()
		case "q":
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) start() {
	if m.session.Start() {
		m.stepper.Reset(time.Now())
	}
}
