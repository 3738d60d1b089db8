// Package tui hosts the game in a terminal using Bubble Tea.
package tui

import (
	"ctchen222/ox-game/internal/game"
	"ctchen222/ox-game/internal/view"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

const help = "arrows/hjkl move • enter/space select • 1-9 put • r reset • q quit"

// Model adapts game.Model to the tea.Model interface.
type Model struct {
	game  *game.Model
	focus int
}

// New mounts a fresh game.
func New() Model {
	slog.Info("create")
	return Model{game: game.New()}
}

// Game returns a copy of the hosted game state.
func (m Model) Game() game.Model {
	return *m.game
}

// Focus returns the index of the highlighted control.
func (m Model) Focus() int {
	return m.focus
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	targets := view.Targets(view.View(*m.game))

	switch s := key.String(); s {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.moveFocus(-1, 0, len(targets))
	case "right", "l":
		m.moveFocus(1, 0, len(targets))
	case "up", "k":
		m.moveFocus(0, -1, len(targets))
	case "down", "j":
		m.moveFocus(0, 1, len(targets))
	case "tab":
		m.focus = (m.focus + 1) % len(targets)
	case "shift+tab":
		m.focus = (m.focus + len(targets) - 1) % len(targets)
	case "enter", " ":
		m.dispatch(targets[m.focus])
	case "r":
		m.dispatch(game.Reset{})
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		pos := int(s[0] - '1')
		m.focus = pos
		m.dispatch(game.Put{Position: pos})
	}
	return m, nil
}

// moveFocus walks the 3x3 grid; the reset button sits below the bottom row.
func (m *Model) moveFocus(dx, dy, targets int) {
	reset := targets - 1
	if m.focus == reset {
		if dy < 0 {
			m.focus = game.BoardSize - 2
		}
		return
	}

	row, col := m.focus/3, m.focus%3
	col = min(max(col+dx, 0), 2)
	row += dy
	switch {
	case row < 0:
		row = 0
	case row > 2:
		m.focus = reset
		return
	}
	m.focus = row*3 + col
}

func (m *Model) dispatch(msg game.Msg) {
	switch msg := msg.(type) {
	case game.Put:
		slog.Info("Put", "cell.position", msg.Position)
	case game.Reset:
		slog.Info("Reset")
	}
	slog.Debug("update")
	m.game.Update(msg)
}

func (m Model) View() string {
	slog.Debug("view")
	return renderTree(view.View(*m.game), m.focus) + "\n" + helpStyle.Render(help) + "\n"
}
