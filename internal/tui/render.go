package tui

import (
	"ctchen222/ox-game/internal/view"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	clrBorder = lipgloss.Color("#30363d")
	clrFocus  = lipgloss.Color("#e3b341")
	clrTitle  = lipgloss.Color("#58a6ff")
	clrSubtle = lipgloss.Color("#8b949e")

	titleStyle   = lipgloss.NewStyle().Foreground(clrTitle).Bold(true)
	buttonStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(clrBorder).Padding(0, 1)
	focusStyle   = buttonStyle.BorderForeground(clrFocus).Foreground(clrFocus).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(clrSubtle)
	paragraphGap = lipgloss.NewStyle().MarginBottom(1)
)

// renderer draws a view tree, highlighting the clickable node at index focus.
type renderer struct {
	focus   int
	targets int
}

func renderTree(root *view.Node, focus int) string {
	r := &renderer{focus: focus}
	return r.node(root)
}

func (r *renderer) node(n *view.Node) string {
	if n.Tag == "" {
		return n.Text
	}

	if n.OnClick != nil {
		style := buttonStyle
		if r.targets == r.focus {
			style = focusStyle
		}
		r.targets++
		return style.Render(view.TextContent(n))
	}

	children := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, r.node(c))
	}

	switch n.Tag {
	case "tr":
		return lipgloss.JoinHorizontal(lipgloss.Top, children...)
	case "p":
		out := strings.Join(children, "")
		if view.TextContent(n) == view.Title {
			out = titleStyle.Render(out)
		}
		return paragraphGap.Render(out)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, children...)
	}
}
