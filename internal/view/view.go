// Package view turns a game.Model into a declarative UI tree and serialises
// that tree for the hosts that display it.
package view

import "ctchen222/ox-game/internal/game"

// Title is the heading shown above the board.
const Title = "OX game"

// ResetLabel is the caption of the reset button.
const ResetLabel = "reset"

// Node is one element of the UI tree. A node with an empty Tag is a text node.
type Node struct {
	Tag      string
	Text     string
	OnClick  game.Msg
	Children []*Node
}

func element(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

func text(s string) *Node {
	return &Node{Text: s}
}

func button(label string, onClick game.Msg) *Node {
	return &Node{Tag: "button", OnClick: onClick, Children: []*Node{text(label)}}
}

// View renders m without modifying it.
func View(m game.Model) *Node {
	return element("div",
		element("p", text(Title)),
		element("p", drawBoard(m.Board)),
		element("p", text(m.Status())),
		element("p", button(ResetLabel, game.Reset{})),
	)
}

func drawBoard(b game.Board) *Node {
	table := element("table")
	for row := 0; row < 3; row++ {
		tr := element("tr")
		for col := 0; col < 3; col++ {
			pos := row*3 + col
			tr.Children = append(tr.Children, element("td", button(b[pos].Glyph(), game.Put{Position: pos})))
		}
		table.Children = append(table.Children, tr)
	}
	return table
}

// Targets lists the messages of every clickable node in document order.
func Targets(n *Node) []game.Msg {
	var out []game.Msg
	Walk(n, func(n *Node) {
		if n.OnClick != nil {
			out = append(out, n.OnClick)
		}
	})
	return out
}

// Walk visits n and its descendants depth-first, parents before children.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// TextContent concatenates every text node under n.
func TextContent(n *Node) string {
	var s string
	Walk(n, func(n *Node) {
		if n.Tag == "" {
			s += n.Text
		}
	})
	return s
}
