package view

import (
	"bytes"
	"ctchen222/ox-game/internal/game"
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attribute names the browser host reads to turn a click into a message.
const (
	AttrMsg      = "data-msg"
	AttrPosition = "data-position"

	MsgPut   = "put"
	MsgReset = "reset"
)

// RenderHTML serialises the tree rooted at n as an HTML fragment.
func RenderHTML(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, toHTML(n)); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}

func toHTML(n *Node) *html.Node {
	if n.Tag == "" {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	switch msg := n.OnClick.(type) {
	case game.Put:
		out.Attr = append(out.Attr,
			html.Attribute{Key: AttrMsg, Val: MsgPut},
			html.Attribute{Key: AttrPosition, Val: strconv.Itoa(msg.Position)},
		)
	case game.Reset:
		out.Attr = append(out.Attr, html.Attribute{Key: AttrMsg, Val: MsgReset})
	}
	if n.OnClick != nil {
		out.Attr = append(out.Attr, html.Attribute{Key: "type", Val: "button"})
	}

	for _, c := range n.Children {
		out.AppendChild(toHTML(c))
	}
	return out
}
