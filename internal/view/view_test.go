package view

import (
	"ctchen222/ox-game/internal/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewTargets(t *testing.T) {
	targets := Targets(View(*game.New()))
	require.Len(t, targets, game.BoardSize+1)

	for i := 0; i < game.BoardSize; i++ {
		assert.Equal(t, game.Put{Position: i}, targets[i])
	}
	assert.Equal(t, game.Reset{}, targets[game.BoardSize])
}

func TestViewStatus(t *testing.T) {
	tests := []struct {
		name  string
		model game.Model
		want  string
	}{
		{name: "O to move", model: *game.New(), want: "O's turn"},
		{name: "X to move", model: game.Model{Turn: game.PlayerX}, want: "X's turn"},
		{name: "O won", model: game.Model{Winner: game.PlayerO}, want: "O won!"},
		{name: "X won", model: game.Model{Winner: game.PlayerX}, want: "X won!"},
		{name: "no turn and no winner", model: game.Model{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := View(tt.model)
			require.Len(t, root.Children, 4)
			assert.Equal(t, Title, TextContent(root.Children[0]))
			assert.Equal(t, tt.want, TextContent(root.Children[2]))
			assert.Equal(t, ResetLabel, TextContent(root.Children[3]))
		})
	}
}

func TestViewCellGlyphs(t *testing.T) {
	m := game.New()
	m.Update(game.Put{Position: 0})
	m.Update(game.Put{Position: 8})

	var labels []string
	Walk(View(*m), func(n *Node) {
		if _, ok := n.OnClick.(game.Put); ok {
			labels = append(labels, TextContent(n))
		}
	})

	require.Len(t, labels, game.BoardSize)
	assert.Equal(t, "O", labels[0])
	assert.Equal(t, "X", labels[8])
	assert.Equal(t, game.Empty.Glyph(), labels[4])
}

func TestViewDoesNotMutate(t *testing.T) {
	m := game.New()
	m.Update(game.Put{Position: 4})
	before := *m

	View(*m)
	assert.Equal(t, before, *m)
}

func TestRenderHTML(t *testing.T) {
	m := game.New()
	m.Update(game.Put{Position: 3})

	out, err := RenderHTML(View(*m))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<div><p>OX game</p>"))
	assert.Equal(t, 9, strings.Count(out, `data-msg="put"`))
	assert.Contains(t, out, `<button data-msg="put" data-position="3" type="button">O</button>`)
	assert.Contains(t, out, `<button data-msg="reset" type="button">reset</button>`)
	assert.Contains(t, out, "<p>X&#39;s turn</p>")
	assert.Equal(t, 3, strings.Count(out, "<tr>"))
}
