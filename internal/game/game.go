package game

// CellState is the content of a single cell: empty or one of the two player marks.
type CellState string

const (
	Empty   CellState = ""
	PlayerO CellState = "O"
	PlayerX CellState = "X"
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// emptyGlyph keeps blank buttons the same width as marked ones.
const emptyGlyph = "　"

// Glyph returns the text shown on a cell button.
func (c CellState) Glyph() string {
	if c == Empty {
		return emptyGlyph
	}
	return string(c)
}

// Other returns the opposing mark. Empty has no opponent.
func (c CellState) Other() CellState {
	switch c {
	case PlayerO:
		return PlayerX
	case PlayerX:
		return PlayerO
	default:
		return Empty
	}
}

// Board holds the nine cells in row-major order.
type Board [BoardSize]CellState

// Lines lists every winning triple: three rows, three columns, two diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsWon reports whether any line is fully occupied by a single player.
func IsWon(b Board) bool {
	for _, mark := range [2]CellState{PlayerO, PlayerX} {
		for _, line := range Lines {
			if b[line[0]] == mark && b[line[1]] == mark && b[line[2]] == mark {
				return true
			}
		}
	}
	return false
}

// Msg is a message delivered to Model.Update.
type Msg interface {
	isMsg()
}

// Put places the current player's mark on Position (0-8, row-major).
type Put struct {
	Position int
}

// Reset restores the initial state.
type Reset struct{}

func (Put) isMsg()   {}
func (Reset) isMsg() {}

// ValidPosition reports whether pos addresses a cell on the board.
func ValidPosition(pos int) bool {
	return pos >= 0 && pos < BoardSize
}

// Model is the complete state of one game.
type Model struct {
	Board  Board
	Turn   CellState
	Winner CellState
}

// New returns a game with an empty board and O to move.
func New() *Model {
	return &Model{
		Turn:   PlayerO,
		Winner: Empty,
	}
}

// Update applies msg and reports whether the view must be rendered again.
//
// A Put on an occupied cell or on a decided game changes nothing but still
// asks for a render. A Put outside the board is rejected and returns false.
func (m *Model) Update(msg Msg) bool {
	switch msg := msg.(type) {
	case Put:
		if !ValidPosition(msg.Position) {
			return false
		}
		if m.Winner != Empty {
			return true
		}
		if m.Board[msg.Position] != Empty {
			return true
		}

		m.Board[msg.Position] = m.Turn
		if IsWon(m.Board) {
			m.Winner = m.Turn
			m.Turn = Empty
			return true
		}
		m.Turn = m.Turn.Other()
		return true

	case Reset:
		*m = *New()
		return true
	}
	return false
}

// Status is the line shown under the board.
func (m *Model) Status() string {
	if m.Winner != Empty {
		return string(m.Winner) + " won!"
	}
	if m.Turn == Empty {
		return ""
	}
	return string(m.Turn) + "'s turn"
}
