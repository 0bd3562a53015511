package othello

import "fmt"

// Size is the number of rows and columns of the board.
const Size = 8

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	Dark
	Light
)

func (c Cell) valid() bool {
	return c <= Light
}

// String returns the cell name.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Side is one of the two players.
type Side uint8

const (
	SideDark Side = iota
	SideLight
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideDark {
		return SideLight
	}
	return SideDark
}

// Cell returns the cell value of discs owned by this side.
func (s Side) Cell() Cell {
	if s == SideDark {
		return Dark
	}
	return Light
}

// Turn returns the side to move value for this side.
func (s Side) Turn() Turn {
	if s == SideDark {
		return TurnDark
	}
	return TurnLight
}

func (s Side) String() string {
	return s.Cell().String()
}

// Turn is the side to move, or GameOver once neither side can move.
type Turn uint8

const (
	TurnDark Turn = iota
	TurnLight
	GameOver
)

func (t Turn) valid() bool {
	return t <= GameOver
}

// Side returns the side to move. The bool is false once the game is over.
func (t Turn) Side() (Side, bool) {
	switch t {
	case TurnDark:
		return SideDark, true
	case TurnLight:
		return SideLight, true
	default:
		return 0, false
	}
}

func (t Turn) String() string {
	if side, ok := t.Side(); ok {
		return side.String()
	}
	if t == GameOver {
		return "GameOver"
	}
	return fmt.Sprintf("Turn(%d)", uint8(t))
}

// Grid is a snapshot of all cells, indexed as grid[row][col].
type Grid [Size][Size]Cell
