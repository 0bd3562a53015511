package othello

import (
	"fmt"
	"strings"
)

// NoMove is the row and column returned by GreedyMove when the side to move has no legal move.
const NoMove = -1

// Square identifies a board square by row and column, both starting at 0.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds returns whether the square lies on the board.
func (s Square) InBounds() bool {
	return inBounds(s.Row, s.Col)
}

// String returns the field notation (e.g. "c4") or "(row,col)" for squares off the board.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(s.Col), s.Row+1)
}

// index returns the bit index used by the string encoding.
func (s Square) index() int {
	return s.Row*Size + s.Col
}

// ParseSquare converts a field notation (e.g. "a1", "h8") to a square.
// Columns are the letters a-h, rows are the digits 1-8.
func ParseSquare(field string) (Square, error) {
	if len(field) != 2 {
		return Square{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Square{}, fmt.Errorf("invalid field: %q", field)
	}

	return Square{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
