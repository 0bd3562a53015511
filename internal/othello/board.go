package othello

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidMove is returned by MakeMove when the target square is not a legal move.
var ErrInvalidMove = errors.New("invalid move")

// ErrTurnMismatch is returned by NewBoardFromString when the side to move does not follow
// from the pass rules for the given discs.
var ErrTurnMismatch = errors.New("turn does not match board")

// directions holds the row and column steps of the 8 compass directions.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an Othello game in progress: the grid and the side to move.
// It is not safe for concurrent use.
type Board struct {
	grid Grid
	turn Turn
}

// NewBoard creates a board with the standard starting position and Dark to move.
func NewBoard() *Board {
	b := &Board{turn: TurnDark}

	mid := Size / 2
	b.grid[mid-1][mid-1] = Light
	b.grid[mid-1][mid] = Dark
	b.grid[mid][mid-1] = Dark
	b.grid[mid][mid] = Light

	return b
}

// NewBoardFromGrid creates a board with a custom grid and side to move.
// It is meant for setting up test positions and analysis. The turn is taken as given,
// even if the side to move has no legal move.
func NewBoardFromGrid(grid Grid, turn Turn) (*Board, error) {
	for row := range Size {
		for col := range Size {
			if !grid[row][col].valid() {
				return nil, fmt.Errorf("invalid cell value %d at %s", grid[row][col], Square{row, col})
			}
		}
	}

	if !turn.valid() {
		return nil, fmt.Errorf("invalid turn value %d", turn)
	}

	return &Board{grid: grid, turn: turn}, nil
}

// NewBoardFromString creates a board from the representation returned by String.
// Unlike NewBoardFromGrid, it rejects a side to move that has to pass and a game over
// marker while a move is still possible.
func NewBoardFromString(s string) (*Board, error) {
	if len(s) != 34 {
		return nil, fmt.Errorf("board string must be 34 characters long, got %d", len(s))
	}

	dark, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid dark discs: %w", err)
	}

	light, err := strconv.ParseUint(s[16:32], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid light discs: %w", err)
	}

	if dark&light != 0 {
		return nil, errors.New("invalid board: dark and light discs cannot overlap")
	}

	var turn Turn
	switch s[32:34] {
	case "-d":
		turn = TurnDark
	case "-l":
		turn = TurnLight
	case "-x":
		turn = GameOver
	default:
		return nil, fmt.Errorf("invalid turn: %s", s[32:34])
	}

	b := &Board{turn: turn}
	for row := range Size {
		for col := range Size {
			mask := uint64(1) << Square{row, col}.index()
			switch {
			case dark&mask != 0:
				b.grid[row][col] = Dark
			case light&mask != 0:
				b.grid[row][col] = Light
			}
		}
	}

	if err := b.checkTurn(); err != nil {
		return nil, err
	}

	return b, nil
}

// checkTurn verifies that the side to move is one the game could reach.
func (b *Board) checkTurn() error {
	darkMoves := b.hasMovesFor(SideDark)
	lightMoves := b.hasMovesFor(SideLight)

	side, ok := b.turn.Side()
	if !ok {
		if darkMoves || lightMoves {
			return fmt.Errorf("%w: game is over but a move is possible", ErrTurnMismatch)
		}
		return nil
	}

	if b.hasMovesFor(side) {
		return nil
	}

	if darkMoves || lightMoves {
		return fmt.Errorf("%w: %s has to pass", ErrTurnMismatch, side)
	}
	return fmt.Errorf("%w: no moves left, game is over", ErrTurnMismatch)
}

// hasMovesFor returns whether side has a legal move, regardless of the side to move.
func (b *Board) hasMovesFor(side Side) bool {
	other := Board{grid: b.grid, turn: side.Turn()}
	return other.HasValidMoves()
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Grid returns a copy of the cells.
func (b *Board) Grid() Grid {
	return b.grid
}

// Turn returns the side to move, or GameOver.
func (b *Board) Turn() Turn {
	return b.turn
}

// IsGameOver returns whether neither side can move anymore.
func (b *Board) IsGameOver() bool {
	return b.turn == GameOver
}

// Score returns the number of dark and light discs.
func (b *Board) Score() (dark, light int) {
	for row := range Size {
		for col := range Size {
			switch b.grid[row][col] {
			case Dark:
				dark++
			case Light:
				light++
			}
		}
	}
	return dark, light
}

// Winner returns the cell value of the side with most discs, or Empty for a draw.
// The bool is false while the game is still going on.
func (b *Board) Winner() (Cell, bool) {
	if !b.IsGameOver() {
		return Empty, false
	}

	dark, light := b.Score()
	switch {
	case dark > light:
		return Dark, true
	case light > dark:
		return Light, true
	default:
		return Empty, true
	}
}

// captureRun scans from (row, col) in direction (dr, dc) and returns the number of
// contiguous opponent discs closed off by a disc of the side to move. It returns 0 if
// the run is empty or hits an empty square or the board edge first.
func (b *Board) captureRun(row, col, dr, dc int) int {
	side, ok := b.turn.Side()
	if !ok {
		return 0
	}
	own := side.Cell()

	run := 0
	for r, c := row+dr, col+dc; inBounds(r, c); r, c = r+dr, c+dc {
		switch b.grid[r][c] {
		case Empty:
			return 0
		case own:
			return run
		}
		run++
	}

	return 0
}

// IsValidMove checks whether the side to move can play on (row, col).
func (b *Board) IsValidMove(row, col int) bool {
	if !inBounds(row, col) || b.grid[row][col] != Empty {
		return false
	}

	for _, dir := range directions {
		if b.captureRun(row, col, dir[0], dir[1]) > 0 {
			return true
		}
	}

	return false
}

// CountFlips returns how many opponent discs playing on (row, col) would flip.
// It returns 0 for squares that are off the board or occupied.
func (b *Board) CountFlips(row, col int) int {
	if !inBounds(row, col) || b.grid[row][col] != Empty {
		return 0
	}

	count := 0
	for _, dir := range directions {
		count += b.captureRun(row, col, dir[0], dir[1])
	}
	return count
}

// HasValidMoves returns whether the side to move has at least one legal move.
func (b *Board) HasValidMoves() bool {
	for row := range Size {
		for col := range Size {
			if b.IsValidMove(row, col) {
				return true
			}
		}
	}
	return false
}

// ValidMoves returns all legal moves of the side to move in row-major order.
func (b *Board) ValidMoves() []Square {
	moves := make([]Square, 0)
	for row := range Size {
		for col := range Size {
			if b.IsValidMove(row, col) {
				moves = append(moves, Square{row, col})
			}
		}
	}
	return moves
}

// MakeMove plays a disc for the side to move on (row, col), flips the captured discs
// and hands the turn over. If the opponent cannot move, the turn stays with the mover.
// If neither side can move the game is over. The board is left untouched on error.
func (b *Board) MakeMove(row, col int) error {
	if !b.IsValidMove(row, col) {
		return fmt.Errorf("%w: %s for %s", ErrInvalidMove, Square{row, col}, b.turn)
	}

	var runs [len(directions)]int
	for i, dir := range directions {
		runs[i] = b.captureRun(row, col, dir[0], dir[1])
	}

	side, _ := b.turn.Side()
	own := side.Cell()

	b.grid[row][col] = own
	for i, dir := range directions {
		for step := 1; step <= runs[i]; step++ {
			b.grid[row+step*dir[0]][col+step*dir[1]] = own
		}
	}

	b.advanceTurn(side)
	return nil
}

// advanceTurn gives the turn to the opponent of mover, handling passes and the end of the game.
func (b *Board) advanceTurn(mover Side) {
	b.turn = mover.Opponent().Turn()
	if b.HasValidMoves() {
		return
	}

	// Opponent has to pass
	b.turn = mover.Turn()
	if b.HasValidMoves() {
		return
	}

	b.turn = GameOver
}

// String returns a compact representation: the dark and light discs as 16 hex digits
// each, followed by "-d", "-l" or "-x" for the side to move.
func (b *Board) String() string {
	var dark, light uint64
	for row := range Size {
		for col := range Size {
			mask := uint64(1) << Square{row, col}.index()
			switch b.grid[row][col] {
			case Dark:
				dark |= mask
			case Light:
				light |= mask
			}
		}
	}

	var turnString string
	switch b.turn {
	case TurnDark:
		turnString = "-d"
	case TurnLight:
		turnString = "-l"
	default:
		turnString = "-x"
	}

	return fmt.Sprintf("%016x%016x%s", dark, light, turnString)
}

// ASCIIArtLines returns the ascii art lines for the board. Legal moves are dotted.
func (b *Board) ASCIIArtLines() []string {
	lines := make([]string, Size+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range Size {
		line := fmt.Sprintf("%d ", row+1)

		for col := range Size {
			switch {
			case b.grid[row][col] == Dark:
				line += "● "
			case b.grid[row][col] == Light:
				line += "○ "
			case b.IsValidMove(row, col):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b *Board) Print() {
	for _, line := range b.ASCIIArtLines() {
		fmt.Println(line)
	}
}
