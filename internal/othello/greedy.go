package othello

// GreedyMove returns the legal move that flips the most discs for the side to move.
// Squares are scanned in row-major order and ties go to the first square found.
// It returns (NoMove, NoMove) if the side to move has no legal move.
func (b *Board) GreedyMove() (row, col int) {
	best, _ := b.GreedyChoice()
	return best.Row, best.Col
}

// GreedyChoice is like GreedyMove, but also returns the flip count of the chosen move.
// The flip count is 0 when there is no legal move.
func (b *Board) GreedyChoice() (Square, int) {
	best := Square{NoMove, NoMove}
	maxFlips := 0

	for row := range Size {
		for col := range Size {
			if !b.IsValidMove(row, col) {
				continue
			}

			// Legal moves flip at least one disc, so the first one always wins against maxFlips == 0.
			if flips := b.CountFlips(row, col); flips > maxFlips {
				maxFlips = flips
				best = Square{row, col}
			}
		}
	}

	return best, maxFlips
}
