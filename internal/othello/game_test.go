package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		field   string
		want    Square
		wantErr bool
	}{
		{"a1", Square{0, 0}, false},
		{"h8", Square{7, 7}, false},
		{"c4", Square{3, 2}, false},
		{"F5", Square{4, 5}, false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a", Square{}, true},
		{"a10", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, err := ParseSquare(tt.field)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSquare_String(t *testing.T) {
	require.Equal(t, "a1", Square{0, 0}.String())
	require.Equal(t, "c4", Square{3, 2}.String())
	require.Equal(t, "h8", Square{7, 7}.String())
	require.Equal(t, "(-1,-1)", Square{NoMove, NoMove}.String())
	require.Equal(t, "(8,0)", Square{8, 0}.String())
}

func TestNewGameFromTranscript(t *testing.T) {
	game, err := NewGameFromTranscript("f5 f6\ne6")
	require.NoError(t, err)

	require.Equal(t, []Square{{4, 5}, {5, 5}, {5, 4}}, game.Moves())
	require.Equal(t, "f5f6e6", game.Transcript())
	require.Equal(t, TurnLight, game.Board().Turn())

	dark, light := game.Board().Score()
	require.Equal(t, 7, dark+light)

	// Start board is unaffected
	require.Equal(t, NewBoard().Grid(), game.Start().Grid())
}

func TestNewGameFromTranscript_Invalid(t *testing.T) {
	_, err := NewGameFromTranscript("f5f")
	require.Error(t, err)

	_, err = NewGameFromTranscript("z9")
	require.Error(t, err)

	_, err = NewGameFromTranscript("a1")
	require.ErrorIs(t, err, ErrInvalidMove)
}

func TestGame_PushMove(t *testing.T) {
	game := NewGame()

	require.ErrorIs(t, game.PushMove(Square{0, 0}), ErrInvalidMove)
	require.Empty(t, game.Moves())

	require.NoError(t, game.PushMove(Square{2, 3}))
	require.Equal(t, "d3", game.Transcript())

	// Returned board is a copy
	board := game.Board()
	require.NoError(t, board.MakeMove(2, 2))
	require.Equal(t, TurnLight, game.Board().Turn())
}
