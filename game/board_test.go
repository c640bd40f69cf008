package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	wQ = NewPiece(Queen, White)
	wA = NewPiece(Ant, White)
	wB = NewPiece(Beetle, White)
	wG = NewPiece(Grasshopper, White)
	wS = NewPiece(Spider, White)
	bQ = NewPiece(Queen, Black)
	bA = NewPiece(Ant, Black)
	bB = NewPiece(Beetle, Black)
	bG = NewPiece(Grasshopper, Black)
	bS = NewPiece(Spider, Black)
)

// singles builds a board with one piece per tile.
func singles(pieces map[int]Piece) *Board {
	stacks := make(map[int][]Piece, len(pieces))
	for tile, piece := range pieces {
		stacks[tile] = []Piece{piece}
	}
	return NewBoardFrom(stacks)
}

// ringOfBugs surrounds tile 1 so that tile 0 is boxed in on two sides.
var ringOfBugs = map[int]Piece{
	1: wQ, 8: wA, 9: wA, 10: wA, 11: wG, 12: wG, 4: wG,
}

func with(base map[int]Piece, tile int, piece Piece) map[int]Piece {
	pieces := make(map[int]Piece, len(base)+1)
	for t, p := range base {
		pieces[t] = p
	}
	pieces[tile] = piece
	return pieces
}

func TestValidatePlacement(t *testing.T) {
	tests := []struct {
		name     string
		board    *Board
		turn     Turn
		expected error
	}{
		{"first piece on empty board", NewBoard(), NewPlacement(0, Ant, White), nil},
		{"next to opposite color with one piece placed", singles(map[int]Piece{0: wQ}), NewPlacement(1, Spider, Black), nil},
		{"tile occupied", singles(map[int]Piece{0: bG}), NewPlacement(0, Ant, White), ErrTileOccupied},
		{"beetle on occupied tile", singles(map[int]Piece{0: wS}), NewPlacement(0, Beetle, White), ErrTileOccupied},
		{"next to opposite color with several pieces placed", singles(map[int]Piece{0: wQ, 1: bQ}), NewPlacement(2, Beetle, White), ErrPlacementAdjacency},
		{"black next to white", singles(map[int]Piece{0: wQ, 1: bQ}), NewPlacement(2, Beetle, Black), ErrPlacementAdjacency},
		{"next to own color only", singles(map[int]Piece{0: wQ, 1: bQ}), NewPlacement(4, Ant, White), nil},
		{"away from the hive", singles(map[int]Piece{0: wQ, 1: bQ}), NewPlacement(30, Ant, White), ErrPlacementAdjacency},
		{"second piece away from the first", singles(map[int]Piece{0: wQ}), NewPlacement(7, Queen, Black), ErrPlacementAdjacency},
		{"covered piece does not count", NewBoardFrom(map[int][]Piece{0: {wQ, bB}, 1: {bQ}}), NewPlacement(5, Ant, Black), nil},
		{"negative tile", singles(map[int]Piece{0: wQ}), NewPlacement(-1, Ant, Black), ErrInvalidNotation},
		{"negative tile on empty board", NewBoard(), NewPlacement(-6, Ant, White), ErrInvalidNotation},
		{"beyond the grid", singles(map[int]Piece{0: wQ}), NewPlacement(math.MaxInt64, Ant, Black), ErrInvalidNotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.board.Validate(tt.turn)
			if tt.expected == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestValidateMove(t *testing.T) {
	tests := []struct {
		name     string
		board    *Board
		turn     Turn
		expected error
	}{
		// One hive
		{"lifting breaks a chain", singles(map[int]Piece{0: wQ, 1: wA, 4: wB}), NewMove(0, 2, White), ErrOneHive},
		{"lifting breaks a mixed chain", singles(map[int]Piece{0: wQ, 1: bQ, 3: wA, 4: wB}), NewMove(0, 2, White), ErrOneHive},
		{"beetles on stacks do not hide the split", NewBoardFrom(map[int][]Piece{0: {wG}, 1: {wQ, wB}, 4: {bA, wB}}), NewMove(0, 2, White), ErrOneHive},
		{"lifting breaks a large hive", singles(map[int]Piece{
			0: wQ, 1: bQ, 3: wA, 7: bA, 4: wB, 8: bB, 5: wG, 20: bG,
		}), NewMove(0, 2, White), ErrOneHive},
		{"landing away from the hive", singles(map[int]Piece{0: wQ, 1: wA}), NewMove(1, 7, White), ErrOneHive},
		{"loop keeps the hive together", singles(map[int]Piece{0: wQ, 1: wA, 8: wS, 9: wG, 10: wB, 3: wS}), NewMove(1, 7, White), nil},

		// Grid bounds
		{"negative origin", singles(map[int]Piece{0: wQ, 1: wA}), NewMove(-1, 2, White), ErrInvalidNotation},
		{"negative destination", singles(map[int]Piece{0: wQ, 1: wA}), NewMove(1, -7, White), ErrInvalidNotation},
		{"destination beyond the grid", singles(map[int]Piece{0: wQ, 1: wA}), NewMove(1, math.MaxInt64, White), ErrInvalidNotation},

		// Ant
		{"ant across a manageable gap", singles(map[int]Piece{
			0: wQ, 6: wA, 18: wG, 5: wB, 14: wS, 16: wA,
			8: bA, 2: bQ, 10: bG, 11: bB, 12: bS,
		}), NewMove(16, 9, White), nil},
		{"ant through a gap with one edge", singles(map[int]Piece{0: wQ, 1: bQ, 3: wG, 8: bA, 10: wB, 6: wA}), NewMove(6, 2, White), ErrIllegalMove},
		{"ant into a gap next to its origin", singles(map[int]Piece{8: wA, 1: wQ, 0: wB, 3: wS, 9: wG, 10: wB}), NewMove(8, 2, White), ErrIllegalMove},
		{"ant through a gap with two edges", singles(map[int]Piece{1: wQ, 0: wB, 3: wS, 10: wG, 6: wA}), NewMove(6, 2, White), nil},

		// Beetle
		{"beetle onto an occupied tile", singles(map[int]Piece{0: wQ, 1: wB}), NewMove(1, 0, White), nil},
		{"beetle onto an empty tile", singles(map[int]Piece{0: wQ, 1: wB}), NewMove(1, 2, White), nil},
		{"beetle several tiles away", singles(map[int]Piece{0: wQ, 1: wB}), NewMove(1, 3, White), ErrIllegalMove},
		{"beetle jumps instead of sliding", singles(map[int]Piece{0: wQ, 1: wA, 3: wS, 10: wG, 8: wB}), NewMove(8, 9, White), ErrIllegalMove},
		{"beetle onto an opposite color piece", singles(map[int]Piece{0: bQ, 2: wQ, 1: wB}), NewMove(1, 0, White), nil},
		{"beetle off a stack onto an empty tile", NewBoardFrom(map[int][]Piece{0: {wQ, wB}}), NewMove(0, 1, White), nil},
		{"beetle from a stack onto a stack", NewBoardFrom(map[int][]Piece{0: {wQ, wB}, 1: {wA}}), NewMove(0, 1, White), nil},
		{"beetle stays put", singles(map[int]Piece{0: wQ, 1: wB}), NewMove(1, 1, White), ErrIllegalMove},

		// Grasshopper
		{"grasshopper over an empty tile", singles(map[int]Piece{0: wQ, 3: wS, 1: wG}), NewMove(1, 10, White), ErrIllegalMove},
		{"grasshopper onto an adjacent tile", singles(map[int]Piece{0: wQ, 1: wG}), NewMove(1, 2, White), ErrIllegalMove},
		{"grasshopper onto an occupied tile", singles(map[int]Piece{0: wQ, 4: wS, 1: wG}), NewMove(1, 4, White), ErrPieceStacking},
		{"grasshopper over a same color piece", singles(map[int]Piece{0: wQ, 1: wG}), NewMove(1, 4, White), nil},
		{"grasshopper over an opposite color piece", singles(map[int]Piece{0: bQ, 2: wQ, 1: wG}), NewMove(1, 4, White), nil},
		{"grasshopper crooked jump", singles(map[int]Piece{0: wQ, 1: wG}), NewMove(1, 3, White), ErrIllegalMove},

		// Queen
		{"queen one step", singles(map[int]Piece{0: wQ, 1: bS}), NewMove(0, 2, White), nil},
		{"queen onto an occupied tile", singles(map[int]Piece{0: bS, 1: wQ}), NewMove(1, 0, White), ErrPieceStacking},
		{"queen several tiles away", singles(map[int]Piece{0: bS, 1: wQ}), NewMove(1, 3, White), ErrIllegalMove},
		{"queen jumps instead of sliding", singles(map[int]Piece{1: wA, 3: wS, 10: wG, 0: wB, 8: wQ}), NewMove(8, 9, White), ErrIllegalMove},

		// Spider
		{"spider one tile", singles(map[int]Piece{0: wQ, 1: wS}), NewMove(1, 2, White), ErrIllegalMove},
		{"spider two tiles", singles(map[int]Piece{0: wQ, 1: wS}), NewMove(1, 3, White), ErrIllegalMove},
		{"spider three tiles", singles(map[int]Piece{0: wQ, 1: wS}), NewMove(1, 4, White), nil},
		{"spider four tiles", singles(map[int]Piece{0: wQ, 4: wB, 1: wS}), NewMove(1, 13, White), ErrIllegalMove},
		{"spider cannot backtrack", singles(with(ringOfBugs, 0, wS)), NewMove(0, 2, White), ErrIllegalMove},
		{"spider cannot backtrack further", singles(with(ringOfBugs, 0, wS)), NewMove(0, 3, White), ErrIllegalMove},
		{"spider reaches a tile two or three steps away", singles(with(ringOfBugs, 6, wS)), NewMove(6, 2, White), nil},
		{"spider reaches a tile three steps away", singles(with(ringOfBugs, 6, wS)), NewMove(6, 3, White), nil},
		{"spider passes its own origin", singles(map[int]Piece{1: wQ, 8: wA, 2: wA, 3: wA, 12: wG, 4: wG, 6: wS}), NewMove(6, 14, White), nil},

		// Preconditions
		{"opponent piece", singles(map[int]Piece{0: wQ, 1: bQ}), NewMove(1, 2, White), ErrNotYourPiece},
		{"unoccupied start", singles(map[int]Piece{0: wQ, 1: bQ}), NewMove(2, 3, White), ErrTileStartNotOccupied},
		{"queen not placed", singles(map[int]Piece{0: wA, 1: bQ}), NewMove(0, 2, White), ErrQueenNotYetPlaced},
		{"queen check precedes ownership", singles(map[int]Piece{0: wA, 1: bQ}), NewMove(1, 2, White), ErrQueenNotYetPlaced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.board.Clone()
			err := tt.board.Validate(tt.turn)
			if tt.expected == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.expected)
				require.True(t, IsRuleViolation(err))
			}
			require.Equal(t, before, tt.board, "validation must not change the board")
		})
	}
}

func TestPlace(t *testing.T) {
	t.Run("first piece", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.Place(0, wQ))
		require.True(t, board.IsOccupied(0))
		require.False(t, board.hasMultipleComponents())

		tile, ok := board.QueenTile(White)
		require.True(t, ok)
		require.Equal(t, 0, tile)
	})

	t.Run("several pieces", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.Place(0, wQ))
		require.NoError(t, board.Place(1, bQ))
		require.True(t, board.IsOccupied(0))
		require.True(t, board.IsOccupied(1))
		require.Equal(t, []int{0, 1}, board.Tiles())
	})

	t.Run("rejected placement leaves the board untouched", func(t *testing.T) {
		board := singles(map[int]Piece{0: wQ, 1: bQ})
		err := board.Place(2, wB)
		require.ErrorIs(t, err, ErrPlacementAdjacency)
		require.False(t, board.IsOccupied(2))
		require.Equal(t, 2, board.PieceCount())
	})
}

func TestMove(t *testing.T) {
	t.Run("moves the piece off its origin", func(t *testing.T) {
		board := singles(map[int]Piece{0: wQ, 1: wA})
		require.NoError(t, board.Move(1, 4, White))

		require.False(t, board.IsOccupied(1))
		top, _ := board.TopPiece(0)
		require.Equal(t, wQ, top)
		top, _ = board.TopPiece(4)
		require.Equal(t, wA, top)
	})

	t.Run("only moves the top piece", func(t *testing.T) {
		board := NewBoardFrom(map[int][]Piece{1: {wQ, wB}})
		require.NoError(t, board.Move(1, 2, White))

		top, _ := board.TopPiece(1)
		require.Equal(t, Queen, top.Kind)
		top, _ = board.TopPiece(2)
		require.Equal(t, Beetle, top.Kind)
	})

	t.Run("beetle onto an occupied tile", func(t *testing.T) {
		board := singles(map[int]Piece{0: wB, 1: wQ})
		require.NoError(t, board.Move(0, 1, White))

		top, _ := board.TopPiece(1)
		require.Equal(t, Beetle, top.Kind)
		require.False(t, board.IsOccupied(0))
	})

	t.Run("beetle from a stack onto a stack", func(t *testing.T) {
		board := NewBoardFrom(map[int][]Piece{0: {wQ, wB}, 1: {wA}})
		require.NoError(t, board.Move(0, 1, White))

		top, _ := board.TopPiece(1)
		require.Equal(t, Beetle, top.Kind)
		top, _ = board.TopPiece(0)
		require.Equal(t, Queen, top.Kind)
	})

	t.Run("beetle climbs the queen", func(t *testing.T) {
		board := singles(map[int]Piece{1: wB, 0: wQ})
		require.NoError(t, board.Move(1, 0, White))
		require.Equal(t, []Piece{wQ, wB}, board.Stack(0))
		require.Equal(t, 2, board.Height(0))
	})

	t.Run("stacks are last in first out", func(t *testing.T) {
		board := NewBoardFrom(map[int][]Piece{0: {bQ, wB}, 1: {wQ}})
		original := board.Stack(0)

		require.NoError(t, board.Move(0, 1, White))
		require.Equal(t, []Piece{wQ, wB}, board.Stack(1))
		require.NoError(t, board.Move(1, 0, White))

		require.Equal(t, original, board.Stack(0))
		require.Equal(t, []Piece{wQ}, board.Stack(1))
	})

	t.Run("queen tile follows the queen", func(t *testing.T) {
		board := singles(map[int]Piece{0: wQ, 1: bS})
		require.NoError(t, board.Move(0, 2, White))

		tile, ok := board.QueenTile(White)
		require.True(t, ok)
		require.Equal(t, 2, tile)
	})

	t.Run("rejected move leaves the board untouched", func(t *testing.T) {
		board := singles(map[int]Piece{0: wQ, 1: wA, 4: wB})
		before := board.Clone()
		require.ErrorIs(t, board.Move(0, 2, White), ErrOneHive)
		require.Equal(t, before, board)
	})
}

func TestClone(t *testing.T) {
	board := singles(map[int]Piece{0: wQ, 1: wA})
	clone := board.Clone()

	require.NoError(t, clone.Move(1, 4, White))

	require.True(t, board.IsOccupied(0))
	require.True(t, board.IsOccupied(1))
	require.False(t, board.IsOccupied(4))
	require.True(t, clone.IsOccupied(0))
	require.True(t, clone.IsOccupied(4))
	require.False(t, clone.IsOccupied(1))

	t.Run("stacks are not shared", func(t *testing.T) {
		board := NewBoardFrom(map[int][]Piece{0: {wQ, wB}})
		clone := board.Clone()
		clone.pop(0)
		clone.push(0, bB)

		top, _ := board.TopPiece(0)
		require.Equal(t, wB, top)
		top, _ = clone.TopPiece(0)
		require.Equal(t, bB, top)
	})

	t.Run("source stacks are copied", func(t *testing.T) {
		stacks := map[int][]Piece{0: {wQ}}
		board := NewBoardFrom(stacks)
		stacks[0][0] = bQ

		top, _ := board.TopPiece(0)
		require.Equal(t, wQ, top)
	})
}

func TestHasMultipleComponents(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.False(t, NewBoard().hasMultipleComponents())
	})

	t.Run("only piece removed", func(t *testing.T) {
		board := singles(map[int]Piece{0: wQ})
		board.pop(0)
		require.False(t, board.hasMultipleComponents())
		require.Equal(t, 0, board.Len())
	})

	t.Run("two islands", func(t *testing.T) {
		require.True(t, singles(map[int]Piece{0: wQ, 7: bQ}).hasMultipleComponents())
	})

	t.Run("stacks count once", func(t *testing.T) {
		board := NewBoardFrom(map[int][]Piece{0: {wQ, bB}, 1: {bQ}})
		require.False(t, board.hasMultipleComponents())
	})
}

func TestWinningColors(t *testing.T) {
	t.Run("no queen surrounded", func(t *testing.T) {
		require.Equal(t, 0, singles(map[int]Piece{0: wQ, 1: bQ}).WinningColors().Len())
	})

	t.Run("white queen surrounded", func(t *testing.T) {
		board := singles(map[int]Piece{0: wQ, 1: bQ, 2: bA, 3: bA, 4: wA, 5: wS, 6: bG})
		winners := board.WinningColors()
		require.Equal(t, 1, winners.Len())
		require.True(t, winners.Has(Black))
	})

	t.Run("queen under a beetle still counts", func(t *testing.T) {
		board := NewBoardFrom(map[int][]Piece{
			0: {bQ, wB}, 1: {wQ}, 2: {wA}, 3: {wA}, 4: {bA}, 5: {bS}, 6: {wG},
		})
		require.True(t, board.WinningColors().Has(White))
	})

	t.Run("both queens surrounded", func(t *testing.T) {
		board := singles(map[int]Piece{
			0: wQ, 1: bQ, 2: bA, 3: bA, 4: wA, 5: wS, 6: bG,
			7: wA, 8: bS, 18: wG,
		})
		winners := board.WinningColors()
		require.Equal(t, 2, winners.Len())
		require.Equal(t, Draw, outcomeOf(winners))
	})
}

func TestIsRuleViolation(t *testing.T) {
	require.True(t, IsRuleViolation(ErrOneHive))
	require.True(t, IsRuleViolation(NewBoard().Validate(NewMove(0, 1, White))))
	require.False(t, IsRuleViolation(ErrGameOver))
	require.False(t, IsRuleViolation(nil))
}
