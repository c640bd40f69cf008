package gamemaster

import (
	"testing"

	"hive/game"

	"github.com/stretchr/testify/require"
)

func TestLocalRefereeInit(t *testing.T) {
	referee := NewLocalReferee(game.NewStandardRules())
	state, getUpdate := referee.Init()

	require.NotNil(t, state)
	require.Equal(t, game.White, state.Player())
	require.Equal(t, 0, state.Board.Len())
	require.Equal(t, 3, state.Remaining(game.Black, game.Ant))

	// No turn played yet
	_, ok := getUpdate()
	require.False(t, ok)

	// The returned state is a copy
	state.Hands[game.White][game.Queen] = 0
	require.Equal(t, 1, referee.state.Remaining(game.White, game.Queen))
}

func TestLocalRefereePlay_ValidTurn(t *testing.T) {
	referee := NewLocalReferee(game.NewStandardRules())
	_, getUpdate := referee.Init()

	turn := game.NewPlacement(0, game.Queen, game.White)
	require.NoError(t, referee.Play(turn))

	u, ok := getUpdate()
	require.True(t, ok, "expected an update after a turn")
	require.Equal(t, turn, *u.Turn)
	require.Equal(t, game.Black, u.State.Player())
	require.True(t, u.State.Board.IsOccupied(0))
	require.Equal(t, referee.state.Hash(), u.Hash)

	_, ok = getUpdate()
	require.False(t, ok, "an update is only delivered once")
}

func TestLocalRefereePlay_IllegalTurn(t *testing.T) {
	referee := NewLocalReferee(game.NewStandardRules())
	_, getUpdate := referee.Init()

	err := referee.Play(game.NewPlacement(0, game.Queen, game.Black))
	require.ErrorIs(t, err, game.ErrNotYourTurn)

	require.NoError(t, referee.Play(game.NewPlacement(0, game.Queen, game.White)))
	err = referee.Play(game.NewPlacement(7, game.Ant, game.Black))
	require.ErrorIs(t, err, game.ErrPlacementAdjacency)

	u, ok := getUpdate()
	require.True(t, ok)
	require.Equal(t, 1, u.State.TurnNumber, "rejected turns publish nothing")
}

func TestLocalRefereePass(t *testing.T) {
	referee := NewLocalReferee(game.NewStandardRules())
	_, getUpdate := referee.Init()

	require.ErrorIs(t, referee.Pass(), game.ErrIllegalMove)

	referee.state.Board = game.NewBoardFrom(map[int][]game.Piece{0: {game.NewPiece(game.Queen, game.Black)}})
	for _, kind := range game.Kinds {
		referee.state.Hands[game.White][kind] = 0
	}
	require.NoError(t, referee.Pass())

	u, ok := getUpdate()
	require.True(t, ok)
	require.Nil(t, u.Turn)
	require.Equal(t, game.Black, u.State.Player())
}

func TestLocalRefereeUnreadUpdatesAreSuperseded(t *testing.T) {
	referee := NewLocalReferee(game.NewStandardRules())
	_, getUpdate := referee.Init()

	require.NoError(t, referee.Play(game.NewPlacement(0, game.Queen, game.White)))
	require.NoError(t, referee.Play(game.NewPlacement(1, game.Queen, game.Black)))

	u, ok := getUpdate()
	require.True(t, ok)
	require.Equal(t, 2, u.State.TurnNumber)
	_, ok = getUpdate()
	require.False(t, ok)
}

func TestLocalRefereePlay_GameOver(t *testing.T) {
	referee := NewLocalReferee(game.NewStandardRules())
	_, getUpdate := referee.Init()

	piece := game.NewPiece
	referee.state.Board = game.NewBoardFrom(map[int][]game.Piece{
		0: {piece(game.Queen, game.White)},
		1: {piece(game.Ant, game.White)},
		2: {piece(game.Queen, game.Black)},
		3: {piece(game.Ant, game.Black)},
		4: {piece(game.Spider, game.Black)},
		5: {piece(game.Spider, game.White)},
	})

	// White fills the last gap around its own queen
	require.NoError(t, referee.Play(game.NewPlacement(6, game.Grasshopper, game.White)))

	u, ok := getUpdate()
	require.True(t, ok, "expected a final update before the game ends")
	require.Equal(t, game.BlackWins, u.State.Outcome())

	_, ok = getUpdate()
	require.False(t, ok, "expected no updates after game over")

	require.ErrorIs(t, referee.Play(game.NewPlacement(7, game.Ant, game.Black)), game.ErrGameOver)
	require.ErrorIs(t, referee.Pass(), game.ErrGameOver)
}

func TestLocalReferee_IdenticalInitStates(t *testing.T) {
	state1, _ := NewLocalReferee(game.NewStandardRules()).Init()
	state2, _ := NewLocalReferee(game.NewStandardRules()).Init()

	require.Equal(t, state1, state2)
	require.Equal(t, state1.Hash(), state2.Hash())
}
