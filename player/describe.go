package player

import (
	"errors"
	"fmt"

	"hive/game"
)

var messages = []struct {
	err  error
	text string
}{
	{game.ErrNotYourPiece, "Illegal move. Player cannot move opponent's pieces"},
	{game.ErrIllegalMove, "Illegal move. Piece cannot move there"},
	{game.ErrQueenNotYetPlaced, "Cannot move this turn. Must place queen before moving"},
	{game.ErrOneHive, `Illegal move. Cannot break the "One Hive Rule"`},
	{game.ErrPieceStacking, "Illegal move. Cannot move a piece on top of another piece unless it's a beetle"},
	{game.ErrPlacementAdjacency, "Illegal placement. Cannot place a piece next to another piece of the opposite color"},
	{game.ErrTileOccupied, "Illegal placement. Cannot place a piece on top of another piece"},
	{game.ErrTileStartNotOccupied, "Illegal move. TileStart must be occupied"},
	{game.ErrInvalidNotation, "Invalid turn input. Input must match ^(\\d+|\\w+):(\\d+)$"},
	{game.ErrNotYourTurn, "It is not your turn."},
	{game.ErrGameOver, "The game is over."},
}

// Describe turns an error from playing turn into the message shown to the named player.
func Describe(name string, turn game.Turn, err error) string {
	if errors.Is(err, game.ErrPieceUnavailable) {
		return fmt.Sprintf("%s has no more pieces of type %s.", name, turn.Kind.Letter())
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.text
		}
	}
	return err.Error()
}
