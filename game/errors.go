package game

import "errors"

// Rule violations. Board operations wrap these with the offending tiles; classify with errors.Is.
var (
	ErrTileOccupied         = errors.New("tile occupied")
	ErrPlacementAdjacency   = errors.New("placement adjacency violation")
	ErrTileStartNotOccupied = errors.New("tile start not occupied")
	ErrQueenNotYetPlaced    = errors.New("queen not yet placed")
	ErrNotYourPiece         = errors.New("not your piece")
	ErrOneHive              = errors.New("one hive violation")
	ErrPieceStacking        = errors.New("piece stacking violation")
	ErrIllegalMove          = errors.New("illegal move")
	ErrPieceUnavailable     = errors.New("piece unavailable")
	ErrInvalidNotation      = errors.New("invalid turn notation")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrGameOver             = errors.New("game is over")
)

var ruleViolations = []error{
	ErrTileOccupied,
	ErrPlacementAdjacency,
	ErrTileStartNotOccupied,
	ErrQueenNotYetPlaced,
	ErrNotYourPiece,
	ErrOneHive,
	ErrPieceStacking,
	ErrIllegalMove,
	ErrPieceUnavailable,
	ErrInvalidNotation,
	ErrNotYourTurn,
}

// IsRuleViolation reports whether err rejects a turn that the player may retry with a different one.
func IsRuleViolation(err error) bool {
	for _, target := range ruleViolations {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
