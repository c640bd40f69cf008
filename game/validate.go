package game

import (
	"fmt"

	"hive/hexgrid"
)

// Validate checks a turn against the board without changing it.
func (b *Board) Validate(turn Turn) error {
	switch turn.Type {
	case PlacementTurn:
		return b.validatePlacement(turn.End, NewPiece(turn.Kind, turn.Color))
	case MoveTurn:
		return b.validateMove(turn.Start, turn.End, turn.Color)
	default:
		return fmt.Errorf("%w: unknown turn type %d", ErrInvalidNotation, turn.Type)
	}
}

func (b *Board) validatePlacement(tile int, piece Piece) error {
	if !hexgrid.IsValid(tile) {
		return fmt.Errorf("%w: tile %d is off the grid", ErrInvalidNotation, tile)
	}
	if b.IsOccupied(tile) {
		return fmt.Errorf("%w: tile %d", ErrTileOccupied, tile)
	}
	if len(b.stacks) == 0 {
		return nil
	}

	neighbors := b.occupiedNeighbors(tile)
	if len(neighbors) == 0 {
		return fmt.Errorf("%w: tile %d does not touch the hive", ErrPlacementAdjacency, tile)
	}
	// The second piece of the game necessarily touches the first, whatever its color.
	if b.PieceCount() == 1 {
		return nil
	}
	for _, n := range neighbors {
		top, _ := b.TopPiece(n)
		if top.Color != piece.Color {
			return fmt.Errorf("%w: tile %d touches %s on tile %d", ErrPlacementAdjacency, tile, top, n)
		}
	}
	return nil
}

func (b *Board) validateMove(tileStart, tileEnd int, color Color) error {
	if !hexgrid.IsValid(tileStart) || !hexgrid.IsValid(tileEnd) {
		return fmt.Errorf("%w: move %d:%d is off the grid", ErrInvalidNotation, tileStart, tileEnd)
	}
	piece, ok := b.TopPiece(tileStart)
	if !ok {
		return fmt.Errorf("%w: tile %d", ErrTileStartNotOccupied, tileStart)
	}
	if _, ok := b.QueenTile(color); !ok {
		return fmt.Errorf("%w: %s", ErrQueenNotYetPlaced, color)
	}
	if piece.Color != color {
		return fmt.Errorf("%w: %s on tile %d", ErrNotYourPiece, piece, tileStart)
	}

	ghost := b.Clone()
	ghost.pop(tileStart)
	if ghost.hasMultipleComponents() {
		return fmt.Errorf("%w: lifting %s off tile %d splits the hive", ErrOneHive, piece, tileStart)
	}
	// Landing away from every other piece leaves it stranded.
	landed := ghost.Clone()
	landed.push(tileEnd, piece)
	if landed.hasMultipleComponents() {
		return fmt.Errorf("%w: %s on tile %d would be cut off", ErrOneHive, piece, tileEnd)
	}

	if tileStart == tileEnd {
		return fmt.Errorf("%w: %s must leave tile %d", ErrIllegalMove, piece, tileStart)
	}
	if b.IsOccupied(tileEnd) && piece.Kind != Beetle {
		return fmt.Errorf("%w: %s cannot climb onto tile %d", ErrPieceStacking, piece, tileEnd)
	}
	if !ghost.reachable(piece, tileStart).Has(tileEnd) {
		return fmt.Errorf("%w: %s cannot reach tile %d from tile %d", ErrIllegalMove, piece, tileEnd, tileStart)
	}
	return nil
}
