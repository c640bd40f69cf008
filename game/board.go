package game

import (
	"fmt"

	"hive/hexgrid"
	"hive/utils"

	"golang.org/x/exp/slices"
)

// Board maps each occupied tile to the stack of pieces on it. The last piece of a stack
// is the top piece, the only one that moves or counts for adjacency. Tiles absent from
// the map are empty; a stack is never empty.
type Board struct {
	stacks map[int][]Piece
	queens map[Color]int // tile currently holding each color's queen
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		stacks: make(map[int][]Piece),
		queens: make(map[Color]int),
	}
}

// NewBoardFrom creates a board from a tile to stack mapping (bottom piece first).
// The stacks are copied and empty stacks are ignored.
func NewBoardFrom(stacks map[int][]Piece) *Board {
	b := NewBoard()
	for tile, stack := range stacks {
		if len(stack) == 0 {
			continue
		}
		b.stacks[tile] = slices.Clone(stack)
		for _, piece := range stack {
			if piece.Kind == Queen {
				b.queens[piece.Color] = tile
			}
		}
	}
	return b
}

// Clone returns a deep copy. Changes to the copy never affect the original.
func (b *Board) Clone() *Board {
	stacksCopy := make(map[int][]Piece, len(b.stacks))
	for tile, stack := range b.stacks {
		stacksCopy[tile] = slices.Clone(stack)
	}

	queensCopy := make(map[Color]int, len(b.queens))
	for color, tile := range b.queens {
		queensCopy[color] = tile
	}

	return &Board{
		stacks: stacksCopy,
		queens: queensCopy,
	}
}

func (b *Board) IsOccupied(tile int) bool {
	_, ok := b.stacks[tile]
	return ok
}

// TopPiece returns the piece on top of the stack at tile.
func (b *Board) TopPiece(tile int) (Piece, bool) {
	stack, ok := b.stacks[tile]
	if !ok {
		return Piece{}, false
	}
	return stack[len(stack)-1], true
}

// Stack returns a copy of the pieces at tile, bottom first.
func (b *Board) Stack(tile int) []Piece {
	return slices.Clone(b.stacks[tile])
}

func (b *Board) Height(tile int) int {
	return len(b.stacks[tile])
}

// Tiles lists the occupied tiles in ascending order.
func (b *Board) Tiles() []int {
	tiles := make([]int, 0, len(b.stacks))
	for tile := range b.stacks {
		tiles = append(tiles, tile)
	}
	slices.Sort(tiles)
	return tiles
}

// Len returns the number of occupied tiles.
func (b *Board) Len() int {
	return len(b.stacks)
}

// PieceCount returns the number of pieces on the board, covered ones included.
func (b *Board) PieceCount() int {
	count := 0
	for _, stack := range b.stacks {
		count += len(stack)
	}
	return count
}

// QueenTile returns the tile holding color's queen, if it has been placed.
func (b *Board) QueenTile(color Color) (int, bool) {
	tile, ok := b.queens[color]
	return tile, ok
}

// Place puts piece on an empty tile after checking the placement rules.
func (b *Board) Place(tile int, piece Piece) error {
	if err := b.validatePlacement(tile, piece); err != nil {
		return err
	}
	b.push(tile, piece)
	return nil
}

// Move moves the top piece of tileStart onto tileEnd on behalf of color after checking
// the movement rules. The board is untouched when an error is returned.
func (b *Board) Move(tileStart, tileEnd int, color Color) error {
	if err := b.validateMove(tileStart, tileEnd, color); err != nil {
		return err
	}
	b.push(tileEnd, b.pop(tileStart))
	return nil
}

// WinningColors returns the colors that have won: a color wins when the opposing queen
// has no empty neighbor. Both colors winning at once is a draw.
func (b *Board) WinningColors() utils.Set[Color] {
	winners := utils.NewSet[Color]()
	for color, tile := range b.queens {
		if len(b.emptyNeighbors(tile)) == 0 {
			winners.Add(color.Opponent())
		}
	}
	return winners
}

// apply performs an already validated turn.
func (b *Board) apply(turn Turn) {
	switch turn.Type {
	case PlacementTurn:
		b.push(turn.End, NewPiece(turn.Kind, turn.Color))
	case MoveTurn:
		b.push(turn.End, b.pop(turn.Start))
	}
}

func (b *Board) push(tile int, piece Piece) {
	b.stacks[tile] = append(b.stacks[tile], piece)
	if piece.Kind == Queen {
		b.queens[piece.Color] = tile
	}
}

func (b *Board) pop(tile int) Piece {
	stack, ok := b.stacks[tile]
	if !ok {
		panic(fmt.Sprintf("cannot remove piece on tile %d: tile is unoccupied", tile))
	}
	piece := stack[len(stack)-1]
	if len(stack) == 1 {
		delete(b.stacks, tile)
	} else {
		b.stacks[tile] = stack[:len(stack)-1]
	}
	return piece
}

func (b *Board) occupiedNeighbors(tile int) []int {
	var neighbors []int
	for _, n := range hexgrid.Adjacent(tile) {
		if b.IsOccupied(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

func (b *Board) emptyNeighbors(tile int) []int {
	var neighbors []int
	for _, n := range hexgrid.Adjacent(tile) {
		if !b.IsOccupied(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
