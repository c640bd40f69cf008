package game

import (
	"hive/hexgrid"
	"hive/utils"
)

const spiderSteps = 3

// movement computes every tile a piece of one kind can reach from origin. The board it
// receives no longer holds the moving piece, so the origin counts as vacated.
type movement func(b *Board, origin int) utils.Set[int]

var movements = map[Kind]movement{
	Queen:       queenMoves,
	Ant:         antMoves,
	Beetle:      beetleMoves,
	Grasshopper: grasshopperMoves,
	Spider:      spiderMoves,
}

// Reachable returns the tiles the top piece of origin could move to, ignoring turn
// order, ownership and the one hive rule. It is empty for an unoccupied origin.
func (b *Board) Reachable(origin int) utils.Set[int] {
	if !b.IsOccupied(origin) {
		return utils.NewSet[int]()
	}
	ghost := b.Clone()
	piece := ghost.pop(origin)
	return ghost.reachable(piece, origin)
}

// reachable must be called on a board that has piece lifted off origin.
func (b *Board) reachable(piece Piece, origin int) utils.Set[int] {
	move, ok := movements[piece.Kind]
	if !ok {
		return utils.NewSet[int]()
	}
	return move(b, origin)
}

// slides returns the empty neighbors of from that a crawling piece can slide into
// while keeping contact with the hive.
func (b *Board) slides(from int) []int {
	var destinations []int
	for _, to := range hexgrid.Adjacent(from) {
		if !b.IsOccupied(to) && b.canSlide(from, to) {
			destinations = append(destinations, to)
		}
	}
	return destinations
}

// canSlide checks the two tiles flanking the step from -> to. Exactly one must be
// occupied: none means the piece would lose the hive, two means the gap is too narrow.
func (b *Board) canSlide(from, to int) bool {
	gate := hexgrid.CommonNeighbors(from, to)
	return b.IsOccupied(gate[0]) != b.IsOccupied(gate[1])
}

func queenMoves(b *Board, origin int) utils.Set[int] {
	return utils.NewSet(b.slides(origin)...)
}

func antMoves(b *Board, origin int) utils.Set[int] {
	reached := utils.NewSet[int]()
	seen := utils.NewSet(origin)
	queue := []int{origin}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range b.slides(current) {
			if seen.Has(next) {
				continue
			}
			seen.Add(next)
			reached.Add(next)
			queue = append(queue, next)
		}
	}
	return reached
}

// spiderMoves explores every simple path of exactly three slides.
func spiderMoves(b *Board, origin int) utils.Set[int] {
	reached := utils.NewSet[int]()
	path := utils.NewSet(origin)

	var walk func(tile, steps int)
	walk = func(tile, steps int) {
		if steps == spiderSteps {
			reached.Add(tile)
			return
		}
		for _, next := range b.slides(tile) {
			if path.Has(next) {
				continue
			}
			path.Add(next)
			walk(next, steps+1)
			path.Remove(next)
		}
	}

	walk(origin, 0)
	return reached
}

func beetleMoves(b *Board, origin int) utils.Set[int] {
	reached := utils.NewSet(b.slides(origin)...)
	// Pieces left underneath anchor the beetle, so it may climb down anywhere.
	onStack := b.IsOccupied(origin)
	for _, n := range hexgrid.Adjacent(origin) {
		if b.IsOccupied(n) || onStack {
			reached.Add(n)
		}
	}
	return reached
}

// grasshopperMoves jumps in a straight line over one or more pieces to the first empty tile.
func grasshopperMoves(b *Board, origin int) utils.Set[int] {
	reached := utils.NewSet[int]()
	for _, n := range hexgrid.Adjacent(origin) {
		if !b.IsOccupied(n) {
			continue
		}
		prev, current := origin, n
		for b.IsOccupied(current) {
			prev, current = current, hexgrid.NextInLine(prev, current)
		}
		reached.Add(current)
	}
	return reached
}
