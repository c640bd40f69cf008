// Package hexgrid maps tile numbers on an unbounded hexagonal grid to their neighbors.
//
// Tiles are numbered in concentric rings spiralling out from the origin: tile 0 is the
// origin, tiles 1-6 form ring 1 and ring r holds the 6r tiles that follow ring r-1.
// No topology is stored; every adjacency is derived from the tile number itself.
//
// Neighbor lists are rotationally consistent: slot i of every list points in the same
// direction on the grid, so the neighbor in slot i of tile t always has t in slot (i+3)%6.
package hexgrid

import (
	"fmt"
	"math"

	"hive/utils"
)

const (
	Origin     = 0
	Directions = 6

	// MaxRing and MaxTile bound the playable grid. The neighbors of every tile a few
	// rings further out still fit in an int.
	MaxRing = 1 << 30
	MaxTile = 3 * MaxRing * (MaxRing + 1)
)

// maxAdjacent is the largest tile whose ring bounds can be computed without overflow.
const maxAdjacent = math.MaxInt64 / 2

var originNeighbors = [Directions]int{1, 2, 3, 4, 5, 6}

// IsValid reports whether tile lies on the playable grid.
func IsValid(tile int) bool {
	return tile >= Origin && tile <= MaxTile
}

// Adjacent returns the 6 neighbors of tile, indexed by direction. It panics for a
// negative tile or one far beyond MaxTile.
func Adjacent(tile int) [Directions]int {
	if tile == Origin {
		return originNeighbors
	}
	if tile < Origin || tile > maxAdjacent {
		panic(fmt.Sprintf("tile %d is outside the grid", tile))
	}

	ring := Ring(tile)
	edge := edgeIndex(tile, ring)
	corner := isCorner(tile, ring)
	last := isLastOfRing(tile, ring)

	var neighbors [Directions]int
	outerRingNeighbors(&neighbors, tile, ring, edge, corner)
	sameRingNeighbors(&neighbors, tile, ring, edge, corner, last)
	innerRingNeighbors(&neighbors, tile, ring, edge, corner, last)
	return neighbors
}

// NextInLine returns the tile one step past through on the straight line drawn from
// from through through. E.g. NextInLine(0, 2) is 9.
func NextInLine(from, through int) int {
	dir := Direction(from, through)
	if dir < 0 {
		panic(fmt.Sprintf("tiles %d and %d are not adjacent", from, through))
	}
	return Adjacent(through)[dir]
}

// Direction returns the slot of to in the neighbor list of from, or -1 if they are not adjacent.
func Direction(from, to int) int {
	neighbors := Adjacent(from)
	return utils.FindIndex(neighbors[:], to)
}

// AreAdjacent checks if two tiles share an edge.
func AreAdjacent(a, b int) bool {
	return Direction(a, b) >= 0
}

// CommonNeighbors returns the two tiles adjacent to both a and b. The tiles must be adjacent.
func CommonNeighbors(a, b int) [2]int {
	dir := Direction(a, b)
	if dir < 0 {
		panic(fmt.Sprintf("tiles %d and %d are not adjacent", a, b))
	}
	neighbors := Adjacent(a)
	return [2]int{
		neighbors[(dir+1)%Directions],
		neighbors[(dir+Directions-1)%Directions],
	}
}

// Ring returns the ring number of tile, i.e. its distance from the origin.
// Ring r covers 3r(r-1) < tile <= 3r(r+1).
func Ring(tile int) int {
	if tile <= Origin {
		return 0
	}
	// Inverse of firstOfRing: r = (3 + sqrt(12t - 3)) / 6, floored. Float rounding is
	// corrected against the ring bounds below.
	ring := int((3 + math.Sqrt(12*float64(tile)-3)) / 6)
	for 3*ring*(ring+1) < tile {
		ring++
	}
	for ring > 1 && 3*ring*(ring-1) >= tile {
		ring--
	}
	return ring
}

// FirstOfRing returns the lowest tile number on the given ring.
func FirstOfRing(ring int) int {
	if ring == 0 {
		return Origin
	}
	return 3*ring*(ring-1) + 1
}

// outerRingNeighbors fills the 2 (edge) or 3 (corner) slots that point away from the origin.
func outerRingNeighbors(neighbors *[Directions]int, tile, ring, edge int, corner bool) {
	neighbors[edge%Directions] = tile + 6*ring + edge
	neighbors[(edge+1)%Directions] = tile + 6*ring + edge + 1
	if corner {
		neighbors[positiveMod(edge-1, Directions)] = tile + 6*ring + edge - 1
		// The first tile of a ring wraps to the last tile of the next ring.
		if edge == 0 {
			neighbors[5] += 6 * (ring + 1)
		}
	}
}

func sameRingNeighbors(neighbors *[Directions]int, tile, ring, edge int, corner, last bool) {
	neighbors[(edge+2)%Directions] = tile + 1
	if corner {
		neighbors[(edge+4)%Directions] = tile - 1
		if edge == 0 {
			neighbors[4] += 6 * ring
		}
	} else {
		neighbors[(edge+5)%Directions] = tile - 1
	}
	// The last tile of a ring wraps to the first one.
	if last {
		neighbors[1] -= 6 * ring
	}
}

// innerRingNeighbors fills the 1 (corner) or 2 (edge) slots that point towards the origin.
func innerRingNeighbors(neighbors *[Directions]int, tile, ring, edge int, corner, last bool) {
	if corner {
		neighbors[(edge+3)%Directions] = FirstOfRing(ring-1) + edge*(ring-1)
		return
	}
	neighbors[(edge+3)%Directions] = tile - 6*(ring-1) - edge
	neighbors[(edge+4)%Directions] = tile - 6*(ring-1) - edge - 1
	if last {
		neighbors[2] -= 6 * (ring - 1)
	}
}

// A corner tile has 1 inner-ring neighbor, 2 same-ring neighbors and 3 outer-ring
// neighbors. An edge tile has 2 of each.
func isCorner(tile, ring int) bool {
	return (tile-FirstOfRing(ring))%ring == 0
}

func isLastOfRing(tile, ring int) bool {
	return tile == FirstOfRing(ring)+6*ring-1
}

// edgeIndex returns which side of its ring a tile lies on. E.g. 19, 20 and 21 are on
// edge 0 and 22, 23 and 24 are on edge 1.
func edgeIndex(tile, ring int) int {
	return (tile - FirstOfRing(ring)) / ring
}

func positiveMod(x, m int) int {
	return (x%m + m) % m
}
