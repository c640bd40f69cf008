package game

import "hive/hexgrid"

// hasMultipleComponents reports whether the occupied tiles split into more than one
// group under grid adjacency. An empty board is a single (vacuous) hive.
// Just BFS from any occupied tile.
func (b *Board) hasMultipleComponents() bool {
	if len(b.stacks) == 0 {
		return false
	}

	var seed int
	for tile := range b.stacks {
		seed = tile
		break
	}

	visited := map[int]bool{seed: true}
	queue := []int{seed}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range hexgrid.Adjacent(current) {
			if !b.IsOccupied(n) || visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return len(visited) != len(b.stacks)
}
