// Package game holds the Hive rules: pieces, the stacked board, turn validation,
// reachability for each bug and the overall game state. It performs no I/O.
package game

type StateHash uint64

type Outcome int

const (
	InProgress Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case Draw:
		return "Draw"
	default:
		return "In progress"
	}
}

// Winner returns the winning color of a decisive outcome.
func (o Outcome) Winner() (Color, bool) {
	switch o {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	default:
		return 0, false
	}
}

// outcomeOf turns the board's winning colors into an outcome.
func outcomeOf(winners map[Color]struct{}) Outcome {
	_, white := winners[White]
	_, black := winners[Black]
	switch {
	case white && black:
		return Draw
	case white:
		return WhiteWins
	case black:
		return BlackWins
	default:
		return InProgress
	}
}
