// Package player provides the turn sources of a game: a human at a console and
// computer players choosing among the legal turns.
package player

import (
	"context"
	"errors"
	"fmt"

	"hive/game"
)

const (
	RandomStrategy   = "random"
	WeightedStrategy = "weighted"
)

// ErrNoLegalTurn is returned by computer players asked to play when they can only pass.
var ErrNoLegalTurn = errors.New("no legal turn")

// Player chooses turns for whichever color is to play in the state it is given.
type Player interface {
	Name() string
	ChooseTurn(ctx context.Context, state *game.GameState) (game.Turn, error)
	// Rejected reports that the last chosen turn was refused; the player is asked again.
	Rejected(turn game.Turn, err error)
}

// NewComputer builds a computer player for strategy, seeded for reproducible games.
func NewComputer(strategy, name string, seed uint64, temperature float64) (Player, error) {
	switch strategy {
	case RandomStrategy:
		return NewRandomPlayer(name, seed), nil
	case WeightedStrategy:
		return NewWeightedPlayer(name, seed, temperature), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}
