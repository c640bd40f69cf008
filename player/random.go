package player

import (
	"context"

	"hive/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RandomPlayer picks uniformly among the legal turns.
type RandomPlayer struct {
	name string
	rng  *rand.Rand
}

func NewRandomPlayer(name string, seed uint64) *RandomPlayer {
	return &RandomPlayer{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPlayer) Name() string {
	return p.name
}

func (p *RandomPlayer) ChooseTurn(ctx context.Context, state *game.GameState) (game.Turn, error) {
	if err := ctx.Err(); err != nil {
		return game.Turn{}, err
	}
	turns := state.LegalTurns()
	if len(turns) == 0 {
		return game.Turn{}, ErrNoLegalTurn
	}
	return turns[p.rng.Intn(len(turns))], nil
}

func (p *RandomPlayer) Rejected(turn game.Turn, err error) {
	log.Warn().Err(err).Msgf("%s: legal turn %s was rejected", p.name, turn)
}
