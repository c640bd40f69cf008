package player

import (
	"context"
	"math"

	"hive/game"
	"hive/hexgrid"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// WeightedPlayer samples legal turns in proportion to how much they tighten the ring
// around the opposing queen relative to its own. Lower temperatures play greedier.
type WeightedPlayer struct {
	name        string
	temperature float64
	rng         *rand.Rand
}

func NewWeightedPlayer(name string, seed uint64, temperature float64) *WeightedPlayer {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &WeightedPlayer{
		name:        name,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (p *WeightedPlayer) Name() string {
	return p.name
}

func (p *WeightedPlayer) ChooseTurn(ctx context.Context, state *game.GameState) (game.Turn, error) {
	turns := state.LegalTurns()
	if len(turns) == 0 {
		return game.Turn{}, ErrNoLegalTurn
	}

	scores := make([]float64, len(turns))
	for i, turn := range turns {
		if err := ctx.Err(); err != nil {
			return game.Turn{}, err
		}
		next := state.Copy()
		if err := next.Play(turn); err != nil {
			// LegalTurns only returns playable turns
			panic(err)
		}
		scores[i] = score(next, state.Player())
	}

	policy := adjustTemperature(scores, p.temperature)
	return turns[sample(p.rng, policy)], nil
}

func (p *WeightedPlayer) Rejected(turn game.Turn, err error) {
	log.Warn().Err(err).Msgf("%s: legal turn %s was rejected", p.name, turn)
}

// score rates a state from color's point of view: an immediate win dominates, otherwise
// the pieces around the opposing queen count against those around its own.
func score(state *game.GameState, color game.Color) float64 {
	if winner, ok := state.Outcome().Winner(); ok {
		if winner == color {
			return 2 * hexgrid.Directions
		}
		return 0
	}
	// Shift into [0, 2*Directions] so every turn keeps a positive weight
	return float64(hexgrid.Directions + pressure(state.Board, color.Opponent()) - pressure(state.Board, color))
}

// pressure counts the occupied tiles around color's queen.
func pressure(board *game.Board, color game.Color) int {
	tile, ok := board.QueenTile(color)
	if !ok {
		return 0
	}
	count := 0
	for _, n := range hexgrid.Adjacent(tile) {
		if board.IsOccupied(n) {
			count++
		}
	}
	return count
}

func adjustTemperature(scores []float64, temperature float64) []float64 {
	// Compute temperature-adjusted turn probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(scores))
	for i, s := range scores {
		prob := math.Pow(s+1, exponent)
		sum += prob
		policy[i] = prob
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(rng *rand.Rand, policy []float64) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
