package gamemaster

import (
	"hive/game"

	"github.com/rs/zerolog/log"
)

type localReferee struct {
	rules    game.Rules
	state    *game.GameState
	updateCh chan Update
	gameOver bool
}

func NewLocalReferee(rules game.Rules) *localReferee {
	return &localReferee{rules: rules}
}

// Init starts a new game and returns a copy of its state.
func (r *localReferee) Init() (*game.GameState, UpdateGetter) {
	r.state = game.NewGameState(r.rules)
	r.gameOver = false
	r.updateCh = make(chan Update, 1)

	updateCh := r.updateCh
	return r.state.Copy(), func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return Update{}, false
			}
			return u, true
		default:
			// No updates yet
			return Update{}, false
		}
	}
}

func (r *localReferee) Play(turn game.Turn) error {
	if r.gameOver {
		return game.ErrGameOver
	}
	if err := r.state.Play(turn); err != nil {
		log.Debug().Err(err).Str("turn", turn.String()).Msgf("%s turn rejected", turn.Color)
		return err
	}

	log.Debug().Int("turn_number", r.state.TurnNumber).Msgf("%s played %s", turn.Color, turn)
	r.publish(&turn)
	return nil
}

func (r *localReferee) Pass() error {
	if r.gameOver {
		return game.ErrGameOver
	}
	color := r.state.Player()
	if err := r.state.Pass(); err != nil {
		return err
	}

	log.Debug().Int("turn_number", r.state.TurnNumber).Msgf("%s passed", color)
	r.publish(nil)
	return nil
}

func (r *localReferee) publish(turn *game.Turn) {
	u := Update{
		Turn:  turn,
		State: r.state.Copy(),
		Hash:  r.state.Hash(),
	}

	select {
	case r.updateCh <- u:
	default:
		// The previous update was never read; the newer state supersedes it.
		<-r.updateCh
		r.updateCh <- u
	}

	if r.state.IsOver() {
		r.gameOver = true
		log.Debug().Msgf("game over: %s", r.state.Outcome())
		close(r.updateCh)
	}
}
