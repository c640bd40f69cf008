package engine

import (
	"context"
	"fmt"
	"time"

	"hive/experiments/metrics"
	"hive/game"
	"hive/gamemaster"
	"hive/player"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	players       map[game.Color]player.Player
	rules         game.Rules
	maxTurns      int
	maxRejections int
	collector     metrics.Collector
	observer      Observer
}

func NewLocalEngine(white, black player.Player, opts ...Option) *LocalEngine {
	e := defaults()
	e.players = map[game.Color]player.Player{
		game.White: white,
		game.Black: black,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the entire game loop until the game is over or capped.
func (e *LocalEngine) Run(ctx context.Context) (Result, error) {
	referee := gamemaster.NewLocalReferee(e.rules)
	state, getUpdate := referee.Init()

	log.Info().Msgf("%s (White) vs %s (Black), %s is starting", e.players[game.White].Name(), e.players[game.Black].Name(), state.Player())

	startTime := time.Now()
	var turnMetrics []metrics.TurnMetric
	passes := 0
	for !state.IsOver() && state.TurnNumber < e.maxTurns {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		color := state.Player()
		p := e.players[color]
		legal := state.LegalTurns()
		e.collector.Start(state.TurnNumber+1, color, len(legal))

		var played *game.Turn
		if len(legal) == 0 {
			if err := referee.Pass(); err != nil {
				return Result{}, fmt.Errorf("%s could not pass: %w", p.Name(), err)
			}
			passes++
			log.Debug().Msgf("%s has no legal turn and passes", p.Name())
		} else {
			turn, err := e.playTurn(ctx, referee, p, state)
			if err != nil {
				return Result{}, err
			}
			played = &turn
		}
		turnMetrics = append(turnMetrics, e.collector.Complete(played))

		u, ok := getUpdate()
		if !ok {
			return Result{}, fmt.Errorf("no update after turn %d", state.TurnNumber+1)
		}
		e.observer(u)
		state = u.State
	}

	result := Result{
		Outcome: state.Outcome(),
		Final:   state,
		Capped:  !state.IsOver(),
		Turns:   turnMetrics,
	}
	if result.Capped {
		result.Outcome = game.Draw
		log.Info().Msgf("stopped after %d turns without a winner", state.TurnNumber)
	}
	if winner, ok := result.Outcome.Winner(); ok {
		result.Winner = e.players[winner].Name()
		log.Info().Msgf("%s (%s) wins after %d turns", result.Winner, winner, state.TurnNumber)
	} else if !result.Capped {
		log.Info().Msgf("both queens surrounded after %d turns, draw", state.TurnNumber)
	}
	result.Game = metrics.Summarize(turnMetrics, passes, result.Outcome, startTime, time.Now(), result.Capped)

	return result, nil
}

// playTurn asks p for turns until the referee accepts one.
func (e *LocalEngine) playTurn(ctx context.Context, referee gamemaster.Referee, p player.Player, state *game.GameState) (game.Turn, error) {
	var lastErr error
	for attempt := 0; attempt <= e.maxRejections; attempt++ {
		turn, err := p.ChooseTurn(ctx, state)
		if err == nil {
			err = referee.Play(turn)
		}
		if err == nil {
			log.Debug().Int("turn_number", state.TurnNumber+1).Msgf("%s played %s", p.Name(), turn)
			return turn, nil
		}
		if !game.IsRuleViolation(err) {
			return game.Turn{}, fmt.Errorf("%s failed to choose a turn: %w", p.Name(), err)
		}

		log.Debug().Err(err).Msgf("%s: turn %s rejected", p.Name(), turn)
		e.collector.AddRejection()
		p.Rejected(turn, err)
		lastErr = err
	}
	return game.Turn{}, fmt.Errorf("%s exceeded %d rejected turns: %w", p.Name(), e.maxRejections, lastErr)
}
