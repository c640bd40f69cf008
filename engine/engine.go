// Package engine runs games: it asks each player for turns, submits them to the
// referee and stops at a result or at the turn cap.
package engine

import (
	"context"

	"hive/experiments/metrics"
	"hive/game"
	"hive/gamemaster"
	"hive/meta"
)

type Result struct {
	Outcome game.Outcome
	Winner  string // Player name, empty unless the outcome is decisive
	Final   *game.GameState
	Capped  bool // Stopped at the turn cap
	Game    metrics.GameMetric
	Turns   []metrics.TurnMetric
}

type Engine interface {
	// Run plays a game till there's a winner, a draw or the turn cap is reached
	Run(ctx context.Context) (Result, error)
}

// Observer sees every update published by the referee, in order.
type Observer func(u gamemaster.Update)

type Option func(*LocalEngine)

// WithMaxTurns caps the game length; a capped game is a draw.
func WithMaxTurns(n int) Option {
	return func(e *LocalEngine) {
		e.maxTurns = n
	}
}

// WithMaxRejections bounds how often a player may have turns rejected in a row.
func WithMaxRejections(n int) Option {
	return func(e *LocalEngine) {
		e.maxRejections = n
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *LocalEngine) {
		e.collector = c
	}
}

func WithObserver(o Observer) Option {
	return func(e *LocalEngine) {
		e.observer = o
	}
}

func WithRules(r game.Rules) Option {
	return func(e *LocalEngine) {
		e.rules = r
	}
}

func defaults() *LocalEngine {
	return &LocalEngine{
		rules:         game.NewStandardRules(),
		maxTurns:      meta.MAX_TURNS,
		maxRejections: meta.MAX_REJECTIONS,
		collector:     metrics.NewDummyCollector(),
		observer:      func(gamemaster.Update) {},
	}
}
