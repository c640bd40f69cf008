// Package gamemaster holds the authoritative copy of a game. Players never touch it
// directly: they submit turns and read back the updates it publishes.
package gamemaster

import "hive/game"

// Update is published after every accepted turn or pass.
type Update struct {
	Turn  *game.Turn // nil for a pass
	State *game.GameState
	Hash  game.StateHash
}

// UpdateGetter returns the latest unread update, or false if there is none. Once the game
// is over the final update is returned and every later call reports false.
type UpdateGetter func() (Update, bool)

type Referee interface {
	Init() (*game.GameState, UpdateGetter)
	// Play submits a turn for the current player; rule violations leave the game unchanged.
	Play(turn game.Turn) error
	// Pass skips the current player, who must have no legal turn.
	Pass() error
}
