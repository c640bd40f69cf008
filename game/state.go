package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"hive/hexgrid"
	"hive/utils"
)

// GameState is a Hive game in progress: the board, whose turn it is and the pieces each
// color still holds in hand.
type GameState struct {
	Board      *Board
	Rules      Rules
	Current    Color                  // The color to play
	TurnNumber int                    // Turns played so far, passes included
	Hands      map[Color]map[Kind]int // Pieces not yet placed, per color
	LastTurn   *Turn                  // nil before the first turn and after a pass
}

// NewGameState starts a game on an empty board with White to play.
func NewGameState(rules Rules) *GameState {
	gs := &GameState{
		Board:   NewBoard(),
		Rules:   rules,
		Current: White,
		Hands:   make(map[Color]map[Kind]int, len(Colors)),
	}
	for _, color := range Colors {
		gs.Hands[color] = rules.Inventory()
	}
	return gs
}

// Copy returns a deep copy of the state. The rules are shared.
func (gs *GameState) Copy() *GameState {
	handsCopy := make(map[Color]map[Kind]int, len(gs.Hands))
	for color, hand := range gs.Hands {
		handCopy := make(map[Kind]int, len(hand))
		for kind, count := range hand {
			handCopy[kind] = count
		}
		handsCopy[color] = handCopy
	}

	var lastTurn *Turn
	if gs.LastTurn != nil {
		turn := *gs.LastTurn
		lastTurn = &turn
	}

	return &GameState{
		Board:      gs.Board.Clone(),
		Rules:      gs.Rules,
		Current:    gs.Current,
		TurnNumber: gs.TurnNumber,
		Hands:      handsCopy,
		LastTurn:   lastTurn,
	}
}

func (gs *GameState) Player() Color {
	return gs.Current
}

// Remaining returns how many pieces of kind color can still place.
func (gs *GameState) Remaining(color Color, kind Kind) int {
	return gs.Hands[color][kind]
}

// Validate checks turn for the current player without changing the state.
func (gs *GameState) Validate(turn Turn) error {
	if gs.IsOver() {
		return ErrGameOver
	}
	if turn.Color != gs.Current {
		return fmt.Errorf("%w: %s to play", ErrNotYourTurn, gs.Current)
	}
	if turn.Type == PlacementTurn && gs.Remaining(turn.Color, turn.Kind) == 0 {
		return fmt.Errorf("%w: %s has no %s left", ErrPieceUnavailable, turn.Color, turn.Kind)
	}
	return gs.Board.Validate(turn)
}

// Play validates and performs turn, then hands over to the opponent.
func (gs *GameState) Play(turn Turn) error {
	if err := gs.Validate(turn); err != nil {
		return err
	}

	gs.Board.apply(turn)
	if turn.Type == PlacementTurn {
		gs.Hands[turn.Color][turn.Kind]--
	}
	gs.LastTurn = &turn
	gs.advance()
	return nil
}

// Pass skips the current player's turn. It is only allowed without any legal turn.
func (gs *GameState) Pass() error {
	if gs.IsOver() {
		return ErrGameOver
	}
	if len(gs.LegalTurns()) > 0 {
		return fmt.Errorf("%w: %s has a legal turn and cannot pass", ErrIllegalMove, gs.Current)
	}
	gs.LastTurn = nil
	gs.advance()
	return nil
}

func (gs *GameState) advance() {
	gs.Current = gs.Current.Opponent()
	gs.TurnNumber++
}

// LegalTurns returns every turn the current player can make, placements first.
func (gs *GameState) LegalTurns() []Turn {
	if gs.IsOver() {
		return nil
	}

	var turns []Turn
	for _, tile := range gs.placementCandidates() {
		for _, kind := range Kinds {
			if gs.Remaining(gs.Current, kind) == 0 {
				continue
			}
			turn := NewPlacement(tile, kind, gs.Current)
			if gs.Board.Validate(turn) == nil {
				turns = append(turns, turn)
			}
		}
	}

	if _, ok := gs.Board.QueenTile(gs.Current); !ok {
		return turns
	}
	for _, start := range gs.Board.Tiles() {
		top, _ := gs.Board.TopPiece(start)
		if top.Color != gs.Current {
			continue
		}
		for _, end := range gs.Board.Reachable(start).Sorted() {
			turn := NewMove(start, end, gs.Current)
			if gs.Board.Validate(turn) == nil {
				turns = append(turns, turn)
			}
		}
	}
	return turns
}

// placementCandidates lists the empty tiles touching the hive, or the origin on an empty board.
func (gs *GameState) placementCandidates() []int {
	if gs.Board.Len() == 0 {
		return []int{hexgrid.Origin}
	}
	candidates := utils.NewSet[int]()
	for _, tile := range gs.Board.Tiles() {
		for _, n := range gs.Board.emptyNeighbors(tile) {
			candidates.Add(n)
		}
	}
	return candidates.Sorted()
}

func (gs *GameState) Outcome() Outcome {
	return outcomeOf(gs.Board.WinningColors())
}

func (gs *GameState) IsOver() bool {
	return gs.Outcome() != InProgress
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash current player and turn number
	binary.Write(hasher, binary.LittleEndian, int64(gs.Current))
	binary.Write(hasher, binary.LittleEndian, int64(gs.TurnNumber))

	// Hash stacks, bottom piece first
	for _, tile := range gs.Board.Tiles() {
		binary.Write(hasher, binary.LittleEndian, int64(tile))
		for _, piece := range gs.Board.stacks[tile] {
			binary.Write(hasher, binary.LittleEndian, int64(piece.Kind))
			binary.Write(hasher, binary.LittleEndian, int64(piece.Color))
		}
	}

	// Hash hands
	for _, color := range Colors {
		for _, kind := range Kinds {
			binary.Write(hasher, binary.LittleEndian, int64(gs.Hands[color][kind]))
		}
	}

	return StateHash(hasher.Sum64())
}
