package player

import (
	"fmt"
	"io"
	"strings"

	"hive/game"
)

// RenderState writes the board as one line per occupied tile, bottom piece first,
// followed by the pieces each color still has in hand.
func RenderState(w io.Writer, state *game.GameState) error {
	var sb strings.Builder
	if state.Board.Len() == 0 {
		sb.WriteString("(empty board)\n")
	}
	for _, tile := range state.Board.Tiles() {
		stack := state.Board.Stack(tile)
		pieces := make([]string, len(stack))
		for i, piece := range stack {
			pieces[i] = piece.String()
		}
		fmt.Fprintf(&sb, "%4d: %s\n", tile, strings.Join(pieces, ", "))
	}

	for _, color := range game.Colors {
		hand := make([]string, 0, len(game.Kinds))
		for _, kind := range game.Kinds {
			hand = append(hand, fmt.Sprintf("%s=%d", kind.Letter(), state.Remaining(color, kind)))
		}
		fmt.Fprintf(&sb, "%s hand: %s\n", color, strings.Join(hand, " "))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
