package player

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"hive/game"
)

// ConsolePlayer reads turns typed by a human.
type ConsolePlayer struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsolePlayer(name string, in io.Reader, out io.Writer) *ConsolePlayer {
	return &ConsolePlayer{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *ConsolePlayer) Name() string {
	return p.name
}

// ChooseTurn prompts once and parses the next line. Malformed input comes back as an
// error wrapping game.ErrInvalidNotation so that it is retried like any rejected turn.
func (p *ConsolePlayer) ChooseTurn(ctx context.Context, state *game.GameState) (game.Turn, error) {
	if err := ctx.Err(); err != nil {
		return game.Turn{}, err
	}

	fmt.Fprintf(p.out, "%s's turn. Enter turn (examples: 'Q:0', 'A:6', '7:19', '0:5')\n", p.name)
	fmt.Fprint(p.out, ">>> ")

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return game.Turn{}, fmt.Errorf("failed to read turn: %w", err)
		}
		return game.Turn{}, io.EOF
	}
	return game.ParseTurn(state.Player(), p.scanner.Text())
}

func (p *ConsolePlayer) Rejected(turn game.Turn, err error) {
	fmt.Fprint(p.out, Describe(p.name, turn, err))
	fmt.Fprintln(p.out, " Please try again:")
}
