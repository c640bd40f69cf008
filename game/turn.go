package game

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"hive/hexgrid"
)

type TurnType int

const (
	PlacementTurn TurnType = iota
	MoveTurn
)

func (t TurnType) String() string {
	switch t {
	case PlacementTurn:
		return "placement"
	case MoveTurn:
		return "move"
	default:
		return fmt.Sprintf("TurnType(%d)", int(t))
	}
}

// Turn is either a placement of Kind on End, or a move of the top piece of Start onto End.
// Start and Kind are meaningless for the other variant.
type Turn struct {
	Type  TurnType
	Color Color
	Kind  Kind
	Start int
	End   int
}

func NewPlacement(tile int, kind Kind, color Color) Turn {
	return Turn{Type: PlacementTurn, Color: color, Kind: kind, End: tile}
}

func NewMove(tileStart, tileEnd int, color Color) Turn {
	return Turn{Type: MoveTurn, Color: color, Start: tileStart, End: tileEnd}
}

// String renders the turn in the notation ParseTurn accepts.
func (t Turn) String() string {
	if t.Type == PlacementTurn {
		return fmt.Sprintf("%s:%d", t.Kind.Letter(), t.End)
	}
	return fmt.Sprintf("%d:%d", t.Start, t.End)
}

var turnPattern = regexp.MustCompile(`^(\d+|\w+):(\d+)$`)

// ParseTurn reads "<kind>:<tile>" as a placement and "<tile>:<tile>" as a move.
func ParseTurn(color Color, s string) (Turn, error) {
	match := turnPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Turn{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	end, err := parseTile(match[2])
	if err != nil {
		return Turn{}, err
	}

	if strings.IndexFunc(match[1], unicode.IsLetter) >= 0 {
		kind, err := ParseKind(match[1])
		if err != nil {
			return Turn{}, err
		}
		return NewPlacement(end, kind, color), nil
	}

	start, err := parseTile(match[1])
	if err != nil {
		return Turn{}, err
	}
	return NewMove(start, end, color), nil
}

func parseTile(s string) (int, error) {
	tile, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: tile %q: %v", ErrInvalidNotation, s, err)
	}
	if !hexgrid.IsValid(tile) {
		return 0, fmt.Errorf("%w: tile %d is off the grid", ErrInvalidNotation, tile)
	}
	return tile, nil
}
