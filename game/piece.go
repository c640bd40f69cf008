package game

import (
	"fmt"
	"strings"
)

// Kind identifies a Hive bug.
type Kind int

const (
	Queen Kind = iota
	Ant
	Beetle
	Grasshopper
	Spider
)

// Kinds lists every bug in notation order.
var Kinds = []Kind{Queen, Ant, Beetle, Grasshopper, Spider}

var kindNames = map[Kind]string{
	Queen:       "Queen",
	Ant:         "Ant",
	Beetle:      "Beetle",
	Grasshopper: "Grasshopper",
	Spider:      "Spider",
}

var kindLetters = map[Kind]string{
	Queen:       "Q",
	Ant:         "A",
	Beetle:      "B",
	Grasshopper: "G",
	Spider:      "S",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Letter returns the single-letter notation of the kind.
func (k Kind) Letter() string {
	return kindLetters[k]
}

// ParseKind accepts a notation letter or a full name, case-insensitive.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, kindLetters[k]) || strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown piece %q", ErrInvalidNotation, s)
}

// Color identifies a side.
type Color int

const (
	White Color = iota
	Black
)

// Colors lists both sides in turn order.
var Colors = []Color{White, Black}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Piece is an immutable value; boards copy pieces rather than share them.
type Piece struct {
	Kind  Kind
	Color Color
}

func NewPiece(kind Kind, color Color) Piece {
	return Piece{Kind: kind, Color: color}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Kind)
}
