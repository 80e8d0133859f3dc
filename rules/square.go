package rules

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// ParseSquare converts an algebraic square name such as "e2".
func ParseSquare(name string) (chess.Square, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) != 2 {
		return chess.NoSquare, fmt.Errorf("invalid square %q", name)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return chess.NoSquare, fmt.Errorf("invalid square %q", name)
	}
	return chess.NewSquare(chess.File(file-'a'), chess.Rank(rank-'1')), nil
}

// FindMove returns the legal move from -> to, preferring a queen when the
// move is a promotion. It returns nil if no such move exists.
func FindMove(moves []*chess.Move, from, to chess.Square) *chess.Move {
	var found *chess.Move
	for _, m := range moves {
		if m.S1() != from || m.S2() != to {
			continue
		}
		if m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen {
			return m
		}
		if found == nil {
			found = m
		}
	}
	return found
}

// ColorName returns "White" or "Black".
func ColorName(c chess.Color) string {
	switch c {
	case chess.White:
		return "White"
	case chess.Black:
		return "Black"
	default:
		return "No color"
	}
}
