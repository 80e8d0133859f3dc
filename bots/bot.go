// bot.go
package bots

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// ChessBot picks a move for the side to move in game, or nil when there is none.
type ChessBot interface {
	BestMove(game *chess.Game) *chess.Move
	Name() string
}

// Position is what the search needs from the rules engine. rules.Session
// implements it.
type Position interface {
	LegalMoves() []*chess.Move
	Apply(m *chess.Move)
	Undo()
	Turn() chess.Color
	IsCheckmate() bool
	IsDraw() bool
	Board() *chess.Board
}

// Evaluator scores a board from White's point of view.
type Evaluator interface {
	Evaluate(board *chess.Board) int
}

// Bot names accepted by New.
const (
	NegamaxName = "negamax"
	NewbornName = "newborn"
	RandomName  = "random"
)

// Names lists the bots accepted by New, in the order the board UI cycles
// through them.
var Names = []string{NegamaxName, NewbornName, RandomName}

// Next returns the bot name after name in Names, wrapping around. Unknown
// names start the cycle over.
func Next(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = NegamaxName
	}
	for i, n := range Names {
		if n == name {
			return Names[(i+1)%len(Names)]
		}
	}
	return Names[0]
}

// Options configures the bots built by New.
type Options struct {
	Depth   int   // negamax search depth
	Seed    int64 // random bot seed
	Verbose bool  // log search statistics
}

// New builds the bot registered under name.
func New(name string, opts Options) (ChessBot, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NegamaxName, "":
		if opts.Depth < 1 {
			return nil, fmt.Errorf("negamax depth must be at least 1, got %d", opts.Depth)
		}
		return &NegamaxBot{Depth: opts.Depth, Verbose: opts.Verbose}, nil
	case NewbornName:
		return NewNewbornBot(), nil
	case RandomName:
		return NewRandomBot(opts.Seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBot, name)
	}
}
