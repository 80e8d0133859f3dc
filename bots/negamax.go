package bots

import (
	"fmt"
	"log"
	"math"
	"time"

	"negachess/rules"

	"github.com/notnil/chess"
)

// MateScore is returned, signed, for a checkmated side to move. It does not
// depend on distance to mate.
const MateScore = 200000

// Stats counts the work done by one search.
type Stats struct {
	Nodes       int // negamax calls
	Evaluations int // static evaluations at the horizon
}

// Selection is the outcome of a root search.
type Selection struct {
	Move  *chess.Move
	Score int
	Stats Stats
}

// Searcher runs a fixed depth negamax without pruning. It mutates the
// position it is given through Apply/Undo and restores it before returning.
// A Searcher is not safe for concurrent use.
type Searcher struct {
	Depth     int
	Evaluator Evaluator
	stats     Stats
}

func NewSearcher(depth int) *Searcher {
	return &Searcher{Depth: depth, Evaluator: MaterialEvaluator{}}
}

// Stats returns the counters accumulated since the last Reset.
func (s *Searcher) Stats() Stats {
	return s.stats
}

func (s *Searcher) Reset() {
	s.stats = Stats{}
}

// Negamax returns the score of pos searched depth plies deep. At the horizon
// the White-positive evaluation is negated when White is to move, and each
// ply above negates its children.
func (s *Searcher) Negamax(pos Position, depth int) int {
	if depth < 0 {
		panic(fmt.Sprintf("bots: negative search depth %d", depth))
	}
	s.stats.Nodes++

	if depth == 0 {
		s.stats.Evaluations++
		score := s.Evaluator.Evaluate(pos.Board())
		if pos.Turn() == chess.White {
			return -score
		}
		return score
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.IsCheckmate() {
			if pos.Turn() == chess.White {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}

	best := math.MinInt
	for _, m := range moves {
		pos.Apply(m)
		score := -s.Negamax(pos, depth-1)
		pos.Undo()
		if score > best {
			best = score
		}
	}
	return best
}

// SelectMove searches every legal move of the side to move and returns the
// first one with the highest score. It returns ErrNoMove when there is none.
func (s *Searcher) SelectMove(pos Position) (Selection, error) {
	if s.Depth < 1 {
		panic(fmt.Sprintf("bots: search depth must be at least 1, got %d", s.Depth))
	}
	s.Reset()

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Selection{}, ErrNoMove
	}

	sel := Selection{Score: math.MinInt}
	for _, m := range moves {
		pos.Apply(m)
		score := -s.Negamax(pos, s.Depth-1)
		pos.Undo()
		if score > sel.Score {
			sel.Move, sel.Score = m, score
		}
	}
	sel.Stats = s.stats
	return sel, nil
}

// NegamaxBot plays the move chosen by a Searcher of fixed depth.
type NegamaxBot struct {
	Depth   int
	Verbose bool
}

func NewNegamaxBot(depth int) *NegamaxBot {
	return &NegamaxBot{Depth: depth}
}

func (b *NegamaxBot) Name() string {
	return fmt.Sprintf("Negamax Bot (depth %d)", b.Depth)
}

func (b *NegamaxBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}

	start := time.Now()
	sel, err := NewSearcher(b.Depth).SelectMove(rules.NewSession(game.Position()))
	if err != nil {
		return nil
	}
	if b.Verbose {
		log.Printf("negamax depth %d: %s score %d, %d nodes, %d evals in %s",
			b.Depth, sel.Move, sel.Score, sel.Stats.Nodes, sel.Stats.Evaluations, time.Since(start))
	}
	return sel.Move
}
